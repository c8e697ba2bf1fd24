package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/comunidad/internal/domain/auth"
	"github.com/yanqian/comunidad/internal/domain/digest"
	"github.com/yanqian/comunidad/internal/domain/feeds"
	"github.com/yanqian/comunidad/internal/domain/readings"
	"github.com/yanqian/comunidad/internal/domain/scripture"
	"github.com/yanqian/comunidad/internal/infra/config"
	"github.com/yanqian/comunidad/internal/infra/digestoutbox"
	"github.com/yanqian/comunidad/internal/infra/feedsource"
	"github.com/yanqian/comunidad/internal/infra/feedstore"
	"github.com/yanqian/comunidad/internal/infra/readingrepo"
	"github.com/yanqian/comunidad/internal/infra/scripturesource"
	"github.com/yanqian/comunidad/pkg/util"
)

// env holds the services commands run against.
type env struct {
	cfg       *config.Config
	out       io.Writer
	location  *time.Location
	now       func() time.Time
	readings  readings.Service
	scripture scripture.Service
	digests   digest.Service
	auth      auth.Service
	logger    *slog.Logger
}

func newEnv(out io.Writer) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	// Commands print to stdout, so logs go to stderr and stay quiet.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	loc := util.LoadLocation(cfg.Timezone)

	source := scripturesource.NewHTTPSource(cfg.Scripture.DocumentURL, cfg.HTTP.ClientTimeout)
	scriptureSvc := scripture.NewService(scripture.Config{
		Translation:     cfg.Scripture.Translation,
		ExternalBaseURL: cfg.Scripture.ExternalBaseURL,
		ExternalVersion: cfg.Scripture.ExternalVersion,
		SummaryLength:   cfg.Scripture.SummaryLength,
		LoadTimeout:     cfg.Scripture.LoadTimeout,
	}, source, logger)

	readingsSvc := readings.NewService(readings.Config{
		Year:          cfg.Readings.Year,
		SummaryLength: cfg.Readings.SummaryLength,
		CacheTTL:      cfg.Readings.CacheTTL,
		Location:      loc,
	}, readingrepo.NewStaticRepository(), scriptureSvc, logger)

	feedsSvc := feeds.NewService(feeds.Config{
		Activities:   feeds.SourceConfig{URL: cfg.Feeds.Activities.URL, TTL: cfg.Feeds.Activities.TTL},
		Celebrations: feeds.SourceConfig{URL: cfg.Feeds.Celebrations.URL, TTL: cfg.Feeds.Celebrations.TTL},
		Community:    feeds.SourceConfig{URL: cfg.Feeds.Community.URL, TTL: cfg.Feeds.Community.TTL},
		Location:     loc,
	}, feedsource.NewClient(cfg.HTTP.ClientTimeout), feedstore.NewMemoryStore(), logger)

	digestSvc := digest.NewService(digest.Config{
		CelebrationsHour: cfg.Digest.CelebrationsHour,
		ActivitiesHour:   cfg.Digest.ActivitiesHour,
		Location:         loc,
	}, feedsSvc, digestoutbox.NewMemoryOutbox(), logger)

	authSvc := auth.NewService(auth.Config{Secret: cfg.Admin.JWTSecret, TokenTTL: cfg.Admin.TokenTTL}, logger)

	return &env{
		cfg:       cfg,
		out:       out,
		location:  loc,
		now:       time.Now,
		readings:  readingsSvc,
		scripture: scriptureSvc,
		digests:   digestSvc,
		auth:      authSvc,
		logger:    logger,
	}, nil
}

func (r *env) openScheduleRepository(ctx context.Context) (*readingrepo.PostgresRepository, func(), error) {
	dsn := strings.TrimSpace(r.cfg.Readings.Postgres.DSN)
	if dsn == "" {
		return nil, nil, errPostgresRequired
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return readingrepo.NewPostgresRepository(pool), pool.Close, nil
}
