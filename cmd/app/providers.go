package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

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

func provideLocation(cfg *config.Config) *time.Location {
	return util.LoadLocation(cfg.Timezone)
}

func provideFeedsConfig(cfg *config.Config, loc *time.Location) feeds.Config {
	return feeds.Config{
		Activities:   feeds.SourceConfig{URL: cfg.Feeds.Activities.URL, TTL: cfg.Feeds.Activities.TTL},
		Celebrations: feeds.SourceConfig{URL: cfg.Feeds.Celebrations.URL, TTL: cfg.Feeds.Celebrations.TTL},
		Community:    feeds.SourceConfig{URL: cfg.Feeds.Community.URL, TTL: cfg.Feeds.Community.TTL},
		Location:     loc,
	}
}

func provideScriptureConfig(cfg *config.Config) scripture.Config {
	return scripture.Config{
		Translation:     cfg.Scripture.Translation,
		ExternalBaseURL: cfg.Scripture.ExternalBaseURL,
		ExternalVersion: cfg.Scripture.ExternalVersion,
		SummaryLength:   cfg.Scripture.SummaryLength,
		LoadTimeout:     cfg.Scripture.LoadTimeout,
	}
}

func provideReadingsConfig(cfg *config.Config, loc *time.Location) readings.Config {
	return readings.Config{
		Year:          cfg.Readings.Year,
		SummaryLength: cfg.Readings.SummaryLength,
		CacheTTL:      cfg.Readings.CacheTTL,
		Location:      loc,
	}
}

func provideDigestConfig(cfg *config.Config, loc *time.Location) digest.Config {
	return digest.Config{
		CelebrationsHour: cfg.Digest.CelebrationsHour,
		ActivitiesHour:   cfg.Digest.ActivitiesHour,
		Location:         loc,
	}
}

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:   cfg.Admin.JWTSecret,
		TokenTTL: cfg.Admin.TokenTTL,
	}
}

func provideFeedFetcher(cfg *config.Config) feeds.Fetcher {
	return feedsource.NewClient(cfg.HTTP.ClientTimeout)
}

// provideValkeyClient returns nil when no address is configured or the server
// does not answer; callers fall back to in-process adapters.
func provideValkeyClient(cfg *config.Config, logger *slog.Logger) valkey.Client {
	addr := strings.TrimSpace(cfg.Valkey.Addr)
	if addr == "" {
		return nil
	}
	opt, err := buildValkeyOptions(addr)
	if err != nil {
		logger.Error("invalid valkey configuration, using memory adapters", "error", err)
		return nil
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, using memory adapters", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, using memory adapters", "error", err)
		client.Close()
		return nil
	}
	logger.Info("valkey connected", "addr", addr)
	return client
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideSnapshotStore(cfg *config.Config, client valkey.Client, logger *slog.Logger) feeds.SnapshotStore {
	if cfg.Feeds.SnapshotsInValkey && client != nil {
		logger.Info("feed snapshots stored in valkey")
		return feedstore.NewValkeyStore(client, cfg.Valkey.Prefix)
	}
	return feedstore.NewMemoryStore()
}

func provideDigestOutbox(cfg *config.Config, client valkey.Client, logger *slog.Logger) digest.Outbox {
	if cfg.Digest.OutboxInValkey && client != nil {
		logger.Info("digest outbox published to valkey")
		return digestoutbox.NewValkeyOutbox(client, cfg.Valkey.Prefix)
	}
	return digestoutbox.NewMemoryOutbox()
}

func provideDocumentSource(cfg *config.Config, logger *slog.Logger) scripture.DocumentSource {
	origin := scripturesource.NewHTTPSource(cfg.Scripture.DocumentURL, cfg.HTTP.ClientTimeout)
	store := cfg.Scripture.ObjectStorage
	if !store.Enabled {
		return origin
	}
	bucket, err := scripturesource.NewObjectSource(scripturesource.ObjectConfig{
		Endpoint:  store.Endpoint,
		AccessKey: store.AccessKey,
		SecretKey: store.SecretKey,
		Bucket:    store.Bucket,
		Region:    store.Region,
		Key:       store.ObjectKey,
	}, logger)
	if err != nil {
		logger.Error("object storage unavailable, downloading bible directly", "error", err)
		return origin
	}
	logger.Info("bible document mirrored in object storage", "bucket", store.Bucket)
	return scripturesource.NewMirroredSource(bucket, origin, logger)
}

func provideScheduleRepository(cfg *config.Config, logger *slog.Logger) readings.ScheduleRepository {
	fallback := readingrepo.NewStaticRepository()
	dsn := strings.TrimSpace(cfg.Readings.Postgres.DSN)
	if dsn == "" {
		logger.Info("readings postgres dsn not set, using bundled plan")
		return fallback
	}
	pool, err := openPostgres(cfg.Readings.Postgres)
	if err != nil {
		logger.Error("postgres unavailable, using bundled plan", "error", err)
		return fallback
	}
	repo := readingrepo.NewPostgresRepository(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.Migrate(ctx); err != nil {
		logger.Error("readings migration failed, using bundled plan", "error", err)
		pool.Close()
		return fallback
	}
	if err := seedSchedule(ctx, repo, fallback, cfg.Readings.Year); err != nil {
		logger.Warn("failed to seed reading plan", "year", cfg.Readings.Year, "error", err)
	}
	logger.Info("readings postgres repository enabled")
	return repo
}

// seedSchedule copies the bundled plan for year into an empty table.
func seedSchedule(ctx context.Context, repo *readingrepo.PostgresRepository, bundled *readingrepo.StaticRepository, year int) error {
	_, err := repo.Load(ctx, year)
	if !errors.Is(err, readings.ErrNoSchedule) {
		return err
	}
	entries, err := bundled.Load(ctx, year)
	if err != nil {
		if errors.Is(err, readings.ErrNoSchedule) {
			return nil
		}
		return err
	}
	return repo.Save(ctx, year, entries)
}

func openPostgres(cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(strings.TrimSpace(cfg.DSN))
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
