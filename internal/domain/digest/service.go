package digest

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/comunidad/internal/domain/feeds"
	apperrors "github.com/yanqian/comunidad/pkg/errors"
	"github.com/yanqian/comunidad/pkg/util"
)

// Service composes the daily celebration and activity digests.
type Service interface {
	Compose(ctx context.Context) Batch
	Run(ctx context.Context) (Batch, error)
	Latest(ctx context.Context) (Batch, error)
}

// FeedReader is the slice of the feeds service digests are built from.
type FeedReader interface {
	TodayCelebrations(ctx context.Context, force bool) []feeds.Celebration
	UpcomingActivities(ctx context.Context, force bool) []feeds.Activity
}

type service struct {
	cfg    Config
	feeds  FeedReader
	outbox Outbox
	logger *slog.Logger
	now    util.Clock
	newID  func() string
}

// NewService wires up the digest domain.
func NewService(cfg Config, reader FeedReader, outbox Outbox, logger *slog.Logger) Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &service{
		cfg:    cfg,
		feeds:  reader,
		outbox: outbox,
		logger: logger.With("component", "digest.service"),
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
}

func (s *service) Compose(ctx context.Context) Batch {
	now := s.now().In(s.cfg.Location)
	batch := Batch{
		Day:        now.Format(time.DateOnly),
		ComposedAt: now,
		Digests:    make([]Digest, 0, 2),
	}

	// both feeds are forced so the digest reflects the sheet as of this run
	celebrations := s.feeds.TodayCelebrations(ctx, true)
	if len(celebrations) > 0 {
		lines := make([]string, 0, len(celebrations))
		for _, c := range celebrations {
			lines = append(lines, c.Category+": "+c.Name)
		}
		batch.Digests = append(batch.Digests, s.digest(KindCelebrations, celebrationsTitle, lines, now, s.cfg.CelebrationsHour))
	}

	var lines []string
	for _, a := range s.feeds.UpcomingActivities(ctx, true) {
		if util.SameDay(a.Date.In(s.cfg.Location), now) {
			lines = append(lines, a.Time+" - "+a.Title)
		}
	}
	if len(lines) > 0 {
		batch.Digests = append(batch.Digests, s.digest(KindActivities, activitiesTitle, lines, now, s.cfg.ActivitiesHour))
	}

	return batch
}

func (s *service) Run(ctx context.Context) (Batch, error) {
	batch := s.Compose(ctx)
	if err := s.outbox.Replace(ctx, batch); err != nil {
		return Batch{}, apperrors.Wrap("digest_error", "failed to publish digests", err)
	}
	s.logger.Info("digests scheduled", "day", batch.Day, "count", len(batch.Digests))
	return batch, nil
}

func (s *service) Latest(ctx context.Context) (Batch, error) {
	batch, ok, err := s.outbox.Latest(ctx)
	if err != nil {
		return Batch{}, apperrors.Wrap("digest_error", "failed to read digests", err)
	}
	if !ok {
		return Batch{Digests: []Digest{}}, nil
	}
	return batch, nil
}

func (s *service) digest(kind Kind, title string, lines []string, now time.Time, hour int) Digest {
	y, m, d := now.Date()
	return Digest{
		ID:        s.newID(),
		Kind:      kind,
		Title:     title,
		Lines:     lines,
		Body:      strings.Join(lines, "\n"),
		DeliverAt: time.Date(y, m, d, hour, 0, 0, 0, now.Location()),
	}
}
