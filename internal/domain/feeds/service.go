package feeds

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/yanqian/comunidad/pkg/util"
)

// Service exposes the three spreadsheet feeds. None of its reads fail; a
// broken source degrades to stale or empty data.
type Service interface {
	Activities(ctx context.Context, force bool) []Activity
	UpcomingActivities(ctx context.Context, force bool) []Activity
	PastActivities(ctx context.Context) []Activity
	ActivitiesOn(ctx context.Context, date time.Time) []Activity
	MarkedDates(ctx context.Context) []string
	Celebrations(ctx context.Context, force bool) []Celebration
	TodayCelebrations(ctx context.Context, force bool) []Celebration
	Community(ctx context.Context, force bool) []CommunityCategory
	RefreshAll(ctx context.Context) RefreshReport
	FetchedAt(feed string) time.Time
}

type service struct {
	cfg          Config
	activities   *Feed[Activity]
	celebrations *Feed[Celebration]
	community    *Feed[CommunityCategory]
	logger       *slog.Logger
	now          util.Clock
}

// NewService wires up the feeds domain.
func NewService(cfg Config, fetcher Fetcher, store SnapshotStore, logger *slog.Logger) Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	svc := &service{
		cfg:          cfg,
		activities:   newFeed(FeedActivities, cfg.Activities, fetcher, store, parseActivities, logger),
		celebrations: newFeed(FeedCelebrations, cfg.Celebrations, fetcher, store, parseCelebrations, logger),
		community:    newFeed(FeedCommunity, cfg.Community, fetcher, store, parseCommunity, logger),
		logger:       logger.With("component", "feeds.service"),
	}
	svc.setClock(time.Now)
	return svc
}

func (s *service) setClock(now util.Clock) {
	local := func() time.Time { return now().In(s.cfg.Location) }
	s.now = local
	s.activities.now = local
	s.celebrations.now = local
	s.community.now = local
}

func (s *service) Activities(ctx context.Context, force bool) []Activity {
	return s.activities.Get(ctx, force)
}

func (s *service) UpcomingActivities(ctx context.Context, force bool) []Activity {
	today := util.StartOfDay(s.now())
	all := s.activities.Get(ctx, force)
	out := make([]Activity, 0, len(all))
	for _, a := range all {
		if !a.Date.Before(today) {
			out = append(out, a)
		}
	}
	return out
}

func (s *service) PastActivities(ctx context.Context) []Activity {
	today := util.StartOfDay(s.now())
	all := s.activities.Get(ctx, false)
	out := make([]Activity, 0, len(all))
	for _, a := range all {
		if a.Date.Before(today) {
			out = append(out, a)
		}
	}
	return out
}

func (s *service) ActivitiesOn(ctx context.Context, date time.Time) []Activity {
	all := s.activities.Get(ctx, false)
	out := make([]Activity, 0)
	for _, a := range all {
		if util.SameDay(a.Date, date) {
			out = append(out, a)
		}
	}
	return out
}

func (s *service) MarkedDates(ctx context.Context) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, a := range s.activities.Get(ctx, false) {
		day := a.Day()
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}
	sort.Strings(out)
	return out
}

func (s *service) Celebrations(ctx context.Context, force bool) []Celebration {
	return s.celebrations.Get(ctx, force)
}

func (s *service) TodayCelebrations(ctx context.Context, force bool) []Celebration {
	today := dayMonthKey(s.now())
	all := s.celebrations.Get(ctx, force)
	out := make([]Celebration, 0)
	for _, c := range all {
		if normalizeDayMonth(c.Date) == today {
			out = append(out, c)
		}
	}
	return out
}

func (s *service) Community(ctx context.Context, force bool) []CommunityCategory {
	return s.community.Get(ctx, force)
}

// FetchedAt reports when the named feed was last downloaded, or the zero
// time when it has never been populated.
func (s *service) FetchedAt(feed string) time.Time {
	var at time.Time
	switch feed {
	case FeedActivities:
		_, at = s.activities.Snapshot()
	case FeedCelebrations:
		_, at = s.celebrations.Snapshot()
	case FeedCommunity:
		_, at = s.community.Snapshot()
	}
	return at
}

func (s *service) RefreshAll(ctx context.Context) RefreshReport {
	report := RefreshReport{
		Activities:   len(s.activities.Get(ctx, true)),
		Celebrations: len(s.celebrations.Get(ctx, true)),
		Community:    len(s.community.Get(ctx, true)),
	}
	s.logger.Info("feeds refreshed", "activities", report.Activities, "celebrations", report.Celebrations, "community", report.Community)
	return report
}
