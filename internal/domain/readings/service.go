package readings

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	apperrors "github.com/yanqian/comunidad/pkg/errors"
	"github.com/yanqian/comunidad/pkg/util"
)

const (
	defaultSummaryLength = 250
	defaultCacheTTL      = time.Hour
)

// Service exposes the daily reading plan.
type Service interface {
	Today(ctx context.Context) (ReadingView, error)
	ForDate(ctx context.Context, date time.Time) (ReadingView, error)
	Schedule(ctx context.Context) (ScheduleView, error)
}

// PassageSummarizer renders a short preview and a fallback link for a reference.
type PassageSummarizer interface {
	Summary(ctx context.Context, ref string, maxLen int) string
	ExternalURL(ref string) string
}

type cachedCalendar struct {
	year     int
	calendar *Calendar
	loadedAt time.Time
}

type service struct {
	cfg       Config
	repo      ScheduleRepository
	scripture PassageSummarizer
	logger    *slog.Logger
	now       util.Clock

	mu        sync.Mutex
	calendars map[int]cachedCalendar
	loads     singleflight.Group
}

// NewService wires up the readings domain.
func NewService(cfg Config, repo ScheduleRepository, scripture PassageSummarizer, logger *slog.Logger) Service {
	if cfg.SummaryLength <= 0 {
		cfg.SummaryLength = defaultSummaryLength
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &service{
		cfg:       cfg,
		repo:      repo,
		scripture: scripture,
		logger:    logger.With("component", "readings.service"),
		now:       time.Now,
		calendars: make(map[int]cachedCalendar),
	}
}

func (s *service) Today(ctx context.Context) (ReadingView, error) {
	return s.ForDate(ctx, s.now())
}

func (s *service) ForDate(ctx context.Context, date time.Time) (ReadingView, error) {
	date = date.In(s.cfg.Location)
	cal, err := s.calendar(ctx, date.Year())
	if err != nil {
		return ReadingView{}, err
	}

	entry, ok := cal.calendar.Resolve(int(date.Month()), date.Day())
	if !ok {
		return ReadingView{}, apperrors.Wrap("reading_not_found", "no reading scheduled for "+date.Format(time.DateOnly), ErrNoReading)
	}

	return ReadingView{
		Date:        date.Format(time.DateOnly),
		DisplayDate: util.FormatLongES(date),
		Reading:     entry.Reading,
		ScheduledOn: entry,
		HeldOver:    entry.Month != int(date.Month()) || entry.Day != date.Day(),
		Summary:     s.scripture.Summary(ctx, entry.Reading, s.cfg.SummaryLength),
		ExternalURL: s.scripture.ExternalURL(entry.Reading),
	}, nil
}

func (s *service) Schedule(ctx context.Context) (ScheduleView, error) {
	cal, err := s.calendar(ctx, s.now().In(s.cfg.Location).Year())
	if err != nil {
		return ScheduleView{}, err
	}
	return ScheduleView{Year: cal.year, Entries: cal.calendar.Entries()}, nil
}

// calendar returns the plan for year, falling back to the configured year
// when the repository has none. The repository is queried outside s.mu and
// concurrent loads of one year share a single query.
func (s *service) calendar(ctx context.Context, year int) (cachedCalendar, error) {
	s.mu.Lock()
	cached, ok := s.calendars[year]
	s.mu.Unlock()
	if ok && s.now().Sub(cached.loadedAt) < s.cfg.CacheTTL {
		return cached, nil
	}

	v, err, _ := s.loads.Do(strconv.Itoa(year), func() (any, error) {
		return s.load(ctx, year)
	})
	if err != nil {
		if ok {
			s.logger.Warn("schedule reload failed, keeping previous plan", "year", year, "error", err)
			return cached, nil
		}
		if errors.Is(err, ErrNoSchedule) {
			return cachedCalendar{}, apperrors.Wrap("reading_not_found", "no reading plan available", ErrNoReading)
		}
		return cachedCalendar{}, apperrors.Wrap("readings_error", "failed to load reading plan", err)
	}
	return v.(cachedCalendar), nil
}

func (s *service) load(ctx context.Context, year int) (cachedCalendar, error) {
	entries, err := s.repo.Load(ctx, year)
	resolvedYear := year
	if errors.Is(err, ErrNoSchedule) && s.cfg.Year != 0 && s.cfg.Year != year {
		s.logger.Debug("no plan for year, using default plan", "year", year, "defaultYear", s.cfg.Year)
		resolvedYear = s.cfg.Year
		entries, err = s.repo.Load(ctx, s.cfg.Year)
	}
	if err != nil {
		return cachedCalendar{}, err
	}

	cached := cachedCalendar{year: resolvedYear, calendar: NewCalendar(entries), loadedAt: s.now()}
	s.mu.Lock()
	s.calendars[year] = cached
	s.mu.Unlock()
	s.logger.Info("reading plan loaded", "year", resolvedYear, "entries", cached.calendar.Len())
	return cached, nil
}
