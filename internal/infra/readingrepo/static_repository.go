package readingrepo

import (
	"context"
	"sync"

	"github.com/yanqian/comunidad/internal/domain/readings"
)

// StaticRepository serves reading plans compiled into the binary.
type StaticRepository struct {
	mu    sync.RWMutex
	plans map[int][]readings.DailyReading
}

// NewStaticRepository returns a repository holding the bundled plans.
func NewStaticRepository() *StaticRepository {
	return &StaticRepository{
		plans: map[int][]readings.DailyReading{
			2025: readings.Schedule2025,
		},
	}
}

// Load implements readings.ScheduleRepository.
func (r *StaticRepository) Load(_ context.Context, year int) ([]readings.DailyReading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.plans[year]
	if !ok {
		return nil, readings.ErrNoSchedule
	}
	out := make([]readings.DailyReading, len(plan))
	copy(out, plan)
	return out, nil
}

// Save replaces the plan of a year.
func (r *StaticRepository) Save(_ context.Context, year int, entries []readings.DailyReading) error {
	cp := make([]readings.DailyReading, len(entries))
	copy(cp, entries)
	r.mu.Lock()
	r.plans[year] = cp
	r.mu.Unlock()
	return nil
}

var _ readings.ScheduleRepository = (*StaticRepository)(nil)
