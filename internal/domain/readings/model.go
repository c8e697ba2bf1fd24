package readings

import (
	"context"
	"errors"
	"time"
)

// DailyReading is one scheduled reading. Month and Day are 1-based.
type DailyReading struct {
	Month   int    `json:"month"`
	Day     int    `json:"day"`
	Reading string `json:"reading"`
}

func (r DailyReading) before(month, day int) bool {
	return r.Month < month || (r.Month == month && r.Day < day)
}

// ReadingView is the reading resolved for a concrete date.
type ReadingView struct {
	Date        string       `json:"date"`
	DisplayDate string       `json:"displayDate"`
	Reading     string       `json:"reading"`
	ScheduledOn DailyReading `json:"scheduledOn"`
	HeldOver    bool         `json:"heldOver"`
	Summary     string       `json:"summary"`
	ExternalURL string       `json:"externalUrl"`
}

// ScheduleView lists the plan used for a year.
type ScheduleView struct {
	Year    int            `json:"year"`
	Entries []DailyReading `json:"entries"`
}

// ScheduleRepository loads the reading plan of a year.
type ScheduleRepository interface {
	Load(ctx context.Context, year int) ([]DailyReading, error)
}

// Config holds runtime knobs for the readings service.
type Config struct {
	// Year is the plan used when no plan exists for the requested year.
	Year          int
	SummaryLength int
	CacheTTL      time.Duration
	Location      *time.Location
}

var (
	// ErrNoReading means the date precedes every scheduled reading.
	ErrNoReading = errors.New("readings: no reading scheduled yet")
	// ErrNoSchedule is returned by repositories that hold no plan for a year.
	ErrNoSchedule = errors.New("readings: no schedule for year")
)
