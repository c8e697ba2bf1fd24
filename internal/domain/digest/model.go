package digest

import (
	"context"
	"time"
)

// Kind identifies a digest category.
type Kind string

const (
	KindCelebrations Kind = "celebrations"
	KindActivities   Kind = "activities"
)

const (
	celebrationsTitle = "🎉 ¡Celebraciones de Hoy!"
	activitiesTitle   = "📅 Actividades para Hoy"
)

// Digest is one notification payload for the mobile client.
type Digest struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Lines     []string  `json:"lines"`
	Body      string    `json:"body"`
	DeliverAt time.Time `json:"deliverAt"`
}

// Batch is the set of digests composed in one run. A new batch replaces the
// previous one entirely.
type Batch struct {
	Day        string    `json:"day"`
	ComposedAt time.Time `json:"composedAt"`
	Digests    []Digest  `json:"digests"`
}

// Outbox hands composed batches to whatever delivers them.
type Outbox interface {
	Replace(ctx context.Context, batch Batch) error
	Latest(ctx context.Context) (Batch, bool, error)
}

// Config holds runtime knobs for the digest service.
type Config struct {
	CelebrationsHour int
	ActivitiesHour   int
	Location         *time.Location
}
