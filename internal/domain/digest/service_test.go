package digest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/comunidad/internal/domain/feeds"
	apperrors "github.com/yanqian/comunidad/pkg/errors"
)

type stubFeeds struct {
	celebrations []feeds.Celebration
	activities   []feeds.Activity
	forced       []bool
}

func (s *stubFeeds) TodayCelebrations(ctx context.Context, force bool) []feeds.Celebration {
	s.forced = append(s.forced, force)
	return s.celebrations
}

func (s *stubFeeds) UpcomingActivities(ctx context.Context, force bool) []feeds.Activity {
	s.forced = append(s.forced, force)
	return s.activities
}

type stubOutbox struct {
	batch Batch
	has   bool
	err   error
}

func (o *stubOutbox) Replace(ctx context.Context, batch Batch) error {
	if o.err != nil {
		return o.err
	}
	o.batch, o.has = batch, true
	return nil
}

func (o *stubOutbox) Latest(ctx context.Context) (Batch, bool, error) {
	return o.batch, o.has, o.err
}

func newTestService(reader FeedReader, outbox Outbox, now time.Time) *service {
	svc := NewService(Config{CelebrationsHour: 4, ActivitiesHour: 5, Location: time.UTC}, reader, outbox, slog.New(slog.NewTextHandler(io.Discard, nil))).(*service)
	svc.now = func() time.Time { return now }
	ids := 0
	svc.newID = func() string {
		ids++
		return []string{"id-1", "id-2", "id-3"}[ids-1]
	}
	return svc
}

func TestComposeBuildsBothDigests(t *testing.T) {
	now := time.Date(2025, 3, 3, 1, 30, 0, 0, time.UTC)
	reader := &stubFeeds{
		celebrations: []feeds.Celebration{
			{ID: "cel-1", Date: "03-03", Category: "Cumpleaños", Name: "Ana"},
			{ID: "cel-2", Date: "03-03", Category: "Aniversario", Name: "Luis y Marta"},
		},
		activities: []feeds.Activity{
			{Title: "Misa", Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), Time: "19:00"},
			{Title: "Cena", Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Time: "20:00"},
		},
	}
	svc := newTestService(reader, &stubOutbox{}, now)

	batch := svc.Compose(context.Background())
	require.Equal(t, "2025-03-03", batch.Day)
	require.Len(t, batch.Digests, 2)

	cel := batch.Digests[0]
	require.Equal(t, "id-1", cel.ID)
	require.Equal(t, KindCelebrations, cel.Kind)
	require.Equal(t, "🎉 ¡Celebraciones de Hoy!", cel.Title)
	require.Equal(t, "Cumpleaños: Ana\nAniversario: Luis y Marta", cel.Body)
	require.Equal(t, time.Date(2025, 3, 3, 4, 0, 0, 0, time.UTC), cel.DeliverAt)

	act := batch.Digests[1]
	require.Equal(t, KindActivities, act.Kind)
	require.Equal(t, "📅 Actividades para Hoy", act.Title)
	require.Equal(t, []string{"19:00 - Misa"}, act.Lines)
	require.Equal(t, time.Date(2025, 3, 3, 5, 0, 0, 0, time.UTC), act.DeliverAt)

	require.Equal(t, []bool{true, true}, reader.forced)
}

func TestComposeSkipsEmptyDigests(t *testing.T) {
	reader := &stubFeeds{activities: []feeds.Activity{
		{Title: "Cena", Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Time: "20:00"},
	}}
	svc := newTestService(reader, &stubOutbox{}, time.Date(2025, 3, 3, 1, 0, 0, 0, time.UTC))

	require.Empty(t, svc.Compose(context.Background()).Digests)
}

func TestRunReplacesOutboxBatch(t *testing.T) {
	outbox := &stubOutbox{batch: Batch{Day: "2025-03-02", Digests: []Digest{{ID: "old"}}}, has: true}
	reader := &stubFeeds{celebrations: []feeds.Celebration{{Category: "Cumpleaños", Name: "Ana"}}}
	svc := newTestService(reader, outbox, time.Date(2025, 3, 3, 1, 0, 0, 0, time.UTC))

	batch, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, batch.Digests, 1)

	latest, err := svc.Latest(context.Background())
	require.NoError(t, err)
	require.Equal(t, "2025-03-03", latest.Day)
	require.Equal(t, "id-1", latest.Digests[0].ID)
}

func TestRunOutboxFailure(t *testing.T) {
	svc := newTestService(&stubFeeds{}, &stubOutbox{err: errors.New("valkey down")}, time.Date(2025, 3, 3, 1, 0, 0, 0, time.UTC))

	_, err := svc.Run(context.Background())
	require.True(t, apperrors.IsCode(err, "digest_error"))
}

func TestLatestWithoutBatch(t *testing.T) {
	svc := newTestService(&stubFeeds{}, &stubOutbox{}, time.Now())

	batch, err := svc.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, batch.Digests)
	require.Empty(t, batch.Digests)
}
