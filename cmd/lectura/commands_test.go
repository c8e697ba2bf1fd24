package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/comunidad/internal/domain/auth"
	"github.com/yanqian/comunidad/internal/domain/digest"
	"github.com/yanqian/comunidad/internal/domain/readings"
	"github.com/yanqian/comunidad/internal/domain/scripture"
	"github.com/yanqian/comunidad/internal/infra/config"
	apperrors "github.com/yanqian/comunidad/pkg/errors"
)

func TestTodayCmdPrintsReading(t *testing.T) {
	var gotDate time.Time
	rt, out := newTestEnv()
	rt.readings = &stubReadings{fn: func(date time.Time) (readings.ReadingView, error) {
		gotDate = date
		return readings.ReadingView{
			DisplayDate: "Lunes, 10 de Marzo de 2025",
			Reading:     "Juan 3:16-18",
			HeldOver:    true,
			ScheduledOn: readings.DailyReading{Month: 3, Day: 9, Reading: "Juan 3:16-18"},
			Summary:     "Porque de tal manera amó Dios al mundo...",
		}, nil
	}}

	require.NoError(t, (&TodayCmd{Date: "2025-03-10"}).Run(rt))
	require.Equal(t, "2025-03-10", gotDate.Format(time.DateOnly))
	require.Contains(t, out.String(), "Juan 3:16-18")
	require.Contains(t, out.String(), "(programada el 09-03)")
	require.Contains(t, out.String(), "amó Dios")
}

func TestTodayCmdRejectsBadDate(t *testing.T) {
	rt, _ := newTestEnv()
	require.Error(t, (&TodayCmd{Date: "10/03/2025"}).Run(rt))
}

func TestPassageCmdFallsBackToLink(t *testing.T) {
	rt, out := newTestEnv()
	rt.scripture = &stubScripture{err: apperrors.Wrap(scripture.CodeUnsupported, "unsupported", scripture.ErrUnsupported)}

	require.NoError(t, (&PassageCmd{Reference: []string{"Tobías", "1"}}).Run(rt))
	require.Contains(t, out.String(), "Tobías 1 no está disponible localmente.")
	require.Contains(t, out.String(), "https://reader.test/Tobías 1")
}

func TestPassageCmdPrintsText(t *testing.T) {
	rt, out := newTestEnv()
	rt.scripture = &stubScripture{passage: scripture.Passage{Reference: "Juan 3:16", Translation: "RVR1960", Text: "16 Porque de tal manera"}}

	require.NoError(t, (&PassageCmd{Reference: []string{"Juan", "3:16"}}).Run(rt))
	require.True(t, strings.HasPrefix(out.String(), "Juan 3:16 (RVR1960)"))
}

func TestDigestCmd(t *testing.T) {
	rt, out := newTestEnv()
	deliver := time.Date(2025, 3, 3, 4, 0, 0, 0, time.UTC)
	rt.digests = &stubDigests{batch: digest.Batch{Digests: []digest.Digest{{Title: "🎉 ¡Celebraciones de Hoy!", Body: "Cumpleaños: Ana", DeliverAt: deliver}}}}

	require.NoError(t, (&DigestCmd{}).Run(rt))
	require.Contains(t, out.String(), "🎉 ¡Celebraciones de Hoy!  [04:00]")
	require.Contains(t, out.String(), "Cumpleaños: Ana")

	out.Reset()
	rt.digests = &stubDigests{}
	require.NoError(t, (&DigestCmd{}).Run(rt))
	require.Equal(t, "Sin notificaciones para hoy.\n", out.String())
}

func TestTokenCmdIssuesValidToken(t *testing.T) {
	rt, out := newTestEnv()
	rt.auth = auth.NewService(auth.Config{Secret: "cli-secret"}, rt.logger)

	require.NoError(t, (&TokenCmd{Subject: "ops", TTL: time.Hour}).Run(rt))
	token := strings.SplitN(out.String(), "\n", 2)[0]
	claims, err := rt.auth.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "ops", claims.Subject)
}

func TestScheduleImportRequiresPostgres(t *testing.T) {
	rt, _ := newTestEnv()
	err := (&ScheduleImportCmd{}).Run(rt)
	require.ErrorIs(t, err, errPostgresRequired)

	err = (&ScheduleImportCmd{Year: 1999}).Run(rt)
	require.ErrorContains(t, err, "no bundled plan for 1999")
}

func newTestEnv() (*env, *bytes.Buffer) {
	out := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &env{
		cfg:       &config.Config{Readings: config.ReadingsConfig{Year: 2025}},
		out:       out,
		location:  time.UTC,
		now:       func() time.Time { return time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC) },
		readings:  &stubReadings{},
		scripture: &stubScripture{},
		digests:   &stubDigests{},
		auth:      auth.NewService(auth.Config{}, logger),
		logger:    logger,
	}, out
}

type stubReadings struct {
	fn func(date time.Time) (readings.ReadingView, error)
}

func (s *stubReadings) Today(ctx context.Context) (readings.ReadingView, error) {
	return readings.ReadingView{}, nil
}

func (s *stubReadings) ForDate(ctx context.Context, date time.Time) (readings.ReadingView, error) {
	if s.fn != nil {
		return s.fn(date)
	}
	return readings.ReadingView{}, nil
}

func (s *stubReadings) Schedule(ctx context.Context) (readings.ScheduleView, error) {
	return readings.ScheduleView{}, nil
}

type stubScripture struct {
	passage scripture.Passage
	err     error
}

func (s *stubScripture) Passage(ctx context.Context, ref string) (scripture.Passage, error) {
	return s.passage, s.err
}

func (s *stubScripture) Summary(ctx context.Context, ref string, maxLen int) string {
	return ""
}

func (s *stubScripture) ExternalURL(ref string) string {
	return "https://reader.test/" + ref
}

type stubDigests struct {
	batch digest.Batch
}

func (s *stubDigests) Compose(ctx context.Context) digest.Batch {
	return s.batch
}

func (s *stubDigests) Run(ctx context.Context) (digest.Batch, error) {
	return s.batch, nil
}

func (s *stubDigests) Latest(ctx context.Context) (digest.Batch, error) {
	return s.batch, nil
}
