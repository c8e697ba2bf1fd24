package readingrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/comunidad/internal/domain/readings"
)

func TestStaticRepositoryBundledPlan(t *testing.T) {
	repo := NewStaticRepository()

	plan, err := repo.Load(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, plan, len(readings.Schedule2025))
	require.Equal(t, readings.DailyReading{Month: 1, Day: 1, Reading: "1 Macabeos 1"}, plan[0])

	plan[0].Reading = "changed"
	again, err := repo.Load(context.Background(), 2025)
	require.NoError(t, err)
	require.Equal(t, "1 Macabeos 1", again[0].Reading)

	_, err = repo.Load(context.Background(), 2030)
	require.ErrorIs(t, err, readings.ErrNoSchedule)
}

func TestStaticRepositorySave(t *testing.T) {
	repo := NewStaticRepository()
	require.NoError(t, repo.Save(context.Background(), 2026, []readings.DailyReading{{Month: 1, Day: 1, Reading: "Mateo 1"}}))

	plan, err := repo.Load(context.Background(), 2026)
	require.NoError(t, err)
	require.Equal(t, "Mateo 1", plan[0].Reading)
}

func TestMigrationsEmbedded(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.Equal(t, []string{"001_daily_readings.sql"}, names)

	contents, err := migrationFiles.ReadFile("migrations/" + names[0])
	require.NoError(t, err)
	require.Contains(t, string(contents), "CREATE TABLE IF NOT EXISTS daily_readings")
}
