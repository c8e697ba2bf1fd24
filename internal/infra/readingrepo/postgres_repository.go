package readingrepo

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/comunidad/internal/domain/readings"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// PostgresRepository implements readings.ScheduleRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Migrate applies the embedded schema. Statements are idempotent.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	names, err := migrationNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		contents, err := migrationFiles.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := r.pool.Exec(ctx, string(contents)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}

// Load implements readings.ScheduleRepository.
func (r *PostgresRepository) Load(ctx context.Context, year int) ([]readings.DailyReading, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT month, day, reading
		FROM daily_readings
		WHERE year = $1
		ORDER BY month, day
	`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []readings.DailyReading
	for rows.Next() {
		var entry readings.DailyReading
		if err := rows.Scan(&entry.Month, &entry.Day, &entry.Reading); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, readings.ErrNoSchedule
	}
	return out, nil
}

// Save replaces the plan of a year in one transaction.
func (r *PostgresRepository) Save(ctx context.Context, year int, entries []readings.DailyReading) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin schedule import: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM daily_readings WHERE year = $1`, year); err != nil {
		return fmt.Errorf("clear schedule %d: %w", year, err)
	}
	batch := &pgx.Batch{}
	for _, entry := range entries {
		// later duplicates overwrite earlier ones, matching Calendar.Resolve
		batch.Queue(`
			INSERT INTO daily_readings (year, month, day, reading)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (year, month, day) DO UPDATE SET reading = EXCLUDED.reading, updated_at = NOW()
		`, year, entry.Month, entry.Day, entry.Reading)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert schedule %d: %w", year, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit schedule %d: %w", year, err)
	}
	return nil
}

func migrationNames() ([]string, error) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

var _ readings.ScheduleRepository = (*PostgresRepository)(nil)
