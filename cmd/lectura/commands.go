package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yanqian/comunidad/internal/domain/readings"
	"github.com/yanqian/comunidad/internal/domain/scripture"
	"github.com/yanqian/comunidad/internal/infra/readingrepo"
)

var errPostgresRequired = errors.New("readings.postgres.dsn is not configured")

// TodayCmd prints the reading scheduled for a day.
type TodayCmd struct {
	Date string `name:"date" short:"d" help:"Day to look up (YYYY-MM-DD, default today)"`
}

func (c *TodayCmd) Run(rt *env) error {
	ctx := context.Background()
	date := rt.now().In(rt.location)
	if c.Date != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, c.Date, rt.location)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", c.Date, err)
		}
		date = parsed
	}
	view, err := rt.readings.ForDate(ctx, date)
	if err != nil {
		return err
	}
	fmt.Fprintln(rt.out, view.DisplayDate)
	fmt.Fprintln(rt.out, view.Reading)
	if view.HeldOver {
		fmt.Fprintf(rt.out, "(programada el %02d-%02d)\n", view.ScheduledOn.Day, view.ScheduledOn.Month)
	}
	fmt.Fprintln(rt.out)
	fmt.Fprintln(rt.out, view.Summary)
	return nil
}

// PassageCmd prints the text of a reference.
type PassageCmd struct {
	Reference []string `arg:"" required:"" help:"Reference, e.g. Juan 3:16-18"`
}

func (c *PassageCmd) Run(rt *env) error {
	ref := strings.Join(c.Reference, " ")
	passage, err := rt.scripture.Passage(context.Background(), ref)
	if err != nil {
		if !scripture.Soft(err) {
			return err
		}
		fmt.Fprintf(rt.out, "%s no está disponible localmente.\n", ref)
		fmt.Fprintln(rt.out, rt.scripture.ExternalURL(ref))
		return nil
	}
	fmt.Fprintf(rt.out, "%s (%s)\n\n", passage.Reference, passage.Translation)
	fmt.Fprintln(rt.out, passage.Text)
	return nil
}

// LinkCmd prints the external reader URL.
type LinkCmd struct {
	Reference []string `arg:"" required:"" help:"Reference, e.g. Tobías 1"`
}

func (c *LinkCmd) Run(rt *env) error {
	fmt.Fprintln(rt.out, rt.scripture.ExternalURL(strings.Join(c.Reference, " ")))
	return nil
}

// DigestCmd prints the digests composed for today without publishing them.
type DigestCmd struct{}

func (c *DigestCmd) Run(rt *env) error {
	batch := rt.digests.Compose(context.Background())
	if len(batch.Digests) == 0 {
		fmt.Fprintln(rt.out, "Sin notificaciones para hoy.")
		return nil
	}
	for i, d := range batch.Digests {
		if i > 0 {
			fmt.Fprintln(rt.out)
		}
		fmt.Fprintf(rt.out, "%s  [%s]\n", d.Title, d.DeliverAt.In(rt.location).Format("15:04"))
		fmt.Fprintln(rt.out, d.Body)
	}
	return nil
}

// TokenCmd issues an admin bearer token.
type TokenCmd struct {
	Subject string        `name:"subject" short:"s" default:"admin" help:"Token subject"`
	TTL     time.Duration `name:"ttl" help:"Token lifetime (default admin.tokenTtl)"`
}

func (c *TokenCmd) Run(rt *env) error {
	issued, err := rt.auth.IssueToken(context.Background(), c.Subject, c.TTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(rt.out, issued.Token)
	fmt.Fprintf(rt.out, "expires %s\n", issued.ExpiresAt.Format(time.RFC3339))
	return nil
}

// ScheduleCmd groups reading plan maintenance commands.
type ScheduleCmd struct {
	Import ScheduleImportCmd `cmd:"" help:"Store the bundled reading plan in Postgres"`
}

// ScheduleImportCmd writes the bundled plan for a year into Postgres.
type ScheduleImportCmd struct {
	Year int `name:"year" help:"Plan year (default readings.year)"`
}

func (c *ScheduleImportCmd) Run(rt *env) error {
	year := c.Year
	if year == 0 {
		year = rt.cfg.Readings.Year
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entries, err := readingrepo.NewStaticRepository().Load(ctx, year)
	if err != nil {
		if errors.Is(err, readings.ErrNoSchedule) {
			return fmt.Errorf("no bundled plan for %d", year)
		}
		return err
	}
	repo, closeRepo, err := rt.openScheduleRepository(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()
	if err := repo.Migrate(ctx); err != nil {
		return err
	}
	if err := repo.Save(ctx, year, entries); err != nil {
		return err
	}
	fmt.Fprintf(rt.out, "imported %d readings for %d\n", len(entries), year)
	return nil
}
