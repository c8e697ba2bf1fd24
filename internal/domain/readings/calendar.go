package readings

// Calendar resolves dates against an immutable reading plan.
type Calendar struct {
	entries []DailyReading
}

// NewCalendar copies entries so later mutation of the slice has no effect.
func NewCalendar(entries []DailyReading) *Calendar {
	cp := make([]DailyReading, len(entries))
	copy(cp, entries)
	return &Calendar{entries: cp}
}

// Resolve returns the reading scheduled on month/day. When the day has no
// entry, the latest reading strictly before it stays in effect. Dates before
// the first entry resolve to nothing; the plan does not wrap into the
// previous year.
func (c *Calendar) Resolve(month, day int) (DailyReading, bool) {
	var (
		exact    DailyReading
		hasExact bool
		prior    DailyReading
		hasPrior bool
	)
	for _, entry := range c.entries {
		if entry.Month == month && entry.Day == day {
			// duplicates: last definition wins
			exact, hasExact = entry, true
			continue
		}
		if !entry.before(month, day) {
			continue
		}
		if !hasPrior || !entry.before(prior.Month, prior.Day) {
			prior, hasPrior = entry, true
		}
	}
	if hasExact {
		return exact, true
	}
	return prior, hasPrior
}

// Entries returns a copy of the plan in its declared order.
func (c *Calendar) Entries() []DailyReading {
	cp := make([]DailyReading, len(c.entries))
	copy(cp, c.entries)
	return cp
}

// Len reports the number of scheduled readings.
func (c *Calendar) Len() int {
	return len(c.entries)
}
