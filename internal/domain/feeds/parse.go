package feeds

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/comunidad/pkg/csvline"
	"github.com/yanqian/comunidad/pkg/util"
)

const (
	activityColumns    = 4
	celebrationColumns = 3
	communityColumns   = 4

	defaultActivityTitle    = "Sin título"
	defaultCelebrationLabel = "Celebración"
	defaultMemberName       = "Sin nombre"

	whatsAppBaseURL = "https://wa.me/"
)

func parseActivities(rows []csvline.Row, now time.Time) []Activity {
	out := make([]Activity, 0, len(rows))
	for _, row := range rows {
		if len(row.Fields) < activityColumns {
			continue
		}
		title, dateStr, at, location := row.Fields[0], row.Fields[1], row.Fields[2], row.Fields[3]
		if title == "" {
			title = defaultActivityTitle
		}
		date := parseActivityDate(dateStr, now)
		out = append(out, Activity{
			ID:          fmt.Sprintf("activity-%d", row.Index),
			Title:       title,
			Date:        date,
			DisplayDate: util.FormatShortES(date),
			Time:        at,
			Location:    location,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// parseActivityDate reads DD-MM-YYYY in now's location. Anything else falls
// back to the download day so the row is kept.
func parseActivityDate(value string, now time.Time) time.Time {
	parts := strings.Split(strings.TrimSpace(value), "-")
	if len(parts) != 3 {
		return util.StartOfDay(now)
	}
	day, errD := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, errY := strconv.Atoi(strings.TrimSpace(parts[2]))
	if errD != nil || errM != nil || errY != nil {
		return util.StartOfDay(now)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
}

func parseCelebrations(rows []csvline.Row, _ time.Time) []Celebration {
	out := make([]Celebration, 0, len(rows))
	for _, row := range rows {
		if len(row.Fields) < celebrationColumns {
			continue
		}
		date, category, name := row.Fields[0], row.Fields[1], row.Fields[2]
		if date == "" || name == "" {
			continue
		}
		if category == "" {
			category = defaultCelebrationLabel
		}
		out = append(out, Celebration{
			ID:       fmt.Sprintf("cel-%d", row.Index),
			Date:     date,
			Category: category,
			Name:     name,
		})
	}
	return out
}

func parseCommunity(rows []csvline.Row, _ time.Time) []CommunityCategory {
	var (
		order  []string
		groups = make(map[string][]CommunityMember)
	)
	for _, row := range rows {
		if len(row.Fields) < communityColumns {
			continue
		}
		category, name, role, contact := row.Fields[0], row.Fields[1], row.Fields[2], row.Fields[3]
		if category == "" {
			continue
		}
		if name == "" {
			name = defaultMemberName
		}
		if _, seen := groups[category]; !seen {
			order = append(order, category)
		}
		groups[category] = append(groups[category], CommunityMember{
			ID:          fmt.Sprintf("member-%d", row.Index),
			Name:        name,
			Role:        role,
			Contact:     contact,
			WhatsAppURL: WhatsAppURL(contact),
		})
	}

	out := make([]CommunityCategory, 0, len(order))
	for i, title := range order {
		out = append(out, CommunityCategory{
			ID:      fmt.Sprintf("cat-%d", i),
			Title:   title,
			Members: groups[title],
		})
	}
	return out
}

// WhatsAppURL builds a wa.me link from a phone number, keeping digits and '+'.
// It returns "" when the contact has no digits.
func WhatsAppURL(contact string) string {
	var b strings.Builder
	digits := 0
	for _, r := range contact {
		switch {
		case r >= '0' && r <= '9':
			digits++
			b.WriteRune(r)
		case r == '+':
			b.WriteRune(r)
		}
	}
	if digits == 0 {
		return ""
	}
	return whatsAppBaseURL + b.String()
}

// dayMonthKey renders t as the "DD-MM" form used by the celebrations sheet.
func dayMonthKey(t time.Time) string {
	return t.Format("02-01")
}

// normalizeDayMonth pads "5-3" to "05-03" so hand-typed cells still match.
func normalizeDayMonth(value string) string {
	parts := strings.Split(strings.TrimSpace(value), "-")
	if len(parts) != 2 {
		return strings.TrimSpace(value)
	}
	day, errD := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errD != nil || errM != nil {
		return strings.TrimSpace(value)
	}
	return fmt.Sprintf("%02d-%02d", day, month)
}
