// Package csvline parses the loosely quoted CSV exported by published
// spreadsheets. It is deliberately lenient: a double quote only toggles the
// quoted state, so an odd number of quotes leaves the rest of the line quoted.
package csvline

import (
	"regexp"
	"strings"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// Row is one data line together with its position after the header.
type Row struct {
	Index  int
	Fields []string
}

// ParseLine splits a single line on commas that are not inside quotes.
// Quote characters are dropped and every field is trimmed.
func ParseLine(line string) []string {
	fields := make([]string, 0, 4)
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return append(fields, strings.TrimSpace(current.String()))
}

// Lines splits text on line breaks and drops blank lines.
func Lines(text string) []string {
	raw := lineBreak.Split(text, -1)
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Rows parses every non-blank line after the header. The boolean is false
// when the document holds no data rows.
func Rows(text string) ([]Row, bool) {
	lines := Lines(text)
	if len(lines) < 2 {
		return nil, false
	}
	rows := make([]Row, 0, len(lines)-1)
	for i := 1; i < len(lines); i++ {
		rows = append(rows, Row{Index: i, Fields: ParseLine(lines[i])})
	}
	return rows, true
}
