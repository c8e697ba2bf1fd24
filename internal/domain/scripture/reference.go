package scripture

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// EndOfChapter marks a reference that runs to the last verse of its chapter.
const EndOfChapter = 999

var referencePattern = regexp.MustCompile(`^((?:\d\s)?[a-zA-ZáéíóúÁÉÍÓÚñÑ\.]+)\s+(\d+)(?::(\d+)(?:-(\d+))?)?`)

// Reference is a parsed "Book chapter:start-end" citation.
type Reference struct {
	Abbrev     string `json:"abbrev"`
	Chapter    int    `json:"chapter"`
	VerseStart int    `json:"verseStart"`
	VerseEnd   int    `json:"verseEnd"`
}

// WholeChapter reports whether the reference names a chapter without verses.
func (r Reference) WholeChapter() bool {
	return r.VerseStart == 1 && r.VerseEnd == EndOfChapter
}

func (r Reference) String() string {
	switch {
	case r.WholeChapter():
		return fmt.Sprintf("%s %d", r.Abbrev, r.Chapter)
	case r.VerseStart == r.VerseEnd:
		return fmt.Sprintf("%s %d:%d", r.Abbrev, r.Chapter, r.VerseStart)
	default:
		return fmt.Sprintf("%s %d:%d-%d", r.Abbrev, r.Chapter, r.VerseStart, r.VerseEnd)
	}
}

// ParseReference extracts book, chapter and verse range from text such as
// "Juan 3:16-18". Anything after the recognised prefix is ignored and verse
// numbers are not checked against the text.
func ParseReference(ref string) (Reference, bool) {
	m := referencePattern.FindStringSubmatch(strings.TrimSpace(ref))
	if m == nil {
		return Reference{}, false
	}

	abbrev, ok := BookCode(m[1])
	if !ok {
		return Reference{}, false
	}

	chapter, err := strconv.Atoi(m[2])
	if err != nil {
		return Reference{}, false
	}

	out := Reference{Abbrev: abbrev, Chapter: chapter, VerseStart: 1, VerseEnd: EndOfChapter}
	if m[3] != "" {
		start, err := strconv.Atoi(m[3])
		if err != nil {
			return Reference{}, false
		}
		out.VerseStart = start
		out.VerseEnd = start
	}
	if m[4] != "" {
		end, err := strconv.Atoi(m[4])
		if err != nil {
			return Reference{}, false
		}
		out.VerseEnd = end
	}
	return out, true
}
