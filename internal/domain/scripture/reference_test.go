package scripture

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		in   string
		want Reference
	}{
		{"Juan 3:16-18", Reference{Abbrev: "jn", Chapter: 3, VerseStart: 16, VerseEnd: 18}},
		{"Juan 3", Reference{Abbrev: "jn", Chapter: 3, VerseStart: 1, VerseEnd: EndOfChapter}},
		{"Juan 3:16", Reference{Abbrev: "jn", Chapter: 3, VerseStart: 16, VerseEnd: 16}},
		{"1 Juan 2:5", Reference{Abbrev: "1jn", Chapter: 2, VerseStart: 5, VerseEnd: 5}},
		{"Juan 6:01-38", Reference{Abbrev: "jn", Chapter: 6, VerseStart: 1, VerseEnd: 38}},
		{"Gálatas 1", Reference{Abbrev: "gl", Chapter: 1, VerseStart: 1, VerseEnd: EndOfChapter}},
		{"Filemón 1", Reference{Abbrev: "flm", Chapter: 1, VerseStart: 1, VerseEnd: EndOfChapter}},
		// a chapter range is read as its first chapter
		{"Apocalipsis 5-6", Reference{Abbrev: "ap", Chapter: 5, VerseStart: 1, VerseEnd: EndOfChapter}},
	}

	for _, tc := range tests {
		got, ok := ParseReference(tc.in)
		require.True(t, ok, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseReferenceRejects(t *testing.T) {
	for _, in := range []string{"", "Juan", "3:16", "Koran 2:1", "Cantar de los Cantares 2"} {
		_, ok := ParseReference(in)
		require.False(t, ok, in)
	}
}

func TestReferenceString(t *testing.T) {
	require.Equal(t, "jn 3", Reference{Abbrev: "jn", Chapter: 3, VerseStart: 1, VerseEnd: EndOfChapter}.String())
	require.Equal(t, "jn 3:16", Reference{Abbrev: "jn", Chapter: 3, VerseStart: 16, VerseEnd: 16}.String())
	require.Equal(t, "jn 3:16-18", Reference{Abbrev: "jn", Chapter: 3, VerseStart: 16, VerseEnd: 18}.String())
}
