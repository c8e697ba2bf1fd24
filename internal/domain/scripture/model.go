package scripture

import "time"

// Book is one entry of the translation document.
type Book struct {
	Name     string     `json:"name"`
	Abbrev   string     `json:"abbrev"`
	Chapters [][]string `json:"chapters"`
}

// Bible is the whole translation, books in canonical order.
type Bible []Book

// Find returns the book with the given code using a linear scan.
func (b Bible) Find(abbrev string) (Book, bool) {
	for _, book := range b {
		if book.Abbrev == abbrev {
			return book, true
		}
	}
	return Book{}, false
}

// Passage is the rendered text of a reference.
type Passage struct {
	Reference   string    `json:"reference"`
	Parsed      Reference `json:"parsed"`
	Text        string    `json:"text"`
	Translation string    `json:"translation"`
	ExternalURL string    `json:"externalUrl"`
}

// Config holds runtime knobs for the scripture service.
type Config struct {
	Translation     string
	ExternalBaseURL string
	ExternalVersion string
	SummaryLength   int
	LoadTimeout     time.Duration
}

const (
	defaultTranslation     = "Reina Valera 1960 (Español)"
	defaultExternalBaseURL = "https://www.biblegateway.com/passage/"
	defaultExternalVersion = "DHH"
	defaultSummaryLength   = 200
)

func (c Config) withDefaults() Config {
	if c.Translation == "" {
		c.Translation = defaultTranslation
	}
	if c.ExternalBaseURL == "" {
		c.ExternalBaseURL = defaultExternalBaseURL
	}
	if c.ExternalVersion == "" {
		c.ExternalVersion = defaultExternalVersion
	}
	if c.SummaryLength <= 0 {
		c.SummaryLength = defaultSummaryLength
	}
	return c
}
