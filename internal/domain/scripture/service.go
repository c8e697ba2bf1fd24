package scripture

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/unicode/norm"

	apperrors "github.com/yanqian/comunidad/pkg/errors"
	"github.com/yanqian/comunidad/pkg/metrics"
)

// deuterocanonical lists name fragments of books absent from the translation.
var deuterocanonical = []string{
	"macabeos", "tobías", "tobias", "judit", "baruc",
	"sabiduría", "sabiduria", "eclesiástico", "eclesiastico", "sirácida",
}

// Service exposes passage lookup over the cached translation document.
type Service interface {
	Passage(ctx context.Context, ref string) (Passage, error)
	Summary(ctx context.Context, ref string, maxLen int) string
	ExternalURL(ref string) string
}

// DocumentSource loads the full translation document.
type DocumentSource interface {
	Load(ctx context.Context) (Bible, error)
}

type service struct {
	cfg    Config
	source DocumentSource
	logger *slog.Logger

	group  singleflight.Group
	mu     sync.RWMutex
	bible  Bible
	loaded bool
}

// NewService wires up the scripture domain.
func NewService(cfg Config, source DocumentSource, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg.withDefaults(),
		source: source,
		logger: logger.With("component", "scripture.service"),
	}
}

func (s *service) Passage(ctx context.Context, ref string) (Passage, error) {
	ref = strings.TrimSpace(ref)
	if IsDeuterocanonical(ref) {
		metrics.ObserveScripture("unsupported")
		s.logger.Info("deuterocanonical reference requested", "reference", ref)
		return Passage{}, apperrors.Wrap(CodeUnsupported, "book is not part of the bundled translation", ErrUnsupported)
	}

	bible, err := s.document(ctx)
	if err != nil {
		metrics.ObserveScripture("unavailable")
		return Passage{}, apperrors.Wrap(CodeUnavailable, "translation could not be loaded", fmt.Errorf("%w: %w", ErrUnavailable, err))
	}

	parsed, ok := ParseReference(ref)
	if !ok {
		metrics.ObserveScripture("unresolved")
		s.logger.Warn("reference could not be parsed", "reference", ref)
		return Passage{}, apperrors.Wrap(CodeUnresolved, "reference could not be parsed", ErrUnresolved)
	}

	text, err := extract(bible, parsed)
	if err != nil {
		metrics.ObserveScripture("unresolved")
		s.logger.Warn("reference out of range", "reference", ref, "parsed", parsed.String(), "error", err)
		return Passage{}, err
	}

	metrics.ObserveScripture("ok")
	return Passage{
		Reference:   ref,
		Parsed:      parsed,
		Text:        text,
		Translation: s.cfg.Translation,
		ExternalURL: s.ExternalURL(ref),
	}, nil
}

func (s *service) Summary(ctx context.Context, ref string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = s.cfg.SummaryLength
	}
	passage, err := s.Passage(ctx, ref)
	if err != nil || passage.Text == "" {
		return "Lectura: " + ref
	}
	return Truncate(strings.TrimSpace(passage.Text), maxLen)
}

func (s *service) ExternalURL(ref string) string {
	return BuildExternalURL(s.cfg.ExternalBaseURL, s.cfg.ExternalVersion, ref)
}

// document returns the cached translation, loading it once. Concurrent first
// callers share a single load and failed loads are retried on the next call.
func (s *service) document(ctx context.Context) (Bible, error) {
	s.mu.RLock()
	if s.loaded {
		bible := s.bible
		s.mu.RUnlock()
		return bible, nil
	}
	s.mu.RUnlock()

	result, err, _ := s.group.Do("bible", func() (any, error) {
		s.mu.RLock()
		if s.loaded {
			bible := s.bible
			s.mu.RUnlock()
			return bible, nil
		}
		s.mu.RUnlock()

		loadCtx := context.WithoutCancel(ctx)
		if s.cfg.LoadTimeout > 0 {
			var cancel context.CancelFunc
			loadCtx, cancel = context.WithTimeout(loadCtx, s.cfg.LoadTimeout)
			defer cancel()
		}

		start := time.Now()
		bible, err := s.source.Load(loadCtx)
		if err != nil {
			s.logger.Error("translation load failed", "error", err)
			return nil, err
		}

		s.mu.Lock()
		s.bible = bible
		s.loaded = true
		s.mu.Unlock()
		s.logger.Info("translation loaded", "books", len(bible), "duration", time.Since(start))
		return bible, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(Bible), nil
}

func extract(bible Bible, ref Reference) (string, error) {
	book, ok := bible.Find(ref.Abbrev)
	if !ok {
		return "", apperrors.Wrap(CodeUnresolved, "book not found in translation", ErrUnresolved)
	}

	chapterIndex := ref.Chapter - 1
	if chapterIndex < 0 || chapterIndex >= len(book.Chapters) {
		return "", apperrors.Wrap(CodeUnresolved, "chapter out of range", ErrUnresolved)
	}
	verses := book.Chapters[chapterIndex]

	start := ref.VerseStart - 1
	if start < 0 || start >= len(verses) {
		return "", apperrors.Wrap(CodeUnresolved, "verse out of range", ErrUnresolved)
	}

	end := ref.VerseEnd
	if end == EndOfChapter || end > len(verses) {
		end = len(verses)
	}
	if end <= start {
		return "", nil
	}
	return strings.Join(verses[start:end], " "), nil
}

// IsDeuterocanonical reports whether ref names a book the translation lacks.
func IsDeuterocanonical(ref string) bool {
	lower := strings.ToLower(norm.NFC.String(ref))
	for _, name := range deuterocanonical {
		if strings.Contains(lower, name) {
			return true
		}
	}
	return false
}

// Truncate cuts text to maxLen characters and appends "..." when it is longer.
// No attempt is made to break on word boundaries.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen < 0 {
		maxLen = 0
	}
	return string(runes[:maxLen]) + "..."
}

// BuildExternalURL points at the web reader for refs the service cannot render.
func BuildExternalURL(baseURL, version, ref string) string {
	query := "search=" + strings.ReplaceAll(url.QueryEscape(ref), "+", "%20") +
		"&version=" + url.QueryEscape(version)
	if strings.Contains(baseURL, "?") {
		return baseURL + "&" + query
	}
	return baseURL + "?" + query
}
