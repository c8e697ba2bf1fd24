package scripture

import "errors"

var (
	// ErrUnsupported is returned for books missing from the translation.
	ErrUnsupported = errors.New("scripture: book not in translation")
	// ErrUnresolved is returned when a reference cannot be located in the text.
	ErrUnresolved = errors.New("scripture: reference not resolved")
	// ErrUnavailable is returned when the translation document cannot be loaded.
	ErrUnavailable = errors.New("scripture: translation unavailable")
)

// Error codes carried by the wrapped AppError.
const (
	CodeUnsupported = "scripture_unsupported"
	CodeUnresolved  = "scripture_unresolved"
	CodeUnavailable = "scripture_unavailable"
)

// Soft reports whether err means "offer the external reader instead".
func Soft(err error) bool {
	return errors.Is(err, ErrUnsupported) || errors.Is(err, ErrUnresolved) || errors.Is(err, ErrUnavailable)
}
