package auth

import "errors"

// ErrDisabled indicates no signing secret is configured.
var ErrDisabled = errors.New("admin auth disabled")
