package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/comunidad/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// statusByCode maps domain error codes to transport statuses.
var statusByCode = map[string]int{
	"invalid_input":     http.StatusBadRequest,
	"reading_not_found": http.StatusNotFound,
	"invalid_token":     http.StatusUnauthorized,
	"forbidden":         http.StatusForbidden,
	"auth_disabled":     http.StatusServiceUnavailable,
}

// fromDomainError translates an AppError. Unknown codes become a 500 carrying
// fallbackCode so clients still see which operation failed.
func fromDomainError(err error, fallbackCode string) *HTTPError {
	code := apperrors.CodeOf(err)
	if status, ok := statusByCode[code]; ok {
		return NewHTTPError(status, code, errMessage(err), err)
	}
	return NewHTTPError(http.StatusInternalServerError, fallbackCode, errMessage(err), err)
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
