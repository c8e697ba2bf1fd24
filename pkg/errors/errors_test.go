package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap("feed_error", "fetch failed", cause)

	require.EqualError(t, err, "fetch failed: boom")
	require.ErrorIs(t, err, cause)
	require.True(t, IsCode(err, "feed_error"))
	require.False(t, IsCode(err, "other"))
}

func TestCodeOfWrappedError(t *testing.T) {
	err := fmt.Errorf("handler: %w", Wrap("invalid_input", "bad date", nil))

	require.Equal(t, "invalid_input", CodeOf(err))
	require.Equal(t, "", CodeOf(errors.New("plain")))
	require.EqualError(t, Wrap("x", "only message", nil), "only message")
}
