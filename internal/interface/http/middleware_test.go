package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/comunidad/internal/infra/config"
)

func TestIPRateLimiterRefills(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(config.RateLimitConfig{RequestsPerMinute: 60, Burst: 2}, func() time.Time { return now })

	_, ok := limiter.allow("10.0.0.1")
	require.True(t, ok)
	_, ok = limiter.allow("10.0.0.1")
	require.True(t, ok)
	wait, ok := limiter.allow("10.0.0.1")
	require.False(t, ok)
	require.InDelta(t, 1.0, wait.Seconds(), 0.01)

	_, ok = limiter.allow("10.0.0.2")
	require.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = limiter.allow("10.0.0.1")
	require.True(t, ok)
}

func TestIPRateLimiterDropsIdleVisitors(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(config.RateLimitConfig{RequestsPerMinute: 1, Burst: 1}, func() time.Time { return now })

	_, _ = limiter.allow("10.0.0.1")
	now = now.Add(10 * time.Minute)
	_, _ = limiter.allow("10.0.0.2")
	require.Len(t, limiter.visitors, 1)
}

func TestRequestIDHeader(t *testing.T) {
	server := newRouterUnderTest(t, routerDeps{})

	recorder := performRequest(http.MethodGet, "/healthz", "", server)
	require.Len(t, recorder.Header().Get(requestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	recorder = httptest.NewRecorder()
	server.Handler.ServeHTTP(recorder, req)
	require.Equal(t, "abc-123", recorder.Header().Get(requestIDHeader))
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("Bearer abc")
	require.True(t, ok)
	require.Equal(t, "abc", token)

	_, ok = bearerToken("Basic abc")
	require.False(t, ok)
	_, ok = bearerToken("Bearer ")
	require.False(t, ok)
}
