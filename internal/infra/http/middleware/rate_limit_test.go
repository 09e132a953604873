package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit int) (*RateLimiter, *time.Time) {
	t.Helper()
	done := make(chan struct{})
	t.Cleanup(func() { close(done) })

	clock := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(limit, time.Minute, done)
	rl.now = func() time.Time { return clock }
	return rl, &clock
}

func TestRateLimiterAllow(t *testing.T) {
	rl, clock := newTestLimiter(t, 2)

	assert.True(t, rl.Allow("203.0.113.7"))
	assert.True(t, rl.Allow("203.0.113.7"))
	assert.False(t, rl.Allow("203.0.113.7"))
	assert.True(t, rl.Allow("198.51.100.1"), "keys are independent")

	*clock = clock.Add(61 * time.Second)
	assert.True(t, rl.Allow("203.0.113.7"), "window resets")
}

func TestRateLimiterSweep(t *testing.T) {
	rl, clock := newTestLimiter(t, 5)
	rl.Allow("203.0.113.7")

	*clock = clock.Add(3 * time.Minute)
	rl.sweep()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.visitors)
}

func TestRateLimiterHandler(t *testing.T) {
	rl, _ := newTestLimiter(t, 1)
	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/send-email", nil)
		req.RemoteAddr = "203.0.113.7:52114"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, call().Code)

	rr := call()
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "60", rr.Header().Get("Retry-After"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Too many requests. Please try again later.", body["error"])
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", clientIP(req))

	req.RemoteAddr = "10.1.2.3"
	assert.Equal(t, "10.1.2.3", clientIP(req))
}
