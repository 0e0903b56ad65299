package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// StaticServer starts an HTTP server answering every request with the given
// status and body. The server is closed when the test finishes.
func StaticServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if body != "" {
			_, _ = w.Write([]byte(body))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// RateLimitedServer starts an HTTP server answering every request with 429
// and the given Retry-After header value.
func RateLimitedServer(t *testing.T, retryAfter string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", retryAfter)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)
	return srv
}
