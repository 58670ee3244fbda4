// Package testutil provides a configurable mock GitHub API server for
// tests.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
)

// MockResponse defines the behavior of a mock endpoint.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
}

// MockGitHub is a configurable fake GitHub API for testing.
type MockGitHub struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]http.HandlerFunc

	// Tracking
	RequestCount      int
	ConditionalCount  int
	LastRequestHeader http.Header
}

// NewMockGitHub creates a mock server. Paths without a registered
// handler get a 404 with GitHub's error shape.
func NewMockGitHub() *MockGitHub {
	mock := &MockGitHub{
		handlers: make(map[string]http.HandlerFunc),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.LastRequestHeader = r.Header.Clone()
		if r.Header.Get("If-None-Match") != "" || r.Header.Get("If-Modified-Since") != "" {
			mock.ConditionalCount++
		}
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockGitHub) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockGitHub) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockGitHub) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.ConditionalCount = 0
	m.LastRequestHeader = nil
}

// SetHandler sets a custom handler for a path.
func (m *MockGitHub) SetHandler(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a canned response for a path.
func (m *MockGitHub) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
		}
		writeQuotaHeaders(w, 4999)
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetPagedResponse serves a different body per "page" query parameter
// and advertises rel="next" on every page but the last.
func (m *MockGitHub) SetPagedResponse(path string, pages []string) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		writeQuotaHeaders(w, 4999)

		if page > len(pages) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("[]"))
			return
		}

		if page < len(pages) {
			w.Header().Set("Link", NextLink(r.URL.Path, page+1))
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(pages[page-1]))
	})
}

// GetRequestCount returns the number of requests served.
func (m *MockGitHub) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetConditionalCount returns the number of conditional requests seen.
func (m *MockGitHub) GetConditionalCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ConditionalCount
}

func (m *MockGitHub) defaultHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	writeQuotaHeaders(w, 4999)
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"message": "Not Found"}`))
}

// writeQuotaHeaders fills in default quota headers without clobbering
// values a canned response already set.
func writeQuotaHeaders(w http.ResponseWriter, remaining int) {
	h := w.Header()
	if h.Get("X-RateLimit-Remaining") != "" {
		return
	}
	h.Set("X-RateLimit-Limit", "5000")
	h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	h.Set("X-RateLimit-Reset", "1893456000")
}

// NextLink builds a GitHub-style Link header advertising a next page.
func NextLink(path string, nextPage int) string {
	return fmt.Sprintf(`<https://api.github.com%s?page=%d>; rel="next", <https://api.github.com%s?page=99>; rel="last"`,
		path, nextPage, path)
}

// NewRateLimitedResponse creates a 403 quota-exhausted response.
func NewRateLimitedResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusForbidden,
		Body:       `{"message": "API rate limit exceeded"}`,
		Headers: map[string]string{
			"X-RateLimit-Limit":     "5000",
			"X-RateLimit-Remaining": "0",
			"X-RateLimit-Reset":     "1893456000",
		},
	}
}

// NewServerErrorResponse creates a 500 response.
func NewServerErrorResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"message": "Internal server error"}`,
	}
}
