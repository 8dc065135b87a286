package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareRecordsRequests(t *testing.T) {
	m := New()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	rr := httptest.NewRecorder()
	m.Middleware(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/todos", nil))
	require.Equal(t, http.StatusCreated, rr.Code)

	// The scrape output must contain the counter with the recorded labels
	scrape := httptest.NewRecorder()
	m.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, scrape.Code)
	assert.Contains(t, scrape.Body.String(), `todo_http_requests_total{method="POST",route="/todos",status="201"} 1`)
	assert.Contains(t, scrape.Body.String(), "todo_http_request_duration_seconds")
}

func TestSeparateInstancesDoNotCollide(t *testing.T) {
	// Each instance owns its registry, so constructing two must not panic
	// with duplicate collector registration.
	assert.NotPanics(t, func() {
		_ = New()
		_ = New()
	})
}
