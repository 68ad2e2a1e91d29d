package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ObserveUpstream(t *testing.T) {
	m := NewManager()

	m.ObserveUpstream("repos.contents", 200, 10*time.Millisecond)
	m.ObserveUpstream("repos.contents", 200, 20*time.Millisecond)
	m.ObserveUpstream("repos.contents", 404, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("repos.contents", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("repos.contents", "404")))
}

func TestManager_Gauges(t *testing.T) {
	m := NewManager(WithNamespace("test"))

	m.ObserveRateLimit(4999)
	m.RepositoriesScored("community", 3)
	m.EnrichmentAbsent("contents.root")

	assert.Equal(t, 4999.0, testutil.ToFloat64(m.rateLimitRemains))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.reposScored.WithLabelValues("community")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.enrichmentAbsence.WithLabelValues("contents.root")))
}

func TestManager_Handler(t *testing.T) {
	m := NewManager()
	m.ObserveHTTP("/community", 200, time.Millisecond)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "github_signals_http_requests_total")
}
