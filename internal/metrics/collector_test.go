package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Records(t *testing.T) {
	c := NewCollector("owl")
	c.RecordHTTPRequest(http.MethodGet, "/health", 200, time.Millisecond)
	c.RecordSynthesis("local", nil, time.Second)
	c.RecordSynthesis("local", errors.New("boom"), time.Second)
	c.RecordCache(true)
	c.RecordCache(false)
	c.RecordCache(false)
	c.RecordAnnouncement(nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.synthesisTotal.WithLabelValues("local", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.synthesisTotal.WithLabelValues("local", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.cacheHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.cacheMisses))

	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(w.Result().Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `owl_http_requests_total{method="GET",path="/health",status="200"} 1`)
	assert.Contains(t, string(body), "owl_announcements_total")
}

func TestCollector_Nil(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.RecordHTTPRequest(http.MethodGet, "/", 200, 0)
		c.RecordSynthesis("local", nil, 0)
		c.RecordCache(true)
		c.RecordAnnouncement(nil)
	})
}

func TestNewCollector_Twice(t *testing.T) {
	assert.NotPanics(t, func() {
		NewCollector("owl")
		NewCollector("owl")
	})
}
