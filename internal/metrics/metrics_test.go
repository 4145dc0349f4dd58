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

func TestObserveResolution(t *testing.T) {
	m := New()

	m.ObserveResolution("a b c", true)
	m.ObserveResolution("a", true)
	m.ObserveResolution("", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.resolutions.WithLabelValues("present")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolutions.WithLabelValues("absent")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.tokens))
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("POST", "/resolve", 200, 3*time.Millisecond)
	m.ObserveRequest("POST", "/resolve", 400, time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(m.duration, "clsx_http_request_duration_seconds"))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveResolution("x", true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `clsx_resolutions_total{outcome="present"} 1`)
	assert.Contains(t, rec.Body.String(), "clsx_tokens_bucket")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestCountTokens(t *testing.T) {
	assert.Equal(t, 0, countTokens(""))
	assert.Equal(t, 1, countTokens("a"))
	assert.Equal(t, 3, countTokens("a b c"))
}
