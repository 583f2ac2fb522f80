package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg)

	rec.ObserveOutcome("accepted")
	rec.ObserveOutcome("accepted")
	rec.ObserveOutcome("failed")

	rec.ObserveGeneration("plan", "openai", true, 120*time.Millisecond)
	rec.ObserveGeneration("plan", "openai", false, 3*time.Second)
	rec.ObserveGeneration("seller_summary", "gemini", true, 80*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.outcomes.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.outcomes.WithLabelValues("failed")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.outcomes.WithLabelValues("rejected")))

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.generations.WithLabelValues("plan", "openai", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.generations.WithLabelValues("plan", "openai", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.generations.WithLabelValues("seller_summary", "gemini", "success")))

	assert.Equal(t, 2, testutil.CollectAndCount(rec.generationDuration))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRecorder(reg).ObserveOutcome("rejected")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `negotiation_pipeline_outcomes_total{outcome="rejected"} 1`)
}
