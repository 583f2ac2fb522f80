// Package metrics records pipeline outcomes and LLM call latency in Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder implements ai.Recorder and negotiation.OutcomeRecorder.
type Recorder struct {
	outcomes           *prometheus.CounterVec
	generations        *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		outcomes: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "negotiation_pipeline_outcomes_total",
				Help: "Negotiation pipeline runs by terminal state",
			},
			[]string{"outcome"},
		),
		generations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_generation_requests_total",
				Help: "LLM generation calls by stage, provider and status",
			},
			[]string{"stage", "provider", "status"},
		),
		generationDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "llm_generation_duration_seconds",
				Help:    "Duration of LLM generation calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage", "provider"},
		),
	}
}

func (r *Recorder) ObserveOutcome(outcome string) {
	r.outcomes.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveGeneration(stage, provider string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}

	r.generations.WithLabelValues(stage, provider, status).Inc()
	r.generationDuration.WithLabelValues(stage, provider).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
