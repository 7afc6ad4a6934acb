package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// TranslationsTotal counts finished translations by outcome
	// ("success" or "failure").
	TranslationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "survey",
		Subsystem: "translator",
		Name:      "translations_total",
		Help:      "Total number of survey translations, labeled by result.",
	}, []string{"result"})

	// TranslationDurationSeconds is end-to-end time per translation,
	// including the model call and parsing.
	TranslationDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "survey",
		Subsystem: "translator",
		Name:      "translation_duration_seconds",
		Help:      "End-to-end time to translate a survey (prompt build + model call + parse).",
		// Model calls dominate; keep buckets coarse.
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 60, 120, 300},
	}, []string{"result"})

	// TranslationsInFlight is the number of translations currently running.
	TranslationsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "survey",
		Subsystem: "translator",
		Name:      "translations_in_flight",
		Help:      "Current number of survey translations being processed.",
	})

	// AsyncJobsSubmittedTotal counts fire-and-forget submissions accepted
	// by the async endpoint.
	AsyncJobsSubmittedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "survey",
		Subsystem: "translator",
		Name:      "async_jobs_submitted_total",
		Help:      "Total number of async translation jobs accepted.",
	})

	// LLMRequestDurationSeconds is time spent inside the chat-completion
	// capability only.
	LLMRequestDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "survey",
		Subsystem: "translator",
		Name:      "llm_request_duration_seconds",
		Help:      "Time spent waiting on the chat-completion provider per translation.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 60, 120, 300},
	})
)

// Register registers translator metrics with the default Prometheus
// registry. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			TranslationsTotal,
			TranslationDurationSeconds,
			TranslationsInFlight,
			AsyncJobsSubmittedTotal,
			LLMRequestDurationSeconds,
		)
	})
}
