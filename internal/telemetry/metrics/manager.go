package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests               *prometheus.CounterVec
	CounterWorkoutsLogged         prometheus.Counter
	CounterHabitCompletions       prometheus.Counter
	CounterAssistantRequests      prometheus.Counter
	CounterAssistantParseFailures prometheus.Counter
	CounterHandleRequestPanic     prometheus.Counter
	CounterRateLimitedRequests    prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("backend", "test_server", prometheus.NewRegistry())
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterWorkoutsLogged := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_logged",
		Help:      "The total number of logged workouts",
	})
	counterHabitCompletions := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "habit_completions",
		Help:      "The total number of habit completions",
	})
	counterAssistantRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "assistant_requests",
		Help:      "The total number of requests made to the AI assistant",
	})
	counterAssistantParseFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "assistant_parse_failures",
		Help:      "The total number of unparsable AI assistant responses",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histogramRequestDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Buckets: []float64{
			0.0001, 0.001, 0.01, 0.1, 0.5, 1, 2, 5, 10, 30, 60,
		},
		Name: "request_duration_seconds",
		Help: "Duration of a single served request in seconds",
	})

	return &Manager{
		CounterRequests:               counterRequests,
		CounterWorkoutsLogged:         counterWorkoutsLogged,
		CounterHabitCompletions:       counterHabitCompletions,
		CounterAssistantRequests:      counterAssistantRequests,
		CounterAssistantParseFailures: counterAssistantParseFailures,
		CounterHandleRequestPanic:     counterHandleRequestPanic,
		CounterRateLimitedRequests:    counterRateLimitedRequests,
		GaugeRequests:                 gaugeRequests,
		GaugeLifeSignal:               gaugeLifeSignal,
		HistogramRequestDuration:      histogramRequestDuration,
	}
}
