// Package metrics exposes Prometheus metrics for the catalog and the
// onboarding wizard.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Option configures a Manager.
type Option func(*Manager)

func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithRegistry registers metrics on reg instead of a fresh private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(m *Manager) {
		if reg != nil {
			m.registry = reg
		}
	}
}

// WithRuntimeCollectors adds the Go runtime and process collectors.
func WithRuntimeCollectors() Option {
	return func(m *Manager) {
		m.runtime = true
	}
}

// Manager owns every metric. A nil *Manager is valid and records nothing.
type Manager struct {
	namespace string
	registry  *prometheus.Registry
	runtime   bool

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	filterResults prometheus.Histogram

	wizardTransitions *prometheus.CounterVec
	submissions       prometheus.Counter
	activeSessions    prometheus.Gauge
	evictedSessions   prometheus.Counter
	notifyErrors      prometheus.Counter
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "artbook",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initialize()
	return m
}

func (m *Manager) initialize() {
	auto := promauto.With(m.registry)

	if m.runtime {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status code",
	}, []string{"route", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	m.filterResults = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "catalog",
		Name:      "filter_results",
		Help:      "Number of artists returned per filter request",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})

	m.wizardTransitions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "onboarding",
		Name:      "transitions_total",
		Help:      "Wizard actions by action and outcome",
	}, []string{"action", "outcome"})

	m.submissions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "onboarding",
		Name:      "submissions_completed_total",
		Help:      "Onboarding applications that reached the success step",
	})

	m.activeSessions = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "onboarding",
		Name:      "active_sessions",
		Help:      "Wizard sessions currently held in memory",
	})

	m.evictedSessions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "onboarding",
		Name:      "sessions_evicted_total",
		Help:      "Idle wizard sessions removed by the draft sweeper",
	})

	m.notifyErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "onboarding",
		Name:      "notification_errors_total",
		Help:      "Failed submission notifications",
	})
}

// Registry returns the registry the metrics live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Manager) ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Manager) ObserveFilterResults(n int) {
	if m == nil {
		return
	}
	m.filterResults.Observe(float64(n))
}

// ObserveTransition counts a wizard action. outcome is "ok", "invalid"
// (field validation failed) or "rejected" (not allowed at this step).
func (m *Manager) ObserveTransition(action, outcome string) {
	if m == nil {
		return
	}
	m.wizardTransitions.WithLabelValues(action, outcome).Inc()
}

func (m *Manager) SubmissionCompleted() {
	if m == nil {
		return
	}
	m.submissions.Inc()
}

func (m *Manager) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

func (m *Manager) SessionsEvicted(n int) {
	if m == nil {
		return
	}
	m.evictedSessions.Add(float64(n))
}

func (m *Manager) NotificationFailed() {
	if m == nil {
		return
	}
	m.notifyErrors.Inc()
}
