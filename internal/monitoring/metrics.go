package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the prometheus collectors of the server
type Metrics struct {
	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ActiveSessions  prometheus.Gauge
	Logins          *prometheus.CounterVec
	Answers         *prometheus.CounterVec
	JournalFailures prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.NewRegistry() in tests to keep them isolated.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
			},
			[]string{"method", "endpoint"},
		),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "quizowl_active_sessions",
			Help: "Number of client sessions currently held in memory",
		}),
		Logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quizowl_logins_total",
				Help: "Login attempts by role and result",
			},
			[]string{"role", "result"},
		),
		Answers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quizowl_answers_total",
				Help: "Submitted quiz answers by subject and correctness",
			},
			[]string{"subject", "correct"},
		),
		JournalFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quizowl_journal_failures_total",
			Help: "Answer journal writes that failed",
		}),
		gatherer: reg,
	}

	reg.MustRegister(
		m.RequestCounter,
		m.RequestDuration,
		m.ActiveSessions,
		m.Logins,
		m.Answers,
		m.JournalFailures,
	)
	return m
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, endpoint string, status int, elapsed time.Duration) {
	m.RequestCounter.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// ObserveLogin records a login attempt
func (m *Metrics) ObserveLogin(role string, ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	m.Logins.WithLabelValues(role, result).Inc()
}

// ObserveAnswer records a submitted answer
func (m *Metrics) ObserveAnswer(subject string, correct bool) {
	m.Answers.WithLabelValues(subject, strconv.FormatBool(correct)).Inc()
}

// Handler exposes the registered metrics for scraping
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
