package monitoring

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("failed to read metrics: %v", err)
	}
	return string(body)
}

func TestObserveRequest(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveRequest("GET", "/api/state", 200, 5*time.Millisecond)
	m.ObserveRequest("GET", "/api/state", 200, 5*time.Millisecond)
	m.ObserveRequest("POST", "/api/login", 401, time.Millisecond)

	out := scrape(t, m)
	for _, want := range []string{
		`http_requests_total{endpoint="/api/state",method="GET",status="200"} 2`,
		`http_requests_total{endpoint="/api/login",method="POST",status="401"} 1`,
		`http_request_duration_seconds_count{endpoint="/api/state",method="GET"} 2`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestObserveLoginAndAnswer(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveLogin("child", true)
	m.ObserveLogin("child", false)
	m.ObserveLogin("child", false)
	m.ObserveAnswer("Maths", true)
	m.JournalFailures.Inc()

	out := scrape(t, m)
	for _, want := range []string{
		`quizowl_logins_total{result="failure",role="child"} 2`,
		`quizowl_logins_total{result="success",role="child"} 1`,
		`quizowl_answers_total{correct="true",subject="Maths"} 1`,
		`quizowl_journal_failures_total 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestActiveSessionsGauge(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.ActiveSessions.Set(3)

	if out := scrape(t, m); !strings.Contains(out, "quizowl_active_sessions 3") {
		t.Errorf("metrics output missing active sessions gauge:\n%s", out)
	}
}
