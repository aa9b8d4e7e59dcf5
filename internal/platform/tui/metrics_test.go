package tui

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/surimi-survivors/internal/core"
)

// gathered returns the value of a counter or gauge family, or of its child
// with the given label value.
func gathered(t *testing.T, m *Metrics, name string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() failed: %v", err)
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		metric := f.GetMetric()[0]
		if c := metric.GetCounter(); c != nil {
			return c.GetValue()
		}
		if g := metric.GetGauge(); g != nil {
			return g.GetValue()
		}
		if h := metric.GetHistogram(); h != nil {
			return float64(h.GetSampleCount())
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestMetricsSessions(t *testing.T) {
	m := NewMetrics()
	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()

	if got := gathered(t, m, "surimi_sessions_total"); got != 2 {
		t.Errorf("sessions_total = %v, expected 2", got)
	}
	if got := gathered(t, m, "surimi_sessions_active"); got != 1 {
		t.Errorf("sessions_active = %v, expected 1", got)
	}
}

func TestMetricsRunFinished(t *testing.T) {
	m := NewMetrics()
	m.RunFinished("surimi", core.GameState{Kills: 7, GameOver: true}, 42*time.Second)

	if got := gathered(t, m, "surimi_runs_total"); got != 1 {
		t.Errorf("runs_total = %v, expected 1", got)
	}
	if got := gathered(t, m, "surimi_kills_total"); got != 7 {
		t.Errorf("kills_total = %v, expected 7", got)
	}
	if got := gathered(t, m, "surimi_run_duration_seconds"); got != 1 {
		t.Errorf("run_duration_seconds count = %v, expected 1", got)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.SessionStarted()
	m.SessionEnded()
	m.RunFinished("surimi", core.GameState{}, time.Second)
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.SessionStarted()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "surimi_sessions_total 1") {
		t.Errorf("body missing sessions counter:\n%s", rec.Body.String())
	}
}
