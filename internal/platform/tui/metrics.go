package tui

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/surimi-survivors/internal/core"
)

const metricsNamespace = "surimi"

// Metrics holds the Prometheus collectors for the SSH server.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	sessions   prometheus.Counter
	active     prometheus.Gauge
	runs       *prometheus.CounterVec
	kills      *prometheus.CounterVec
	runSeconds *prometheus.HistogramVec
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sessions_total",
			Help:      "SSH sessions opened.",
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "sessions_active",
			Help:      "SSH sessions currently connected.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Finished runs by game mode.",
		}, []string{"game"}),
		kills: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "kills_total",
			Help:      "Enemies killed by game mode.",
		}, []string{"game"}),
		runSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Time survived per run.",
			Buckets:   []float64{10, 30, 60, 120, 300, 600, 1200},
		}, []string{"game"}),
	}

	m.registry.MustRegister(m.sessions, m.active, m.runs, m.kills, m.runSeconds)
	return m
}

// SessionStarted records a new connection.
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessions.Inc()
	m.active.Inc()
}

// SessionEnded records a closed connection.
func (m *Metrics) SessionEnded() {
	if m == nil {
		return
	}
	m.active.Dec()
}

// RunFinished records the outcome of a run.
func (m *Metrics) RunFinished(gameID string, state core.GameState, playTime time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(gameID).Inc()
	m.kills.WithLabelValues(gameID).Add(float64(state.Kills))
	m.runSeconds.WithLabelValues(gameID).Observe(playTime.Seconds())
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// StartHTTP serves /metrics on addr in the background.
// The returned server can be shut down by the caller.
func (m *Metrics) StartHTTP(addr string, logger *log.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics available", "address", addr, "path", "/metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()
	return srv
}
