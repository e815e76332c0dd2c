// Package metrics records lookup and preference signals with Prometheus.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
)

// Metrics implements ports.LookupRecorder on a private registry so tests and
// multiple instances never collide on the global default registerer.
type Metrics struct {
	registry       *prometheus.Registry
	LookupRequests *prometheus.CounterVec
	LookupDuration *prometheus.HistogramVec
	ThemeToggles   *prometheus.CounterVec
}

// New creates a Metrics instance with all collectors registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		LookupRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "countryexplorer_lookup_requests_total",
			Help: "Remote lookups issued, by upstream service, endpoint and outcome",
		}, []string{"service", "endpoint", "outcome"}),
		LookupDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "countryexplorer_lookup_duration_seconds",
			Help:    "Latency of remote lookups",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"service", "endpoint"}),
		ThemeToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "countryexplorer_theme_toggles_total",
			Help: "Theme toggles, by resulting theme",
		}, []string{"theme"}),
	}
	reg.MustRegister(m.LookupRequests, m.LookupDuration, m.ThemeToggles)
	return m
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveLookup records one completed lookup.
func (m *Metrics) ObserveLookup(service, endpoint string, outcome ports.LookupOutcome, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.LookupRequests.WithLabelValues(service, endpoint, string(outcome)).Inc()
	m.LookupDuration.WithLabelValues(service, endpoint).Observe(elapsed.Seconds())
}

// IncThemeToggle records a theme toggle.
func (m *Metrics) IncThemeToggle(theme string) {
	if m == nil {
		return
	}
	m.ThemeToggles.WithLabelValues(theme).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Serve exposes /metrics on addr until ctx is cancelled. It returns once the
// listener is bound; serving continues in the background.
func (m *Metrics) Serve(ctx context.Context, addr string) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = ln.Close()
		}
	}()

	return ln.Addr(), nil
}

var _ ports.LookupRecorder = (*Metrics)(nil)
