package ports

import "time"

// LookupOutcome classifies the result of one remote lookup for metrics.
type LookupOutcome string

const (
	OutcomeSuccess   LookupOutcome = "success"
	OutcomeNotFound  LookupOutcome = "not_found"
	OutcomeError     LookupOutcome = "error"
	OutcomeCancelled LookupOutcome = "cancelled"
)

// LookupRecorder records quantitative signals about remote lookups. Adapters
// back onto Prometheus; a nil-safe no-op is used when metrics are disabled.
// Standard metric names:
//   - countryexplorer_lookup_requests_total{service, endpoint, outcome}
//   - countryexplorer_lookup_duration_seconds{service, endpoint}
//   - countryexplorer_theme_toggles_total{theme}
type LookupRecorder interface {
	ObserveLookup(service, endpoint string, outcome LookupOutcome, elapsed time.Duration)
	IncThemeToggle(theme string)
}

// NopRecorder discards all signals.
type NopRecorder struct{}

// ObserveLookup implements LookupRecorder.
func (NopRecorder) ObserveLookup(string, string, LookupOutcome, time.Duration) {}

// IncThemeToggle implements LookupRecorder.
func (NopRecorder) IncThemeToggle(string) {}
