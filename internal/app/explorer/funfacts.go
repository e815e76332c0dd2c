package explorer

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
)

// FallbackFunFact replaces any summary that could not be fetched.
const FallbackFunFact = "No fun fact available at the moment."

const disambiguationType = "disambiguation"

// FunFacts turns summary lookups into display text. It never fails.
type FunFacts struct {
	lookup ports.SummaryLookup
	logger ports.Logger
}

// NewFunFacts wraps lookup. A nil lookup always yields the fallback.
func NewFunFacts(lookup ports.SummaryLookup, logger ports.Logger) *FunFacts {
	return &FunFacts{lookup: lookup, logger: logging.OrNoOp(logger)}
}

// Summary returns the extract for subject, or FallbackFunFact on any
// failure. An empty subject issues no request and returns "".
func (f *FunFacts) Summary(ctx context.Context, subject string) string {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return ""
	}
	if f == nil || f.lookup == nil {
		return FallbackFunFact
	}

	summary, err := f.lookup.Summary(ctx, subject)
	if err != nil {
		f.logger.Debug(ctx, "summary lookup failed", "subject", subject, "error", err)
		return FallbackFunFact
	}

	extract := strings.TrimSpace(summary.Extract)
	if summary.Type == disambiguationType || extract == "" {
		f.logger.Debug(ctx, "summary unusable", "subject", subject, "type", summary.Type)
		return FallbackFunFact
	}
	return extract
}
