package ports

import (
	"context"

	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
)

// CountryLookup reads country records from the country-data service. Every
// call is a one-shot idempotent GET: no retries, no client-side caching, and
// identical repeated calls always re-fetch.
//
// Error mapping expectations:
//   - non-2xx "not found" answers or an empty array → *errors.NotFoundError
//   - transport failures, timeouts, undecodable bodies, other non-2xx → *errors.NetworkError
//   - ctx cancellation → the context error, wrapped in *errors.NetworkError
//
// Implementations never validate the query itself; blank input is rejected
// by the application layer before a lookup is issued.
type CountryLookup interface {
	// SearchByName matches countries by partial name.
	SearchByName(ctx context.Context, query string) ([]country.Country, error)
	// SearchByRegion lists every country in region.
	SearchByRegion(ctx context.Context, region country.Region) ([]country.Country, error)
	// GetByCode fetches exactly one country by ISO alpha-2 or alpha-3 code.
	GetByCode(ctx context.Context, code string) (country.Country, error)
}

// Summary is the subset of the encyclopedia summary payload the app reads.
type Summary struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

// SummaryLookup fetches a short encyclopedia summary for a subject. Unlike
// CountryLookup its errors are never shown to users: the application layer
// collapses every failure into a fixed fallback text.
type SummaryLookup interface {
	Summary(ctx context.Context, subject string) (Summary, error)
}
