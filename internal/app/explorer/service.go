// Package explorer coordinates country lookups and fun-fact summaries for
// the terminal UI and the CLI.
package explorer

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
	"github.com/alexisbeaulieu97/countryexplorer/internal/validation"
)

// Service validates user input and delegates to the lookup adapters.
type Service struct {
	countries ports.CountryLookup
	facts     *FunFacts
	logger    ports.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger attaches a logger.
func WithLogger(logger ports.Logger) Option {
	return func(s *Service) {
		s.logger = logging.OrNoOp(logger)
	}
}

// NewService wires the country lookup with the summary lookup.
func NewService(countries ports.CountryLookup, summaries ports.SummaryLookup, opts ...Option) *Service {
	svc := &Service{
		countries: countries,
		logger:    logging.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	svc.facts = NewFunFacts(summaries, svc.logger)
	return svc
}

// Search looks countries up by partial name. Blank queries fail with a
// validation error and never reach the lookup.
func (s *Service) Search(ctx context.Context, query string) ([]country.Country, error) {
	trimmed, err := validation.SearchQuery(query)
	if err != nil {
		return nil, err
	}

	results, err := s.countries.SearchByName(ctx, trimmed)
	if err != nil {
		s.logger.Debug(ctx, "name search failed", "query", trimmed, "error", err)
		return nil, err
	}
	s.logger.Debug(ctx, "name search completed", "query", trimmed, "results", len(results))
	return results, nil
}

// Region lists every country in region.
func (s *Service) Region(ctx context.Context, region country.Region) ([]country.Country, error) {
	if err := validation.Region(region); err != nil {
		return nil, err
	}

	results, err := s.countries.SearchByRegion(ctx, region)
	if err != nil {
		s.logger.Debug(ctx, "region lookup failed", "region", region.String(), "error", err)
		return nil, err
	}
	s.logger.Debug(ctx, "region lookup completed", "region", region.String(), "results", len(results))
	return results, nil
}

// Detail is a country together with its fun fact.
type Detail struct {
	Country country.Country
	FunFact string
}

// Detail fetches the country for code and then its fun fact. A failed
// country fetch returns the error and no summary request is made.
func (s *Service) Detail(ctx context.Context, code string) (Detail, error) {
	normalized, err := validation.CountryCode(code)
	if err != nil {
		return Detail{}, err
	}

	record, err := s.countries.GetByCode(ctx, normalized)
	if err != nil {
		s.logger.Debug(ctx, "country lookup failed", "code", normalized, "error", err)
		return Detail{}, err
	}

	return Detail{
		Country: record,
		FunFact: s.facts.Summary(ctx, record.DisplayName()),
	}, nil
}

// FunFacts exposes the summary wrapper.
func (s *Service) FunFacts() *FunFacts {
	return s.facts
}

// RegionCount is the number of countries in one region.
type RegionCount struct {
	Region  country.Region `json:"region"`
	Count   int            `json:"count"`
	Elapsed time.Duration  `json:"-"`
}

// RegionCounts queries every region concurrently and returns the counts in
// selector order. The first failure cancels the remaining lookups.
func (s *Service) RegionCounts(ctx context.Context) ([]RegionCount, error) {
	regions := country.Regions()
	counts := make([]RegionCount, len(regions))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, region := range regions {
		group.Go(func() error {
			start := time.Now()
			results, err := s.countries.SearchByRegion(groupCtx, region)
			if err != nil {
				return fmt.Errorf("count %s: %w", region, err)
			}
			counts[i] = RegionCount{Region: region, Count: len(results), Elapsed: time.Since(start)}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}
