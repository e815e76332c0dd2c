package explorer

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
	apperrors "github.com/alexisbeaulieu97/countryexplorer/pkg/errors"
)

type fakeCountries struct {
	mu         sync.Mutex
	byName     map[string][]country.Country
	byRegion   map[country.Region][]country.Country
	byCode     map[string]country.Country
	failWith   error
	nameCalls  []string
	regionHits []country.Region
	codeCalls  []string
}

func newFakeCountries() *fakeCountries {
	return &fakeCountries{
		byName:   map[string][]country.Country{},
		byRegion: map[country.Region][]country.Country{},
		byCode:   map[string]country.Country{},
	}
}

func (f *fakeCountries) SearchByName(_ context.Context, query string) ([]country.Country, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nameCalls = append(f.nameCalls, query)
	if f.failWith != nil {
		return nil, f.failWith
	}
	results, ok := f.byName[strings.ToLower(query)]
	if !ok {
		return nil, apperrors.NewNotFoundError("country", query, http.StatusNotFound)
	}
	return results, nil
}

func (f *fakeCountries) SearchByRegion(ctx context.Context, region country.Region) ([]country.Country, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regionHits = append(f.regionHits, region)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.byRegion[region], nil
}

func (f *fakeCountries) GetByCode(_ context.Context, code string) (country.Country, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codeCalls = append(f.codeCalls, code)
	if f.failWith != nil {
		return country.Country{}, f.failWith
	}
	record, ok := f.byCode[code]
	if !ok {
		return country.Country{}, apperrors.NewNotFoundError("country code", code, http.StatusNotFound)
	}
	return record, nil
}

type fakeSummaries struct {
	mu       sync.Mutex
	summary  ports.Summary
	err      error
	subjects []string
}

func (f *fakeSummaries) Summary(_ context.Context, subject string) (ports.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subjects = append(f.subjects, subject)
	if f.err != nil {
		return ports.Summary{}, f.err
	}
	return f.summary, nil
}

func france() country.Country {
	return country.Country{
		Name:       country.Name{Common: "France", Official: "French Republic"},
		CCA2:       "FR",
		CCA3:       "FRA",
		Capital:    []string{"Paris"},
		Region:     "Europe",
		Subregion:  "Western Europe",
		Population: 67391582,
	}
}
