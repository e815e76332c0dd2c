// Package restcountries implements ports.CountryLookup against the v3.1
// REST Countries API.
package restcountries

import (
	"context"
	"net/http"
	"strings"

	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/remote"
	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
	apperrors "github.com/alexisbeaulieu97/countryexplorer/pkg/errors"
)

// DefaultBaseURL is the public v3.1 endpoint.
const DefaultBaseURL = "https://restcountries.com/v3.1"

// ServiceName labels this upstream in logs and metrics.
const ServiceName = "restcountries"

// Options configures the client.
type Options struct {
	BaseURL    string
	UserAgent  string
	HTTPClient remote.Doer
	Logger     ports.Logger
	Recorder   ports.LookupRecorder
}

// Client is a CountryLookup backed by HTTP.
type Client struct {
	remote *remote.Client
}

// New builds a Client; an empty BaseURL selects DefaultBaseURL.
func New(opts Options) (*Client, error) {
	base := opts.BaseURL
	if strings.TrimSpace(base) == "" {
		base = DefaultBaseURL
	}
	rc, err := remote.New(remote.Options{
		Service:    ServiceName,
		BaseURL:    base,
		UserAgent:  opts.UserAgent,
		HTTPClient: opts.HTTPClient,
		Logger:     opts.Logger,
		Recorder:   opts.Recorder,
	})
	if err != nil {
		return nil, err
	}
	return &Client{remote: rc}, nil
}

// SearchByName implements ports.CountryLookup.
func (c *Client) SearchByName(ctx context.Context, query string) ([]country.Country, error) {
	return c.list(ctx, remote.Request{
		Endpoint: "name",
		Segments: []string{"name", query},
		Resource: "country",
		Key:      query,
	})
}

// SearchByRegion implements ports.CountryLookup.
func (c *Client) SearchByRegion(ctx context.Context, region country.Region) ([]country.Country, error) {
	return c.list(ctx, remote.Request{
		Endpoint: "region",
		Segments: []string{"region", strings.ToLower(region.String())},
		Resource: "region",
		Key:      region.String(),
	})
}

// GetByCode implements ports.CountryLookup.
func (c *Client) GetByCode(ctx context.Context, code string) (country.Country, error) {
	countries, err := c.list(ctx, remote.Request{
		Endpoint: "alpha",
		Segments: []string{"alpha", code},
		Resource: "country code",
		Key:      code,
	})
	if err != nil {
		return country.Country{}, err
	}
	return countries[0], nil
}

func (c *Client) list(ctx context.Context, req remote.Request) ([]country.Country, error) {
	var countries []country.Country
	if err := c.remote.GetJSON(ctx, req, &countries); err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return nil, apperrors.NewNotFoundError(req.Resource, req.Key, http.StatusOK)
	}
	return countries, nil
}

var _ ports.CountryLookup = (*Client)(nil)
