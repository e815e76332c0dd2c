// Package wikipedia implements ports.SummaryLookup against the Wikipedia
// REST page summary endpoint.
package wikipedia

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/remote"
	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
)

// DefaultBaseURL is the English Wikipedia summary endpoint.
const DefaultBaseURL = "https://en.wikipedia.org/api/rest_v1/page/summary"

// ServiceName labels this upstream in logs and metrics.
const ServiceName = "wikipedia"

// Options configures the client.
type Options struct {
	BaseURL    string
	UserAgent  string
	HTTPClient remote.Doer
	Logger     ports.Logger
	Recorder   ports.LookupRecorder
}

// Client is a SummaryLookup backed by HTTP.
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

// Summary implements ports.SummaryLookup.
func (c *Client) Summary(ctx context.Context, subject string) (ports.Summary, error) {
	var summary ports.Summary
	err := c.remote.GetJSON(ctx, remote.Request{
		Endpoint: "summary",
		Segments: []string{subject},
		Resource: "summary",
		Key:      subject,
	}, &summary)
	if err != nil {
		return ports.Summary{}, err
	}
	return summary, nil
}

var _ ports.SummaryLookup = (*Client)(nil)
