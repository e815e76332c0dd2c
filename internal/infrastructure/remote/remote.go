// Package remote issues the read-only JSON GETs shared by both upstream
// clients and classifies their failures into the app's error taxonomy.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
	apperrors "github.com/alexisbeaulieu97/countryexplorer/pkg/errors"
)

const maxBodyBytes = 8 << 20

// Doer is the subset of *http.Client the clients need.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client.
type Options struct {
	// Service names the upstream in logs and metrics.
	Service    string
	BaseURL    string
	UserAgent  string
	HTTPClient Doer
	Logger     ports.Logger
	Recorder   ports.LookupRecorder
}

// Client performs GET requests against one upstream base URL.
type Client struct {
	service   string
	baseURL   string
	userAgent string
	http      Doer
	logger    ports.Logger
	recorder  ports.LookupRecorder
}

// New validates opts and builds a Client.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%s: invalid base url %q", opts.Service, opts.BaseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	var recorder ports.LookupRecorder = ports.NopRecorder{}
	if opts.Recorder != nil {
		recorder = opts.Recorder
	}

	return &Client{
		service:   opts.Service,
		baseURL:   base,
		userAgent: opts.UserAgent,
		http:      httpClient,
		logger:    logging.OrNoOp(opts.Logger).With("component", opts.Service),
		recorder:  recorder,
	}, nil
}

// Request describes one lookup.
type Request struct {
	// Endpoint is a short label for metrics, e.g. "name" or "alpha".
	Endpoint string
	// Segments are path segments appended to the base URL; each is escaped.
	Segments []string
	// Resource and Key describe the lookup for NotFoundError.
	Resource string
	Key      string
}

// URL returns the fully escaped request URL.
func (c *Client) URL(req Request) string {
	escaped := make([]string, 0, len(req.Segments))
	for _, segment := range req.Segments {
		escaped = append(escaped, url.PathEscape(segment))
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

// GetJSON issues the request and decodes a 2xx body into out. 404 maps to
// NotFoundError; every other failure maps to NetworkError.
func (c *Client) GetJSON(ctx context.Context, req Request, out interface{}) error {
	target := c.URL(req)
	start := time.Now()

	err := c.getJSON(ctx, target, req, out)
	elapsed := time.Since(start)

	outcome := classify(ctx, err)
	c.recorder.ObserveLookup(c.service, req.Endpoint, outcome, elapsed)

	fields := []interface{}{"endpoint", req.Endpoint, "url", target, "duration_ms", elapsed, "outcome", string(outcome)}
	switch outcome {
	case ports.OutcomeSuccess:
		c.logger.Debug(ctx, "lookup completed", fields...)
	case ports.OutcomeNotFound, ports.OutcomeCancelled:
		c.logger.Info(ctx, "lookup returned no result", fields...)
	default:
		c.logger.Warn(ctx, "lookup failed", append(fields, "error", err)...)
	}
	return err
}

func (c *Client) getJSON(ctx context.Context, target string, req Request, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return apperrors.NewNetworkError(http.MethodGet, target, 0, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return apperrors.NewNetworkError(http.MethodGet, target, 0, err)
	}
	defer resp.Body.Close()

	// Client errors mean the upstream has nothing for this key; server
	// errors are failures to fetch.
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return apperrors.NewNotFoundError(req.Resource, req.Key, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return apperrors.NewNetworkError(http.MethodGet, target, resp.StatusCode, nil)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return apperrors.NewNetworkError(http.MethodGet, target, 0, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func classify(ctx context.Context, err error) ports.LookupOutcome {
	switch {
	case err == nil:
		return ports.OutcomeSuccess
	case apperrors.IsNotFound(err):
		return ports.OutcomeNotFound
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		return ports.OutcomeCancelled
	default:
		return ports.OutcomeError
	}
}
