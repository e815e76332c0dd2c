package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
	apperrors "github.com/alexisbeaulieu97/countryexplorer/pkg/errors"
)

type recordedLookup struct {
	service  string
	endpoint string
	outcome  ports.LookupOutcome
}

type fakeRecorder struct {
	lookups []recordedLookup
}

func (f *fakeRecorder) ObserveLookup(service, endpoint string, outcome ports.LookupOutcome, _ time.Duration) {
	f.lookups = append(f.lookups, recordedLookup{service: service, endpoint: endpoint, outcome: outcome})
}

func (f *fakeRecorder) IncThemeToggle(string) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeRecorder) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	rec := &fakeRecorder{}
	client, err := New(Options{Service: "test", BaseURL: srv.URL + "/v3.1/", UserAgent: "explorer-test", HTTPClient: srv.Client(), Recorder: rec})
	require.NoError(t, err)
	return client, rec
}

func TestNewRejectsInvalidBaseURL(t *testing.T) {
	for _, base := range []string{"", "not a url", "/relative/path"} {
		_, err := New(Options{Service: "test", BaseURL: base})
		require.Error(t, err, base)
	}
}

func TestURLEscapesSegments(t *testing.T) {
	client, err := New(Options{Service: "test", BaseURL: "https://example.test/api/"})
	require.NoError(t, err)

	got := client.URL(Request{Segments: []string{"name", "new zealand/x"}})
	assert.Equal(t, "https://example.test/api/name/new%20zealand%2Fx", got)
}

func TestGetJSONDecodesBody(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3.1/name/france", r.URL.Path)
		assert.Equal(t, "explorer-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"value": "ok"}`))
	})

	var out struct{ Value string }
	err := client.GetJSON(context.Background(), Request{Endpoint: "name", Segments: []string{"name", "france"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Value)
	require.Len(t, rec.lookups, 1)
	assert.Equal(t, recordedLookup{service: "test", endpoint: "name", outcome: ports.OutcomeSuccess}, rec.lookups[0])
}

func TestGetJSONMapsStatuses(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		check     func(error) bool
		wantLabel ports.LookupOutcome
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"status":404}`, check: apperrors.IsNotFound, wantLabel: ports.OutcomeNotFound},
		{name: "server error", status: http.StatusBadGateway, check: apperrors.IsNetwork, wantLabel: ports.OutcomeError},
		{name: "bad request", status: http.StatusBadRequest, check: apperrors.IsNotFound, wantLabel: ports.OutcomeNotFound},
		{name: "gone", status: http.StatusGone, check: apperrors.IsNotFound, wantLabel: ports.OutcomeNotFound},
		{name: "unavailable", status: http.StatusServiceUnavailable, check: apperrors.IsNetwork, wantLabel: ports.OutcomeError},
		{name: "not modified", status: http.StatusNotModified, check: apperrors.IsNetwork, wantLabel: ports.OutcomeError},
		{name: "bad json", status: http.StatusOK, body: `{`, check: apperrors.IsNetwork, wantLabel: ports.OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			var out map[string]interface{}
			err := client.GetJSON(context.Background(), Request{Endpoint: "alpha", Segments: []string{"alpha", "zzz"}, Resource: "country", Key: "zzz"}, &out)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error type: %v", err)
			require.Len(t, rec.lookups, 1)
			assert.Equal(t, tt.wantLabel, rec.lookups[0].outcome)
		})
	}
}

func TestGetJSONTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	client, err := New(Options{Service: "test", BaseURL: base})
	require.NoError(t, err)

	var out interface{}
	err = client.GetJSON(context.Background(), Request{Endpoint: "name", Segments: []string{"name", "x"}}, &out)
	require.Error(t, err)
	assert.True(t, apperrors.IsNetwork(err))
}

func TestGetJSONCancelled(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out interface{}
	err := client.GetJSON(ctx, Request{Endpoint: "region", Segments: []string{"region", "asia"}}, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, rec.lookups, 1)
	assert.Equal(t, ports.OutcomeCancelled, rec.lookups[0].outcome)
}
