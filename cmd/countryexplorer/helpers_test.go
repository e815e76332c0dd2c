package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexisbeaulieu97/countryexplorer/internal/config"
	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
)

type upstream struct {
	countries *httptest.Server
	summaries *httptest.Server
}

// setupCLIHome isolates HOME and points both services at local fakes.
func setupCLIHome(t *testing.T, backend string) (string, *upstream) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvStoreBackend, backend)
	t.Setenv(config.EnvLogLevel, "error")

	up := &upstream{
		countries: httptest.NewServer(http.HandlerFunc(serveCountries)),
		summaries: httptest.NewServer(http.HandlerFunc(serveSummaries)),
	}
	t.Cleanup(up.countries.Close)
	t.Cleanup(up.summaries.Close)

	t.Setenv(config.EnvCountriesURL, up.countries.URL)
	t.Setenv(config.EnvSummaryURL, up.summaries.URL)
	return home, up
}

func serveCountries(w http.ResponseWriter, r *http.Request) {
	path := strings.ToLower(r.URL.Path)
	switch {
	case path == "/name/france", path == "/alpha/fra":
		writeTestJSON(w, []country.Country{testFrance()})
	case strings.HasPrefix(path, "/region/"):
		writeTestJSON(w, []country.Country{testFrance(), {Name: country.Name{Common: "Spain"}, CCA3: "ESP", Region: "Europe"}})
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"message":"Not Found"}`))
	}
}

func serveSummaries(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/France" {
		writeTestJSON(w, map[string]string{"type": "standard", "title": "France", "extract": "France is a country in Western Europe."})
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func writeTestJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func testFrance() country.Country {
	return country.Country{
		Name:       country.Name{Common: "France", Official: "French Republic"},
		CCA2:       "FR",
		CCA3:       "FRA",
		Capital:    []string{"Paris"},
		Region:     "Europe",
		Subregion:  "Western Europe",
		Population: 67391582,
		Flag:       "🇫🇷",
		Languages:  map[string]string{"fra": "French"},
		Currencies: map[string]country.Currency{"EUR": {Name: "Euro", Symbol: "€"}},
		Timezones:  []string{"UTC+01:00"},
	}
}

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
