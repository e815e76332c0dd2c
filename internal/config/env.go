package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	apperrors "github.com/alexisbeaulieu97/countryexplorer/pkg/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "COUNTRYEXPLORER_"

// Environment variables recognised by Load.
const (
	EnvCountriesURL = EnvPrefix + "COUNTRIES_URL"
	EnvSummaryURL   = EnvPrefix + "SUMMARY_URL"
	EnvHTTPTimeout  = EnvPrefix + "HTTP_TIMEOUT"
	EnvUserAgent    = EnvPrefix + "USER_AGENT"
	EnvStoreBackend = EnvPrefix + "STORE_BACKEND"
	EnvStorePath    = EnvPrefix + "STORE_PATH"
	EnvRedisAddr    = EnvPrefix + "REDIS_ADDR"
	EnvLogLevel     = EnvPrefix + "LOG_LEVEL"
	EnvLogFile      = EnvPrefix + "LOG_FILE"
	EnvLogFormat    = EnvPrefix + "LOG_FORMAT"
	EnvMetricsAddr  = EnvPrefix + "METRICS_ADDR"
)

type lookupFunc func(string) (string, bool)

// environment layers the process environment over the dotenv file.
func environment(envFile string, lookup lookupFunc) (lookupFunc, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	fileValues := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileValues = values
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, apperrors.NewParseError(envFile, 0, err)
		}
	}

	return func(key string) (string, bool) {
		if value, ok := lookup(key); ok {
			return value, true
		}
		value, ok := fileValues[key]
		return value, ok
	}, nil
}

func applyEnv(cfg *Config, lookup lookupFunc) error {
	strs := map[string]*string{
		EnvCountriesURL: &cfg.Countries.BaseURL,
		EnvSummaryURL:   &cfg.Summary.BaseURL,
		EnvUserAgent:    &cfg.HTTP.UserAgent,
		EnvStoreBackend: &cfg.Preferences.Backend,
		EnvStorePath:    &cfg.Preferences.Path,
		EnvRedisAddr:    &cfg.Preferences.RedisAddr,
		EnvLogLevel:     &cfg.Logging.Level,
		EnvLogFile:      &cfg.Logging.File,
		EnvLogFormat:    &cfg.Logging.Format,
		EnvMetricsAddr:  &cfg.Metrics.Addr,
	}
	for key, target := range strs {
		if value, ok := lookup(key); ok {
			*target = strings.TrimSpace(value)
		}
	}

	if raw, ok := lookup(EnvHTTPTimeout); ok {
		timeout, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil {
			return apperrors.NewValidationError("http.timeout", fmt.Sprintf("%s must be a duration such as 10s", EnvHTTPTimeout), err)
		}
		cfg.HTTP.Timeout = timeout
	}

	return nil
}
