package config

import (
	"path/filepath"
	"time"
)

const (
	// DirName is the per-user state directory below the home directory.
	DirName = ".countryexplorer"

	DefaultCountriesURL = "https://restcountries.com/v3.1"
	DefaultSummaryURL   = "https://en.wikipedia.org/api/rest_v1/page/summary"
	DefaultUserAgent    = "countryexplorer"
)

// Dir returns the state directory for home.
func Dir(home string) string {
	return filepath.Join(home, DirName)
}

// DefaultPath returns the config file location for home.
func DefaultPath(home string) string {
	return filepath.Join(Dir(home), "config.yaml")
}

// Default returns the configuration used when no file or overrides exist.
func Default(home string) *Config {
	dir := Dir(home)
	return &Config{
		Countries: ServiceConfig{BaseURL: DefaultCountriesURL},
		Summary:   ServiceConfig{BaseURL: DefaultSummaryURL},
		HTTP:      HTTPConfig{UserAgent: DefaultUserAgent},
		Preferences: PreferencesConfig{
			Backend: "file",
			Path:    filepath.Join(dir, "preferences.json"),
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(dir, "explorer.log"),
		},
		Notifications: NotificationsConfig{
			Success: 2 * time.Second,
			Error:   3 * time.Second,
			Info:    2 * time.Second,
		},
	}
}
