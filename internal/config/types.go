package config

import "time"

// Config is the complete application configuration.
type Config struct {
	Countries     ServiceConfig       `yaml:"countries"`
	Summary       ServiceConfig       `yaml:"summary"`
	HTTP          HTTPConfig          `yaml:"http"`
	Preferences   PreferencesConfig   `yaml:"preferences"`
	Logging       LoggingConfig       `yaml:"logging"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Metrics       MetricsConfig       `yaml:"metrics"`
}

// ServiceConfig locates one upstream REST service.
type ServiceConfig struct {
	BaseURL string `yaml:"base_url" validate:"required,http_url"`
}

// HTTPConfig tunes the shared HTTP client. A zero timeout keeps the
// transport default.
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout" validate:"gte=0"`
	UserAgent string        `yaml:"user_agent"`
}

// PreferencesConfig selects where the theme preference lives.
type PreferencesConfig struct {
	Backend   string `yaml:"backend" validate:"required,store_backend"`
	Path      string `yaml:"path" validate:"required_if=Backend file,required_if=Backend sqlite"`
	RedisAddr string `yaml:"redis_addr" validate:"required_if=Backend redis"`
}

// LoggingConfig controls log verbosity and destination.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"log_level"`
	// File receives interactive session logs; CLI commands log to stderr.
	File string `yaml:"file"`
	// Format is "console", "json" or empty for auto-detection.
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
}

// NotificationsConfig sets toast lifetimes per kind.
type NotificationsConfig struct {
	Success time.Duration `yaml:"success" validate:"gt=0"`
	Error   time.Duration `yaml:"error" validate:"gt=0"`
	Info    time.Duration `yaml:"info" validate:"gt=0"`
}

// MetricsConfig enables the Prometheus listener when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}
