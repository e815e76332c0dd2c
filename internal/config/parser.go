package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/countryexplorer/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadOptions controls where Load looks for configuration.
type LoadOptions struct {
	// Home anchors the default paths.
	Home string
	// Path is an explicit config file. When empty the default path is used
	// and a missing file is not an error.
	Path string
	// EnvFile is a dotenv file merged beneath the process environment.
	// A missing file is ignored.
	EnvFile string
	// LookupEnv reads the environment; nil selects os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load builds the effective configuration: defaults, then the YAML file,
// then environment overrides, then validation.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default(opts.Home)

	path := opts.Path
	explicit := path != ""
	if !explicit {
		path = DefaultPath(opts.Home)
	}

	if err := decodeFile(path, cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	env, err := environment(opts.EnvFile, opts.LookupEnv)
	if err != nil {
		return nil, err
	}
	if err := applyEnv(cfg, env); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseConfig loads a configuration file from disk over the defaults for
// home and validates the result.
func ParseConfig(path, home string) (*Config, error) {
	cfg := Default(home)
	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return apperrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return apperrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
