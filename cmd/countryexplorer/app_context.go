package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/countryexplorer/internal/app/explorer"
	"github.com/alexisbeaulieu97/countryexplorer/internal/app/preferences"
	"github.com/alexisbeaulieu97/countryexplorer/internal/components"
	"github.com/alexisbeaulieu97/countryexplorer/internal/config"
	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/kvstore"
	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/metrics"
	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/restcountries"
	"github.com/alexisbeaulieu97/countryexplorer/internal/infrastructure/wikipedia"
	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
)

type appMode int

const (
	modeCLI appMode = iota
	modeInteractive
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config      *config.Config
	Logger      ports.Logger
	Metrics     *metrics.Metrics
	Explorer    *explorer.Service
	Preferences *preferences.Service
	Themes      *components.ThemeManager

	closers []io.Closer
}

// newAppContext loads configuration and wires every service for one command.
func newAppContext(cmd *cobra.Command, flags *rootFlags, mode appMode) (*AppContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	home, err := homeDir()
	if err != nil {
		return nil, newCommandError("start", "determining home directory", err, "Ensure your HOME directory is set correctly.")
	}

	cfg, err := config.Load(config.LoadOptions{Home: home, Path: flags.configPath, EnvFile: ".env"})
	if err != nil {
		return nil, newCommandError("start", "loading configuration", err, configSuggestion(flags.configPath))
	}
	if flags.verbose {
		cfg.Logging.Level = "debug"
	}
	if flags.metricsAddr != "" {
		cfg.Metrics.Addr = flags.metricsAddr
	}

	app := &AppContext{Config: cfg}

	logger, err := app.newLogger(cmd, mode)
	if err != nil {
		return nil, newCommandError("start", "configuring logging", err, "Check logging.file and logging.level in your config.")
	}
	app.Logger = logger

	app.Metrics = metrics.New()
	if cfg.Metrics.Addr != "" {
		addr, err := app.Metrics.Serve(ctx, cfg.Metrics.Addr)
		if err != nil {
			_ = app.Close()
			return nil, newCommandError("start", "starting metrics listener", err, "Pick a free address with --metrics-addr.")
		}
		logger.Info(ctx, "metrics listener started", "addr", addr.String())
	}

	httpClient := &http.Client{Timeout: cfg.HTTP.Timeout}

	countries, err := restcountries.New(restcountries.Options{
		BaseURL:    cfg.Countries.BaseURL,
		UserAgent:  cfg.HTTP.UserAgent,
		HTTPClient: httpClient,
		Logger:     logger,
		Recorder:   app.Metrics,
	})
	if err != nil {
		_ = app.Close()
		return nil, newCommandError("start", "configuring the country service", err, "Check countries.base_url in your config.")
	}

	summaries, err := wikipedia.New(wikipedia.Options{
		BaseURL:    cfg.Summary.BaseURL,
		UserAgent:  cfg.HTTP.UserAgent,
		HTTPClient: httpClient,
		Logger:     logger,
		Recorder:   app.Metrics,
	})
	if err != nil {
		_ = app.Close()
		return nil, newCommandError("start", "configuring the summary service", err, "Check summary.base_url in your config.")
	}

	app.Explorer = explorer.NewService(countries, summaries, explorer.WithLogger(logger))

	store, err := kvstore.Open(ctx, kvstore.Settings{
		Backend:   kvstore.Backend(cfg.Preferences.Backend),
		Path:      cfg.Preferences.Path,
		RedisAddr: cfg.Preferences.RedisAddr,
	})
	if err != nil {
		// The preference service degrades to memory on a nil store.
		logger.Warn(ctx, "preference store unavailable", "backend", cfg.Preferences.Backend, "error", err)
		store = nil
	} else {
		app.closers = append(app.closers, store)
	}
	app.Preferences = preferences.NewService(store,
		preferences.WithLogger(logger),
		preferences.WithRecorder(app.Metrics),
	)
	app.Themes = components.NewThemeManager(components.LightTheme())

	return app, nil
}

// CommandContext returns a correlated context and a logger scoped to name.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.NewCorrelatedContext(ctx)
	return ctx, a.Logger.With("command", name)
}

// Close releases the preference store and log file.
func (a *AppContext) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *AppContext) newLogger(cmd *cobra.Command, mode appMode) (ports.Logger, error) {
	cfg := a.Config.Logging
	opts := logging.Options{Level: cfg.Level, Component: "countryexplorer"}

	switch mode {
	case modeInteractive:
		if cfg.File == "" {
			return logging.NewNoOpLogger(), nil
		}
		file, err := logging.OpenFile(cfg.File)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, file)
		opts.Writer = file
		opts.HumanReadable = cfg.Format == "console"
	default:
		opts.Writer = cmd.ErrOrStderr()
		opts.HumanReadable = humanReadable(cfg.Format, opts.Writer)
	}

	logger, err := logging.New(opts)
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func humanReadable(format string, w io.Writer) bool {
	switch strings.ToLower(format) {
	case "console":
		return true
	case "json":
		return false
	default:
		return isTerminal(w)
	}
}

func isTerminal(w any) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func configSuggestion(explicit string) string {
	path := explicit
	if path == "" {
		if def, err := defaultConfigPath(); err == nil {
			path = def
		}
	}
	return fmt.Sprintf("Fix the settings in %s or the COUNTRYEXPLORER_* environment variables and try again.", path)
}
