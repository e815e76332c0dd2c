package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/countryexplorer/internal/app/preferences"
)

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the persisted colour theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, rootFlags, "get", nil)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, rootFlags, "get", nil)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, rootFlags, "toggle", nil)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Persist a specific theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(preferences.ThemeLight), string(preferences.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, rootFlags, "set", args)
		},
	})

	return cmd
}

func runTheme(cmd *cobra.Command, rootFlags *rootFlags, action string, args []string) error {
	var target preferences.Theme
	if action == "set" {
		parsed, err := preferences.ParseTheme(args[0])
		if err != nil {
			return newCommandError("set theme", "parsing theme", err, "Use 'light' or 'dark'.")
		}
		target = parsed
	}

	app, err := newAppContext(cmd, rootFlags, modeCLI)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, logger := app.CommandContext(cmd, "theme")

	var theme preferences.Theme
	switch action {
	case "toggle":
		theme = app.Preferences.Toggle(ctx)
	case "set":
		theme = app.Preferences.Set(ctx, target)
	default:
		theme = app.Preferences.Read(ctx)
	}
	logger.Debug(ctx, "theme resolved", "action", action, "theme", theme.String())

	fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", theme)
	if app.Preferences.Degraded() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: the preference store is unavailable; %q was not saved (backend %s).\n", theme, app.Config.Preferences.Backend)
	}
	return nil
}
