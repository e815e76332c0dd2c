package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/countryexplorer/internal/tui"
)

type browseOptions struct {
	route string
}

func newBrowseCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive country explorer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.route, "route", "/", "Start route: /, /home or /country/{code}")

	return cmd
}

func runBrowse(cmd *cobra.Command, rootFlags *rootFlags, opts *browseOptions) error {
	start, err := tui.ParseRoute(opts.route)
	if err != nil {
		return newCommandError("browse", "parsing start route", err, "Use /, /home or /country/{code}, for example /country/FRA.")
	}

	app, err := newAppContext(cmd, rootFlags, modeInteractive)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, logger := app.CommandContext(cmd, "browse")
	logger.Info(ctx, "starting explorer", "route", start.Path())

	n := app.Config.Notifications
	model := tui.NewModel(tui.Options{
		Explorer:    app.Explorer,
		Preferences: app.Preferences,
		Themes:      app.Themes,
		Logger:      logger,
		Toasts:      tui.ToastDurations{Success: n.Success, Error: n.Error, Info: n.Info},
		Start:       start,
		Context:     ctx,
	})

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return newCommandError("browse", "running the explorer", err, "Run the command from an interactive terminal.")
	}

	logger.Info(ctx, "explorer closed")
	return nil
}
