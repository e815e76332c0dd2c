package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	verbose     bool
	metricsAddr string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	browse := &browseOptions{}

	cmd := &cobra.Command{
		Use:           "countryexplorer",
		Short:         "Browse world countries, their facts and a fun fact for each",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the interactive explorer.
			return runBrowse(cmd, flags, browse)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a config file (default ~/.countryexplorer/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. 127.0.0.1:9464")
	cmd.Flags().StringVar(&browse.route, "route", "/", "Start route: /, /home or /country/{code}")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newSearchCmd(flags))
	cmd.AddCommand(newRegionCmd(flags))
	cmd.AddCommand(newRegionsCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
