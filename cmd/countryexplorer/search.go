package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/countryexplorer/internal/app/explorer"
)

type lookupOptions struct {
	jsonOutput bool
}

func newSearchCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &lookupOptions{}

	cmd := &cobra.Command{
		Use:   "search <name...>",
		Short: "Search countries by name",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, rootFlags, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output matching countries as JSON")

	return cmd
}

func runSearch(cmd *cobra.Command, rootFlags *rootFlags, query string, opts *lookupOptions) error {
	app, err := newAppContext(cmd, rootFlags, modeCLI)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, logger := app.CommandContext(cmd, "search")

	results, err := app.Explorer.Search(ctx, query)
	if err != nil {
		logger.Debug(ctx, "search failed", "query", query, "error", err)
		return newCommandError("search", "searching for "+quoteOrBlank(query), err, explorer.SearchFailureMessage(err))
	}

	return renderCountries(cmd.OutOrStdout(), results, explorer.FoundMessage(len(results)), opts.jsonOutput)
}

func quoteOrBlank(value string) string {
	if strings.TrimSpace(value) == "" {
		return "a blank name"
	}
	return `"` + value + `"`
}
