package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/countryexplorer/internal/app/explorer"
	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
	perrors "github.com/alexisbeaulieu97/countryexplorer/pkg/errors"
)

func newRegionCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &lookupOptions{}

	cmd := &cobra.Command{
		Use:       "region <region>",
		Short:     "List the countries of a region",
		Args:      cobra.ExactArgs(1),
		ValidArgs: regionArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegion(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the region's countries as JSON")

	return cmd
}

func runRegion(cmd *cobra.Command, rootFlags *rootFlags, name string, opts *lookupOptions) error {
	region, err := country.ParseRegion(name)
	if err != nil {
		return newCommandError("region", "parsing region", perrors.NewValidationError("region", err.Error(), err), "Choose one of: Africa, Americas, Asia, Europe, Oceania.")
	}

	app, err := newAppContext(cmd, rootFlags, modeCLI)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, logger := app.CommandContext(cmd, "region")

	results, err := app.Explorer.Region(ctx, region)
	if err != nil {
		logger.Debug(ctx, "region lookup failed", "region", region, "error", err)
		return newCommandError("region", "loading "+region.String(), err, explorer.RegionFailureMessage(err))
	}

	return renderCountries(cmd.OutOrStdout(), results, explorer.RegionLoadedMessage(len(results), region), opts.jsonOutput)
}

func regionArgs() []string {
	regions := country.Regions()
	args := make([]string, 0, len(regions))
	for _, r := range regions {
		args = append(args, r.String())
	}
	return args
}
