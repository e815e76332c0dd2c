package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/countryexplorer/internal/app/explorer"
	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
)

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &lookupOptions{}

	cmd := &cobra.Command{
		Use:   "show <code>",
		Short: "Show a country's details and a fun fact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the country details as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, rootFlags *rootFlags, code string, opts *lookupOptions) error {
	app, err := newAppContext(cmd, rootFlags, modeCLI)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, logger := app.CommandContext(cmd, "show")

	detail, err := app.Explorer.Detail(ctx, code)
	if err != nil {
		logger.Debug(ctx, "detail lookup failed", "code", code, "error", err)
		return newCommandError("show", fmt.Sprintf("looking up country %q", code), err, explorer.DetailFailureMessage(err)+" Run 'countryexplorer search <name>' to find its code.")
	}

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), showJSONPayload{Country: detail.Country, FunFact: detail.FunFact})
	}
	renderShow(cmd, detail)
	return nil
}

type showJSONPayload struct {
	country.Country
	FunFact string `json:"fun_fact"`
}

func renderShow(cmd *cobra.Command, detail explorer.Detail) {
	c := detail.Country
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s\n", flagged(c))
	if c.Name.Official != "" && c.Name.Official != c.Name.Common {
		fmt.Fprintf(out, "Official:   %s\n", c.Name.Official)
	}
	fmt.Fprintf(out, "Code:       %s\n", c.Code())
	fmt.Fprintf(out, "Capital:    %s\n", c.PrimaryCapital())
	fmt.Fprintf(out, "Region:     %s\n", orNA(c.Region))
	fmt.Fprintf(out, "Subregion:  %s\n", c.SubregionOrNA())
	fmt.Fprintf(out, "Population: %s\n", c.FormattedPopulation())
	fmt.Fprintf(out, "Languages:  %s\n", c.LanguageList())
	fmt.Fprintf(out, "Currencies: %s\n", c.CurrencyList())
	fmt.Fprintf(out, "Timezones:  %s\n", c.TimezoneList())
	fmt.Fprintf(out, "Flag:       %s\n", c.FlagReference())
	fmt.Fprintf(out, "\nFun Fact:\n  %s\n", detail.FunFact)
}
