package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/countryexplorer/internal/app/explorer"
)

func newRegionsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &lookupOptions{}

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "Count the countries in every region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegions(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the counts as JSON")

	return cmd
}

func runRegions(cmd *cobra.Command, rootFlags *rootFlags, opts *lookupOptions) error {
	app, err := newAppContext(cmd, rootFlags, modeCLI)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, logger := app.CommandContext(cmd, "regions")

	start := time.Now()
	counts, err := app.Explorer.RegionCounts(ctx)
	if err != nil {
		return newCommandError("regions", "counting countries per region", err, explorer.RegionFailureMessage(err))
	}
	logger.Debug(ctx, "region counts loaded", "elapsed", time.Since(start))

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), counts)
	}

	total := 0
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("REGION", "COUNTRIES", "TOOK").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}
			return cellStyle
		})
	for _, c := range counts {
		total += c.Count
		t.Row(c.Region.String(), humanize.Comma(int64(c.Count)), c.Elapsed.Round(time.Millisecond).String())
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	fmt.Fprintf(cmd.OutOrStdout(), "%s countries across %d regions.\n", humanize.Comma(int64(total)), len(counts))
	return nil
}
