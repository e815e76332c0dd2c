package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
)

var (
	headerCellStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle       = lipgloss.NewStyle().Padding(0, 1)
)

func writeJSON(w io.Writer, payload any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// countryTable renders one row per country in result order.
func countryTable(countries []country.Country) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CODE", "NAME", "CAPITAL", "REGION", "POPULATION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}
			return cellStyle
		})

	for _, c := range countries {
		t.Row(c.Code(), flagged(c), c.PrimaryCapital(), orNA(c.Region), c.FormattedPopulation())
	}
	return t.Render()
}

func renderCountries(w io.Writer, countries []country.Country, summary string, jsonOutput bool) error {
	if jsonOutput {
		if countries == nil {
			countries = []country.Country{}
		}
		return writeJSON(w, countries)
	}
	fmt.Fprintln(w, countryTable(countries))
	fmt.Fprintln(w, summary)
	return nil
}

func flagged(c country.Country) string {
	if c.Flag == "" {
		return c.DisplayName()
	}
	return c.Flag + " " + c.DisplayName()
}

func orNA(value string) string {
	if value == "" {
		return country.NotAvailable
	}
	return value
}
