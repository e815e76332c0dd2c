// Package country holds the read-only country record returned by the
// country-data service together with the small amount of presentation logic
// shared by every screen that shows one.
package country

import (
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// NotAvailable is rendered in place of attributes the upstream omitted.
const NotAvailable = "N/A"

// Name carries the common and official forms of a country name.
type Name struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Flags references the flag artwork hosted by the country-data service.
type Flags struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
	Alt string `json:"alt,omitempty"`
}

// Currency describes one entry of the currency mapping.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Country is one record from the country-data service. It is decoded verbatim
// and never mutated locally.
type Country struct {
	Name       Name                `json:"name"`
	CCA2       string              `json:"cca2"`
	CCA3       string              `json:"cca3"`
	Capital    []string            `json:"capital"`
	Region     string              `json:"region"`
	Subregion  string              `json:"subregion"`
	Population int64               `json:"population"`
	Flag       string              `json:"flag"`
	Flags      Flags               `json:"flags"`
	Languages  map[string]string   `json:"languages"`
	Currencies map[string]Currency `json:"currencies"`
	Timezones  []string            `json:"timezones"`
}

// Code returns the identifier used for detail navigation.
func (c Country) Code() string {
	if c.CCA3 != "" {
		return c.CCA3
	}
	return c.CCA2
}

// DisplayName returns the common name, falling back to the official one.
func (c Country) DisplayName() string {
	if c.Name.Common != "" {
		return c.Name.Common
	}
	if c.Name.Official != "" {
		return c.Name.Official
	}
	return c.Code()
}

// PrimaryCapital returns the first listed capital or N/A.
func (c Country) PrimaryCapital() string {
	for _, capital := range c.Capital {
		if strings.TrimSpace(capital) != "" {
			return capital
		}
	}
	return NotAvailable
}

// FormattedPopulation renders the population with thousands separators.
func (c Country) FormattedPopulation() string {
	population := c.Population
	if population < 0 {
		population = 0
	}
	return humanize.Comma(population)
}

// LanguageList joins the language display names, ordered by language code.
func (c Country) LanguageList() string {
	if len(c.Languages) == 0 {
		return NotAvailable
	}
	codes := sortedKeys(c.Languages)
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, c.Languages[code])
	}
	return strings.Join(names, ", ")
}

// CurrencyList joins the currency names, ordered by currency code.
func (c Country) CurrencyList() string {
	if len(c.Currencies) == 0 {
		return NotAvailable
	}
	codes := make([]string, 0, len(c.Currencies))
	for code := range c.Currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	names := make([]string, 0, len(codes))
	for _, code := range codes {
		cur := c.Currencies[code]
		name := cur.Name
		if name == "" {
			name = code
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

// TimezoneList joins the timezones in upstream order.
func (c Country) TimezoneList() string {
	if len(c.Timezones) == 0 {
		return NotAvailable
	}
	return strings.Join(c.Timezones, ", ")
}

// SubregionOrNA returns the subregion or N/A.
func (c Country) SubregionOrNA() string {
	if strings.TrimSpace(c.Subregion) == "" {
		return NotAvailable
	}
	return c.Subregion
}

// FlagReference returns the best available flag image URL.
func (c Country) FlagReference() string {
	if c.Flags.SVG != "" {
		return c.Flags.SVG
	}
	if c.Flags.PNG != "" {
		return c.Flags.PNG
	}
	return NotAvailable
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
