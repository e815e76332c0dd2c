package explorer

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
	apperrors "github.com/alexisbeaulieu97/countryexplorer/pkg/errors"
)

// User-facing outcome messages shared by the terminal UI and the CLI.
const (
	MsgSearchIdle      = "Start by searching for a country above!"
	MsgNoCountries     = "No countries found. Try another search."
	MsgSearchNetwork   = "Failed to fetch countries. Check your connection and try again."
	MsgRegionFailed    = "Failed to fetch countries by region."
	MsgCountryNotFound = "Country not found."
)

// FoundMessage reports the size of a name search result.
func FoundMessage(n int) string {
	if n == 1 {
		return "1 country found!"
	}
	return fmt.Sprintf("%d countries found!", n)
}

// RegionLoadedMessage reports the size of a region result.
func RegionLoadedMessage(n int, region country.Region) string {
	return fmt.Sprintf("%d countries in %s loaded.", n, region)
}

// ExploringMessage announces navigation to a country.
func ExploringMessage(name string) string {
	return fmt.Sprintf("Exploring %s", name)
}

// SearchFailureMessage explains why a name search produced nothing.
func SearchFailureMessage(err error) string {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case apperrors.IsNetwork(err):
		return MsgSearchNetwork
	default:
		return MsgNoCountries
	}
}

// RegionFailureMessage explains why a region lookup produced nothing.
func RegionFailureMessage(err error) string {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	return MsgRegionFailed
}

// DetailFailureMessage explains why the detail screen has no country. Every
// failure renders the same terminal state.
func DetailFailureMessage(error) string {
	return MsgCountryNotFound
}
