package validation

import (
	"strings"

	"github.com/alexisbeaulieu97/countryexplorer/internal/domain/country"
	apperrors "github.com/alexisbeaulieu97/countryexplorer/pkg/errors"
)

// Messages shown when input is rejected before a lookup.
const (
	MsgEmptyQuery    = "Please enter a country name."
	MsgInvalidCode   = "Please provide a two or three letter country code."
	MsgUnknownRegion = "Please choose Africa, Americas, Asia, Europe or Oceania."
)

// SearchQuery rejects blank or whitespace-only country name queries and
// returns the trimmed query otherwise.
func SearchQuery(query string) (string, error) {
	if err := Instance().Var(query, "notblank"); err != nil {
		return "", apperrors.NewValidationError("query", MsgEmptyQuery, err)
	}
	return strings.TrimSpace(query), nil
}

// CountryCode rejects codes that are not ISO alpha-2, alpha-3 or numeric.
func CountryCode(code string) (string, error) {
	if err := Instance().Var(code, "notblank,country_code"); err != nil {
		return "", apperrors.NewValidationError("code", MsgInvalidCode, err)
	}
	return strings.ToUpper(strings.TrimSpace(code)), nil
}

// Region rejects values outside the region enumeration.
func Region(region country.Region) error {
	if !region.Valid() {
		return apperrors.NewValidationError("region", MsgUnknownRegion, nil)
	}
	return nil
}
