package country

import (
	"fmt"
	"strings"
)

// Region is one of the five geographic groupings accepted by the region lookup.
type Region string

const (
	RegionAfrica   Region = "Africa"
	RegionAmericas Region = "Americas"
	RegionAsia     Region = "Asia"
	RegionEurope   Region = "Europe"
	RegionOceania  Region = "Oceania"
)

// Regions lists every region in selector order.
func Regions() []Region {
	return []Region{RegionAfrica, RegionAmericas, RegionAsia, RegionEurope, RegionOceania}
}

// ParseRegion matches a region name case-insensitively.
func ParseRegion(value string) (Region, error) {
	trimmed := strings.TrimSpace(value)
	for _, r := range Regions() {
		if strings.EqualFold(string(r), trimmed) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown region %q (expected one of %s)", value, strings.Join(regionNames(), ", "))
}

// Valid reports whether r is a member of the enumeration.
func (r Region) Valid() bool {
	for _, candidate := range Regions() {
		if r == candidate {
			return true
		}
	}
	return false
}

func (r Region) String() string {
	return string(r)
}

func regionNames() []string {
	names := make([]string, 0, len(Regions()))
	for _, r := range Regions() {
		names = append(names, string(r))
	}
	return names
}
