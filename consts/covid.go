package consts

import "time"

const (
	// MinMonthlyConfirmed is the default floor for a month's summed
	// new-confirmed count. Months below it produce statistically
	// unstable fatality ratios and are dropped from the output.
	MinMonthlyConfirmed int64 = 100

	// RatioScale expresses the fatality ratio as deaths per 1000 cases.
	RatioScale float64 = 1000

	// UnassignedCounty is the sentinel Admin2 label JHU uses for cases
	// that cannot be attributed to a county.
	UnassignedCounty = "Unassigned"

	// UnitedStates is the Country_Region value of proper US county rows.
	UnitedStates = "US"
)

// EpochDate anchors MonthIndex: month zero is January 2020.
var EpochDate = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

var excludedCountries map[string]struct{}

func init() {
	excludedCountries = make(map[string]struct{})

	excludedCountries["Korea, North"] = struct{}{}
	excludedCountries["Antarctica"] = struct{}{}
}

// CountryExcluded reports whether a global Country/Region is excluded
// from the analysis. The list covers jurisdictions with unreliable or
// absent reporting.
func CountryExcluded(country string) bool {
	_, ok := excludedCountries[country]
	return ok
}
