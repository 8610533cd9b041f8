package schema

import "time"

// MonthlyAggregate is one output row: summed new cases and deaths for a
// location and calendar month, with the deaths-per-1000-cases ratio.
// RatioValid is false when the month's confirmed sum is zero. US rows
// aggregate per county and state; global rows per country.
type MonthlyAggregate struct {
	County          string  `json:"county,omitempty"`
	State           string  `json:"state,omitempty"`
	Country         string  `json:"country"`
	Month           string  `json:"month"`       // YYYY-MM
	MonthIndex      int     `json:"month_index"` // whole months since the analysis epoch
	SumNewConfirmed int64   `json:"new_confirmed"`
	SumNewDeaths    int64   `json:"new_deaths"`
	Ratio           float64 `json:"ratio,omitempty"`
	RatioValid      bool    `json:"-"`
}

// MonthLabel formats t's calendar month as YYYY-MM.
func MonthLabel(t time.Time) string {
	return t.Format("2006-01")
}

// MonthsSince returns the number of whole calendar months between epoch
// and t. Days within the month are ignored.
func MonthsSince(epoch, t time.Time) int {
	return (t.Year()-epoch.Year())*12 + int(t.Month()) - int(epoch.Month())
}
