package pipeline

import "github.com/kekatzmann/jhu-covid19-analysis/schema"

// Melt converts a wide table into one observation per (location, date)
// cell. This is a pure fan-out with no filtering: the result always
// holds exactly len(t.Rows) * len(t.Dates) observations.
func Melt(t *schema.WideTable) []schema.DailyObservation {
	obs := make([]schema.DailyObservation, 0, len(t.Rows)*len(t.Dates))
	for _, row := range t.Rows {
		for i, d := range t.Dates {
			obs = append(obs, schema.DailyObservation{
				Loc:        row.Loc,
				Date:       d,
				Cumulative: row.Cumulative[i],
			})
		}
	}
	return obs
}
