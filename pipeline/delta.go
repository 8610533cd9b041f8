package pipeline

import (
	"sort"

	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

// ComputeDeltas derives per-day new counts from cumulative counts.
//
// The observations are stable-sorted with the location key as primary
// key, so each location's series is contiguous and internally
// date-ordered; the walk below then never subtracts across a location
// boundary, however the input interleaved its locations. The first
// observation of each location has no previous day and stays unknown.
// Cumulative counts that decrease day-over-day (upstream corrections)
// yield negative deltas and pass through unmodified.
func ComputeDeltas(obs []schema.DailyObservation) []schema.DailyDelta {
	sorted := make([]schema.DailyObservation, len(obs))
	copy(sorted, obs)
	sort.SliceStable(sorted, func(i, j int) bool {
		ki, kj := sorted[i].Loc.Key(), sorted[j].Loc.Key()
		if ki != kj {
			return ki < kj
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	deltas := make([]schema.DailyDelta, len(sorted))
	for i, o := range sorted {
		d := schema.DailyDelta{Loc: o.Loc, Date: o.Date, Cumulative: o.Cumulative}
		if i > 0 && sorted[i-1].Loc.Key() == o.Loc.Key() {
			d.New = o.Cumulative - sorted[i-1].Cumulative
			d.Known = true
		}
		deltas[i] = d
	}
	return deltas
}
