package pipeline

import (
	"sort"
	"time"

	"github.com/kekatzmann/jhu-covid19-analysis/consts"
	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

// Options control the monthly aggregation.
type Options struct {
	// Epoch anchors MonthIndex; month zero is the epoch's month.
	Epoch time.Time
	// MinConfirmed drops months whose summed new-confirmed count is too
	// small to give a stable fatality ratio.
	MinConfirmed int64
	// RatioScale expresses the ratio as deaths per this many cases.
	RatioScale float64
}

// DefaultOptions returns the parameters of the published analysis.
func DefaultOptions() Options {
	return Options{
		Epoch:        consts.EpochDate,
		MinConfirmed: consts.MinMonthlyConfirmed,
		RatioScale:   consts.RatioScale,
	}
}

// AggregateMonthly groups joined daily records by location and calendar
// month and sums their deltas. US rows group per county and state;
// global rows group per country, folding provinces together. Unknown
// deltas (the first observation of a location) are skipped by the
// accumulator, not zeroed. Months whose confirmed sum stays under
// opts.MinConfirmed are dropped; the fatality ratio is left unset when a
// month's confirmed sum is zero. Output order is deterministic.
func AggregateMonthly(rows []schema.JoinedDaily, scope schema.Scope, opts Options) []schema.MonthlyAggregate {
	type groupKey struct {
		county, state, country, month string
	}
	type acc struct {
		monthIndex int
		confirmed  int64
		deaths     int64
	}
	groups := make(map[groupKey]*acc)

	for _, r := range rows {
		k := groupKey{country: r.Loc.Country, month: schema.MonthLabel(r.Date)}
		if scope == schema.ScopeUS {
			k.county = r.Loc.County
			k.state = r.Loc.State
		}
		g := groups[k]
		if g == nil {
			g = &acc{monthIndex: schema.MonthsSince(opts.Epoch, r.Date)}
			groups[k] = g
		}
		if r.ConfirmedKnown {
			g.confirmed += r.NewConfirmed
		}
		if r.DeathsKnown {
			g.deaths += r.NewDeaths
		}
	}

	out := make([]schema.MonthlyAggregate, 0, len(groups))
	for k, g := range groups {
		if g.confirmed < opts.MinConfirmed {
			continue
		}
		m := schema.MonthlyAggregate{
			County:          k.county,
			State:           k.state,
			Country:         k.country,
			Month:           k.month,
			MonthIndex:      g.monthIndex,
			SumNewConfirmed: g.confirmed,
			SumNewDeaths:    g.deaths,
		}
		if g.confirmed != 0 {
			m.Ratio = float64(g.deaths) * opts.RatioScale / float64(g.confirmed)
			m.RatioValid = true
		}
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Country != b.Country {
			return a.Country < b.Country
		}
		if a.State != b.State {
			return a.State < b.State
		}
		if a.County != b.County {
			return a.County < b.County
		}
		return a.Month < b.Month
	})
	return out
}
