package pipeline

import (
	"time"

	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

// JoinDeltas left-joins confirmed deltas onto death deltas by
// (location key, date). Confirmed rows without a death partner keep
// DeathsKnown false instead of raising an error. Keys are not
// deduplicated: duplicate death records under one key fan the join out,
// one output row per match.
func JoinDeltas(confirmed, deaths []schema.DailyDelta) []schema.JoinedDaily {
	type joinKey struct {
		loc  string
		date time.Time
	}
	byKey := make(map[joinKey][]schema.DailyDelta, len(deaths))
	for _, d := range deaths {
		k := joinKey{d.Loc.Key(), d.Date}
		byKey[k] = append(byKey[k], d)
	}

	joined := make([]schema.JoinedDaily, 0, len(confirmed))
	for _, c := range confirmed {
		base := schema.JoinedDaily{
			Loc:            c.Loc,
			Date:           c.Date,
			NewConfirmed:   c.New,
			ConfirmedKnown: c.Known,
		}
		matches := byKey[joinKey{c.Loc.Key(), c.Date}]
		if len(matches) == 0 {
			joined = append(joined, base)
			continue
		}
		for _, d := range matches {
			j := base
			j.NewDeaths = d.New
			j.DeathsKnown = d.Known
			joined = append(joined, j)
		}
	}
	return joined
}
