package schema

import "time"

// DailyObservation is one cell of a wide table in long form.
type DailyObservation struct {
	Loc        Location
	Date       time.Time
	Cumulative int64
}

// DailyDelta augments an observation with the day-over-day change of its
// cumulative count. Known is false on the first observation of a
// location, where no previous day exists to diff against.
type DailyDelta struct {
	Loc        Location
	Date       time.Time
	Cumulative int64
	New        int64
	Known      bool
}

// JoinedDaily merges the confirmed and death deltas of one location and
// day. DeathsKnown is false when no death record matched the join key or
// when the matched delta itself was unknown.
type JoinedDaily struct {
	Loc            Location
	Date           time.Time
	NewConfirmed   int64
	ConfirmedKnown bool
	NewDeaths      int64
	DeathsKnown    bool
}
