package schema

import "time"

// Scope distinguishes the two dataset granularities published by JHU.
type Scope string

const (
	ScopeUS     Scope = "us"
	ScopeGlobal Scope = "global"
)

// CountKind distinguishes the two cumulative measures.
type CountKind string

const (
	Confirmed CountKind = "confirmed"
	Deaths    CountKind = "deaths"
)

// WideTable is a raw JHU time-series table: one row per location and one
// column per calendar date holding the cumulative count as of that date.
// Within a row counts are non-decreasing in well-formed source data, but
// upstream corrections do violate this and are not defended against.
type WideTable struct {
	Scope Scope
	Kind  CountKind
	Dates []time.Time
	Rows  []WideRow
}

// WideRow pairs a location with its cumulative counts, parallel to the
// owning table's Dates.
type WideRow struct {
	Loc        Location
	Cumulative []int64
}
