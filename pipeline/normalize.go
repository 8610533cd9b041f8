package pipeline

import (
	"github.com/kekatzmann/jhu-covid19-analysis/consts"
	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

// NormalizeUS drops county rows that cannot be attributed to a real US
// county: the "Unassigned" sentinel and the territories the county table
// carries under other Country_Region values. Disqualified rows are
// excluded silently.
func NormalizeUS(t *schema.WideTable) *schema.WideTable {
	out := &schema.WideTable{Scope: t.Scope, Kind: t.Kind, Dates: t.Dates}
	for _, row := range t.Rows {
		if row.Loc.County == consts.UnassignedCounty {
			continue
		}
		if row.Loc.Country != consts.UnitedStates {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// NormalizeGlobal drops countries on the exclusion list.
func NormalizeGlobal(t *schema.WideTable) *schema.WideTable {
	out := &schema.WideTable{Scope: t.Scope, Kind: t.Kind, Dates: t.Dates}
	for _, row := range t.Rows {
		if consts.CountryExcluded(row.Loc.Country) {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}
