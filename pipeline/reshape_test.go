package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

func TestMeltFanOut(t *testing.T) {
	in := wideTable(schema.ScopeGlobal, schema.Confirmed, days(3),
		schema.WideRow{Loc: schema.Location{Country: "Italy"}, Cumulative: []int64{1, 2, 3}},
		schema.WideRow{Loc: schema.Location{Country: "Spain"}, Cumulative: []int64{4, 5, 6}},
	)

	obs := Melt(in)
	require.Len(t, obs, len(in.Rows)*len(in.Dates))

	// Pivoting back by (location, date) reconstructs every cell.
	pivot := make(map[string]map[time.Time]int64)
	for _, o := range obs {
		k := o.Loc.Key()
		if pivot[k] == nil {
			pivot[k] = make(map[time.Time]int64)
		}
		pivot[k][o.Date] = o.Cumulative
	}
	for _, row := range in.Rows {
		for i, d := range in.Dates {
			assert.Equal(t, row.Cumulative[i], pivot[row.Loc.Key()][d])
		}
	}
}

func TestMeltEmptyTable(t *testing.T) {
	in := wideTable(schema.ScopeUS, schema.Confirmed, days(3))
	assert.Empty(t, Melt(in))
}
