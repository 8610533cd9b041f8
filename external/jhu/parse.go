package jhu

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

// Date columns carry the upstream M/D/YY header format, e.g. "1/22/20".
const headerDateLayout = "1/2/06"

var ErrMissingColumn = fmt.Errorf("missing identifying column")

// Identifying columns per table variant. Only the ones mapped onto a
// schema.Location field survive parsing; the rest are dropped here.
var (
	usMetaColumns = []string{
		"UID", "iso2", "iso3", "code3", "FIPS", "Admin2",
		"Province_State", "Country_Region", "Lat", "Long_",
		"Combined_Key", "Population",
	}
	globalMetaColumns = []string{
		"Province/State", "Country/Region", "Lat", "Long",
	}
)

// Parse reads one raw JHU CSV into a wide table. Every header that is
// not a known identifying column must parse as a M/D/YY date; anything
// else aborts the parse. The US deaths variant additionally carries a
// Population column.
func Parse(r io.Reader, scope schema.Scope, kind schema.CountKind) (*schema.WideTable, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed reading header: %v", err)
	}

	meta := globalMetaColumns
	if scope == schema.ScopeUS {
		meta = usMetaColumns
	}
	metaSet := make(map[string]struct{}, len(meta))
	for _, name := range meta {
		metaSet[name] = struct{}{}
	}

	// Split the header into identifying columns and date columns.
	metaIdx := make(map[string]int)
	var dateIdx []int
	var dates []time.Time
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff") // BOM on the first column
		if _, ok := metaSet[name]; ok {
			metaIdx[name] = i
			continue
		}
		d, err := time.Parse(headerDateLayout, name)
		if err != nil {
			return nil, fmt.Errorf("column %q is neither an identifying column nor a M/D/YY date: %v", name, err)
		}
		dateIdx = append(dateIdx, i)
		dates = append(dates, d)
	}

	required := []string{"Province/State", "Country/Region"}
	if scope == schema.ScopeUS {
		required = []string{"UID", "Admin2", "Province_State", "Country_Region"}
	}
	for _, name := range required {
		if _, ok := metaIdx[name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
	}

	t := &schema.WideTable{Scope: scope, Kind: kind, Dates: dates}
	for line := 2; ; line++ {
		vals, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		var loc schema.Location
		if scope == schema.ScopeUS {
			loc = schema.Location{
				UID:     vals[metaIdx["UID"]],
				County:  vals[metaIdx["Admin2"]],
				State:   vals[metaIdx["Province_State"]],
				Country: vals[metaIdx["Country_Region"]],
			}
			if i, ok := metaIdx["Population"]; ok {
				pop, err := parseCount(vals[i])
				if err != nil {
					return nil, fmt.Errorf("line %d: population: %v", line, err)
				}
				loc.Population = pop
			}
		} else {
			loc = schema.Location{
				State:   vals[metaIdx["Province/State"]],
				Country: vals[metaIdx["Country/Region"]],
			}
		}

		cum := make([]int64, len(dateIdx))
		for j, ci := range dateIdx {
			n, err := parseCount(vals[ci])
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %v", line, header[ci], err)
			}
			cum[j] = n
		}
		t.Rows = append(t.Rows, schema.WideRow{Loc: loc, Cumulative: cum})
	}
	return t, nil
}

// parseCount parses a cumulative cell. Counts are integers, but some
// exports serialize them as floats ("123.0"); those are truncated.
func parseCount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad count %q: %v", s, err)
	}
	return int64(f), nil
}
