// Package report writes the monthly aggregate tables to files: CSV
// exports and gnuplot renderings.
package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

var monthlyHeader = []string{
	"county", "state", "country", "month", "month_index",
	"new_confirmed", "new_deaths", "deaths_per_1000_cases",
}

// WriteMonthlyCSV writes a monthly aggregate table to path. The file is
// staged next to its destination and renamed into place, so an aborted
// run never leaves a truncated table behind. An unset ratio becomes an
// empty field.
func WriteMonthlyCSV(path string, rows []schema.MonthlyAggregate) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name()) // no-op once renamed

	w := csv.NewWriter(f)
	werr := w.Write(monthlyHeader)
	for _, r := range rows {
		if werr != nil {
			break
		}
		ratio := ""
		if r.RatioValid {
			ratio = strconv.FormatFloat(r.Ratio, 'f', 4, 64)
		}
		werr = w.Write([]string{
			r.County, r.State, r.Country, r.Month,
			strconv.Itoa(r.MonthIndex),
			strconv.FormatInt(r.SumNewConfirmed, 10),
			strconv.FormatInt(r.SumNewDeaths, 10),
			ratio,
		})
	}
	if werr == nil {
		w.Flush()
		werr = w.Error()
	}

	cerr := f.Close()
	if werr != nil {
		return werr
	}
	if cerr != nil {
		return cerr
	}
	return os.Rename(f.Name(), path)
}
