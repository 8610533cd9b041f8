package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

func TestWriteMonthlyCSV(t *testing.T) {
	rows := []schema.MonthlyAggregate{
		{
			County: "Cook", State: "Illinois", Country: "US",
			Month: "2020-03", MonthIndex: 2,
			SumNewConfirmed: 100, SumNewDeaths: 5,
			Ratio: 50, RatioValid: true,
		},
		{
			Country: "Italy", Month: "2020-04", MonthIndex: 3,
			SumNewConfirmed: 0, SumNewDeaths: 3,
		},
	}

	path := filepath.Join(t.TempDir(), "all_us.csv")
	require.NoError(t, WriteMonthlyCSV(path, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, monthlyHeader, recs[0])
	assert.Equal(t, []string{"Cook", "Illinois", "US", "2020-03", "2", "100", "5", "50.0000"}, recs[1])
	// An unset ratio serializes as an empty field.
	assert.Equal(t, "", recs[2][7])
	assert.Equal(t, "Italy", recs[2][2])
}

func TestWriteMonthlyCSVEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "all_global.csv")
	require.NoError(t, WriteMonthlyCSV(path, nil))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1) // header only
}

func TestWriteMonthlyCSVBadDir(t *testing.T) {
	err := WriteMonthlyCSV(filepath.Join(t.TempDir(), "missing", "out.csv"), nil)
	assert.Error(t, err)
}
