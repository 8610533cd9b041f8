package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

func monthly(idx int, ratio float64, valid bool) schema.MonthlyAggregate {
	return schema.MonthlyAggregate{Country: "Italy", MonthIndex: idx, Ratio: ratio, RatioValid: valid}
}

func TestRatioTrendExactLine(t *testing.T) {
	// y = 80 - 2x, a perfectly declining ratio.
	rows := []schema.MonthlyAggregate{
		monthly(0, 80, true),
		monthly(1, 78, true),
		monthly(2, 76, true),
		monthly(3, 74, true),
	}

	trend, err := RatioTrend(rows)
	require.NoError(t, err)
	assert.Equal(t, 4, trend.N)
	assert.InDelta(t, -2.0, trend.Slope, 1e-9)
	assert.InDelta(t, 80.0, trend.Intercept, 1e-9)
	assert.InDelta(t, 1.0, trend.R2, 1e-9)
}

func TestRatioTrendSkipsInvalidRatios(t *testing.T) {
	rows := []schema.MonthlyAggregate{
		monthly(0, 80, true),
		monthly(1, 9999, false), // zero-confirmed month, no ratio
		monthly(2, 76, true),
	}

	trend, err := RatioTrend(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, trend.N)
	assert.InDelta(t, -2.0, trend.Slope, 1e-9)
}

func TestRatioTrendInsufficientData(t *testing.T) {
	_, err := RatioTrend([]schema.MonthlyAggregate{monthly(0, 80, true)})
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = RatioTrend(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
