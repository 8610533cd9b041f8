// Package analysis fits trends over the monthly aggregate tables.
package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

var ErrInsufficientData = fmt.Errorf("fewer than two months with a valid ratio")

// Trend is an ordinary least squares fit of the monthly fatality ratio
// against MonthIndex.
type Trend struct {
	N         int     // location-months used in the fit
	Slope     float64 // ratio change per month
	Intercept float64 // fitted ratio at the epoch month
	R2        float64
}

func (t Trend) String() string {
	return fmt.Sprintf("slope %+.4f per month, intercept %.2f, r² %.3f (n=%d)",
		t.Slope, t.Intercept, t.R2, t.N)
}

// RatioTrend regresses the deaths-per-1000-cases ratio on months elapsed
// since the analysis epoch. Rows without a valid ratio are skipped.
func RatioTrend(rows []schema.MonthlyAggregate) (Trend, error) {
	var xs, ys []float64
	for _, r := range rows {
		if !r.RatioValid {
			continue
		}
		xs = append(xs, float64(r.MonthIndex))
		ys = append(ys, r.Ratio)
	}
	if len(xs) < 2 {
		return Trend{}, ErrInsufficientData
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, intercept, slope)
	return Trend{N: len(xs), Slope: slope, Intercept: intercept, R2: r2}, nil
}
