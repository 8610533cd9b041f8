// Package pipeline turns the wide cumulative JHU tables into tidy
// monthly case-fatality aggregates: normalize, melt, per-location
// deltas, confirmed/deaths join, monthly aggregation.
package pipeline

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/kekatzmann/jhu-covid19-analysis/external/jhu"
	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

const logPrefix = "pipeline"

// Result holds the two monthly output tables of one run.
type Result struct {
	US     []schema.MonthlyAggregate
	Global []schema.MonthlyAggregate
}

// Run executes the full transformation for both dataset scopes from a
// fresh snapshot supplied by src. Every derived table is recomputed from
// the raw tables; nothing persists between runs.
func Run(src jhu.Source, opts Options) (*Result, error) {
	us, err := runScope(src, schema.ScopeUS, opts)
	if err != nil {
		return nil, fmt.Errorf("us dataset: %w", err)
	}
	global, err := runScope(src, schema.ScopeGlobal, opts)
	if err != nil {
		return nil, fmt.Errorf("global dataset: %w", err)
	}
	return &Result{US: us, Global: global}, nil
}

func runScope(src jhu.Source, scope schema.Scope, opts Options) ([]schema.MonthlyAggregate, error) {
	confirmedTable, err := src.Load(scope, schema.Confirmed)
	if err != nil {
		return nil, err
	}
	deathsTable, err := src.Load(scope, schema.Deaths)
	if err != nil {
		return nil, err
	}

	if scope == schema.ScopeUS {
		confirmedTable = NormalizeUS(confirmedTable)
		deathsTable = NormalizeUS(deathsTable)
	} else {
		confirmedTable = NormalizeGlobal(confirmedTable)
		deathsTable = NormalizeGlobal(deathsTable)
	}

	confirmed := ComputeDeltas(Melt(confirmedTable))
	deaths := ComputeDeltas(Melt(deathsTable))
	joined := JoinDeltas(confirmed, deaths)
	monthly := AggregateMonthly(joined, scope, opts)

	log.WithFields(log.Fields{
		"prefix":    logPrefix,
		"scope":     scope,
		"locations": len(confirmedTable.Rows),
		"daily":     len(joined),
		"monthly":   len(monthly),
	}).Info("aggregated dataset")
	return monthly, nil
}
