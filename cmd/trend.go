package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kekatzmann/jhu-covid19-analysis/analysis"
	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Fit the fatality-ratio trend for both datasets",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runPipeline()
		if err != nil {
			return err
		}

		for _, ds := range []struct {
			name string
			rows []schema.MonthlyAggregate
		}{
			{"US counties", res.US},
			{"global countries", res.Global},
		} {
			t, err := analysis.RatioTrend(ds.rows)
			if err != nil {
				return fmt.Errorf("%s: %w", ds.name, err)
			}
			fmt.Printf("%-18s %s\n", ds.name+":", t)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)
}
