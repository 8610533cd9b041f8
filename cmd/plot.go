package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kekatzmann/jhu-covid19-analysis/analysis"
	"github.com/kekatzmann/jhu-covid19-analysis/report"
	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render fatality-ratio plots with the fitted trend line",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runPipeline()
		if err != nil {
			return err
		}

		outDir := viper.GetString("output.dir")
		for _, ds := range []struct {
			title string
			file  string
			rows  []schema.MonthlyAggregate
		}{
			{"US Counties: Deaths per 1000 Cases by Month", "all_us.png", res.US},
			{"Countries: Deaths per 1000 Cases by Month", "all_global.png", res.Global},
		} {
			t, err := analysis.RatioTrend(ds.rows)
			if err != nil {
				return fmt.Errorf("%s: %w", ds.file, err)
			}
			cfg := report.DefaultPlotConfig(ds.title, filepath.Join(outDir, ds.file))
			if err := report.RenderRatioPlot(cfg, ds.rows, t); err != nil {
				return fmt.Errorf("render %s: %w", ds.file, err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)
}
