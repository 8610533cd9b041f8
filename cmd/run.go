package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kekatzmann/jhu-covid19-analysis/external/jhu"
	"github.com/kekatzmann/jhu-covid19-analysis/pipeline"
	"github.com/kekatzmann/jhu-covid19-analysis/report"
)

const logPrefix = "cmd"

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the pipeline and write all_us.csv and all_global.csv",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithFields(log.Fields{"prefix": logPrefix, "run": uuid.New().String()})

		res, err := runPipeline()
		if err != nil {
			return err
		}

		outDir := viper.GetString("output.dir")
		usPath := filepath.Join(outDir, "all_us.csv")
		if err := report.WriteMonthlyCSV(usPath, res.US); err != nil {
			return fmt.Errorf("write %s: %w", usPath, err)
		}
		globalPath := filepath.Join(outDir, "all_global.csv")
		if err := report.WriteMonthlyCSV(globalPath, res.Global); err != nil {
			return fmt.Errorf("write %s: %w", globalPath, err)
		}

		logger.WithFields(log.Fields{
			"us_months":     len(res.US),
			"global_months": len(res.Global),
			"dir":           outDir,
		}).Info("wrote monthly tables")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// newSource picks the snapshot source: a local directory when
// source.dir is set, the JHU repository otherwise.
func newSource() jhu.Source {
	if dir := viper.GetString("source.dir"); dir != "" {
		return jhu.DirSource{Dir: dir}
	}
	return jhu.NewHTTPSource(viper.GetString("source.base_url"), viper.GetDuration("source.timeout"))
}

func runPipeline() (*pipeline.Result, error) {
	opts := pipeline.DefaultOptions()
	opts.MinConfirmed = viper.GetInt64("aggregate.min_confirmed")
	return pipeline.Run(newSource(), opts)
}
