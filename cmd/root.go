// Package cmd wires the analysis pipeline into a CLI.
package cmd

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/kekatzmann/jhu-covid19-analysis/consts"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "jhucovid",
	Short: "Monthly case-fatality analysis over the JHU COVID-19 time series",
	Long: `jhucovid reshapes the JHU CSSE cumulative case and death tables into
tidy per-day deltas, aggregates them to calendar months, and derives a
deaths-per-1000-cases ratio per location and month.`,
}

// Execute is the entry point called by main.main().
func Execute() {
	cobra.OnInitialize(loadConfig, initLog)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "[optional] path of configuration file")
}

func loadConfig() {
	// Config from file
	viper.SetConfigType("yaml")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
	}
	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file. Read config from env.")
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("jhucovid")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("source.timeout", "60s")
	viper.SetDefault("output.dir", ".")
	viper.SetDefault("aggregate.min_confirmed", consts.MinMonthlyConfirmed)
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}
