package report

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"text/template"

	"github.com/kekatzmann/jhu-covid19-analysis/analysis"
	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

// PlotConfig styles one rendered plot. It travels as an explicit value
// so two plots in one run can differ; there is no process-wide theme.
type PlotConfig struct {
	Title      string
	Output     string // rendered image path
	Terminal   string // gnuplot terminal line, e.g. "pngcairo size 900,600"
	PointColor string
	LineColor  string
}

// DefaultPlotConfig returns the house style for a titled plot.
func DefaultPlotConfig(title, output string) PlotConfig {
	return PlotConfig{
		Title:      title,
		Output:     output,
		Terminal:   "pngcairo size 900,600",
		PointColor: "#56b4e9",
		LineColor:  "#e51e10",
	}
}

const ratioPlotTemplate = `
set terminal {{.Terminal}}
set output '{{.Output}}'

set title '{{.Title}}'
set xlabel 'Months since 2020-01'
set ylabel 'Deaths per 1000 cases'
set yrange [0:*]
set grid xtics ytics

f(x) = {{.Slope}} * x + {{.Intercept}}

plot '{{.DataPath}}' using 1:2 with points pt 7 ps 0.4 lc rgb '{{.PointColor}}' title 'location-month', \
     f(x) with lines lw 2 lc rgb '{{.LineColor}}' title 'least squares fit'
`

// RenderRatioPlot plots each location-month's fatality ratio against its
// MonthIndex together with the fitted trend line, then runs gnuplot.
func RenderRatioPlot(cfg PlotConfig, rows []schema.MonthlyAggregate, trend analysis.Trend) error {
	dataPath, err := writeRatioData(rows)
	if err != nil {
		return err
	}
	defer os.Remove(dataPath)

	return execTemplate(ratioPlotTemplate, struct {
		PlotConfig
		DataPath         string
		Slope, Intercept float64
	}{cfg, dataPath, trend.Slope, trend.Intercept})
}

// writeRatioData writes (MonthIndex, Ratio) pairs in gnuplot's
// tab-separated format to a temp file and returns its path. Months
// without a valid ratio are omitted.
func writeRatioData(rows []schema.MonthlyAggregate) (string, error) {
	f, err := os.CreateTemp("", "jhucovid.data.")
	if err != nil {
		return "", err
	}
	for _, r := range rows {
		if !r.RatioValid {
			continue
		}
		if _, err := fmt.Fprintf(f, "%d\t%.6f\n", r.MonthIndex, r.Ratio); err != nil {
			f.Close()
			os.Remove(f.Name())
			return "", err
		}
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// execTemplate executes the supplied template to a temp .gnuplot file
// and hands it to gnuplot.
func execTemplate(tmpl string, data interface{}) error {
	f, err := os.CreateTemp("", "jhucovid.gnuplot.")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	terr := template.Must(template.New("").Parse(tmpl)).Execute(f, data)
	cerr := f.Close()
	if terr != nil {
		return terr
	}
	if cerr != nil {
		return cerr
	}

	if _, err := exec.Command("gnuplot", f.Name()).Output(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) != 0 {
			return fmt.Errorf("%v: %q", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return err
	}
	return nil
}
