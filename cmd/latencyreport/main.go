package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/lint/ZooCanvas/src/analysis"
	"github.com/lint/ZooCanvas/src/experiment"
	"github.com/lint/ZooCanvas/src/logging"
	"github.com/lint/ZooCanvas/src/render"
)

func main() {
	var dir string
	var sortWrites bool
	var logLevel string
	flag.StringVar(&dir, "dir", experiment.DefaultDir, "Directory holding the experiment output files")
	flag.BoolVar(&sortWrites, "sort-writes", true, "List write-counts in ascending order")
	flag.StringVar(&logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	flag.Parse()
	if !logging.SetLogLevel(logLevel) {
		logging.Warnf("unknown log level %q, keeping info", logLevel)
	}

	if err := run(os.Stdout, dir, sortWrites); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(w io.Writer, dir string, sortWrites bool) error {
	opts := analysis.DefaultOptions()
	opts.SortWrites = sortWrites
	series, err := analysis.AnalyzeDir(dir, analysis.DuplicateOverwrite, opts)
	if err != nil {
		return err
	}
	writeTable(w, analysis.Summarize(series))
	fmt.Fprintf(w, "Total points: %d\n", analysis.PointCount(series))
	return nil
}

// writeTable prints one row per replica and write-count.
func writeTable(w io.Writer, sums []analysis.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Replica", "Writes", "N", "Mean (s)", "StdDev (s)", "Min (s)", "Max (s)"})
	for _, s := range sums {
		t.AppendRow(table.Row{
			render.StyleFor(s.Replica).Label,
			s.Writes,
			s.Samples,
			fmt.Sprintf("%.3f", s.MeanSec),
			fmt.Sprintf("%.3f", s.StdDevSec),
			fmt.Sprintf("%.3f", s.MinSec),
			fmt.Sprintf("%.3f", s.MaxSec),
		})
	}
	t.Render()
}
