// ZooCanvas replication latency grapher.
//
// Reads the files left in experiment_output/ by the ZooCanvas write experiment (one
// completion timestamp per client batch, one last-update timestamp per replica) and
// plots, for every batch size, how long each replica took to see the last update.
//
// Run without flags to reproduce the stock experiment graph: experiment_output/ in,
// graph.png (300 dpi) out. Every error is fatal; either the full plot is written or
// nothing is.
//
// Design notes:
//   - Grid is fixed to three replicas and three repetitions per batch size; a missing
//     file anywhere in the grid aborts the run instead of plotting a partial picture.
//   - Points are plotted in the order write-counts were first seen in the directory
//     listing unless --sort-writes is given.
//   - --summary-json adds a per-replica/per-batch-size summary next to the graph.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lint/ZooCanvas/src/analysis"
	"github.com/lint/ZooCanvas/src/experiment"
	"github.com/lint/ZooCanvas/src/logging"
	"github.com/lint/ZooCanvas/src/render"
)

type config struct {
	dir         string
	out         string
	dpi         float64
	renderer    string
	duplicates  string
	sortWrites  bool
	caption     string
	summaryJSON string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.dir, "dir", experiment.DefaultDir, "Directory holding the experiment output files")
	flag.StringVar(&cfg.out, "out", render.DefaultOutput, "Output PNG path (overwritten)")
	flag.Float64Var(&cfg.dpi, "dpi", render.DefaultDPI, "Output resolution in dots per inch")
	flag.StringVar(&cfg.renderer, "renderer", "chart", "Chart backend (chart|gonum)")
	flag.StringVar(&cfg.duplicates, "duplicates", "overwrite", "What to do when two files map to the same key (overwrite|reject)")
	flag.BoolVar(&cfg.sortWrites, "sort-writes", false, "Plot write-counts in ascending order instead of directory order")
	flag.StringVar(&cfg.caption, "caption", "", "Optional caption stamped at the bottom of the graph")
	flag.StringVar(&cfg.summaryJSON, "summary-json", "", "Path to write a JSON latency summary (optional)")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	if !logging.SetLogLevel(*logLevel) {
		logging.Warnf("unknown log level %q, keeping info", *logLevel)
	}
	if err := run(cfg); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
	reportSaved(os.Stdout, cfg.out)
}

// reportSaved prints the success line the experiment scripts look for.
func reportSaved(w io.Writer, path string) {
	fmt.Fprintf(w, "saved graph to %s\n", path)
}

func run(cfg config) error {
	defer logging.TimeTrack(time.Now(), "run")
	if !(cfg.dpi > 0) {
		return fmt.Errorf("%w: -dpi %v must be > 0", render.ErrInvalidSize, cfg.dpi)
	}
	policy, err := analysis.ParseDuplicatePolicy(cfg.duplicates)
	if err != nil {
		return err
	}
	r, err := render.New(cfg.renderer)
	if err != nil {
		return err
	}
	opts := analysis.DefaultOptions()
	opts.SortWrites = cfg.sortWrites

	ds, err := analysis.LoadDir(cfg.dir, policy)
	if err != nil {
		return err
	}
	series, err := analysis.BuildSeries(ds, opts)
	if err != nil {
		return err
	}
	logging.Infof("[analysis] built %d points across %d replicas", analysis.PointCount(series), len(series))

	p := render.DefaultPlot(series)
	p.DPI = cfg.dpi
	p.Caption = cfg.caption
	graph, err := render.Encode(r, p)
	if err != nil {
		return err
	}
	// graph goes last; a failed write removes the summary again
	if cfg.summaryJSON != "" {
		if err := writeSummaryJSON(cfg.summaryJSON, cfg.dir, opts, ds.Len(), analysis.Summarize(series)); err != nil {
			return err
		}
	}
	if err := os.WriteFile(cfg.out, graph, 0o644); err != nil {
		if cfg.summaryJSON != "" {
			os.Remove(cfg.summaryJSON)
		}
		return fmt.Errorf("write graph: %w", err)
	}
	w, h := p.PixelSize()
	logging.Debugf("[render] wrote %s (%dx%d px, %.0f dpi, %d points)", cfg.out, w, h, p.DPI, p.Points())
	return nil
}

type summaryReport struct {
	GeneratedAt string             `json:"generated_at"`
	SourceDir   string             `json:"source_dir"`
	Replicas    int                `json:"replicas"`
	Experiments int                `json:"experiments"`
	WriteCounts int                `json:"write_counts"`
	Summaries   []analysis.Summary `json:"summaries"`
}

// writeSummaryJSON writes the per replica/write-count latency summary as indented JSON.
func writeSummaryJSON(path, dir string, opts analysis.Options, writeCounts int, sums []analysis.Summary) error {
	if sums == nil {
		sums = []analysis.Summary{}
	}
	rep := summaryReport{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339Nano),
		SourceDir:   dir,
		Replicas:    opts.Replicas,
		Experiments: opts.Experiments,
		WriteCounts: writeCounts,
		Summaries:   sums,
	}
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write summary json: %w", err)
	}
	logging.Infof("[analysis] wrote summary JSON: %s", path)
	return nil
}
