package analysis

import (
	"github.com/lint/ZooCanvas/src/experiment"
	"github.com/lint/ZooCanvas/src/logging"
	"github.com/lint/ZooCanvas/src/types"
)

// LoadDir scans an experiment output directory into a new Dataset.
func LoadDir(dir string, policy DuplicatePolicy) (*Dataset, error) {
	ds := NewDataset(policy)
	if err := experiment.Scan(dir, ds.Insert); err != nil {
		return nil, err
	}
	logging.Infof("[analysis] aggregated %d write-counts from %s", ds.Len(), dir)
	return ds, nil
}

// AnalyzeDir is LoadDir followed by BuildSeries.
func AnalyzeDir(dir string, policy DuplicatePolicy, opts Options) ([]types.Series, error) {
	ds, err := LoadDir(dir, policy)
	if err != nil {
		return nil, err
	}
	return BuildSeries(ds, opts)
}
