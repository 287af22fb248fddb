package experiment

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lint/ZooCanvas/src/logging"
	"github.com/lint/ZooCanvas/src/types"
)

// DefaultDir is where the experiment client and replicas drop their files.
const DefaultDir = "experiment_output"

// ReadRecord parses the file dir/name into a Record. The file is closed before
// ReadRecord returns.
func ReadRecord(dir, name string) (types.Record, error) {
	rec, err := ParseFilename(name)
	if err != nil {
		return types.Record{}, err
	}
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return types.Record{}, err
	}
	defer f.Close()
	ts, err := ParseTimestamp(rec.Kind, f)
	if err != nil {
		return types.Record{}, fmt.Errorf("%s: %w", name, err)
	}
	rec.TimestampMs = ts
	return rec, nil
}

// Scan reads every regular file in dir, one at a time in directory listing
// order, and passes the parsed record to fn. The first error stops the scan.
func Scan(dir string, fn func(types.Record) error) error {
	defer logging.TimeTrack(time.Now(), "scan "+dir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	n := 0
	for _, e := range entries {
		if e.IsDir() {
			logging.Debugf("[scan] skipping directory %s", e.Name())
			continue
		}
		rec, err := ReadRecord(dir, e.Name())
		if err != nil {
			return err
		}
		logging.Debugf("[scan] %s -> %s writes=%d experiment=%d server=%d ts=%d", e.Name(), rec.Kind, rec.Writes, rec.ExperimentNum, rec.ServerID, rec.TimestampMs)
		if err := fn(rec); err != nil {
			return err
		}
		n++
	}
	logging.Infof("[scan] read %d files from %s", n, dir)
	return nil
}
