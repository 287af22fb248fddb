package experiment

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lint/ZooCanvas/src/types"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestScanReadsAllFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "updates_1_1_5.txt", "1,900\nabc,1000\n")
	writeFile(t, dir, "updates_2_1_5.txt", "abc,1500")
	writeFile(t, dir, "5_1.txt", "500")
	writeFile(t, dir, "write_10_2.txt", "700")
	if err := os.Mkdir(filepath.Join(dir, "old_runs"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var recs []types.Record
	if err := Scan(dir, func(r types.Record) error {
		recs = append(recs, r)
		return nil
	}); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(recs) != 4 {
		t.Fatalf("expected 4 records, got %d: %+v", len(recs), recs)
	}
	byName := map[string]types.Record{}
	for _, r := range recs {
		byName[r.Source] = r
	}
	if r := byName["updates_1_1_5.txt"]; r.TimestampMs != 1000 || r.ServerID != 1 || r.Writes != 5 {
		t.Fatalf("unexpected update record %+v", r)
	}
	if r := byName["5_1.txt"]; r.TimestampMs != 500 || r.Kind != types.KindWrite || r.Writes != 5 || r.ExperimentNum != 1 {
		t.Fatalf("unexpected write record %+v", r)
	}
	if r := byName["write_10_2.txt"]; r.TimestampMs != 700 || r.Writes != 10 || r.ExperimentNum != 2 {
		t.Fatalf("unexpected prefixed write record %+v", r)
	}
}

func TestScanMissingDir(t *testing.T) {
	err := Scan(filepath.Join(t.TempDir(), "nope"), func(types.Record) error { return nil })
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestScanAbortsOnMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "5_1.txt", "500")
	writeFile(t, dir, "updates_1_1_5.txt", "no timestamp here")
	calls := 0
	err := Scan(dir, func(types.Record) error {
		calls++
		return nil
	})
	if !errors.Is(err, ErrContent) {
		t.Fatalf("expected ErrContent, got %v", err)
	}
	// 5_1.txt sorts before updates_1_1_5.txt
	if calls != 1 {
		t.Fatalf("expected scan to stop after first good file, calls=%d", calls)
	}
}

func TestScanPropagatesCallbackError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "5_1.txt", "500")
	writeFile(t, dir, "6_1.txt", "600")
	stop := errors.New("stop")
	calls := 0
	err := Scan(dir, func(types.Record) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Fatalf("expected callback error after one call, err=%v calls=%d", err, calls)
	}
}
