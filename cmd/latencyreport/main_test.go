package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lint/ZooCanvas/src/analysis"
)

func TestWriteTable(t *testing.T) {
	sums := []analysis.Summary{
		{Replica: 1, Writes: 10, Samples: 3, MeanSec: 0.5, StdDevSec: 0.1, MinSec: 0.4, MaxSec: 0.6},
		{Replica: 3, Writes: 250, Samples: 3, MeanSec: 2.25, StdDevSec: 0.05, MinSec: 2.2, MaxSec: 2.3},
	}
	var buf bytes.Buffer
	writeTable(&buf, sums)
	// go-pretty upper-cases header cells
	out := buf.String()
	for _, want := range []string{"REPLICA", "MEAN (S)", "Hawaii GENI Server", "Texas GENI Server", "250", "2.250", "0.500"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{"write_10_1.txt": "1000"}
	for s := 1; s <= 3; s++ {
		files[fmt.Sprintf("updates_%d_1_10.txt", s)] = fmt.Sprintf("1,1000\n2,%d\n", 1000+s*500)
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	var buf bytes.Buffer
	// one experiment on disk; the default grid expects three
	if err := run(&buf, dir, true); !errors.Is(err, analysis.ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should be printed on error, got:\n%s", buf.String())
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, t.TempDir(), true); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(buf.String(), "Total points: 0") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}
