package experiment

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lint/ZooCanvas/src/types"
)

func TestParseFilenameUpdate(t *testing.T) {
	for s := 1; s <= 3; s++ {
		for e := 1; e <= 3; e++ {
			for _, w := range []int{1, 5, 100, 2500} {
				name := fmt.Sprintf("updates_%d_%d_%d.txt", s, e, w)
				rec, err := ParseFilename(name)
				if err != nil {
					t.Fatalf("%s: %v", name, err)
				}
				if rec.Kind != types.KindUpdate || rec.ServerID != s || rec.ExperimentNum != e || rec.Writes != w {
					t.Fatalf("%s: unexpected record %+v", name, rec)
				}
				if rec.Source != name {
					t.Fatalf("%s: source not kept: %q", name, rec.Source)
				}
			}
		}
	}
}

func TestParseFilenameWrite(t *testing.T) {
	cases := []struct {
		name      string
		writes    int
		expNumber int
	}{
		{"5_1.txt", 5, 1},
		{"10_3.txt", 10, 3},
		{"2500_2.log", 2500, 2},
		{"write_5_1.txt", 5, 1},
		{"write_100_3.txt", 100, 3},
		{"write_7_2", 7, 2},
	}
	for _, c := range cases {
		rec, err := ParseFilename(c.name)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if rec.Kind != types.KindWrite || rec.Writes != c.writes || rec.ExperimentNum != c.expNumber || rec.ServerID != 0 {
			t.Fatalf("%s: unexpected record %+v", c.name, rec)
		}
	}
}

func TestParseFilenameMalformed(t *testing.T) {
	bad := []string{
		"updates_1_1.txt",
		"updates_x_1_5.txt",
		"updates_1_1_five.txt",
		"write_5.txt",
		"notes.txt",
		"write_a_1.txt",
		"write_5_b.txt",
	}
	for _, name := range bad {
		_, err := ParseFilename(name)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if !errors.Is(err, ErrFilename) {
			t.Fatalf("%s: expected ErrFilename, got %v", name, err)
		}
	}
}

func TestClassify(t *testing.T) {
	if Classify("updates_1_1_5.txt") != types.KindUpdate {
		t.Fatalf("expected update kind")
	}
	if Classify("write_5_1.txt") != types.KindWrite || Classify("5_1.txt") != types.KindWrite {
		t.Fatalf("expected write kind")
	}
}
