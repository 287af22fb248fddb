// Package analysis groups experiment records by write-count and turns them into
// per-replica latency series.
package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lint/ZooCanvas/src/logging"
	"github.com/lint/ZooCanvas/src/types"
)

// ErrDuplicate is returned by Insert under DuplicateReject when a key was already filled.
var ErrDuplicate = errors.New("duplicate experiment record")

// DuplicatePolicy decides what Insert does with a second record for the same key.
type DuplicatePolicy int

const (
	// DuplicateOverwrite keeps the record inserted last.
	DuplicateOverwrite DuplicatePolicy = iota
	// DuplicateReject fails the insert.
	DuplicateReject
)

// ParseDuplicatePolicy maps "overwrite" / "reject" to a policy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "overwrite":
		return DuplicateOverwrite, nil
	case "reject":
		return DuplicateReject, nil
	}
	return DuplicateOverwrite, fmt.Errorf("unknown duplicate policy %q (want overwrite|reject)", s)
}

// ReplicaKey addresses one replica's update time within an experiment.
type ReplicaKey struct {
	Replica    int
	Experiment int
}

// Bucket holds every timestamp recorded for one write-count.
type Bucket struct {
	Writes     int
	WriteTime  map[int]int64        // experiment -> batch completion ms
	UpdateTime map[ReplicaKey]int64 // (replica, experiment) -> last update ms

	// source file per key, used to name both files when a duplicate shows up
	writeSrc  map[int]string
	updateSrc map[ReplicaKey]string
}

func newBucket(writes int) *Bucket {
	return &Bucket{
		Writes:     writes,
		WriteTime:  map[int]int64{},
		UpdateTime: map[ReplicaKey]int64{},
		writeSrc:   map[int]string{},
		updateSrc:  map[ReplicaKey]string{},
	}
}

// Dataset is the aggregation of one scan. It only grows.
type Dataset struct {
	policy  DuplicatePolicy
	buckets map[int]*Bucket
	order   []int // write-counts in first-seen order
}

// NewDataset returns an empty dataset using the given duplicate policy.
func NewDataset(policy DuplicatePolicy) *Dataset {
	return &Dataset{policy: policy, buckets: map[int]*Bucket{}}
}

// Insert files rec under its write-count, creating the bucket on first use.
func (d *Dataset) Insert(rec types.Record) error {
	b, ok := d.buckets[rec.Writes]
	if !ok {
		b = newBucket(rec.Writes)
		d.buckets[rec.Writes] = b
		d.order = append(d.order, rec.Writes)
	}
	switch rec.Kind {
	case types.KindWrite:
		if prev, dup := b.writeSrc[rec.ExperimentNum]; dup {
			if err := d.duplicate(prev, rec); err != nil {
				return err
			}
		}
		b.WriteTime[rec.ExperimentNum] = rec.TimestampMs
		b.writeSrc[rec.ExperimentNum] = rec.Source
	case types.KindUpdate:
		k := ReplicaKey{Replica: rec.ServerID, Experiment: rec.ExperimentNum}
		if prev, dup := b.updateSrc[k]; dup {
			if err := d.duplicate(prev, rec); err != nil {
				return err
			}
		}
		b.UpdateTime[k] = rec.TimestampMs
		b.updateSrc[k] = rec.Source
	default:
		return fmt.Errorf("unknown record kind %d from %s", rec.Kind, rec.Source)
	}
	return nil
}

func (d *Dataset) duplicate(prev string, rec types.Record) error {
	if d.policy == DuplicateReject {
		return fmt.Errorf("%w: %s and %s both map to %s writes=%d experiment=%d server=%d", ErrDuplicate, prev, rec.Source, rec.Kind, rec.Writes, rec.ExperimentNum, rec.ServerID)
	}
	logging.Warnf("[analysis] %s overrides %s (%s writes=%d experiment=%d server=%d)", rec.Source, prev, rec.Kind, rec.Writes, rec.ExperimentNum, rec.ServerID)
	return nil
}

// WriteCounts returns the write-counts in the order they were first inserted.
func (d *Dataset) WriteCounts() []int {
	out := make([]int, len(d.order))
	copy(out, d.order)
	return out
}

// Bucket returns the bucket for writes, if any record was inserted for it.
func (d *Dataset) Bucket(writes int) (*Bucket, bool) {
	b, ok := d.buckets[writes]
	return b, ok
}

// Len is the number of distinct write-counts.
func (d *Dataset) Len() int { return len(d.order) }
