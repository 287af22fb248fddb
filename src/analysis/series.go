package analysis

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lint/ZooCanvas/src/types"
)

// ErrMissing matches every *MissingError.
var ErrMissing = errors.New("missing experiment record")

// MissingError names the coordinate that had no timestamp while building series.
type MissingError struct {
	Writes     int
	Experiment int
	Replica    int // zero when the write time itself is missing
}

func (e *MissingError) Error() string {
	if e.Replica == 0 {
		return fmt.Sprintf("%v: no write time for writes=%d experiment=%d", ErrMissing, e.Writes, e.Experiment)
	}
	return fmt.Sprintf("%v: no update time for writes=%d experiment=%d replica=%d", ErrMissing, e.Writes, e.Experiment, e.Replica)
}

func (e *MissingError) Is(target error) bool { return target == ErrMissing }

// Options bound the experiment grid walked by BuildSeries.
type Options struct {
	Replicas    int  // replica ids 1..Replicas
	Experiments int  // experiment indexes 1..Experiments
	SortWrites  bool // visit write-counts ascending instead of scan order
}

// DefaultOptions is the grid of the GENI deployment: three replicas, three repetitions.
func DefaultOptions() Options {
	return Options{Replicas: 3, Experiments: 3}
}

// BuildSeries computes, for every write-count and experiment, each replica's
// latency (last update minus batch completion) in seconds. Every coordinate of
// the grid must be present; the first gap is returned as a *MissingError.
func BuildSeries(ds *Dataset, opts Options) ([]types.Series, error) {
	if opts.Replicas <= 0 || opts.Experiments <= 0 {
		return nil, fmt.Errorf("invalid options: replicas=%d experiments=%d", opts.Replicas, opts.Experiments)
	}
	series := make([]types.Series, opts.Replicas)
	for i := range series {
		series[i].ReplicaID = i + 1
	}
	writes := ds.WriteCounts()
	if opts.SortWrites {
		sort.Ints(writes)
	}
	for _, w := range writes {
		b, _ := ds.Bucket(w)
		for exp := 1; exp <= opts.Experiments; exp++ {
			wt, ok := b.WriteTime[exp]
			if !ok {
				return nil, &MissingError{Writes: w, Experiment: exp}
			}
			for r := 1; r <= opts.Replicas; r++ {
				ut, ok := b.UpdateTime[ReplicaKey{Replica: r, Experiment: exp}]
				if !ok {
					return nil, &MissingError{Writes: w, Experiment: exp, Replica: r}
				}
				series[r-1].Points = append(series[r-1].Points, types.Point{
					Writes:         w,
					LatencySeconds: float64(ut-wt) / 1000,
				})
			}
		}
	}
	return series, nil
}

// PointCount is the total number of points across all series.
func PointCount(series []types.Series) int {
	n := 0
	for _, s := range series {
		n += len(s.Points)
	}
	return n
}
