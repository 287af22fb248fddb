package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/lint/ZooCanvas/src/types"
)

// Summary describes the latency samples of one replica at one write-count.
type Summary struct {
	Replica   int     `json:"replica"`
	Writes    int     `json:"writes"`
	Samples   int     `json:"samples"`
	MeanSec   float64 `json:"mean_s"`
	StdDevSec float64 `json:"stddev_s"` // sample standard deviation; 0 for a single sample
	MinSec    float64 `json:"min_s"`
	MaxSec    float64 `json:"max_s"`
}

// Summarize groups each series by write-count. Output is ordered by replica,
// then ascending write-count.
func Summarize(series []types.Series) []Summary {
	var out []Summary
	for _, s := range series {
		groups := map[int][]float64{}
		for _, p := range s.Points {
			groups[p.Writes] = append(groups[p.Writes], p.LatencySeconds)
		}
		writes := make([]int, 0, len(groups))
		for w := range groups {
			writes = append(writes, w)
		}
		sort.Ints(writes)
		for _, w := range writes {
			xs := groups[w]
			mean, std := stat.MeanStdDev(xs, nil)
			if len(xs) < 2 {
				std = 0
			}
			lo, hi := math.Inf(1), math.Inf(-1)
			for _, x := range xs {
				lo = math.Min(lo, x)
				hi = math.Max(hi, x)
			}
			out = append(out, Summary{
				Replica:   s.ReplicaID,
				Writes:    w,
				Samples:   len(xs),
				MeanSec:   mean,
				StdDevSec: std,
				MinSec:    lo,
				MaxSec:    hi,
			})
		}
	}
	return out
}
