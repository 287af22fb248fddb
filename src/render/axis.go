package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// niceStep picks a 1, 2, 2.5 or 5 times 10^k step that cuts span into at most n intervals.
func niceStep(span float64, n int) float64 {
	raw := span / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 2.5, 5} {
		if raw <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}

// niceAxisBounds widens [lo,hi] by 5% on each side and snaps outward to the
// order of magnitude of the span.
func niceAxisBounds(lo, hi float64) (float64, float64) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return lo, hi
	}
	if hi <= lo {
		hi = lo + 1
	}
	span := hi - lo
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	return math.Floor((lo-span*0.05)/mag) * mag, math.Ceil((hi+span*0.05)/mag) * mag
}

// niceTicks returns ticks on a nice step covering [lo,hi], about n of them.
func niceTicks(lo, hi float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	if hi <= lo {
		hi = lo + 1
	}
	step := niceStep(hi-lo, n-1)
	first, last := math.Floor(lo/step), math.Ceil(hi/step)
	ticks := make([]chart.Tick, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		v := i * step
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100 || v == math.Trunc(v):
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// axisRange returns a padded range covering [min,max] and ticks inside it.
func axisRange(min, max float64, n int) (*chart.ContinuousRange, []chart.Tick) {
	lo, hi := niceAxisBounds(min, max)
	ticks := niceTicks(lo, hi, n)
	if len(ticks) > 0 {
		lo = math.Min(lo, ticks[0].Value)
		hi = math.Max(hi, ticks[len(ticks)-1].Value)
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}, ticks
}
