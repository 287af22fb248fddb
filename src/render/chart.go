package render

import (
	"image/color"
	"io"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartRenderer draws plots with go-chart.
type ChartRenderer struct{}

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color, radius float64) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		StrokeColor: col,
		DotWidth:    radius,
		DotColor:    col,
	}
}

func toDrawing(c color.NRGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Render implements Renderer.
func (ChartRenderer) Render(w io.Writer, p Plot) error {
	scale := p.DPI / chart.DefaultDPI
	// 3pt marker radius, same physical size at any DPI
	radius := 3 * p.DPI / 72

	series := []chart.Series{}
	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, l := range p.Layers {
		if len(l.Points) == 0 {
			continue
		}
		xs := make([]float64, len(l.Points))
		ys := make([]float64, len(l.Points))
		for i, pt := range l.Points {
			xs[i] = float64(pt.Writes)
			ys[i] = pt.LatencySeconds
			minX, maxX = math.Min(minX, xs[i]), math.Max(maxX, xs[i])
			minY, maxY = math.Min(minY, ys[i]), math.Max(maxY, ys[i])
		}
		// go-chart wants at least two values per series; a repeated point draws the same dot
		if len(xs) == 1 {
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
		}
		series = append(series, chart.ContinuousSeries{
			Name:    l.Label,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(toDrawing(withAlpha(l.Color, l.Alpha)), radius),
		})
	}
	var xRange, yRange *chart.ContinuousRange
	var xTicks, yTicks []chart.Tick
	empty := len(series) == 0
	if empty {
		// go-chart refuses to draw without a visible series; this one has no stroke or dots
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{0, 1},
			YValues: []float64{0, 1},
			Style:   chart.Style{StrokeWidth: chart.Disabled},
		})
		xRange, yRange = &chart.ContinuousRange{Min: 0, Max: 1}, &chart.ContinuousRange{Min: 0, Max: 1}
		xTicks, yTicks = niceTicks(0, 1, 6), niceTicks(0, 1, 6)
	} else {
		xRange, xTicks = axisRange(minX, maxX, 8)
		yRange, yTicks = axisRange(minY, maxY, 6)
	}

	wpx, hpx := p.PixelSize()
	pad := func(v float64) int { return int(v * scale) }
	ch := chart.Chart{
		Title:      strings.ReplaceAll(p.Title, "\n", " "),
		Width:      wpx,
		Height:     hpx,
		DPI:        p.DPI,
		Background: chart.Style{Padding: chart.Box{Top: pad(24), Left: pad(16), Right: pad(24), Bottom: pad(16)}},
		XAxis:      chart.XAxis{Name: p.XLabel, Range: xRange, Ticks: xTicks},
		YAxis:      chart.YAxis{Name: p.YLabel, Range: yRange, Ticks: yTicks},
		Series:     series,
	}
	if !empty {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return ch.Render(chart.PNG, w)
}
