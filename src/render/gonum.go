package render

import (
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// GonumRenderer draws plots with gonum/plot. Unlike go-chart it keeps the
// two-line title and places the legend in the lower right corner.
type GonumRenderer struct{}

// Render implements Renderer.
func (GonumRenderer) Render(w io.Writer, p Plot) error {
	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = p.XLabel
	pl.Y.Label.Text = p.YLabel
	pl.Legend.Top = false
	pl.Legend.Left = false
	pl.Add(plotter.NewGrid())

	added := 0
	for _, l := range p.Layers {
		if len(l.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(l.Points))
		for i, pt := range l.Points {
			xys[i].X = float64(pt.Writes)
			xys[i].Y = pt.LatencySeconds
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = withAlpha(l.Color, l.Alpha)
		s.GlyphStyle.Shape = vgdraw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(3)
		pl.Add(s)
		pl.Legend.Add(l.Label, s)
		added++
	}
	if added == 0 {
		pl.X.Min, pl.X.Max = 0, 1
		pl.Y.Min, pl.Y.Max = 0, 1
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(p.WidthInches)*vg.Inch, vg.Length(p.HeightInches)*vg.Inch),
		vgimg.UseDPI(int(p.DPI)),
	)
	pl.Draw(vgdraw.New(c))
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}
