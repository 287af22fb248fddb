// Package render turns per-replica latency series into a scatter plot PNG.
//
// Two backends draw the same Plot: ChartRenderer (go-chart, the default) and
// GonumRenderer (gonum/plot). SavePNG wraps either one, stamps the optional
// caption and writes the image to disk.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/lint/ZooCanvas/src/logging"
	"github.com/lint/ZooCanvas/src/types"
)

// ErrInvalidSize is returned for a non-positive DPI, width or height.
var ErrInvalidSize = errors.New("invalid image size")

// Layer is one labeled point series.
type Layer struct {
	Label  string
	Color  color.RGBA // opaque base color
	Alpha  float64    // 0..1 applied to markers
	Points []types.Point
}

// Plot is everything a backend needs to draw the chart.
type Plot struct {
	Title        string
	XLabel       string
	YLabel       string
	Layers       []Layer
	DPI          float64
	WidthInches  float64
	HeightInches float64
	Caption      string // optional footer text stamped after rendering
}

// PixelSize is the output image size in pixels.
func (p Plot) PixelSize() (int, int) {
	return int(p.WidthInches*p.DPI + 0.5), int(p.HeightInches*p.DPI + 0.5)
}

// Points counts the points of all layers.
func (p Plot) Points() int {
	n := 0
	for _, l := range p.Layers {
		n += len(l.Points)
	}
	return n
}

// Renderer encodes a Plot as PNG.
type Renderer interface {
	Render(w io.Writer, p Plot) error
}

// New returns the renderer registered under name ("chart" or "gonum").
func New(name string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "chart", "go-chart":
		return ChartRenderer{}, nil
	case "gonum", "plot":
		return GonumRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown renderer %q (want chart|gonum)", name)
}

// Validate checks that p describes a drawable image.
func (p Plot) Validate() error {
	if !(p.DPI > 0) {
		return fmt.Errorf("%w: dpi %v must be > 0", ErrInvalidSize, p.DPI)
	}
	if !(p.WidthInches > 0) || !(p.HeightInches > 0) {
		return fmt.Errorf("%w: %vx%v in must be > 0", ErrInvalidSize, p.WidthInches, p.HeightInches)
	}
	return nil
}

// Encode renders p with r and returns the PNG bytes, caption included.
// A plot without points still renders its axes.
func Encode(r Renderer, p Plot) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, p); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Caption) == "" {
		return buf.Bytes(), nil
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("png decode: %w", err)
	}
	var out bytes.Buffer
	if err := png.Encode(&out, drawCaption(img, p.Caption)); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return out.Bytes(), nil
}

// SavePNG renders p with r and writes the PNG to path, replacing any existing file.
func SavePNG(r Renderer, p Plot, path string) error {
	data, err := Encode(r, p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	w, h := p.PixelSize()
	logging.Debugf("[render] wrote %s (%dx%d px, %.0f dpi, %d points)", path, w, h, p.DPI, p.Points())
	return nil
}

// withAlpha returns c with its alpha channel set from a 0..1 fraction.
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}
