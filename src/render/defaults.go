package render

import (
	"fmt"
	"image/color"

	"github.com/lint/ZooCanvas/src/types"
)

const (
	DefaultDPI          = 300
	DefaultWidthInches  = 6.4
	DefaultHeightInches = 4.8
	DefaultAlpha        = 0.5
	DefaultOutput       = "graph.png"
)

// ReplicaStyle is the legend label and marker color of one replica.
type ReplicaStyle struct {
	Label string
	Color color.RGBA
}

// ReplicaStyles maps replica ids of the GENI deployment to their styling.
var ReplicaStyles = map[int]ReplicaStyle{
	1: {Label: "Hawaii GENI Server", Color: color.RGBA{R: 255, A: 255}},
	2: {Label: "Chicago GENI Server", Color: color.RGBA{B: 255, A: 255}},
	3: {Label: "Texas GENI Server", Color: color.RGBA{G: 128, A: 255}},
}

// fallback palette for ids outside ReplicaStyles
var extraColors = []color.RGBA{
	{R: 255, G: 127, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
}

// StyleFor returns the style of replica id.
func StyleFor(id int) ReplicaStyle {
	if st, ok := ReplicaStyles[id]; ok {
		return st
	}
	return ReplicaStyle{Label: fmt.Sprintf("Replica %d", id), Color: extraColors[(id%len(extraColors)+len(extraColors))%len(extraColors)]}
}

// DefaultPlot builds the write-volume vs replication-latency scatter plot.
func DefaultPlot(series []types.Series) Plot {
	p := Plot{
		Title:        "Number of Write Requests Made \nvs Total Time Taken to Receive All Updates",
		XLabel:       "Write requests",
		YLabel:       "Time (seconds)",
		DPI:          DefaultDPI,
		WidthInches:  DefaultWidthInches,
		HeightInches: DefaultHeightInches,
	}
	for _, s := range series {
		st := StyleFor(s.ReplicaID)
		p.Layers = append(p.Layers, Layer{Label: st.Label, Color: st.Color, Alpha: DefaultAlpha, Points: s.Points})
	}
	return p
}
