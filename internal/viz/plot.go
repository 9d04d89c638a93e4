package viz

import (
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/advect/internal/fv"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// RenderProfile draws one cell-average profile as a terminal chart.
func RenderProfile(state fv.State, caption string) string {
	return asciigraph.Plot(state,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// RenderOverlay draws several profiles (e.g. numeric vs exact) in one chart.
func RenderOverlay(states []fv.State, caption string) string {
	series := make([][]float64, len(states))
	for i, s := range states {
		series[i] = s
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}
