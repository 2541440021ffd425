// Package plot turns an assembled SeriesSet into a styled chart description
// and renders it to a PNG with go-chart.
package plot

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pediametrics/growthchart-cli/internal/growthref"
	"github.com/pediametrics/growthchart-cli/internal/series"
)

// Series is one named, styled line handed to the renderer.
type Series struct {
	Name  string
	X     []float64
	Y     []float64
	Color drawing.Color
	Dots  bool
}

// Spec is the renderer-facing description of one growth chart.
type Spec struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

var (
	colorMeasured = drawing.Color{R: 0, G: 116, B: 217, A: 255}
	colorZ0       = drawing.Color{R: 0, G: 128, B: 0, A: 255}
	colorZ1       = drawing.Color{R: 255, G: 140, B: 0, A: 255}
	colorZ2       = drawing.Color{R: 200, G: 30, B: 30, A: 255}
	colorZ3       = drawing.Color{R: 0, G: 0, B: 0, A: 255}
)

// Build packages a SeriesSet as exactly eight series in fixed order: measured,
// z0, z+1, z-1, z+2, z-2, z+3, z-3. The +/- interleave matches the visual
// emphasis the renderer applies outward from the median.
func Build(set *series.SeriesSet, name string) *Spec {
	title := fmt.Sprintf("WHO %s chart", set.Metric)
	if name != "" {
		title += " for " + name
	}
	s := &Spec{
		Title: title,
		// The axis is labeled years while the data stream is in months.
		// Longstanding mismatch inherited from the reference dataset's
		// plots; kept until the upstream labels change.
		XLabel: "age (years)",
		YLabel: yLabel(set.Metric),
	}
	x := set.AgeMonths
	s.Series = []Series{
		{Name: string(set.Metric), X: x, Y: set.Measured, Color: colorMeasured, Dots: true},
		{Name: "z0", X: x, Y: set.Z0, Color: colorZ0},
		{Name: "z+1", X: x, Y: set.Z1, Color: colorZ1},
		{Name: "z-1", X: x, Y: set.ZNeg1, Color: colorZ1},
		{Name: "z+2", X: x, Y: set.Z2, Color: colorZ2},
		{Name: "z-2", X: x, Y: set.ZNeg2, Color: colorZ2},
		{Name: "z+3", X: x, Y: set.Z3, Color: colorZ3},
		{Name: "z-3", X: x, Y: set.ZNeg3, Color: colorZ3},
	}
	return s
}

func yLabel(m growthref.Metric) string {
	switch m {
	case growthref.Height:
		return "height (cm)"
	case growthref.Weight:
		return "weight (kg)"
	}
	// BMI is a bare ratio; the axis stays unlabeled.
	return ""
}
