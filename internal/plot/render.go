package plot

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/pediametrics/growthchart-cli/internal/series"
	"github.com/pediametrics/growthchart-cli/internal/utils"
)

// RenderOptions sizes the output image. Zero values fall back to defaults.
type RenderOptions struct {
	Width  int
	Height int
	// OutDir overrides os.TempDir() for the generated file.
	OutDir string
}

// Render draws the spec to a PNG at a generated temporary path and returns
// that path. Absent (NaN) points are dropped from each rendered line; the
// spec's sequences themselves are left untouched.
func Render(spec *Spec, opt RenderOptions) (string, error) {
	width := opt.Width
	if width <= 0 {
		width = 1024
	}
	height := opt.Height
	if height <= 0 {
		height = 768
	}

	var out []chart.Series
	for _, s := range spec.Series {
		xs, ys := dropAbsent(s.X, s.Y)
		if len(xs) == 0 {
			continue
		}
		st := chart.Style{StrokeColor: s.Color, StrokeWidth: 1.5}
		if s.Dots {
			st.DotWidth = 4
			st.DotColor = s.Color
		}
		out = append(out, chart.ContinuousSeries{Name: s.Name, XValues: xs, YValues: ys, Style: st})
	}
	if len(out) == 0 {
		return "", fmt.Errorf("nothing to render: all series are empty")
	}

	ch := chart.Chart{
		Title:      spec.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: spec.XLabel},
		YAxis:      chart.YAxis{Name: spec.YLabel},
		Series:     out,
	}
	// A one-row table collapses an axis range to a single value, which the
	// chart engine rejects. Widen collapsed ranges explicitly so single-row
	// records still render.
	if r, collapsed := collapsedRange(out, xOf); collapsed {
		ch.XAxis.Range = r
	}
	if r, collapsed := collapsedRange(out, yOf); collapsed {
		ch.YAxis.Range = r
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}

	dir := opt.OutDir
	if dir == "" {
		dir = os.TempDir()
	} else if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, "growthchart-"+uuid.NewString()+".png")
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("write chart: %w", err)
	}
	return path, nil
}

func xOf(s chart.ContinuousSeries) []float64 { return s.XValues }
func yOf(s chart.ContinuousSeries) []float64 { return s.YValues }

// collapsedRange scans one axis across all series and, when every value is
// identical, returns an explicit range widened by one unit either side.
func collapsedRange(series []chart.Series, axis func(chart.ContinuousSeries) []float64) (*chart.ContinuousRange, bool) {
	var vmin, vmax float64
	seen := false
	for _, s := range series {
		cs, ok := s.(chart.ContinuousSeries)
		if !ok {
			continue
		}
		for _, v := range axis(cs) {
			if !seen {
				vmin, vmax = v, v
				seen = true
				continue
			}
			if v < vmin {
				vmin = v
			}
			if v > vmax {
				vmax = v
			}
		}
	}
	if !seen || vmin != vmax {
		return nil, false
	}
	return &chart.ContinuousRange{Min: vmin - 1, Max: vmax + 1}, true
}

// dropAbsent filters x/y pairs whose y carries the absent marker.
func dropAbsent(x, y []float64) ([]float64, []float64) {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range y {
		if series.IsAbsent(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys
}

// Open asks the desktop environment to display the rendered file. Best
// effort: the viewer is detached and launch errors are returned but callers
// typically only warn on them.
func Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open viewer: %w", err)
	}
	return nil
}
