// Package plot renders signal frames as PNG line charts.
package plot

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/gesturelab/gesture-data/internal/signal"
)

// Renderer draws one figure per frame: three overlaid line series, one per
// channel, plotted against sample index. An existing file at the target path
// is overwritten.
type Renderer struct {
	widthInches  float64
	heightInches float64
	logger       *slog.Logger
}

// NewRenderer creates a Renderer with the given figure size in inches.
func NewRenderer(widthInches, heightInches float64, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		widthInches:  widthInches,
		heightInches: heightInches,
		logger:       logger,
	}
}

// Render draws frame into the image file at path. The output format follows
// the path extension; the fixed artifact names use .png.
func (r *Renderer) Render(frame signal.Frame, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Sample"
	p.Y.Label.Text = "Acceleration"

	xs, ys, zs := frame.Channels()
	if err := plotutil.AddLines(p,
		"X", indexed(xs),
		"Y", indexed(ys),
		"Z", indexed(zs),
	); err != nil {
		return fmt.Errorf("add line series: %w", err)
	}

	w := vg.Length(r.widthInches) * vg.Inch
	h := vg.Length(r.heightInches) * vg.Inch
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}

	r.logger.Debug("chart rendered", "file", path, "samples", frame.Len())
	return nil
}

// indexed pairs each value with its sample index.
func indexed(values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	return pts
}
