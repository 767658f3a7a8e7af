package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotCost draws the per-step cost history and, when epochs > 1, its
// per-epoch mean, and saves the chart to path. The image format follows the
// file extension (png, svg, pdf, ...).
func PlotCost(history []float64, epochs int, title, path string) error {
	if len(history) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "epoch"
	p.Y.Label.Text = "cost"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	steps := len(history)
	perStep := make(plotter.XYs, steps)
	for i, c := range history {
		// x in epochs, so both lines share an axis
		perStep[i].X = float64(i+1) * float64(epochs) / float64(steps)
		perStep[i].Y = c
	}
	line, err := plotter.NewLine(perStep)
	if err != nil {
		return fmt.Errorf("cost line: %w", err)
	}
	line.Width = vg.Points(1)
	line.Color = plotutil.Color(0)
	p.Add(line)
	p.Legend.Add("cost per step", line)

	if epochs > 1 && epochs < steps {
		avg, err := EpochCosts(history, epochs)
		if err != nil {
			return err
		}
		pts := make(plotter.XYs, len(avg))
		for i, c := range avg {
			pts[i].X = float64(i + 1)
			pts[i].Y = c
		}
		mean, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("epoch line: %w", err)
		}
		mean.Width = vg.Points(2)
		mean.Color = plotutil.Color(1)
		p.Add(mean)
		p.Legend.Add("epoch mean", mean)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
