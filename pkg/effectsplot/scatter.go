package effectsplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// MakeScatterPlot renders the Morris screening plane: mean absolute
// elementary effect on X, effect standard deviation on Y, one labelled
// marker per input dimension. The output format follows the filename
// extension (pdf, png, svg).
func MakeScatterPlot(meanAbs, stddev []float64, names []string, title, filename string) error {
	if len(meanAbs) != len(stddev) {
		return fmt.Errorf("effectsplot: %d abscissae for %d ordinates", len(meanAbs), len(stddev))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "mu* (mean absolute effect)"
	p.Y.Label.Text = "sigma (effect standard deviation)"

	pts := make(plotter.XYs, len(meanAbs))
	for i := range pts {
		pts[i].X = meanAbs[i]
		pts[i].Y = stddev[i]
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(scatter, plotter.NewGrid())

	if len(names) == len(pts) {
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: names})
		if err != nil {
			return err
		}
		p.Add(labels)
	}

	p.X.Min = 0
	p.Y.Min = 0

	return p.Save(vg.Points(400), vg.Points(300), filename)
}
