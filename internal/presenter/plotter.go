package presenter

import (
	"github.com/YomGarcia/otmorris/pkg/effectsplot"
)

func GenerateEffectsPlot(outputPath string, title string, names []string, meanAbs, stddev []float64) error {
	return effectsplot.MakeScatterPlot(meanAbs, stddev, names, title, outputPath)
}
