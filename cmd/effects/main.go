package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/YomGarcia/otmorris/internal/presenter"
	"github.com/YomGarcia/otmorris/pkg/morris"
	"github.com/YomGarcia/otmorris/pkg/readmatrix"
)

func main() {
	designFile := flag.String("design", "design.csv", "generated Morris design (CSV or whitespace table)")
	outputFile := flag.String("model-output", "output.csv", "model output, one value per design row")
	outputCol := flag.Int("column", 0, "column of the model-output file to use")
	names := flag.String("names", "", "comma-separated input names (default: x0, x1, ...)")
	csvFile := flag.String("csv", "", "write the screening summary to this CSV file")
	plotFile := flag.String("plot", "", "write the mu*-sigma screening plot to this file (pdf, png or svg)")
	flag.Parse()

	design, err := readmatrix.ReadMatrix(*designFile)
	if err != nil {
		log.Fatal("Error reading design: ", err)
	}
	output, err := readmatrix.ReadColumn(*outputFile, *outputCol)
	if err != nil {
		log.Fatal("Error reading model output: ", err)
	}

	effects, err := morris.NewEffects(design, output)
	if err != nil {
		log.Fatal("Error computing elementary effects: ", err)
	}

	_, dimension := design.Dims()
	inputNames := resolveNames(*names, dimension)
	mean := effects.MeanEffects()
	meanAbs := effects.MeanAbsoluteEffects()
	stddev := effects.StandardDeviationEffects()

	fmt.Printf("%-12s %12s %12s %12s\n", "input", "mu", "mu*", "sigma")
	for j := 0; j < dimension; j++ {
		fmt.Printf("%-12s %12.5g %12.5g %12.5g\n", inputNames[j], mean[j], meanAbs[j], stddev[j])
	}

	if *csvFile != "" {
		if err := presenter.SaveEffectsToCSV(*csvFile, inputNames, mean, meanAbs, stddev); err != nil {
			log.Fatal("Error saving summary: ", err)
		}
		log.Println("Saved screening summary to", *csvFile)
	}
	if *plotFile != "" {
		if err := presenter.GenerateEffectsPlot(*plotFile, "Morris screening", inputNames, meanAbs, stddev); err != nil {
			log.Fatal("Error plotting summary: ", err)
		}
		log.Println("Saved screening plot to", *plotFile)
	}
}

func resolveNames(list string, dimension int) []string {
	if list != "" {
		names := strings.Split(list, ",")
		if len(names) == dimension {
			for i := range names {
				names[i] = strings.TrimSpace(names[i])
			}
			return names
		}
		log.Printf("Expected %d input names, got %d; using defaults", dimension, len(names))
	}
	names := make([]string, dimension)
	for j := range names {
		names[j] = fmt.Sprintf("x%d", j)
	}
	return names
}
