package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"dcsim/pkg/analysis"
	"dcsim/pkg/circuit"
	"dcsim/pkg/netlist"
	"dcsim/pkg/util"
)

var (
	useSparse = flag.Bool("sparse", false, "force the sparse solver backend")
	plotFile  = flag.String("plot", "", "write DC sweep curves to this image file")
)

func sortedKeys(m map[string][]float64, prefix string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func printOPResults(ckt *circuit.Circuit, results map[string][]float64) {
	fmt.Println("\nNode Voltages:")
	for _, name := range sortedKeys(results, "V(") {
		fmt.Printf("%s = %s\n", name, util.FormatValueFactor(results[name][0], "V"))
	}

	fmt.Println("\nComponent Results:")
	compResults, err := ckt.ComponentResults()
	if err != nil {
		log.Fatalf("Error extracting component results: %v", err)
	}
	for _, r := range compResults {
		fmt.Printf("%-8s drop=%-12s current=%s\n", r.Name,
			util.FormatValueFactor(r.VoltageDrop, "V"),
			util.FormatValueFactor(r.Current, "A"))
	}
}

func printSweepResults(results map[string][]float64) {
	sweep := results["SWEEP1"]
	fmt.Printf("\nDC Sweep Results (%d points):\n", len(sweep))
	fmt.Println("Sweep Value    Node Voltages        Component Currents")
	fmt.Println("------------------------------------------------------")

	voltageNames := sortedKeys(results, "V(")
	currentNames := sortedKeys(results, "I(")

	for i := range sweep {
		fmt.Printf("%-12s ", util.FormatValueFactor(sweep[i], "V"))
		for _, name := range voltageNames {
			fmt.Printf("%s=%s  ", name, util.FormatValueFactor(results[name][i], "V"))
		}
		for _, name := range currentNames {
			fmt.Printf("%s=%s  ", name, util.FormatValueFactor(results[name][i], "A"))
		}
		fmt.Println()
	}
}

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-sparse] [-plot out.png] <netlist file>\n", os.Args[0])
		os.Exit(1)
	}

	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error reading netlist file: %v", err)
	}

	data, err := netlist.Parse(string(content))
	if err != nil {
		log.Fatalf("Error parsing netlist: %v", err)
	}

	solver := circuit.SolverAuto
	if *useSparse {
		solver = circuit.SolverSparse
	}

	ckt := circuit.NewWithSolver(data.Title, solver)
	if err := ckt.Setup(data.Elements); err != nil {
		log.Fatalf("Error building circuit: %v", err)
	}
	defer ckt.Destroy()

	var run analysis.Analysis
	switch data.Analysis {
	case netlist.AnalysisDC:
		run = analysis.NewDCSweep(data.DCParam.Source,
			data.DCParam.Start, data.DCParam.Stop, data.DCParam.Increment)
	default:
		run = analysis.NewOP()
	}

	if err := run.Setup(ckt); err != nil {
		log.Fatalf("Error setting up analysis: %v", err)
	}
	if err := run.Execute(); err != nil {
		log.Fatalf("Error running analysis: %v", err)
	}

	results := run.GetResults()
	if data.Analysis == netlist.AnalysisDC {
		printSweepResults(results)
		if *plotFile != "" {
			if err := writeSweepPlot(data.Title, results, *plotFile); err != nil {
				log.Fatalf("Error writing plot: %v", err)
			}
			fmt.Printf("\nSweep plot written to %s\n", *plotFile)
		}
	} else {
		printOPResults(ckt, results)
	}
}
