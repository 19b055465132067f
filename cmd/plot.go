package main

import (
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// writeSweepPlot renders every node voltage and component current of a DC
// sweep against the swept source value.
func writeSweepPlot(title string, results map[string][]float64, path string) error {
	sweep := results["SWEEP1"]

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Sweep (V)"
	p.Y.Label.Text = "V / A"

	var names []string
	for name := range results {
		if strings.HasPrefix(name, "V(") || strings.HasPrefix(name, "I(") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	args := make([]interface{}, 0, 2*len(names))
	for _, name := range names {
		values := results[name]
		pts := make(plotter.XYs, len(sweep))
		for i := range sweep {
			pts[i].X = sweep[i]
			pts[i].Y = values[i]
		}
		args = append(args, name, pts)
	}

	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}
