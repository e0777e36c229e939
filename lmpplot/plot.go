//Package lmpplot renders the curves produced by the analysis tools (radial
//distributions, density profiles) to image files, using gonum/plot.
package lmpplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// XY builds a line plot of ys against xs. Both slices must have the same
// length.
func XY(xs, ys []float64, title, xlabel, ylabel string) (*plot.Plot, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("lmpplot: %d x values against %d y values", len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	p.Add(plotter.NewGrid(), line)
	return p, nil
}

// SaveXY renders a line plot straight to file; the format follows the file
// extension (png, pdf, svg, ...).
func SaveXY(xs, ys []float64, title, xlabel, ylabel, file string) error {
	p, err := XY(xs, ys, title, xlabel, ylabel)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, file)
}

// RDF plots a radial distribution curve.
func RDF(r, dens []float64, file string) error {
	return SaveXY(r, dens, "Radial distribution", "r", "density", file)
}

// DensityProfile plots an atom count profile along z.
func DensityProfile(z, counts []float64, file string) error {
	return SaveXY(z, counts, "Density profile", "z", "atoms", file)
}
