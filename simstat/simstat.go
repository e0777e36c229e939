//Package simstat holds the scalar and binned statistics used by the analysis
//tools on top of snapshot columns: linear ranges, mean/deviation summaries,
//histogram binning, radial distribution and density profiles along z.
package simstat

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/PolykekBros/lammps-util-go/xyz"
)

// Range returns count values evenly spaced from begin to end, both ends
// included. A single-element range holds begin; a non-positive count gives
// nil. Panics if begin > end.
func Range(begin, end float64, count int) []float64 {
	if begin > end {
		panic("simstat: Range: begin above end")
	}
	switch {
	case count <= 0:
		return nil
	case count == 1:
		return []float64{begin}
	}
	return floats.Span(make([]float64, count), begin, end)
}

// MeanStd returns the mean and the population standard deviation of vals.
// Both are NaN for an empty input.
func MeanStd(vals []float64) (mean, std float64) {
	if len(vals) == 0 {
		return math.NaN(), math.NaN()
	}
	return stat.Mean(vals, nil), stat.PopStdDev(vals, nil)
}

// Histogram counts the values falling in each of the len(dividers)-1 bins
// bounded by the sorted dividers. Values outside [dividers[0], dividers[last])
// are left out of the count. Dividers must be ascending.
func Histogram(dividers, values []float64) []float64 {
	vs := make([]float64, 0, len(values))
	for _, v := range values {
		if v >= dividers[0] && v < dividers[len(dividers)-1] {
			vs = append(vs, v)
		}
	}
	sort.Float64s(vs)
	return stat.Histogram(nil, dividers, vs, nil)
}

// RDF bins the distances from center to every point into spherical shells of
// the given step width, out to end, and normalizes each shell count by the
// shell volume. It returns the outer radius of each shell and the resulting
// radial density. Non-positive step or end fall back to 0.1 and 10.
func RDF(points xyz.Points, center [3]float64, step, end float64) (r, dens []float64) {
	if step <= 0 {
		step = 0.1
	}
	if end <= 0 {
		end = 10
	}
	dists := make([]float64, 0, len(points))
	for _, p := range points {
		dx := p.X - center[0]
		dy := p.Y - center[1]
		dz := p.Z - center[2]
		if d2 := dx*dx + dy*dy + dz*dz; d2 <= end*end {
			dists = append(dists, math.Sqrt(d2))
		}
	}
	sort.Float64s(dists)
	total := int(end / step)
	r = make([]float64, total)
	dens = make([]float64, total)
	vp := (4.0 / 3.0) * math.Pi
	k := 0
	prev := 0
	for i := 1; i <= total; i++ {
		limit := float64(i) * step
		for k < len(dists) && dists[k] <= limit {
			k++
		}
		inner := float64(i-1) * step
		vol := vp * (limit*limit*limit - inner*inner*inner)
		r[i-1] = limit
		dens[i-1] = float64(k-prev) / vol
		prev = k
	}
	return r, dens
}

// DensityProfile counts values (usually a z column) into bins equally spaced
// slabs between lo and hi and returns the slab centers along with the counts.
// Callers wanting a volume density divide the counts by the slab volume.
func DensityProfile(values []float64, lo, hi float64, bins int) (centers, counts []float64) {
	if bins < 1 || lo >= hi {
		return nil, nil
	}
	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	counts = Histogram(dividers, values)
	centers = make([]float64, bins)
	for i := 0; i < bins; i++ {
		centers[i] = (dividers[i] + dividers[i+1]) / 2
	}
	return centers, counts
}
