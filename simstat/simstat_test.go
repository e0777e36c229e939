package simstat

import (
	"math"
	"testing"

	"github.com/PolykekBros/lammps-util-go/xyz"
)

func TestRange(Te *testing.T) {
	got := Range(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(got) != len(want) {
		Te.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			Te.Fatalf("want %v, got %v", want, got)
		}
	}
	if got := Range(3, 7, 1); len(got) != 1 || got[0] != 3 {
		Te.Errorf("single-element range must hold begin, got %v", got)
	}
	if Range(0, 1, 0) != nil {
		Te.Error("zero-count range must be nil")
	}
}

func TestMeanStd(Te *testing.T) {
	mean, std := MeanStd([]float64{2, 4})
	if mean != 3 || std != 1 {
		Te.Errorf("want mean 3 std 1, got %v %v", mean, std)
	}
	mean, std = MeanStd(nil)
	if !math.IsNaN(mean) || !math.IsNaN(std) {
		Te.Errorf("empty input must give NaNs, got %v %v", mean, std)
	}
}

func TestHistogram(Te *testing.T) {
	dividers := []float64{0, 1, 2, 3}
	counts := Histogram(dividers, []float64{0.5, 1.5, 1.6, 2.5, -1, 9})
	want := []float64{1, 2, 1} //out-of-range values dropped
	for i := range want {
		if counts[i] != want[i] {
			Te.Fatalf("want %v, got %v", want, counts)
		}
	}
}

func TestDensityProfile(Te *testing.T) {
	zs := []float64{0.1, 0.2, 1.5, 1.6, 1.7}
	centers, counts := DensityProfile(zs, 0, 2, 2)
	if len(centers) != 2 {
		Te.Fatalf("want 2 slabs, got %d", len(centers))
	}
	if centers[0] != 0.5 || centers[1] != 1.5 {
		Te.Errorf("slab centers wrong: %v", centers)
	}
	if counts[0] != 2 || counts[1] != 3 {
		Te.Errorf("want counts [2 3], got %v", counts)
	}
}

func TestRDF(Te *testing.T) {
	center := [3]float64{5, 5, 5}
	pts := xyz.Points{
		xyz.New(5.5, 5, 5, 0), //distance 0.5, first shell
		xyz.New(5, 5.8, 5, 1), //distance 0.8, second shell
		xyz.New(9, 9, 9, 2),   //beyond end, ignored
	}
	r, dens := RDF(pts, center, 0.5, 1.0)
	if len(r) != 2 {
		Te.Fatalf("want 2 shells, got %d", len(r))
	}
	if r[0] != 0.5 || r[1] != 1.0 {
		Te.Errorf("shell radii wrong: %v", r)
	}
	vp := (4.0 / 3.0) * math.Pi
	wantFirst := 1 / (vp * 0.125)
	wantSecond := 1 / (vp * (1 - 0.125))
	if math.Abs(dens[0]-wantFirst) > 1e-12 || math.Abs(dens[1]-wantSecond) > 1e-12 {
		Te.Errorf("want densities [%v %v], got %v", wantFirst, wantSecond, dens)
	}
}
