package domain

import (
	"fmt"

	"honnef.co/go/curve"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

// DefaultSamples is the number of points a quadratic curve is flattened into
// (50 steps).
const DefaultSamples = 51

// Flattener approximates quadratic Bézier curves by sampled points.
type Flattener interface {
	// Flatten returns Samples() points of the curve p0, p1, p2 at evenly spaced
	// parameters. The first point is p0 and the last is p2.
	Flatten(p0, p1, p2 m.Point) []m.Point
	Samples() int
}

type flattener struct {
	samples int
}

// NewFlattener returns a Flattener producing the given number of samples per
// curve. At least two samples are needed to keep both endpoints.
func NewFlattener(samples int) (Flattener, error) {
	if samples < 2 {
		return nil, fmt.Errorf("flattener needs at least 2 samples, got %d", samples)
	}

	return &flattener{samples: samples}, nil
}

func (f *flattener) Samples() int {
	return f.samples
}

func (f *flattener) Flatten(p0, p1, p2 m.Point) []m.Point {
	quad := curve.QuadBez{
		P0: curve.Pt(p0.X, p0.Y),
		P1: curve.Pt(p1.X, p1.Y),
		P2: curve.Pt(p2.X, p2.Y),
	}

	last := f.samples - 1
	out := make([]m.Point, f.samples)

	for i := 1; i < last; i++ {
		pt := quad.Eval(float64(i) / float64(last))
		out[i] = m.Pt(pt.X, pt.Y)
	}

	// Endpoints are copied so they match the control points exactly.
	out[0] = p0
	out[last] = p2

	return out
}
