package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

func closedFormQuad(p0, p1, p2 m.Point, t float64) m.Point {
	mt := 1 - t
	return p0.Scale(mt * mt).Add(p1.Scale(2 * t * mt)).Add(p2.Scale(t * t))
}

func TestNewFlattener_RejectsTooFewSamples(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := NewFlattener(n)
		require.Error(t, err)
	}

	f, err := NewFlattener(2)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Samples())
}

func TestFlatten_EndpointsAndLength(t *testing.T) {
	f, err := NewFlattener(DefaultSamples)
	require.NoError(t, err)

	p0, p1, p2 := m.Pt(0.1, 0.7), m.Pt(5.3, 10.9), m.Pt(10.01, -0.3)
	out := f.Flatten(p0, p1, p2)

	require.Len(t, out, DefaultSamples)
	assert.Equal(t, p0, out[0])
	assert.Equal(t, p2, out[len(out)-1])
}

func TestFlatten_FollowsCurveFormula(t *testing.T) {
	f, err := NewFlattener(11)
	require.NoError(t, err)

	p0, p1, p2 := m.Pt(0, 0), m.Pt(5, 10), m.Pt(10, 0)
	out := f.Flatten(p0, p1, p2)

	for i, pt := range out {
		want := closedFormQuad(p0, p1, p2, float64(i)/10)
		assert.InDelta(t, want.X, pt.X, 1e-9, "x at %d", i)
		assert.InDelta(t, want.Y, pt.Y, 1e-9, "y at %d", i)
	}

	// The parameter grows monotonically, so x does too on this symmetric curve.
	for i := 1; i < len(out); i++ {
		assert.Greater(t, out[i].X, out[i-1].X)
	}

	assert.InDelta(t, 5.0, out[5].X, 1e-9)
	assert.InDelta(t, 5.0, out[5].Y, 1e-9)
}

func TestFlatten_IsDeterministic(t *testing.T) {
	f, err := NewFlattener(DefaultSamples)
	require.NoError(t, err)

	p0, p1, p2 := m.Pt(1.25, -3), m.Pt(0.3333, 7.1), m.Pt(-4, 2.5)
	assert.Equal(t, f.Flatten(p0, p1, p2), f.Flatten(p0, p1, p2))
}

func TestFlatten_TwoSamplesAreEndpoints(t *testing.T) {
	f, err := NewFlattener(2)
	require.NoError(t, err)

	out := f.Flatten(m.Pt(0, 0), m.Pt(3, 3), m.Pt(6, 0))
	assert.Equal(t, []m.Point{m.Pt(0, 0), m.Pt(6, 0)}, out)
}
