package domain

import (
	m "svgflat.dev/pkg/svgflat/internal/model"
)

// Assembler collects resolved points into the open polyline and freezes it
// into a subpath on every boundary.
type Assembler struct {
	open m.Subpath
	done m.Path
}

// Append adds points to the open polyline.
func (a *Assembler) Append(points ...m.Point) {
	a.open = append(a.open, points...)
}

// Empty reports whether the open polyline has no points.
func (a *Assembler) Empty() bool {
	return len(a.open) == 0
}

// First returns the first point of the open polyline.
func (a *Assembler) First() (m.Point, bool) {
	if len(a.open) == 0 {
		return m.Point{}, false
	}

	return a.open[0], true
}

// Boundary emits the open polyline as a subpath. Nothing is emitted when the
// polyline is empty.
func (a *Assembler) Boundary() {
	if len(a.open) == 0 {
		return
	}

	a.done = append(a.done, a.open)
	a.open = nil
}

// Path emits any open polyline and returns all subpaths.
func (a *Assembler) Path() m.Path {
	a.Boundary()
	return a.done
}
