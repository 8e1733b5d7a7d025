// Package model defines the data structures shared by the path flattener,
// the document loader and the exporters.
package model

// Point is an absolute or relative 2D coordinate. Points are values: every
// operation returns a new Point and never modifies its receiver.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp linearly interpolates between p (t = 0) and q (t = 1).
func (p Point) Lerp(q Point, t float64) Point {
	return p.Scale(1 - t).Add(q.Scale(t))
}

// Equal reports whether both coordinates are identical.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}
