// Package geom provides the 2D point and line primitives the raycasting
// engine is built on. Coordinates are in map-grid units: 1 unit = 1 tile.
package geom

import "math"

// Point is a position or direction vector. Which one it is depends on
// context; the operations below work for both.
type Point struct {
	X float64
	Y float64
}

// Turn rotates a by t radians using the standard rotation matrix.
func (a Point) Turn(t float64) Point {
	sin, cos := math.Sincos(t)
	return Point{
		X: a.X*cos - a.Y*sin,
		Y: a.X*sin + a.Y*cos,
	}
}

// Perp rotates a by a quarter turn. Used for strafing.
func (a Point) Perp() Point {
	return Point{X: -a.Y, Y: a.X}
}

// Add returns a + b.
func (a Point) Add(b Point) Point {
	return Point{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func (a Point) Sub(b Point) Point {
	return Point{X: a.X - b.X, Y: a.Y - b.Y}
}

// Mul scales a by n.
func (a Point) Mul(n float64) Point {
	return Point{X: a.X * n, Y: a.Y * n}
}

// Mag returns the Euclidean norm of a.
func (a Point) Mag() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// Unit returns a scaled to unit length. Undefined for the zero vector;
// callers guarantee a nonzero input.
func (a Point) Unit() Point {
	m := a.Mag()
	return Point{X: a.X / m, Y: a.Y / m}
}

// Slope returns y/x. Undefined for vertical vectors (X == 0); the grid
// traversal handles the axis-aligned cases through IEEE infinities.
func (a Point) Slope() float64 {
	return a.Y / a.X
}

// Line is an oriented segment. It serves both as a field-of-view boundary
// in camera-local space and as a world-space trace from eye to wall hit.
type Line struct {
	A Point
	B Point
}

// Rotate rotates both endpoints of l by t radians.
func (l Line) Rotate(t float64) Line {
	return Line{
		A: l.A.Turn(t),
		B: l.B.Turn(t),
	}
}

// Lerp interpolates along l: n=0 yields A, n=1 yields B. Values outside
// [0, 1] extrapolate.
func (l Line) Lerp(n float64) Point {
	return l.A.Add(l.B.Sub(l.A).Mul(n))
}
