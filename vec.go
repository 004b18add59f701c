package ncpath

import (
	"fmt"
	"math"
)

// Point is a position in the lathe plane. Z is the axial coordinate and X the
// radial one. Internal computation keeps X in radius units; diameter values
// exist only at the package boundary.
type Point struct {
	Z float64
	X float64
}

// Pt returns the point (z, x).
func Pt(z, x float64) Point {
	return Point{Z: z, X: x}
}

func (pt Point) String() string {
	return fmt.Sprintf("(Z%g, X%g)", pt.Z, pt.X)
}

func (pt Point) Translate(v Vec2) Point {
	return Point{
		Z: pt.Z + v.Z,
		X: pt.X + v.X,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		Z: pt.Z - o.Z,
		X: pt.X - o.X,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		Z: 0.5 * (pt.Z + o.Z),
		X: 0.5 * (pt.X + o.X),
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.Z-o.Z, pt.X-o.X)
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.Z) || math.IsNaN(pt.X)
}

// Vec2 is a displacement in the lathe plane, with the same axis conventions
// as [Point].
type Vec2 struct {
	Z float64
	X float64
}

// Vec returns the vector ⟨z, x⟩.
func Vec(z, x float64) Vec2 {
	return Vec2{Z: z, X: x}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨Z%g, X%g⟩", v.Z, v.X)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.Z*o.Z + v.X*o.X
}

// Cross returns the cross product of v and o. It is positive when o lies to
// the left of v, with "left" taken in the (Z, X) orientation.
func (v Vec2) Cross(o Vec2) float64 {
	return v.Z*o.X - v.X*o.Z
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.Z, v.X)
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Normalize returns a vector of magnitude 1.0 with the same direction.
// This produces a NaN vector if the magnitude is 0.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1.0 / v.Hypot())
}

// Turn returns the vector rotated a quarter turn to the left.
func (v Vec2) Turn() Vec2 {
	return Vec2{Z: -v.X, X: v.Z}
}

// TurnBack returns the vector rotated a quarter turn to the right.
func (v Vec2) TurnBack() Vec2 {
	return Vec2{Z: v.X, X: -v.Z}
}

// Rotate returns the vector rotated by angle radians, counter-clockwise in
// the (Z, X) orientation.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		Z: v.Z*cos - v.X*sin,
		X: v.Z*sin + v.X*cos,
	}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		Z: v.Z + o.Z,
		X: v.X + o.X,
	}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		Z: v.Z - o.Z,
		X: v.X - o.X,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		Z: v.Z * f,
		X: v.X * f,
	}
}

// Negate returns a new vector with the signs of both components flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		Z: -v.Z,
		X: -v.X,
	}
}

// IsNaN reports whether at least one component is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.Z) || math.IsNaN(v.X)
}

// Bisector returns the unit bisector of two unit vectors. It reports failure
// when the vectors are close to opposite and the bisector direction is
// numerically meaningless.
func Bisector(u1, u2 Vec2) (Vec2, bool) {
	s := u1.Add(u2)
	h := s.Hypot()
	if h < 1e-9 {
		return Vec2{}, false
	}
	return s.Mul(1.0 / h), true
}
