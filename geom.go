package ncpath

import "math"

const (
	// lengthEps is the shortest leg or chord the resolvers accept.
	lengthEps = 1e-9
	// radiusEps is the smallest radius a compensated concave arc may shrink
	// to, matching the 3-decimal output resolution.
	radiusEps = 1e-3
)

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// round3 rounds to the fixed 3-decimal output resolution.
func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

// tangentLength returns the distance from a corner vertex to the tangent
// points of an inscribed arc of radius r, where half is the corner's
// half-angle.
func tangentLength(r, half float64) float64 {
	return r / math.Tan(half)
}

// SolveQuadratic returns the real roots of c0 + c1·x + c2·x² = 0.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		// c2 is zero or very small, treat as a linear equation.
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		}
		return [2]float64{}, 0
	}
	arg := sc1*sc1 - 4.0*sc0
	if arg < 0.0 {
		return [2]float64{}, 0
	}
	if arg == 0.0 {
		return [2]float64{-0.5 * sc1}, 1
	}
	// Direct formula with the stable sign choice.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	root2 := sc0 / root1
	if root1 > root2 {
		root1, root2 = root2, root1
	}
	return [2]float64{root1, root2}, 2
}

// LineLineIntersection computes the point where two lines, each given by a
// point and a direction and extended to infinity, cross.
func LineLineIntersection(p0 Point, d0 Vec2, p1 Point, d1 Vec2) (Point, bool) {
	det := d0.Cross(d1)
	if math.Abs(det) < 1e-12 {
		return Point{}, false
	}
	t := p1.Sub(p0).Cross(d1) / det
	return p0.Translate(d0.Mul(t)), true
}

// LineCircleIntersection returns the intersections of an infinite line,
// given by a point and a direction, with a circle.
func LineCircleIntersection(p Point, d Vec2, center Point, r float64) ([2]Point, int) {
	f := p.Sub(center)
	a := d.Dot(d)
	b := 2.0 * f.Dot(d)
	c := f.Dot(f) - r*r
	if a < 1e-18 {
		return [2]Point{}, 0
	}
	disc := b*b - 4.0*a*c
	if disc < 0.0 {
		return [2]Point{}, 0
	}
	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2.0 * a)
	t1 := (-b + sq) / (2.0 * a)
	if sq < 1e-12 {
		return [2]Point{p.Translate(d.Mul(t0))}, 1
	}
	return [2]Point{
		p.Translate(d.Mul(t0)),
		p.Translate(d.Mul(t1)),
	}, 2
}

// CircleCircleIntersection returns the intersections of two circles.
func CircleCircleIntersection(c0 Point, r0 float64, c1 Point, r1 float64) ([2]Point, int) {
	dv := c1.Sub(c0)
	d := dv.Hypot()
	if d < 1e-12 {
		// Concentric circles either miss or coincide; neither yields
		// usable intersection points.
		return [2]Point{}, 0
	}
	if d > r0+r1 || d < math.Abs(r0-r1) {
		return [2]Point{}, 0
	}
	a := (r0*r0 - r1*r1 + d*d) / (2.0 * d)
	h2 := r0*r0 - a*a
	if h2 < 0.0 {
		h2 = 0.0
	}
	h := math.Sqrt(h2)
	u := dv.Mul(1.0 / d)
	mid := c0.Translate(u.Mul(a))
	if h < 1e-12 {
		return [2]Point{mid}, 1
	}
	perp := u.Turn().Mul(h)
	return [2]Point{
		mid.Translate(perp),
		mid.Translate(perp.Negate()),
	}, 2
}
