package ncpath

import "math"

// resolvedCorner is the replacement a resolver produces for one vertex (or,
// for the S-curve case, two adjacent vertices). The builder emits a line
// from its cursor to entry, splices in segs, and continues from exit.
type resolvedCorner struct {
	entry Point
	exit  Point
	segs  []Segment
}

// cornerLegs computes the unit vectors and lengths of the two legs meeting
// at a corner vertex. u1 points toward the previous point, u2 toward the
// next one.
func cornerLegs(prev, corner, next Point) (u1, u2 Vec2, l1, l2 float64, ok bool) {
	v1 := prev.Sub(corner)
	v2 := next.Sub(corner)
	l1 = v1.Hypot()
	l2 = v2.Hypot()
	if l1 < lengthEps || l2 < lengthEps {
		return Vec2{}, Vec2{}, 0, 0, false
	}
	return v1.Mul(1 / l1), v2.Mul(1 / l2), l1, l2, true
}

// resolveSingleCorner converts one vertex with a single corner treatment
// into its entry/exit tangent points and the chamfer line or fillet arc
// between them. A radius that does not fit the shorter leg is shrunk so
// that the tangent distance stays within 99% of that leg.
func resolveSingleCorner(prev, corner, next Point, c Corner) (resolvedCorner, bool) {
	u1, u2, l1, l2, ok := cornerLegs(prev, corner, next)
	if !ok {
		return resolvedCorner{}, false
	}
	cross := u1.Cross(u2)
	if math.Abs(cross) < 1e-12 {
		// Collinear legs leave nothing to treat.
		return resolvedCorner{}, false
	}
	half := 0.5 * math.Acos(clamp(u1.Dot(u2), -1, 1))
	shorter := min(l1, l2)
	// Turn sense of the travel direction, prev → corner → next.
	turnLeft := cross < 0

	switch c.Kind {
	case Chamfer:
		size := min(c.Size, 0.99*shorter)
		if size <= 0 {
			return resolvedCorner{}, false
		}
		entry := corner.Translate(u1.Mul(size))
		exit := corner.Translate(u2.Mul(size))
		seg := chamferSeg(entry, exit)
		seg.TurnLeft = turnLeft
		return resolvedCorner{entry: entry, exit: exit, segs: []Segment{seg}}, true

	case ConcaveRadius, ConvexRadius:
		bis, ok := Bisector(u1, u2)
		if !ok {
			return resolvedCorner{}, false
		}
		sinHalf := math.Sin(half)
		tanHalf := math.Tan(half)
		if sinHalf < 1e-12 || tanHalf < 1e-12 {
			return resolvedCorner{}, false
		}
		r := c.Size
		tDist := tangentLength(r, half)
		if limit := 0.99 * shorter; tDist > limit {
			// Not enough room on the shorter leg: cap the tangent distance
			// and shrink the effective radius to match.
			tDist = limit
			r = tDist * tanHalf
		}
		if r <= 0 {
			return resolvedCorner{}, false
		}
		center := corner.Translate(bis.Mul(r / sinHalf))
		entry := corner.Translate(u1.Mul(tDist))
		exit := corner.Translate(u2.Mul(tDist))
		arc := arcSeg(entry, exit, center, r, turnLeft)
		return resolvedCorner{entry: entry, exit: exit, segs: []Segment{arc}}, true
	}
	return resolvedCorner{}, false
}

// resolveDualArc converts a vertex carrying a chained second radius into two
// arcs. For two treatments of the same kind the shared tangent length L at
// the junction solves T·L² + (r1+r2)·L − T·r1·r2 = 0 with T = tan(θ/2) and
// θ the total turn angle; this makes the arcs exactly tangent to the legs
// and to each other, and degenerates to the single fillet for equal radii.
// For mixed kinds there is no closed form here; the fixed 1.5× turn-angle
// heuristic is preserved and the junction is only approximately tangent.
func resolveDualArc(prev, corner, next Point, c Corner) (resolvedCorner, bool) {
	if c.Second == nil || !c.Second.active() || !c.isRadius() || !c.Second.isRadius() {
		return resolvedCorner{}, false
	}
	u1, u2, l1, l2, ok := cornerLegs(prev, corner, next)
	if !ok {
		return resolvedCorner{}, false
	}
	half := 0.5 * math.Acos(clamp(u1.Dot(u2), -1, 1))
	theta := math.Pi - 2*half
	sinTheta := math.Sin(theta)
	if theta < 1e-9 || sinTheta < 1e-12 {
		return resolvedCorner{}, false
	}
	r1 := c.Size
	r2 := c.Second.Size

	var shared float64
	if c.Kind == c.Second.Kind {
		t := math.Tan(theta / 2)
		roots, n := SolveQuadratic(-t*r1*r2, r1+r2, t)
		for _, root := range roots[:n] {
			if root > shared {
				shared = root
			}
		}
		if shared <= 0 {
			return resolvedCorner{}, false
		}
	} else {
		shared = 0.5 * (r1 + r2) * math.Tan(1.5*theta/4)
	}

	phi1 := 2 * math.Atan(shared/r1)
	phi2 := 2 * math.Atan(shared/r2)
	entryDist := 2*shared*math.Sin(phi2)/sinTheta + shared
	exitDist := 2*shared*math.Sin(phi1)/sinTheta + shared
	if entryDist > 0.99*l1 || exitDist > 0.99*l2 {
		return resolvedCorner{}, false
	}

	dIn := u1.Negate()
	turnLeft := dIn.Cross(u2) > 0
	n1 := dIn.TurnBack()
	if turnLeft {
		n1 = dIn.Turn()
	}
	entry := corner.Translate(u1.Mul(entryDist))
	exit := corner.Translate(u2.Mul(exitDist))
	c1 := entry.Translate(n1.Mul(r1))

	// The junction point is the end of the first arc's sweep.
	sweep := phi1
	if !turnLeft {
		sweep = -phi1
	}
	mid := c1.Translate(entry.Sub(c1).Rotate(sweep))

	turnLeft2 := turnLeft
	if c.Kind != c.Second.Kind {
		turnLeft2 = !turnLeft
	}
	n2 := u2.TurnBack()
	if turnLeft2 {
		n2 = u2.Turn()
	}
	c2 := exit.Translate(n2.Mul(r2))

	segs := []Segment{
		arcSeg(entry, mid, c1, r1, turnLeft),
		arcSeg(mid, exit, c2, r2, turnLeft2),
	}
	return resolvedCorner{entry: entry, exit: exit, segs: segs}, true
}

// resolveSCurve handles two adjacent radius-bearing vertices whose flanking
// segments are parallel, as on a stepped wall. When the perpendicular
// separation of the two fillet center lines is smaller than the sum
// (opposite center sides, the S shape) or difference (same side, as on a
// doubled-back undercut lip) of the radii, the straight wall between the
// fillets collapses and the step becomes two tangent arcs meeting at a
// single junction: externally tangent circles in the sum case, internally
// tangent in the difference case. When there is room, the resolver declines
// and the vertices are treated independently.
func resolveSCurve(prev, vA, vB, next Point, cA, cB Corner) (resolvedCorner, bool) {
	din := vA.Sub(prev)
	wallv := vB.Sub(vA)
	dout := next.Sub(vB)
	lin := din.Hypot()
	lw := wallv.Hypot()
	lout := dout.Hypot()
	if lin < lengthEps || lw < lengthEps || lout < lengthEps {
		return resolvedCorner{}, false
	}
	d := din.Mul(1 / lin)
	w := wallv.Mul(1 / lw)
	out := dout.Mul(1 / lout)
	if math.Abs(d.Cross(out)) > 1e-9 {
		return resolvedCorner{}, false
	}
	// An exit flank running against the entry axis means the profile
	// doubles back over the wall, as on an undercut lip.
	reversed := d.Dot(out) < 0
	crossA := d.Cross(w)
	crossB := w.Cross(out)
	if math.Abs(crossA) < 1e-12 || math.Abs(crossB) < 1e-12 {
		return resolvedCorner{}, false
	}
	sA := math.Copysign(1, crossA)
	sB := math.Copysign(1, crossB)
	rA := cA.Size
	rB := cB.Size

	// Axis e is perpendicular to the parallel flanks; coordinates below are
	// (a, perp) in the orthonormal (d, e) frame.
	e := d.Turn()
	perpA := e.Dot(Vec2(vA))
	perpB := e.Dot(Vec2(vB))
	centerAPerp := perpA + sA*rA
	centerBPerp := perpB + sB*rB
	h := math.Abs(centerBPerp - centerAPerp)
	opposite := sA != sB
	sep := rA + rB
	if !opposite {
		sep = math.Abs(rA - rB)
	}
	if h >= sep {
		return resolvedCorner{}, false
	}
	dd := math.Sqrt(sep*sep - h*h)

	aA := d.Dot(Vec2(vA))
	aB := d.Dot(Vec2(vB))
	anchor := (aA*rA + aB*rB) / (rA + rB)
	centerAA := anchor - dd*rA/(rA+rB)
	centerBA := anchor + dd*rB/(rA+rB)
	exitOvershoot := centerBA >= d.Dot(Vec2(next))
	if reversed {
		exitOvershoot = centerBA <= d.Dot(Vec2(next))
	}
	if centerAA <= d.Dot(Vec2(prev)) || exitOvershoot {
		return resolvedCorner{}, false
	}

	compose := func(a, perp float64) Point {
		return Pt(d.Z*a+e.Z*perp, d.X*a+e.X*perp)
	}
	centerA := compose(centerAA, centerAPerp)
	centerB := compose(centerBA, centerBPerp)

	var mid Point
	switch {
	case opposite:
		mid = centerA.Lerp(centerB, rA/(rA+rB))
	case rA > rB:
		mid = centerA.Translate(centerB.Sub(centerA).Normalize().Mul(rA))
	default:
		mid = centerB.Translate(centerA.Sub(centerB).Normalize().Mul(rB))
	}

	entry := compose(centerAA, perpA)
	exit := compose(centerBA, perpB)
	turnB := sB > 0
	if reversed {
		// The exit flank is traversed against the axis, flipping the
		// second arc's sense.
		turnB = !turnB
	}
	segs := []Segment{
		arcSeg(entry, mid, centerA, rA, sA > 0),
		arcSeg(mid, exit, centerB, rB, turnB),
	}
	return resolvedCorner{entry: entry, exit: exit, segs: segs}, true
}
