package ncpath

// Legacy intersection method for nose radius compensation: offset every
// segment by the nose radius along its away-from-material normal and
// intersect consecutive offset elements. It exists to cross-check the
// bisector-based center track; on tangent junctions the offset elements
// touch rather than cross, so the bisector point is used as fallback.

// offsetElem is a path segment pushed away from the material by the nose
// radius. Lines keep their direction; arcs keep their center and change
// radius.
type offsetElem struct {
	isArc  bool
	p      Point
	d      Vec2
	center Point
	radius float64
}

// offsetElement offsets one segment by rn along its away-from-material
// normal.
func offsetElement(s Segment, rn, side float64) offsetElem {
	if s.Kind == ArcSegment {
		r := s.Radius - rn*side
		if s.Convex {
			r = s.Radius + rn*side
		}
		if r < radiusEps {
			r = radiusEps
		}
		return offsetElem{isArc: true, center: s.Center, radius: r}
	}
	n := lineNormal(s, side)
	return offsetElem{p: s.P0.Translate(n.Mul(rn)), d: s.P1.Sub(s.P0)}
}

// intersectElems intersects two offset elements and picks the candidate
// closest to near.
func intersectElems(a, b offsetElem, near Point) (Point, bool) {
	var cands [2]Point
	var n int
	switch {
	case !a.isArc && !b.isArc:
		p, ok := LineLineIntersection(a.p, a.d, b.p, b.d)
		if !ok {
			return Point{}, false
		}
		cands[0] = p
		n = 1
	case a.isArc && !b.isArc:
		cands, n = LineCircleIntersection(b.p, b.d, a.center, a.radius)
	case !a.isArc && b.isArc:
		cands, n = LineCircleIntersection(a.p, a.d, b.center, b.radius)
	default:
		cands, n = CircleCircleIntersection(a.center, a.radius, b.center, b.radius)
	}
	if n == 0 {
		return Point{}, false
	}
	best := cands[0]
	for _, c := range cands[1:n] {
		if near.Distance(c) < near.Distance(best) {
			best = c
		}
	}
	return best, true
}

// CompensateIntersect computes the nose radius compensated program point for
// every node of a segment chain by the intersection method. It is the
// validation counterpart of the center-track path used by [Calculate]; on
// plain line-line corners within the sharp-corner cap the two agree exactly.
func CompensateIntersect(segs []Segment, tool Tool, set MachineSettings) []Point {
	if len(segs) == 0 {
		return nil
	}
	return intersectTrack(segs, tool, set)
}

// intersectTrack computes the program points by the intersection method.
// The open ends are anchored exactly like the center track; interior nodes
// fall back to the bisector construction when the offset elements do not
// intersect.
func intersectTrack(segs []Segment, tool Tool, set MachineSettings) []Point {
	rn := tool.NoseRadius
	side := materialSign(tool.Type)
	off := tipOffset(tool, set)
	n := len(segs)
	prog := make([]Point, n+1)
	prog[0] = segs[0].P0
	prog[n] = segs[n-1].P1
	fallback := centerTrack(segs, tool, set)
	for i := 1; i < n; i++ {
		node := segs[i].P0
		a := offsetElement(segs[i-1], rn, side)
		b := offsetElement(segs[i], rn, side)
		// The crossing we want is near the offset node, one nose radius
		// off the raw corner.
		near := node.Translate(startNormal(segs[i], side).Mul(rn))
		center, ok := intersectElems(a, b, near)
		if !ok || center.Distance(node) > maxOffsetFactor*rn+lengthEps {
			prog[i] = fallback[i]
			continue
		}
		prog[i] = center.Translate(off)
	}
	return prog
}
