package ncpath

// Nose radius compensation, center-track method: compute the locus of the
// cutting edge center that keeps the tool on the nominal profile, then
// convert it to the virtual-tool-tip frame the controller programs in.

// tipOffsets maps the tip orientation index to the unit offset from the
// cutting edge center to the virtual tool tip, in the rear tool post
// convention. Indices 0 and 9 program the edge center itself.
var tipOffsets = [10]Vec2{
	1: {Z: 1, X: 1},
	2: {Z: -1, X: 1},
	3: {Z: -1, X: -1},
	4: {Z: 1, X: -1},
	5: {Z: 0, X: 1},
	6: {Z: -1, X: 0},
	7: {Z: 0, X: -1},
	8: {Z: 1, X: 0},
}

// tipOffset returns the center→tip vector for the active tool, scaled by
// the nose radius. A front tool post flips the X component; cutting toward
// +Z flips the Z component.
func tipOffset(tool Tool, set MachineSettings) Vec2 {
	if tool.TipIndex < 0 || tool.TipIndex >= len(tipOffsets) {
		return Vec2{}
	}
	off := tipOffsets[tool.TipIndex].Mul(tool.NoseRadius)
	if set.Post == FrontPost {
		off.X = -off.X
	}
	if set.Direction == CutTowardPositiveZ {
		off.Z = -off.Z
	}
	return off
}

// materialSign is +1 when the material lies toward the rotation axis
// (external machining) and −1 for internal machining.
func materialSign(t ToolType) float64 {
	if t == InternalTool {
		return -1
	}
	return 1
}

// lineNormal is the away-from-material unit normal of a line segment.
func lineNormal(s Segment, side float64) Vec2 {
	d := s.P1.Sub(s.P0)
	h := d.Hypot()
	if h < lengthEps {
		return Vec2{X: side}
	}
	return d.Mul(1 / h).TurnBack().Mul(side)
}

// arcNormal is the away-from-material unit normal of an arc at p.
func arcNormal(s Segment, p Point, side float64) Vec2 {
	rad := p.Sub(s.Center)
	h := rad.Hypot()
	if h < lengthEps {
		return Vec2{X: side}
	}
	n := rad.Mul(1 / h)
	if !s.Convex {
		n = n.Negate()
	}
	return n.Mul(side)
}

func startNormal(s Segment, side float64) Vec2 {
	if s.Kind == ArcSegment {
		return arcNormal(s, s.P0, side)
	}
	return lineNormal(s, side)
}

func endNormal(s Segment, side float64) Vec2 {
	if s.Kind == ArcSegment {
		return arcNormal(s, s.P1, side)
	}
	return lineNormal(s, side)
}

// maxOffsetFactor caps the bisector offset at sharp junctions, where the
// miter-style distance rn/cos(half) would run away.
const maxOffsetFactor = 4.0

// centerTrack computes the program point for every node of the segment
// chain. Interior nodes offset along the bisector of the two adjacent
// away-from-material normals; the open ends are anchored so that their
// program point equals the raw profile point.
func centerTrack(segs []Segment, tool Tool, set MachineSettings) []Point {
	rn := tool.NoseRadius
	side := materialSign(tool.Type)
	off := tipOffset(tool, set)
	n := len(segs)
	prog := make([]Point, n+1)
	prog[0] = segs[0].P0
	prog[n] = segs[n-1].P1
	for i := 1; i < n; i++ {
		node := segs[i].P0
		n1 := endNormal(segs[i-1], side)
		n2 := startNormal(segs[i], side)
		bis, ok := Bisector(n1, n2)
		if !ok {
			bis = n1
		}
		cosHalf := bis.Dot(n1)
		dist := maxOffsetFactor * rn
		if cosHalf > 1.0/maxOffsetFactor {
			dist = rn / cosHalf
		}
		center := node.Translate(bis.Mul(dist))
		prog[i] = center.Translate(off)
	}
	return prog
}

// applyCompensation writes program coordinates into the result records. For
// arcs the compensated radius grows by the nose radius on convex material
// and shrinks on concave material, clamped to a small positive radius; I/K
// are recomputed from the compensated start point.
func applyCompensation(out []SegmentResult, segs []Segment, prog []Point, tool Tool, set MachineSettings) {
	off := tipOffset(tool, set)
	rn := tool.NoseRadius
	for i, s := range segs {
		c := &Compensated{
			StartX: round3(2 * prog[i].X),
			StartZ: round3(prog[i].Z),
			EndX:   round3(2 * prog[i+1].X),
			EndZ:   round3(prog[i+1].Z),
		}
		if s.Kind == ArcSegment {
			r := s.Radius - rn
			if s.Convex {
				r = s.Radius + rn
			} else if r < radiusEps {
				r = radiusEps
			}
			center := s.Center.Translate(off)
			c.Radius = round3(r)
			c.I = round3(center.X - prog[i].X)
			c.K = round3(center.Z - prog[i].Z)
		}
		out[i].Compensated = c
	}
}
