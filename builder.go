package ncpath

import "math"

// BuildPath converts an ordered profile point list into a flat machining
// path in workpiece coordinates. Corner treatments are resolved per vertex,
// preferring the adjacent S-curve collapse, then a chained dual arc, then a
// single corner; a vertex whose treatment cannot be resolved degrades to a
// straight move to the raw vertex. Grooves expand only at vertices reached
// directly: a resolved corner consumes the raw vertex and suppresses its
// groove. Fewer than two points yield no path.
func BuildPath(points []ProfilePoint) []Segment {
	if len(points) < 2 {
		return nil
	}
	pts := make([]Point, len(points))
	for i, p := range points {
		pts[i] = p.pos()
	}

	var segs []Segment
	cursor := pts[0]
	emitLine := func(to Point) {
		if cursor.Distance(to) > lengthEps {
			segs = append(segs, lineSeg(cursor, to))
			cursor = to
		}
	}

	for i := 1; i < len(pts); i++ {
		v := pts[i]
		c := points[i].Corner
		resolved := false

		if i+1 < len(pts) {
			next := pts[i+1]
			if i+2 < len(pts) &&
				c.active() && c.isRadius() && c.Second == nil &&
				points[i+1].Corner.active() && points[i+1].Corner.isRadius() &&
				points[i+1].Corner.Second == nil {
				if rc, ok := resolveSCurve(cursor, v, next, pts[i+2], c, points[i+1].Corner); ok {
					emitLine(rc.entry)
					segs = append(segs, rc.segs...)
					cursor = rc.exit
					i++ // the second vertex is consumed by the S-curve
					resolved = true
				}
			}
			if !resolved && c.active() && c.Second != nil && c.Second.active() {
				if rc, ok := resolveDualArc(cursor, v, next, c); ok {
					emitLine(rc.entry)
					segs = append(segs, rc.segs...)
					cursor = rc.exit
					resolved = true
				}
			}
			if !resolved && c.active() {
				if rc, ok := resolveSingleCorner(cursor, v, next, c); ok {
					emitLine(rc.entry)
					segs = append(segs, rc.segs...)
					cursor = rc.exit
					resolved = true
				}
			}
		}
		if !resolved {
			emitLine(v)
			if g := points[i].Groove; g != nil {
				gsegs, end := grooveSegments(cursor, *g)
				segs = append(segs, gsegs...)
				cursor = end
			}
		}
	}
	return segs
}

// grooveSegments expands a groove insert into entry wall, floor and exit
// wall, leaving the cursor at the groove exit point (X, Z−Width).
func grooveSegments(at Point, g Groove) ([]Segment, Point) {
	if g.Width <= 0 || g.Depth <= 0 {
		return nil, at
	}
	shift := g.Depth * math.Tan(g.WallAngle*math.Pi/180)
	shift = clamp(shift, 0, 0.499*g.Width)
	bottomEntry := Pt(at.Z-shift, at.X-g.Depth)
	bottomExit := Pt(at.Z-g.Width+shift, at.X-g.Depth)
	end := Pt(at.Z-g.Width, at.X)
	return []Segment{
		lineSeg(at, bottomEntry),
		lineSeg(bottomEntry, bottomExit),
		lineSeg(bottomExit, end),
	}, end
}
