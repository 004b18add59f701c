package ncpath

// SegmentKind tags the variants of a path segment.
type SegmentKind int

const (
	LineSegment SegmentKind = iota
	ArcSegment
	// A chamfer is geometrically a line but keeps its own tag so that
	// downstream consumers can label it.
	ChamferSegment
)

// Segment is one element of the machining path, in workpiece coordinates
// with X in radius units. Segments form a chain: each segment's P0 coincides
// with the previous segment's P1.
type Segment struct {
	Kind SegmentKind
	P0   Point
	P1   Point
	// Arc fields.
	Center Point
	Radius float64
	// Convex is set when the material is convex along the arc: the cutter
	// travels around the outside of the arc circle.
	Convex bool
	// TurnLeft is the turn sense of the arc in the (Z, X) orientation.
	TurnLeft bool
}

func lineSeg(p0, p1 Point) Segment {
	return Segment{Kind: LineSegment, P0: p0, P1: p1}
}

func chamferSeg(p0, p1 Point) Segment {
	return Segment{Kind: ChamferSegment, P0: p0, P1: p1}
}

func arcSeg(p0, p1, center Point, r float64, turnLeft bool) Segment {
	return Segment{
		Kind:     ArcSegment,
		P0:       p0,
		P1:       p1,
		Center:   center,
		Radius:   r,
		Convex:   turnLeft,
		TurnLeft: turnLeft,
	}
}

// Compensated carries the program coordinates produced by nose radius
// compensation. X values are diameter-valued; I and K are radius-valued
// offsets from the compensated start point to the compensated arc center.
type Compensated struct {
	StartX float64
	StartZ float64
	EndX   float64
	EndZ   float64
	Radius float64
	I      float64
	K      float64
}

// SegmentResult is the per-segment output record of a calculation. X values
// are diameter-valued; all fields are rounded to 3 decimals. Compensated is
// nil when nose radius compensation is disabled or skipped.
type SegmentResult struct {
	Kind   SegmentKind
	StartX float64
	StartZ float64
	EndX   float64
	EndZ   float64
	// Angle is the inclination of a line or chamfer chord against the Z
	// axis, in degrees.
	Angle float64
	// Arc fields.
	CenterX float64
	CenterZ float64
	Radius  float64
	Convex  bool
	I       float64
	K       float64
	Turn    ArcTurn

	Compensated *Compensated
}
