package ncpath

// CornerKind identifies the treatment applied at a profile vertex.
type CornerKind int

const (
	// No treatment; the vertex stays sharp.
	CornerNone CornerKind = iota
	// A rounded inside corner ("sumi-R").
	ConcaveRadius
	// A rounded outside corner ("kaku-R").
	ConvexRadius
	// A flat angled cut replacing the corner ("kaku-C").
	Chamfer
)

// Corner describes the treatment of one vertex. Size must be positive for
// the treatment to take effect; zero and negative sizes degrade silently to
// no treatment.
type Corner struct {
	Kind CornerKind
	Size float64
	// Second chains another radius onto the same vertex, producing two arcs.
	// Only the radius kinds are meaningful here.
	Second *Corner
}

func (c Corner) active() bool {
	return c.Kind != CornerNone && c.Size > 0
}

func (c Corner) isRadius() bool {
	return c.Kind == ConcaveRadius || c.Kind == ConvexRadius
}

// Groove describes a groove insert cut at a vertex. The groove opens toward
// −Z: its entry wall starts at the vertex and its exit wall ends at
// (X, Z−Width). A groove anchors to the raw vertex position, so a corner
// treatment on the same vertex takes precedence and suppresses the groove.
type Groove struct {
	// Width along the Z axis.
	Width float64
	// Radial depth, per side.
	Depth float64
	// WallAngle tilts the entry and exit walls, in degrees from the radial
	// direction. 0 is a square wall.
	WallAngle float64
}

// ProfilePoint is one user-authored profile vertex. X is diameter-valued.
type ProfilePoint struct {
	X      float64
	Z      float64
	Corner Corner
	Groove *Groove
}

// pos converts the vertex to internal radius-unit coordinates.
func (p ProfilePoint) pos() Point {
	return Pt(p.Z, p.X/2)
}
