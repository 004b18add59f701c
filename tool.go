package ncpath

// ToolType is the machining role of a tool.
type ToolType int

const (
	ExternalTool ToolType = iota
	InternalTool
	FacingTool
	GroovingTool
	ThreadingTool
)

// Hand is the cutting hand of a tool holder.
type Hand int

const (
	RightHand Hand = iota
	LeftHand
	NeutralHand
)

// Tool describes one entry of the tool library. The compensation engine
// reads only NoseRadius, TipIndex and the external/internal distinction;
// the lead and back angles exist for interference checks layered on top.
type Tool struct {
	ID         string
	Type       ToolType
	NoseRadius float64
	// TipIndex is the standard tip orientation index, 0–9. 0 and 9 place
	// the programmed reference point at the cutting edge center.
	TipIndex  int
	Hand      Hand
	LeadAngle float64
	BackAngle float64
}

// Library is a tool library keyed by tool id.
type Library map[string]Tool

// Lookup returns the tool with the given id.
func (l Library) Lookup(id string) (Tool, bool) {
	t, ok := l[id]
	return t, ok
}

// ToolPost is the side of the rotation axis the tool approaches from.
type ToolPost int

const (
	RearPost ToolPost = iota
	FrontPost
)

// CutDirection is the feed direction along the Z axis.
type CutDirection int

const (
	CutTowardNegativeZ CutDirection = iota
	CutTowardPositiveZ
)

// MachineSettings is the machine state snapshot a calculation consults.
type MachineSettings struct {
	Post           ToolPost
	Direction      CutDirection
	ToolID         string
	CompensateNose bool
}
