package ncpath

// ArcTurn is the canonical arc direction code for NC output.
type ArcTurn int

const (
	NoTurn ArcTurn = iota
	Clockwise
	CounterClockwise
)

func (t ArcTurn) String() string {
	switch t {
	case Clockwise:
		return "CW"
	case CounterClockwise:
		return "CCW"
	default:
		return "none"
	}
}

// ArcDirection maps a turn sense, tool post side and cutting direction to
// the arc direction code the controller expects.
func ArcDirection(turnLeft bool, post ToolPost, dir CutDirection) ArcTurn {
	cw := turnLeft != (post == RearPost) != (dir == CutTowardPositiveZ)
	if cw {
		return Clockwise
	}
	return CounterClockwise
}
