package ncpath

import (
	"math"
	"strconv"
)

// Result is the outcome of one path calculation.
type Result struct {
	Segments []SegmentResult
	Warnings []string
}

// Calculate builds the machining path for a profile and, when enabled and a
// tool is selected, applies nose radius compensation. Warnings passed in are
// carried through so interference checks can accumulate across stages; a
// missing tool id adds a warning and skips compensation rather than failing
// the whole calculation.
func Calculate(points []ProfilePoint, set MachineSettings, tools Library, warnings []string) Result {
	res := Result{Warnings: warnings}
	segs := BuildPath(points)
	if len(segs) == 0 {
		return res
	}
	res.Segments = make([]SegmentResult, len(segs))
	for i, s := range segs {
		res.Segments[i] = newSegmentResult(s, set)
	}
	if !set.CompensateNose {
		return res
	}
	tool, ok := tools.Lookup(set.ToolID)
	if !ok {
		res.Warnings = append(res.Warnings, "unknown tool "+strconv.Quote(set.ToolID)+", nose radius compensation skipped")
		return res
	}
	prog := centerTrack(segs, tool, set)
	applyCompensation(res.Segments, segs, prog, tool, set)
	return res
}

// newSegmentResult converts a segment to its output record: X to diameter,
// everything rounded to 3 decimals, the arc direction resolved against the
// machine setup.
func newSegmentResult(s Segment, set MachineSettings) SegmentResult {
	out := SegmentResult{
		Kind:   s.Kind,
		StartX: round3(2 * s.P0.X),
		StartZ: round3(s.P0.Z),
		EndX:   round3(2 * s.P1.X),
		EndZ:   round3(s.P1.Z),
	}
	switch s.Kind {
	case LineSegment, ChamferSegment:
		d := s.P1.Sub(s.P0)
		out.Angle = round3(math.Atan2(math.Abs(d.X), math.Abs(d.Z)) * 180 / math.Pi)
	case ArcSegment:
		out.CenterX = round3(2 * s.Center.X)
		out.CenterZ = round3(s.Center.Z)
		out.Radius = round3(s.Radius)
		out.Convex = s.Convex
		out.I = round3(s.Center.X - s.P0.X)
		out.K = round3(s.Center.Z - s.P0.Z)
		out.Turn = ArcDirection(s.TurnLeft, set.Post, set.Direction)
	}
	return out
}
