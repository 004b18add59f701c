// Package ncpath turns lathe workpiece profiles into machining paths and NC
// program coordinates.
//
// A profile is an ordered list of [ProfilePoint] values, each carrying a
// diameter-valued X coordinate, a Z coordinate, an optional [Corner]
// treatment (a rounding or a chamfer) and an optional [Groove] insert.
// [BuildPath] resolves the corner treatments into tangent points, arc
// centers and turn senses, and emits a flat chain of line and arc
// [Segment] values in workpiece coordinates.
//
// [Calculate] runs the full pipeline: it builds the path, classifies arc
// directions for G-code output, and, when enabled, applies nose radius
// compensation. Compensation uses the center-track method: it first computes
// the locus of the cutting-edge center that keeps the tool on the nominal
// profile, then converts that locus into the virtual-tool-tip frame that NC
// controllers expect, for any of the standard tip orientation indices and
// either tool post side. The legacy intersection method, which offsets each
// segment explicitly and solves pairwise intersections, is retained as a
// validation path.
//
// # Coordinate conventions
//
// X values on [ProfilePoint], [SegmentResult] and [Compensated] are diameter
// values, as entered and displayed on lathe controls. All internal geometry
// works in radius units; I/K arc center offsets are emitted in radius units
// per NC convention. Every numeric output is rounded to three decimal
// places so that reruns and downstream code generation are stable.
//
// # Failure behavior
//
// Resolvers report failure through explicit boolean returns, never panics.
// A vertex whose corner cannot be resolved (zero-length leg, degenerate
// bisector, no room after auto-shrinking) degrades to a straight move to the
// raw vertex. Interference warnings are threaded through untouched and never
// block a calculation.
package ncpath
