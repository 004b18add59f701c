package ncpath

import (
	"math"
	"testing"
)

func checkChain(t *testing.T, segs []Segment) {
	t.Helper()
	for i := 1; i < len(segs); i++ {
		if d := segs[i-1].P1.Distance(segs[i].P0); d > 1e-6 {
			t.Errorf("chain break at %d: %v → %v (gap %v)", i, segs[i-1].P1, segs[i].P0, d)
		}
	}
}

func TestBuildPathLines(t *testing.T) {
	segs := BuildPath([]ProfilePoint{
		{X: 100, Z: 10},
		{X: 100, Z: 0},
		{X: 120, Z: -10},
	})
	want := []Segment{
		lineSeg(Pt(10, 50), Pt(0, 50)),
		lineSeg(Pt(0, 50), Pt(-10, 60)),
	}
	diff(t, want, segs)
	checkChain(t, segs)
}

func TestBuildPathTooShort(t *testing.T) {
	if segs := BuildPath(nil); segs != nil {
		t.Errorf("got %v, want nil", segs)
	}
	if segs := BuildPath([]ProfilePoint{{X: 100, Z: 0}}); segs != nil {
		t.Errorf("got %v, want nil", segs)
	}
}

func TestBuildPathDuplicatePoints(t *testing.T) {
	segs := BuildPath([]ProfilePoint{
		{X: 100, Z: 10},
		{X: 100, Z: 10},
		{X: 100, Z: 0},
	})
	diff(t, []Segment{lineSeg(Pt(10, 50), Pt(0, 50))}, segs)
}

func TestBuildPathSingleCorner(t *testing.T) {
	segs := BuildPath([]ProfilePoint{
		{X: 100, Z: 10},
		{X: 100, Z: 0, Corner: Corner{Kind: ConvexRadius, Size: 0.8}},
		{X: 120, Z: -10},
	})
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	checkChain(t, segs)
	diff(t, LineSegment, segs[0].Kind)
	diff(t, ArcSegment, segs[1].Kind)
	diff(t, LineSegment, segs[2].Kind)
	arc := segs[1]
	diff(t, Pt(0.331, 50.8), arc.Center, approx(1e-3))
	diff(t, 0.8, arc.Radius)
	// The cylinder-to-rising-taper junction curves around the material:
	// the arc is concave no matter what the treatment was called.
	if arc.Convex {
		t.Error("arc between cylinder and rising taper must be concave")
	}
}

func TestBuildPathStepCollapse(t *testing.T) {
	segs := BuildPath([]ProfilePoint{
		{X: 120, Z: 10},
		{X: 120, Z: 0, Corner: Corner{Kind: ConvexRadius, Size: 2}},
		{X: 114, Z: 0, Corner: Corner{Kind: ConcaveRadius, Size: 2}},
		{X: 114, Z: -10},
	})
	if len(segs) != 4 {
		t.Fatalf("got %d segments, want 4", len(segs))
	}
	checkChain(t, segs)
	var arcs []Segment
	for _, s := range segs {
		if s.Kind == ArcSegment {
			arcs = append(arcs, s)
		}
	}
	if len(arcs) != 2 {
		t.Fatalf("got %d arcs, want 2", len(arcs))
	}
	if d := arcs[0].P1.Distance(arcs[1].P0); d > 1e-6 {
		t.Errorf("arc junction gap %v", d)
	}
	diff(t, Pt(0, 58.5), arcs[0].P1, approx(1e-9))
	if !arcs[0].Convex {
		t.Error("first arc must be convex")
	}
	if arcs[1].Convex {
		t.Error("second arc must be concave")
	}
}

func TestBuildPathDualArc(t *testing.T) {
	segs := BuildPath([]ProfilePoint{
		{X: 100, Z: 20},
		{X: 100, Z: 0, Corner: Corner{
			Kind: ConvexRadius, Size: 1,
			Second: &Corner{Kind: ConvexRadius, Size: 3},
		}},
		{X: 140, Z: 0},
	})
	if len(segs) != 4 {
		t.Fatalf("got %d segments, want 4", len(segs))
	}
	checkChain(t, segs)
	diff(t, ArcSegment, segs[1].Kind)
	diff(t, ArcSegment, segs[2].Kind)
	diff(t, 1.0, segs[1].Radius, approx(1e-9))
	diff(t, 3.0, segs[2].Radius, approx(1e-9))
}

func TestBuildPathGroove(t *testing.T) {
	segs := BuildPath([]ProfilePoint{
		{X: 100, Z: 10},
		{X: 100, Z: 0, Groove: &Groove{Width: 3, Depth: 2}},
		{X: 100, Z: -5},
	})
	want := []Segment{
		lineSeg(Pt(10, 50), Pt(0, 50)),
		lineSeg(Pt(0, 50), Pt(0, 48)),
		lineSeg(Pt(0, 48), Pt(-3, 48)),
		lineSeg(Pt(-3, 48), Pt(-3, 50)),
		lineSeg(Pt(-3, 50), Pt(-5, 50)),
	}
	diff(t, want, segs)
	checkChain(t, segs)
}

func TestBuildPathGrooveWallAngle(t *testing.T) {
	segs := BuildPath([]ProfilePoint{
		{X: 100, Z: 10},
		{X: 100, Z: 0, Groove: &Groove{Width: 4, Depth: 2, WallAngle: 10}},
	})
	if len(segs) != 4 {
		t.Fatalf("got %d segments, want 4", len(segs))
	}
	shift := 2 * math.Tan(10*math.Pi/180)
	diff(t, Pt(-shift, 48), segs[1].P1, approx(1e-9))
	diff(t, Pt(-4+shift, 48), segs[2].P1, approx(1e-9))
	diff(t, Pt(-4, 50), segs[3].P1, approx(1e-9))
	checkChain(t, segs)
}

func TestBuildPathCornerSuppressesGroove(t *testing.T) {
	// A resolved corner never touches the raw vertex, so a groove on the
	// same vertex has no anchor and is skipped.
	segs := BuildPath([]ProfilePoint{
		{X: 100, Z: 10},
		{X: 100, Z: 0,
			Corner: Corner{Kind: ConvexRadius, Size: 0.8},
			Groove: &Groove{Width: 3, Depth: 2}},
		{X: 120, Z: -10},
	})
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	for _, s := range segs {
		if s.Kind == LineSegment && s.P1.X < 49 {
			t.Errorf("groove floor emitted despite resolved corner: %+v", s)
		}
	}
	checkChain(t, segs)
}

func TestBuildPathUnresolvableCornerFallsBack(t *testing.T) {
	// A corner on the last point has no following leg; the vertex is
	// reached by a plain line instead.
	segs := BuildPath([]ProfilePoint{
		{X: 100, Z: 10},
		{X: 100, Z: 0, Corner: Corner{Kind: ConvexRadius, Size: 2}},
	})
	diff(t, []Segment{lineSeg(Pt(10, 50), Pt(0, 50))}, segs)
}
