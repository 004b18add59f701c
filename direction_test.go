package ncpath

import "testing"

func TestArcDirection(t *testing.T) {
	cases := []struct {
		turnLeft bool
		post     ToolPost
		dir      CutDirection
		want     ArcTurn
	}{
		{true, RearPost, CutTowardNegativeZ, CounterClockwise},
		{false, RearPost, CutTowardNegativeZ, Clockwise},
		{true, FrontPost, CutTowardNegativeZ, Clockwise},
		{false, FrontPost, CutTowardNegativeZ, CounterClockwise},
		{true, RearPost, CutTowardPositiveZ, Clockwise},
		{false, RearPost, CutTowardPositiveZ, CounterClockwise},
		{true, FrontPost, CutTowardPositiveZ, CounterClockwise},
		{false, FrontPost, CutTowardPositiveZ, Clockwise},
	}
	for _, c := range cases {
		got := ArcDirection(c.turnLeft, c.post, c.dir)
		if got != c.want {
			t.Errorf("ArcDirection(%v, %v, %v) = %v, want %v",
				c.turnLeft, c.post, c.dir, got, c.want)
		}
	}
}

func TestArcDirectionMirrors(t *testing.T) {
	// Flipping either the post or the cut direction alone flips the code.
	for _, turnLeft := range []bool{false, true} {
		for _, post := range []ToolPost{RearPost, FrontPost} {
			for _, dir := range []CutDirection{CutTowardNegativeZ, CutTowardPositiveZ} {
				base := ArcDirection(turnLeft, post, dir)
				if ArcDirection(turnLeft, 1-post, dir) == base {
					t.Errorf("post flip kept %v for (%v, %v, %v)", base, turnLeft, post, dir)
				}
				if ArcDirection(turnLeft, post, 1-dir) == base {
					t.Errorf("direction flip kept %v for (%v, %v, %v)", base, turnLeft, post, dir)
				}
			}
		}
	}
}

func TestArcTurnString(t *testing.T) {
	diff(t, "CW", Clockwise.String())
	diff(t, "CCW", CounterClockwise.String())
	diff(t, "none", NoTurn.String())
}
