package track

import (
	"math"
	"testing"
)

func TestAppendAnchorsAtOrigin(t *testing.T) {
	s := Append(nil, Straight)

	if s.Start.Position.X != 0 || s.Start.Position.Y != 0 {
		t.Errorf("anchor position = %v, want origin", s.Start.Position)
	}
	if s.Start.Direction != 0 {
		t.Errorf("anchor direction = %v, want 0", s.Start.Direction)
	}
	if s.End.Position.X != 1 || math.Abs(s.End.Position.Y) > 1e-15 {
		t.Errorf("straight end = %v, want (1, 0)", s.End.Position)
	}
	if s.End.Direction != 0 {
		t.Errorf("straight end direction = %v, want 0", s.End.Direction)
	}
}

func TestAppendChainsPoses(t *testing.T) {
	first := Append(nil, Straight)
	second := Append(&first, ArcRight)

	if second.Start != first.End {
		t.Errorf("second.Start = %+v, want first.End %+v", second.Start, first.End)
	}
	if got, want := second.End.Direction, -math.Pi/4; math.Abs(got-want) > 1e-15 {
		t.Errorf("direction after aR = %v, want %v", got, want)
	}
}

func TestAppendRotatesLocalFrame(t *testing.T) {
	// After a quarter turn left (2 × aL) the next straight must move in +Y.
	p := Build([]Kind{ArcLeft, ArcLeft})
	before := p[len(p)-1].End

	p = p.Extend(Straight)
	after := p[len(p)-1].End

	dx := after.Position.X - before.Position.X
	dy := after.Position.Y - before.Position.Y
	if math.Abs(dx) > 1e-12 || math.Abs(dy-1) > 1e-12 {
		t.Errorf("straight after quarter turn moved (%v, %v), want (0, 1)", dx, dy)
	}
}

func TestBuildKindsRoundTrip(t *testing.T) {
	kinds := []Kind{DoubleStraight, ArcLeft, Straight, ArcRight}
	p := Build(kinds)

	got := p.Kinds()
	if len(got) != len(kinds) {
		t.Fatalf("Kinds() length = %d, want %d", len(got), len(kinds))
	}
	for i := range kinds {
		if got[i] != kinds[i] {
			t.Errorf("Kinds()[%d] = %s, want %s", i, got[i], kinds[i])
		}
	}
}

func TestDoubleStraightEqualsTwoStraights(t *testing.T) {
	long := Build([]Kind{DoubleStraight})
	short := Build([]Kind{Straight, Straight})

	d := Distance(long[len(long)-1].End.Position, short[len(short)-1].End.Position)
	if d > 1e-12 {
		t.Errorf("s2 and s1 s1 end %v apart, want coincident", d)
	}
}
