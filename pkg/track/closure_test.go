package track

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"within turn untouched", math.Pi, math.Pi},
		{"negative within turn untouched", -math.Pi, -math.Pi},
		{"exactly full turn untouched", 2 * math.Pi, 2 * math.Pi},
		{"two and a half turns", 5 * math.Pi, math.Pi},
		// Negative inputs beyond a full turn land in [0, 2π) while small
		// negative angles pass through: the documented asymmetry.
		{"negative beyond turn wraps positive", -3 * math.Pi, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAngularDifferenceIdentity(t *testing.T) {
	for _, a := range []float64{0, 1, -1, math.Pi, 2 * math.Pi, -7.25} {
		if got := AngularDifference(a, a); got != 0 {
			t.Errorf("AngularDifference(%v, %v) = %v, want 0", a, a, got)
		}
	}
}

func TestAngularDifferenceSymmetric(t *testing.T) {
	pairs := [][2]float64{{0, 1}, {-2, 3}, {0.1, 2 * math.Pi}, {-math.Pi, math.Pi}}
	for _, p := range pairs {
		d1 := AngularDifference(p[0], p[1])
		d2 := AngularDifference(p[1], p[0])
		if d1 != d2 {
			t.Errorf("AngularDifference(%v, %v) = %v but reversed = %v", p[0], p[1], d1, d2)
		}
		if d1 < 0 {
			t.Errorf("AngularDifference(%v, %v) = %v, want non-negative", p[0], p[1], d1)
		}
	}
}

func TestAngularDifferenceComplement(t *testing.T) {
	// 3π/2 apart is π/2 the short way around.
	if got, want := AngularDifference(0, 3*math.Pi/2), math.Pi/2; math.Abs(got-want) > 1e-12 {
		t.Errorf("AngularDifference(0, 3π/2) = %v, want %v", got, want)
	}
}

func TestDistance(t *testing.T) {
	p1 := geom.Coord{X: 1, Y: 2}
	p2 := geom.Coord{X: 4, Y: 6}
	if got := Distance(p1, p2); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestIsClosedC1ShortPaths(t *testing.T) {
	if (Path{}).IsClosedC1() {
		t.Error("empty path reported closed")
	}
	if Build([]Kind{Straight}).IsClosedC1() {
		t.Error("single-section path reported closed")
	}
}

func TestIsClosedC1EightRightArcs(t *testing.T) {
	kinds := make([]Kind, 8)
	for i := range kinds {
		kinds[i] = ArcRight
	}
	p := Build(kinds)

	if !p.IsClosedC1() {
		t.Error("8 × aR did not close: total turn is -2π and displacement sums to zero")
	}
}

func TestIsClosedC1OpenPath(t *testing.T) {
	p := Build([]Kind{Straight, Straight})
	if p.IsClosedC1() {
		t.Error("two straights reported closed")
	}
}

func TestGapDiagnosticSequence(t *testing.T) {
	kinds, err := ParseAll([]string{
		"s2", "aR", "aR", "aR", "aL", "aR", "aR", "aR",
		"aL", "aR", "s1", "aR", "aR", "s1", "aR",
	})
	if err != nil {
		t.Fatalf("ParseAll() error: %v", err)
	}
	p := Build(kinds)

	if p.IsClosedC1() {
		t.Error("diagnostic sequence reported closed")
	}

	dist, angle := p.Gap()
	if want := 2 - math.Sqrt2; math.Abs(dist-want) > 1e-9 {
		t.Errorf("Gap() distance = %v, want %v", dist, want)
	}
	if angle > 1e-9 {
		t.Errorf("Gap() angle = %v, want ~0", angle)
	}
}

func TestGapEmptyPath(t *testing.T) {
	dist, angle := Path{}.Gap()
	if dist != 0 || angle != 0 {
		t.Errorf("Gap() on empty path = (%v, %v), want (0, 0)", dist, angle)
	}
}
