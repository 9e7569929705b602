package search

import (
	"strings"
	"testing"

	"github.com/trackloop/trackloop/pkg/track"
)

func mustInventory(t *testing.T, supply map[track.Kind]int) *Inventory {
	t.Helper()
	inv, err := NewInventory(supply)
	if err != nil {
		t.Fatalf("NewInventory() error: %v", err)
	}
	return inv
}

func TestRunTwoStraightsTwelveArcs(t *testing.T) {
	inv := mustInventory(t, map[track.Kind]int{track.Straight: 2, track.ArcRight: 12})

	layouts := New(inv).Run()

	if len(layouts) != 11 {
		t.Fatalf("Run() found %d layouts, want 11", len(layouts))
	}

	// The reference loops must appear, up to rotation and mirror flip.
	wantMembers := []string{
		"s1 aR aR aR aR s1 aR aR aR aR",
		"aR aR aR aR aR aR aR aR",
	}
	for _, want := range wantMembers {
		if !containsEquivalent(layouts, want) {
			t.Errorf("no layout equivalent to %q in results", want)
		}
	}
}

// containsEquivalent reports whether any found layout matches want up to
// cyclic rotation and piece-wise flip.
func containsEquivalent(layouts []Layout, want string) bool {
	kinds, err := track.ParseAll(strings.Fields(want))
	if err != nil {
		return false
	}
	variants := make(seenSet)
	variants.admit(kinds)

	for _, l := range layouts {
		if variants.contains(l.Kinds) {
			return true
		}
	}
	return false
}

func TestRunReportsOnlyClosedLayouts(t *testing.T) {
	inv := mustInventory(t, map[track.Kind]int{track.Straight: 2, track.ArcRight: 12})

	for _, l := range New(inv).Run() {
		if p := track.Build(l.Kinds); !p.IsClosedC1() {
			t.Errorf("layout %v is not closed", track.Labels(l.Kinds))
		}
	}
}

func TestRunRestoresInventory(t *testing.T) {
	inv := mustInventory(t, map[track.Kind]int{track.Straight: 2, track.ArcRight: 12})

	New(inv).Run()

	if got := inv.Remaining(track.Straight); got != 2 {
		t.Errorf("Remaining(s1) after Run = %d, want 2", got)
	}
	if got := inv.Remaining(track.ArcRight); got != 12 {
		t.Errorf("Remaining(aR) after Run = %d, want 12", got)
	}
	if got := inv.Total(); got != 14 {
		t.Errorf("Total() after Run = %d, want 14", got)
	}
}

func TestRunSuppressesRotationsAndFlips(t *testing.T) {
	// Eight arcs admit exactly one loop: the full circle. Its 8 rotations
	// and the mirror-image circle of aL pieces all collapse to one report.
	inv := mustInventory(t, map[track.Kind]int{track.ArcRight: 8})

	layouts := New(inv).Run()

	if len(layouts) != 1 {
		t.Fatalf("Run() found %d layouts, want 1", len(layouts))
	}
	if got := len(layouts[0].Kinds); got != 8 {
		t.Errorf("layout has %d pieces, want 8", got)
	}
}

func TestRunEmptyInventory(t *testing.T) {
	inv := mustInventory(t, map[track.Kind]int{})

	if layouts := New(inv).Run(); len(layouts) != 0 {
		t.Errorf("Run() on empty inventory found %d layouts, want 0", len(layouts))
	}
}

func TestRunInsufficientPieces(t *testing.T) {
	// Four arcs cannot turn a full 2π.
	inv := mustInventory(t, map[track.Kind]int{track.ArcRight: 4})

	if layouts := New(inv).Run(); len(layouts) != 0 {
		t.Errorf("Run() found %d layouts, want 0", len(layouts))
	}
}

func TestRunFuncStreamsInDiscoveryOrder(t *testing.T) {
	inv := mustInventory(t, map[track.Kind]int{track.ArcRight: 8})

	var streamed []Layout
	New(inv).RunFunc(func(l Layout) { streamed = append(streamed, l) })

	if len(streamed) != 1 {
		t.Fatalf("RunFunc streamed %d layouts, want 1", len(streamed))
	}
}

func TestEqualLengthSubstitutionNotDeduplicated(t *testing.T) {
	// A loop using s2 and the same loop using s1 s1 trace identical curves
	// but count as distinct label sequences: the known dedup blind spot.
	inv := mustInventory(t, map[track.Kind]int{
		track.Straight:       2,
		track.DoubleStraight: 1,
		track.ArcRight:       8,
	})

	layouts := New(inv).Run()

	var withDouble, withSingles bool
	for _, l := range layouts {
		labels := strings.Join(track.Labels(l.Kinds), " ")
		if strings.Contains(labels, "s2") {
			withDouble = true
		}
		if strings.Contains(labels, "s1") {
			withSingles = true
		}
	}
	if !withDouble || !withSingles {
		t.Errorf("expected both s2-based and s1-based variants to be reported (double=%v singles=%v)",
			withDouble, withSingles)
	}
}

func TestSeenSetAdmitCoversRotationsAndFlips(t *testing.T) {
	s := make(seenSet)
	kinds := []track.Kind{track.Straight, track.ArcRight, track.ArcRight}
	s.admit(kinds)

	rotation := []track.Kind{track.ArcRight, track.ArcRight, track.Straight}
	if !s.contains(rotation) {
		t.Error("rotation of admitted sequence not in seen set")
	}
	mirror := []track.Kind{track.Straight, track.ArcLeft, track.ArcLeft}
	if !s.contains(mirror) {
		t.Error("mirror of admitted sequence not in seen set")
	}
	other := []track.Kind{track.Straight, track.ArcRight, track.ArcLeft}
	if s.contains(other) {
		t.Error("unrelated sequence unexpectedly in seen set")
	}
}
