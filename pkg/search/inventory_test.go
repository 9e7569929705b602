package search

import (
	"errors"
	"testing"

	"github.com/trackloop/trackloop/pkg/track"
)

func TestNewInventoryRejectsNegativeCount(t *testing.T) {
	_, err := NewInventory(map[track.Kind]int{track.Straight: -1})
	if !errors.Is(err, ErrNegativeCount) {
		t.Errorf("NewInventory() error = %v, want ErrNegativeCount", err)
	}
}

func TestFlipPartnerSharesGroup(t *testing.T) {
	inv, err := NewInventory(map[track.Kind]int{track.ArcRight: 5})
	if err != nil {
		t.Fatalf("NewInventory() error: %v", err)
	}

	if got := inv.Remaining(track.ArcLeft); got != 5 {
		t.Errorf("Remaining(aL) = %d, want 5 (shared with aR)", got)
	}
	if got := inv.Total(); got != 5 {
		t.Errorf("Total() = %d, want 5 (shared group counted once)", got)
	}

	inv.take(track.ArcLeft)
	if got := inv.Remaining(track.ArcRight); got != 4 {
		t.Errorf("after taking aL, Remaining(aR) = %d, want 4", got)
	}
	inv.put(track.ArcLeft)
}

func TestExplicitPartnersKeepSeparateGroups(t *testing.T) {
	inv, err := NewInventory(map[track.Kind]int{track.ArcRight: 3, track.ArcLeft: 2})
	if err != nil {
		t.Fatalf("NewInventory() error: %v", err)
	}

	inv.take(track.ArcRight)
	if got := inv.Remaining(track.ArcLeft); got != 2 {
		t.Errorf("Remaining(aL) = %d, want 2 (separate group)", got)
	}
	if got := inv.Total(); got != 4 {
		t.Errorf("Total() = %d, want 4", got)
	}
	inv.put(track.ArcRight)
}

func TestRemainingUnknownKindIsZero(t *testing.T) {
	inv, err := NewInventory(map[track.Kind]int{track.Straight: 1})
	if err != nil {
		t.Fatalf("NewInventory() error: %v", err)
	}
	if got := inv.Remaining(track.ArcRight); got != 0 {
		t.Errorf("Remaining(aR) = %d, want 0", got)
	}
}

func TestKindsIncludesAliasedPartner(t *testing.T) {
	inv, err := NewInventory(map[track.Kind]int{track.ArcRight: 1, track.Straight: 1})
	if err != nil {
		t.Fatalf("NewInventory() error: %v", err)
	}

	want := []track.Kind{track.ArcLeft, track.ArcRight, track.Straight}
	got := inv.Kinds()
	if len(got) != len(want) {
		t.Fatalf("Kinds() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Kinds()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTakeFromEmptySupplyPanics(t *testing.T) {
	inv, err := NewInventory(map[track.Kind]int{track.Straight: 0})
	if err != nil {
		t.Fatalf("NewInventory() error: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("take from empty supply did not panic")
		}
	}()
	inv.take(track.Straight)
}
