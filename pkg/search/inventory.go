package search

import (
	"errors"
	"fmt"
	"slices"

	"github.com/trackloop/trackloop/pkg/track"
)

// ErrNegativeCount is returned by [NewInventory] when a piece count is
// negative. Zero counts are allowed and simply contribute nothing.
var ErrNegativeCount = errors.New("negative piece count")

// Inventory tracks how many pieces of each kind remain during a search.
//
// Kinds resolve to supply groups by explicit indirection: each usable kind
// maps to a group index, and counts live per group. When only one side of
// a flip pair is supplied, both kinds map to the same group, so laying an
// arc in either orientation draws down the same physical stock. When both
// sides are supplied explicitly they keep separate groups.
type Inventory struct {
	group  map[track.Kind]int // kind -> index into counts
	counts []int
	total  int // sum over groups, each counted once
}

// NewInventory builds an inventory from per-kind counts. Kinds absent from
// supply are unusable unless their flip partner is present, in which case
// they share the partner's group.
func NewInventory(supply map[track.Kind]int) (*Inventory, error) {
	inv := &Inventory{group: make(map[track.Kind]int)}

	// Deterministic group layout regardless of map iteration order.
	kinds := make([]track.Kind, 0, len(supply))
	for k := range supply {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)

	for _, k := range kinds {
		n := supply[k]
		if n < 0 {
			return nil, fmt.Errorf("%w: %s has %d", ErrNegativeCount, k, n)
		}
		g := len(inv.counts)
		inv.counts = append(inv.counts, n)
		inv.total += n
		inv.group[k] = g

		if partner := track.Flip(k); partner != k {
			if _, supplied := supply[partner]; !supplied {
				inv.group[partner] = g
			}
		}
	}
	return inv, nil
}

// Kinds returns the usable kinds in sorted label order. This is the
// branching order of the search, which makes enumeration deterministic.
func (inv *Inventory) Kinds() []track.Kind {
	kinds := make([]track.Kind, 0, len(inv.group))
	for k := range inv.group {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Remaining returns the count left in the kind's supply group, or zero for
// a kind the inventory does not cover.
func (inv *Inventory) Remaining(k track.Kind) int {
	g, ok := inv.group[k]
	if !ok {
		return 0
	}
	return inv.counts[g]
}

// Total returns the number of pieces remaining across all groups.
func (inv *Inventory) Total() int {
	return inv.total
}

// take consumes one piece of the kind's group. The caller must have
// checked Remaining; taking from an empty or unknown group panics because
// it breaks the strict take/put pairing of the backtracking search.
func (inv *Inventory) take(k track.Kind) {
	g, ok := inv.group[k]
	if !ok || inv.counts[g] == 0 {
		panic(fmt.Sprintf("search: take %q from empty supply", k))
	}
	inv.counts[g]--
	inv.total--
}

// put returns one piece of the kind's group, undoing a prior take.
func (inv *Inventory) put(k track.Kind) {
	inv.counts[inv.group[k]]++
	inv.total++
}
