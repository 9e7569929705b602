// Package search enumerates closed-loop track layouts from a piece
// inventory by exhaustive depth-first backtracking.
//
// An [Inventory] tracks remaining piece counts through supply groups: two
// mutually-flippable kinds that are not both supplied explicitly draw from
// one shared group, because a physical arc can be laid in either
// orientation without being consumed twice.
//
// An [Engine] owns all mutable search state — counters, the partial path,
// and the set of already-reported label sequences — so concurrent searches
// just use separate engines. Symmetry handling is purely about output:
// rotations and mirror images of a reported loop are remembered and
// suppressed, but the traversal itself still visits them. The search tree
// is exponential in the total piece count; expect inventories much beyond
// twenty pieces to take a while.
//
// Two layouts that substitute equal-length runs for each other (two s1 for
// one s2) count as distinct; no canonicalization bridges that gap.
//
//	inv, err := search.NewInventory(map[track.Kind]int{track.Straight: 2, track.ArcRight: 12})
//	if err != nil { ... }
//	layouts := search.New(inv).Run()
package search
