package search

import (
	"github.com/trackloop/trackloop/pkg/track"
)

// Layout is one discovered closed loop, identified by its ordered piece
// kinds starting from the arbitrary anchor piece.
type Layout struct {
	Kinds []track.Kind
}

// Engine drives one exhaustive search over an inventory. All mutable
// state — the inventory counters, the growing path, and the seen set — is
// owned by the engine, so separate engines are fully independent and a
// single engine is reusable only after Run returns.
//
// The traversal is single-threaded, depth-first, and runs to completion
// once started; recursion depth is bounded by the total piece count.
type Engine struct {
	inv    *Inventory
	kinds  []track.Kind // branching order, fixed up front
	seen   seenSet
	report func(Layout)
}

// New creates an engine over the inventory. The inventory is mutated
// during the search and restored to its initial counts when Run returns.
func New(inv *Inventory) *Engine {
	return &Engine{
		inv:   inv,
		kinds: inv.Kinds(),
		seen:  make(seenSet),
	}
}

// Run enumerates every distinct closed-C1 layout buildable from the
// inventory and returns them in discovery order. Rotations and mirror
// images of an already-reported loop are suppressed.
func (e *Engine) Run() []Layout {
	var layouts []Layout
	e.RunFunc(func(l Layout) { layouts = append(layouts, l) })
	return layouts
}

// RunFunc is like Run but streams each layout to fn as it is discovered,
// which lets callers show progress during long searches. fn must not
// retain the engine's internal state; the Layout it receives is a copy.
func (e *Engine) RunFunc(fn func(Layout)) {
	e.report = fn
	e.enumerate(track.Path{})
	e.report = nil
}

// enumerate extends path by every affordable kind in turn, recursing until
// the inventory runs dry. Each closed, not-yet-seen path is reported the
// moment it is detected — also mid-branch, since a closed loop can still
// be extended into a longer figure that closes again.
func (e *Engine) enumerate(path track.Path) {
	if path.IsClosedC1() {
		kinds := path.Kinds()
		if !e.seen.contains(kinds) {
			e.report(Layout{Kinds: kinds}) // Kinds() allocates, safe to hand out
			e.seen.admit(kinds)
		}
	}

	if e.inv.Total() == 0 {
		return
	}
	for _, k := range e.kinds {
		if e.inv.Remaining(k) == 0 {
			continue
		}
		e.inv.take(k)
		e.enumerate(path.Extend(k))
		e.inv.put(k)
	}
}
