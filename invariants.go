package segtree

import "fmt"

// Check validates structural tree invariants: storage sizing, the
// aggregation invariant for every internal node, and neutral padding leaves.
//
// Element equality cannot be derived for arbitrary S, so callers pass eq.
// This checker is intentionally strict and meant for tests and debugging; it
// reconstructs every internal node and runs in O(n).
func (t *Tree[S]) Check(eq func(a, b S) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if eq == nil {
		return fmt.Errorf("%w: equality function is required", ErrIllegalArguments)
	}
	n := t.Cap()
	if n < 1 || n&(n-1) != 0 {
		return fmt.Errorf("%w: capacity %d is not a power of two", ErrInconsistentTree, n)
	}
	if len(t.storage) != 2*n-1 {
		return fmt.Errorf("%w: %d storage slots for capacity %d", ErrInconsistentTree, len(t.storage), n)
	}
	if t.length < 0 || t.length > n {
		return fmt.Errorf("%w: length %d exceeds capacity %d", ErrInconsistentTree, t.length, n)
	}
	for ix := 0; ix < n-1; ix++ {
		want := t.cfg.Monoid.Add(t.storage[2*ix+1], t.storage[2*ix+2])
		if !eq(t.storage[ix], want) {
			return fmt.Errorf("%w: node %d does not aggregate its children", ErrInconsistentTree, ix)
		}
	}
	zero := t.cfg.Monoid.Zero()
	for i := t.length; i < n; i++ {
		if !eq(t.storage[n-1+i], zero) {
			return fmt.Errorf("%w: padding leaf %d is not neutral", ErrInconsistentTree, i)
		}
	}
	return nil
}
