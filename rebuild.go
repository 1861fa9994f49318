package segtree

import "fmt"

// Rebuild refills all logical positions from values and recomputes every
// internal node in one bottom-up pass. The value count must match Len();
// Rebuild never changes the capacity of a tree.
//
// Rebuilding is O(n) and cheaper than Len() individual Set calls when most
// positions change.
func (t *Tree[S]) Rebuild(values []S) error {
	if len(values) != t.length {
		return fmt.Errorf("%w: %d values for length %d", ErrIllegalArguments, len(values), t.length)
	}
	n := t.Cap()
	for i, v := range values {
		t.storage[n-1+i] = v
	}
	for ix := n - 2; ix >= 0; ix-- {
		t.storage[ix] = t.cfg.Monoid.Add(t.storage[2*ix+1], t.storage[2*ix+2])
	}
	return nil
}
