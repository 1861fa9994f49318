package segtree

import "iter"

// ForEach walks the logical sequence in order.
//
// Iteration stops early if callback returns false.
func (t *Tree[S]) ForEach(fn func(i int, v S) bool) {
	if t == nil || fn == nil {
		return
	}
	leaf := t.Cap() - 1
	for i := 0; i < t.length; i++ {
		if !fn(i, t.storage[leaf+i]) {
			return
		}
	}
}

// Values returns an iterator over the logical sequence in order. The tree
// must not be mutated while iterating.
func (t *Tree[S]) Values() iter.Seq[S] {
	return func(yield func(S) bool) {
		t.ForEach(func(_ int, v S) bool {
			return yield(v)
		})
	}
}

// Slice materializes the logical sequence as a fresh slice.
func (t *Tree[S]) Slice() []S {
	if t == nil {
		return nil
	}
	out := make([]S, 0, t.length)
	t.ForEach(func(_ int, v S) bool {
		out = append(out, v)
		return true
	})
	return out
}
