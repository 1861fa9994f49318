package segtree

// Prefix returns the aggregate of the range [0, i). Equivalent to
// Query(0, i).
func (t *Tree[S]) Prefix(i int) (S, error) {
	return t.Query(0, i)
}

// Seek finds the smallest index i such that pred holds for the prefix
// aggregate through position i, i.e. for Prefix(i+1). It returns that index
// together with the prefix aggregate, or (Len(), Summary()) when no index
// qualifies.
//
// pred must be monotone over growing prefixes: once it holds for some prefix
// it must hold for every longer prefix. For the sum monoid this turns Seek
// into a lower-bound search on prefix sums, usable e.g. for weighted
// sampling. A non-monotone predicate yields an unspecified index.
//
// Seek descends the tree once and runs in O(log n).
func (t *Tree[S]) Seek(pred func(prefix S) bool) (int, S) {
	assert(pred != nil, "Seek requires a predicate")
	acc := t.cfg.Monoid.Zero()
	if t.length == 0 {
		return 0, acc
	}
	ix, span, base := 0, t.Cap(), 0
	for span > 1 {
		left := 2*ix + 1
		reached := t.cfg.Monoid.Add(acc, t.storage[left])
		if pred(reached) {
			ix = left
		} else {
			acc = reached
			ix = 2*ix + 2
			base += span / 2
		}
		span /= 2
	}
	reached := t.cfg.Monoid.Add(acc, t.storage[ix])
	if base < t.length && pred(reached) {
		return base, reached
	}
	// Descent ran off the logical end: no prefix satisfies pred.
	return t.length, t.Summary()
}
