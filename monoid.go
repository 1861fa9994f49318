package segtree

// Monoid defines how elements of a tree are aggregated.
//
// For elements s, t, u, Add must be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero must be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
//
// No commutativity is assumed; the tree always combines in left-to-right
// sequence order. Add must not mutate its arguments.
//
// The laws cannot be checked by the tree at runtime. An unlawful monoid does
// not crash, it silently produces wrong aggregates — clients should verify
// the laws by construction or by property test. Package monoid provides
// lawful stock instances.
type Monoid[S any] interface {
	Zero() S
	Add(left, right S) S
}

// Concat folds values left-to-right through m.Add, seeded with m.Zero().
func Concat[S any](m Monoid[S], values []S) S {
	assert(m != nil, "Concat requires a monoid")
	acc := m.Zero()
	for _, v := range values {
		acc = m.Add(acc, v)
	}
	return acc
}
