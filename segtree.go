package segtree

/*
BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the license text in doc.go.

*/

import (
	"fmt"
	"math/bits"
)

// Config configures a segment tree.
type Config[S any] struct {
	// Monoid aggregates elements up the tree.
	Monoid Monoid[S]
}

func (cfg Config[S]) validate() error {
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	return nil
}

// Tree is a fixed-capacity, array-backed segment tree over a monoid S.
//
// The zero value is not usable; construct trees with New, FromSlice or
// FromSliceFunc.
type Tree[S any] struct {
	cfg    Config[S]
	length int // logical length of the represented sequence
	// storage holds a perfect binary tree of 2·Cap()-1 nodes. The root is at
	// index 0, children of node ix are at 2·ix+1 and 2·ix+2, leaves occupy
	// the final Cap() slots. Leaves at positions >= length stay at the
	// monoid's neutral element.
	storage []S
}

// New creates a tree of the given logical length with every position set to
// the monoid's neutral element. A length of zero is valid.
func New[S any](length int, cfg Config[S]) (*Tree[S], error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrIllegalArguments, length)
	}
	return build(length, nil, cfg)
}

// FromSlice creates a tree with logical length len(values), with leaves
// initialized from values in sequence order.
func FromSlice[S any](values []S, cfg Config[S]) (*Tree[S], error) {
	return build(len(values), values, cfg)
}

// FromSliceFunc creates a tree from values of a foreign type V, converted to
// elements by conv.
func FromSliceFunc[V, S any](values []V, conv func(V) S, cfg Config[S]) (*Tree[S], error) {
	if conv == nil {
		return nil, fmt.Errorf("%w: converter is required", ErrIllegalArguments)
	}
	converted := make([]S, len(values))
	for i, v := range values {
		converted[i] = conv(v)
	}
	return build(len(converted), converted, cfg)
}

// build allocates storage for a padded capacity, fills the leaf range and
// folds internal nodes bottom-up. Runs in O(capacity).
func build[S any](length int, values []S, cfg Config[S]) (*Tree[S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	n := ceilPow2(length)
	storage := make([]S, 2*n-1)
	for i := range storage {
		storage[i] = cfg.Monoid.Zero()
	}
	for i, v := range values {
		storage[n-1+i] = v
	}
	for ix := n - 2; ix >= 0; ix-- {
		storage[ix] = cfg.Monoid.Add(storage[2*ix+1], storage[2*ix+2])
	}
	return &Tree[S]{cfg: cfg, length: length, storage: storage}, nil
}

// ceilPow2 returns the next power of two >= n, with a minimum of 1.
func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[S]) Config() Config[S] {
	return t.cfg
}

// Len returns the logical length of the represented sequence.
func (t *Tree[S]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Cap returns the padded leaf capacity, i.e. the next power of two >= Len().
func (t *Tree[S]) Cap() int {
	if t == nil {
		return 0
	}
	return (len(t.storage) + 1) / 2
}

// Summary returns the aggregate of the whole sequence. Because padding leaves
// hold the neutral element this equals Query(0, Len()), but reads the cached
// root in O(1).
func (t *Tree[S]) Summary() S {
	return t.storage[0]
}

// Get returns the element at position i. Equivalent to Query(i, i+1).
func (t *Tree[S]) Get(i int) (S, error) {
	if i < 0 || i >= t.length {
		var zero S
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, t.length)
	}
	return t.storage[t.Cap()-1+i], nil
}

// Set overwrites position i with v and recombines all ancestors of the leaf,
// restoring the aggregation invariant in O(log n). Indices in the padding
// range [Len(), Cap()) are rejected; writing there would corrupt padding.
func (t *Tree[S]) Set(i int, v S) error {
	if i < 0 || i >= t.length {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, t.length)
	}
	cur := t.Cap() - 1 + i
	t.storage[cur] = v
	for cur > 0 {
		cur = (cur - 1) / 2
		t.storage[cur] = t.cfg.Monoid.Add(t.storage[2*cur+1], t.storage[2*cur+2])
	}
	return nil
}

// Combine replaces the element at position i with Add(current, v), current
// first. The order matters for non-commutative monoids.
func (t *Tree[S]) Combine(i int, v S) error {
	current, err := t.Get(i)
	if err != nil {
		return err
	}
	return t.Set(i, t.cfg.Monoid.Add(current, v))
}

// Query returns the left-to-right aggregate of the half-open range [l, r),
// i.e. Concat over positions l, l+1, …, r-1. Requires 0 <= l <= r <= Len();
// ranges are never clamped. Query(i, i) returns the neutral element.
func (t *Tree[S]) Query(l, r int) (S, error) {
	if l < 0 || l > r || r > t.length {
		var zero S
		return zero, fmt.Errorf("%w: range [%d,%d), length %d", ErrIndexOutOfBounds, l, r, t.length)
	}
	return t.query(0, t.Cap(), l, r), nil
}

// query descends from node ix, which spans `span` leaves, with the requested
// range already clipped to the node-local coordinates [l, r).
//
// An empty clip resolves to the neutral element without descending, a span
// fully inside the range resolves to the cached node aggregate. Only
// partially overlapping nodes recurse, so each tree level contributes at most
// two descents and a query visits O(log n) nodes.
func (t *Tree[S]) query(ix, span, l, r int) S {
	if l == r {
		return t.cfg.Monoid.Zero()
	}
	if r-l == span {
		return t.storage[ix]
	}
	m := span / 2
	return t.cfg.Monoid.Add(
		t.query(2*ix+1, m, min(l, m), min(r, m)),
		t.query(2*ix+2, m, max(l, m)-m, max(r, m)-m),
	)
}
