package segtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrIllegalArguments signals illegal non-positional arguments.
	ErrIllegalArguments = errors.New("segtree: illegal arguments")
	// ErrIndexOutOfBounds signals an invalid positional index or range.
	ErrIndexOutOfBounds = errors.New("segtree: index out of bounds")
	// ErrInconsistentTree signals a violated structural invariant.
	ErrInconsistentTree = errors.New("segtree: inconsistent tree")
)
