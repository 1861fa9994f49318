/*
Package monoid provides stock monoid instances for segment trees.

Every type here is a small stateless (or near-stateless) value implementing
segtree.Monoid for a concrete element type. All instances are lawful:
Zero is neutral on both sides and Add is associative. String is the only
non-commutative instance and is useful for verifying that aggregation
preserves sequence order.
*/
package monoid

import "math"

// Number constrains element types usable with Sum and Product.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Unsigned constrains element types usable with BitOr and BitAnd.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Ordered constrains element types usable with Min and Max.
type Ordered interface {
	Number | ~string
}

// Sum aggregates numbers under addition, with 0 as the neutral element.
type Sum[N Number] struct{}

func (Sum[N]) Zero() N             { var zero N; return zero }
func (Sum[N]) Add(left, right N) N { return left + right }

// Product aggregates numbers under multiplication, with 1 as the neutral
// element.
type Product[N Number] struct{}

func (Product[N]) Zero() N             { return 1 }
func (Product[N]) Add(left, right N) N { return left * right }

// Min aggregates under the minimum operator. The neutral element has to be
// the greatest value of the element type and cannot be derived generically,
// so instances carry it explicitly; use the ready-made constructors or
// provide your own ceiling.
type Min[N Ordered] struct {
	Identity N
}

func (m Min[N]) Zero() N { return m.Identity }
func (m Min[N]) Add(left, right N) N {
	return min(left, right)
}

// Max is the dual of Min; Identity has to be the least value of the element
// type.
type Max[N Ordered] struct {
	Identity N
}

func (m Max[N]) Zero() N { return m.Identity }
func (m Max[N]) Add(left, right N) N {
	return max(left, right)
}

// MinInt returns a Min instance for int.
func MinInt() Min[int] { return Min[int]{Identity: math.MaxInt} }

// MaxInt returns a Max instance for int.
func MaxInt() Max[int] { return Max[int]{Identity: math.MinInt} }

// MinFloat64 returns a Min instance for float64, with +Inf as the neutral
// element.
func MinFloat64() Min[float64] { return Min[float64]{Identity: math.Inf(1)} }

// MaxFloat64 returns a Max instance for float64, with -Inf as the neutral
// element.
func MaxFloat64() Max[float64] { return Max[float64]{Identity: math.Inf(-1)} }

// String aggregates strings under concatenation, with "" as the neutral
// element. Not commutative.
type String struct{}

func (String) Zero() string                  { return "" }
func (String) Add(left, right string) string { return left + right }

// BitOr aggregates unsigned integers under bitwise or, with 0 as the
// neutral element.
type BitOr[U Unsigned] struct{}

func (BitOr[U]) Zero() U             { var zero U; return zero }
func (BitOr[U]) Add(left, right U) U { return left | right }

// BitAnd aggregates unsigned integers under bitwise and, with the all-ones
// pattern as the neutral element.
type BitAnd[U Unsigned] struct{}

func (BitAnd[U]) Zero() U             { return ^U(0) }
func (BitAnd[U]) Add(left, right U) U { return left & right }
