package segtree

import (
	"errors"
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segtree/monoid"
)

func sumConfig() Config[int64] {
	return Config[int64]{Monoid: monoid.Sum[int64]{}}
}

func eqInt64(a, b int64) bool { return a == b }

func mustQuery(t *testing.T, tree *Tree[int64], l, r int) int64 {
	t.Helper()
	v, err := tree.Query(l, r)
	if err != nil {
		t.Fatalf("Query(%d,%d) failed: %v", l, r, err)
	}
	return v
}

func TestNewAllIdentity(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree, err := New(5, sumConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if tree.Len() != 5 || tree.Cap() != 8 {
		t.Errorf("Len/Cap = %d/%d, want 5/8", tree.Len(), tree.Cap())
	}
	if len(tree.storage) != 15 {
		t.Fatalf("storage has %d slots, want 15", len(tree.storage))
	}
	for i, v := range tree.storage {
		if v != 0 {
			t.Errorf("slot %d = %d, want 0", i, v)
		}
	}
	if err := tree.Check(eqInt64); err != nil {
		t.Error(err)
	}
}

func TestFromSliceLayout(t *testing.T) {
	tree, err := FromSlice([]int64{1, 2, 3, 4, 5}, sumConfig())
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	want := []int64{
		15,
		10, 5,
		3, 7, 5, 0,
		1, 2, 3, 4, 5, 0, 0, 0,
	}
	if len(tree.storage) != len(want) {
		t.Fatalf("storage has %d slots, want %d", len(tree.storage), len(want))
	}
	for i := range want {
		if tree.storage[i] != want[i] {
			t.Errorf("slot %d = %d, want %d", i, tree.storage[i], want[i])
		}
	}
}

func TestSumScenario(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree, err := FromSlice([]int64{1, 2, 3, 4, 5}, sumConfig())
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if got := mustQuery(t, tree, 0, 5); got != 15 {
		t.Errorf("Query(0,5) = %d, want 15", got)
	}
	if got := mustQuery(t, tree, 0, 2); got != 3 {
		t.Errorf("Query(0,2) = %d, want 3", got)
	}
	if got := mustQuery(t, tree, 3, 5); got != 9 {
		t.Errorf("Query(3,5) = %d, want 9", got)
	}
	if err := tree.Set(0, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := mustQuery(t, tree, 0, 5); got != 14 {
		t.Errorf("Query(0,5) after Set(0,0) = %d, want 14", got)
	}
	if err := tree.Combine(2, 10); err != nil {
		t.Fatalf("Combine failed: %v", err)
	}
	if got, _ := tree.Get(2); got != 13 {
		t.Errorf("Get(2) after Combine(2,10) = %d, want 13", got)
	}
	if got := mustQuery(t, tree, 0, 5); got != 24 {
		t.Errorf("Query(0,5) after Combine(2,10) = %d, want 24", got)
	}
	if err := tree.Check(eqInt64); err != nil {
		t.Error(err)
	}
}

func TestEmptyTreeScenario(t *testing.T) {
	tree, err := New(5, sumConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := mustQuery(t, tree, 0, 5); got != 0 {
		t.Errorf("Query(0,5) = %d, want 0", got)
	}
	if err := tree.Set(2, 1); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := mustQuery(t, tree, 2, 3); got != 1 {
		t.Errorf("Query(2,3) = %d, want 1", got)
	}
	if got := mustQuery(t, tree, 0, 2); got != 0 {
		t.Errorf("Query(0,2) = %d, want 0", got)
	}
	if got := mustQuery(t, tree, 2, 2); got != 0 {
		t.Errorf("Query(2,2) = %d, want 0", got)
	}
}

func TestZeroLengthTree(t *testing.T) {
	tree, err := New(0, sumConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if tree.Len() != 0 || tree.Cap() != 1 {
		t.Errorf("Len/Cap = %d/%d, want 0/1", tree.Len(), tree.Cap())
	}
	if got := mustQuery(t, tree, 0, 0); got != 0 {
		t.Errorf("Query(0,0) = %d, want 0", got)
	}
	if _, err := tree.Get(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Get(0) on empty tree: err = %v, want ErrIndexOutOfBounds", err)
	}
	if err := tree.Check(eqInt64); err != nil {
		t.Error(err)
	}
}

func TestPreconditionViolations(t *testing.T) {
	tree, err := FromSlice([]int64{1, 2, 3, 4, 5}, sumConfig())
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	cases := []struct {
		name string
		call func() error
	}{
		{"Get(-1)", func() error { _, e := tree.Get(-1); return e }},
		{"Get(5)", func() error { _, e := tree.Get(5); return e }},
		{"Set(5)", func() error { return tree.Set(5, 1) }},
		{"Set(7) in padding", func() error { return tree.Set(7, 1) }},
		{"Combine(-1)", func() error { return tree.Combine(-1, 1) }},
		{"Query(3,2)", func() error { _, e := tree.Query(3, 2); return e }},
		{"Query(0,6)", func() error { _, e := tree.Query(0, 6); return e }},
		{"Query(-1,2)", func() error { _, e := tree.Query(-1, 2); return e }},
	}
	for _, c := range cases {
		if err := c.call(); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("%s: err = %v, want ErrIndexOutOfBounds", c.name, err)
		}
	}
	// a rejected mutation must not have touched the tree
	if got := mustQuery(t, tree, 0, 5); got != 15 {
		t.Errorf("tree changed by rejected operations: Query(0,5) = %d, want 15", got)
	}
	if err := tree.Check(eqInt64); err != nil {
		t.Error(err)
	}
}

func TestConfigValidation(t *testing.T) {
	if _, err := New[int64](4, Config[int64]{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("nil monoid: err = %v, want ErrInvalidConfig", err)
	}
	if _, err := New(-1, sumConfig()); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("negative length: err = %v, want ErrIllegalArguments", err)
	}
	if _, err := FromSliceFunc[int, int64](nil, nil, sumConfig()); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("nil converter: err = %v, want ErrIllegalArguments", err)
	}
}

func TestNonCommutativeOrder(t *testing.T) {
	cfg := Config[string]{Monoid: monoid.String{}}
	tree, err := FromSlice([]string{"a", "b", "c", "d", "e"}, cfg)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if got, _ := tree.Query(1, 4); got != "bcd" {
		t.Errorf("Query(1,4) = %q, want %q", got, "bcd")
	}
	if got, _ := tree.Query(0, 5); got != "abcde" {
		t.Errorf("Query(0,5) = %q, want %q", got, "abcde")
	}
	// Combine appends the new value after the current one
	if err := tree.Combine(2, "X"); err != nil {
		t.Fatalf("Combine failed: %v", err)
	}
	if got, _ := tree.Get(2); got != "cX" {
		t.Errorf("Get(2) = %q, want %q", got, "cX")
	}
	if got, _ := tree.Query(0, 5); got != "abcXde" {
		t.Errorf("Query(0,5) = %q, want %q", got, "abcXde")
	}
}

func TestFromSliceFunc(t *testing.T) {
	cfg := Config[string]{Monoid: monoid.String{}}
	tree, err := FromSliceFunc([]int{7, 8, 9}, strconv.Itoa, cfg)
	if err != nil {
		t.Fatalf("FromSliceFunc failed: %v", err)
	}
	if got, _ := tree.Query(0, 3); got != "789" {
		t.Errorf("Query(0,3) = %q, want %q", got, "789")
	}
}

func TestSummaryMatchesFullQuery(t *testing.T) {
	tree, err := FromSlice([]int64{2, 4, 8, 16, 32, 64}, sumConfig())
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if tree.Summary() != mustQuery(t, tree, 0, 6) {
		t.Errorf("Summary() = %d, Query(0,6) = %d", tree.Summary(), mustQuery(t, tree, 0, 6))
	}
	if err := tree.Set(3, -16); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if tree.Summary() != mustQuery(t, tree, 0, 6) {
		t.Errorf("after Set: Summary() = %d, Query(0,6) = %d", tree.Summary(), mustQuery(t, tree, 0, 6))
	}
}

func TestConcat(t *testing.T) {
	m := monoid.String{}
	if got := Concat[string](m, []string{"seg", "ment", "tree"}); got != "segmenttree" {
		t.Errorf("Concat = %q, want %q", got, "segmenttree")
	}
	if got := Concat[string](m, nil); got != "" {
		t.Errorf("Concat(nil) = %q, want empty", got)
	}
}
