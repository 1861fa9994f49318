package segtree

import (
	"context"

	"github.com/guiguan/caster"
)

// Update describes a single mutation of a watched tree. Index is the logical
// position that changed, or -1 for a whole-tree Rebuild.
type Update struct {
	Index int
}

// Notifier wraps a tree and broadcasts an Update to all subscribers for
// every successful mutation. Failed mutations publish nothing.
//
// The underlying tree itself stays free of synchronization; a notifier only
// adds event fan-out, it does not make concurrent mutation safe.
type Notifier[S any] struct {
	tree *Tree[S]
	cast *caster.Caster
}

// Watch creates a notifier for a tree. Close the notifier when done to
// release its broadcaster.
func Watch[S any](t *Tree[S]) *Notifier[S] {
	assert(t != nil, "Watch requires a tree")
	return &Notifier[S]{
		tree: t,
		cast: caster.New(nil), // we will broadcast messages on every mutation
	}
}

// Tree returns the wrapped tree, e.g. for read-only queries.
func (n *Notifier[S]) Tree() *Tree[S] {
	return n.tree
}

// Subscribe registers a subscriber channel with the given buffer capacity.
// The channel receives Update values and is closed when ctx is done or the
// notifier is closed. ok is false if the notifier is already closed.
func (n *Notifier[S]) Subscribe(ctx context.Context, capacity uint) (ch <-chan interface{}, ok bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	return n.cast.Sub(ctx, capacity)
}

// Unsubscribe removes a subscriber channel registered with Subscribe.
func (n *Notifier[S]) Unsubscribe(ch chan interface{}) {
	n.cast.Unsub(ch)
}

// Close shuts down the broadcaster and closes all subscriber channels.
func (n *Notifier[S]) Close() {
	n.cast.Close()
}

// Set overwrites position i on the wrapped tree and publishes an update.
func (n *Notifier[S]) Set(i int, v S) error {
	if err := n.tree.Set(i, v); err != nil {
		return err
	}
	n.cast.Pub(Update{Index: i})
	return nil
}

// Combine accumulates v into position i on the wrapped tree and publishes
// an update.
func (n *Notifier[S]) Combine(i int, v S) error {
	if err := n.tree.Combine(i, v); err != nil {
		return err
	}
	n.cast.Pub(Update{Index: i})
	return nil
}

// Rebuild refills the wrapped tree and publishes a whole-tree update.
func (n *Notifier[S]) Rebuild(values []S) error {
	if err := n.tree.Rebuild(values); err != nil {
		return err
	}
	n.cast.Pub(Update{Index: -1})
	return nil
}
