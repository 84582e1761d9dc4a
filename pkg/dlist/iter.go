package dlist

import "github.com/mesh-intelligence/keycell/pkg/keycell"

// Iter is a lazy, finite, read-only traversal over a list, following
// forward links until the tail. It holds no ownership, so any number of
// independent traversals may run over one list, and a fresh Iter from the
// same head restarts from the beginning.
//
// Usage follows the scanner shape:
//
//	it := dlist.NewIter(owner, head)
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
type Iter[T any] struct {
	owner keycell.Owner
	cur   *keycell.Cell[Node[T]]
	val   *T
	err   error
}

// NewIter returns a traversal starting at head. A nil head yields an
// empty traversal.
func NewIter[T any](o keycell.Owner, head *NodeRef[T]) *Iter[T] {
	it := &Iter[T]{owner: o}
	if head != nil {
		it.cur = head.Cell()
	}
	return it
}

// Next advances to the next node. It returns false at the end of the
// list or on the first access error.
func (it *Iter[T]) Next() bool {
	if it.err != nil || it.cur == nil {
		it.val = nil
		return false
	}
	n, err := keycell.Read(it.owner, it.cur)
	if err != nil {
		it.err = err
		it.val = nil
		return false
	}
	it.val = &n.Data
	if n.next != nil {
		it.cur = n.next.Cell()
	} else {
		it.cur = nil
	}
	return true
}

// Value returns the current node's payload. It is valid only after a
// Next call that returned true.
func (it *Iter[T]) Value() *T { return it.val }

// Err returns the access error that stopped the traversal, if any.
func (it *Iter[T]) Err() error { return it.err }

// Collect traverses from head and returns shared views of every payload
// in list order.
func Collect[T any](o keycell.Owner, head *NodeRef[T]) ([]*T, error) {
	var out []*T
	it := NewIter(o, head)
	for it.Next() {
		out = append(out, it.Value())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CollectValues traverses from head and returns copies of every payload
// in list order.
func CollectValues[T any](o keycell.Owner, head *NodeRef[T]) ([]T, error) {
	var out []T
	it := NewIter(o, head)
	for it.Next() {
		out = append(out, *it.Value())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Each applies f to a shared view of every payload in list order.
func Each[T any](o keycell.Owner, head *NodeRef[T], f func(*T)) error {
	it := NewIter(o, head)
	for it.Next() {
		f(it.Value())
	}
	return it.Err()
}

// Update applies f to a mutable view of every payload in list order.
// Mutable traversal is interior only: the view passed to f must not be
// retained past the call, since no two mutable views may be outstanding
// at once.
func Update[T any](o keycell.Owner, head *NodeRef[T], f func(*T)) error {
	var cur *keycell.Cell[Node[T]]
	if head != nil {
		cur = head.Cell()
	}
	for cur != nil {
		n, err := keycell.Write(o, cur)
		if err != nil {
			return err
		}
		f(&n.Data)
		if n.next != nil {
			cur = n.next.Cell()
		} else {
			cur = nil
		}
	}
	return nil
}
