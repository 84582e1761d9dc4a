package dlist

import "github.com/mesh-intelligence/keycell/pkg/keycell"

// List bundles an owner with strong handles to its first and last nodes.
// A list is fully identified by its head; the tail handle is only a
// cached convenience for constant-time Append.
type List[T any] struct {
	owner keycell.Owner
	head  *NodeRef[T]
	tail  *NodeRef[T]
}

// NewList builds a list over o containing items, which may be empty.
func NewList[T any](o keycell.Owner, items ...T) (*List[T], error) {
	l := &List[T]{owner: o}
	for _, v := range items {
		if err := l.Append(v); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Head returns the strong handle to the first node, or nil for an empty
// list. The handle remains owned by the list.
func (l *List[T]) Head() *NodeRef[T] { return l.head }

// Owner returns the owner whose brand stamps the list's cells.
func (l *List[T]) Owner() keycell.Owner { return l.owner }

// Append adds value after the last node.
func (l *List[T]) Append(value T) error {
	node, err := New(l.owner, value)
	if err != nil {
		return err
	}
	if l.head == nil {
		l.head = node
		l.tail = node.Clone()
		return nil
	}
	if err := InsertNext(l.owner, l.tail, node); err != nil {
		node.Release()
		return err
	}
	l.tail.Release()
	l.tail = node
	return nil
}

// PushFront adds value before the first node. The splice is direct
// rather than going through InsertNext, which would detach the current
// head and let its forward chain unwind.
func (l *List[T]) PushFront(value T) error {
	node, err := New(l.owner, value)
	if err != nil {
		return err
	}
	if l.head == nil {
		l.head = node
		l.tail = node.Clone()
		return nil
	}
	n, oldHead, err := keycell.Write2(l.owner, node.Cell(), l.head.Cell())
	if err != nil {
		node.Release()
		return err
	}
	oldHead.prev = node.Weak()
	// The list's handle to the old head moves into the new node's forward
	// link; the new node's handle becomes the list's head.
	n.next = l.head
	l.head = node
	return nil
}

// Iter returns a read-only traversal from the head.
func (l *List[T]) Iter() *Iter[T] {
	return NewIter(l.owner, l.head)
}

// Values returns copies of every payload in list order.
func (l *List[T]) Values() ([]T, error) {
	return CollectValues(l.owner, l.head)
}

// Len counts the list's nodes by traversal.
func (l *List[T]) Len() (int, error) {
	n := 0
	it := l.Iter()
	for it.Next() {
		n++
	}
	if err := it.Err(); err != nil {
		return 0, err
	}
	return n, nil
}

// Release drops the list's own handles. Nodes still referenced elsewhere
// survive; the rest are destroyed as the forward-link chain unwinds.
func (l *List[T]) Release() {
	if l.tail != nil {
		l.tail.Release()
		l.tail = nil
	}
	if l.head != nil {
		l.head.Release()
		l.head = nil
	}
}
