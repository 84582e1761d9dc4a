package dlist

import "github.com/mesh-intelligence/keycell/pkg/keycell"

// Remove unlinks node from its neighbors, leaving it detached. All four
// link mutations complete before Remove returns, so a reader presenting
// the same owner afterwards never observes a half-updated list. Removing
// an already-detached node is a no-op, which lets InsertNext double as a
// move operation.
func Remove[T any](o keycell.Owner, node *NodeRef[T]) error {
	n, err := keycell.Write(o, node.Cell())
	if err != nil {
		return err
	}

	// Take both links off the node. A backward link that fails to upgrade
	// means the predecessor is already destroyed: treated as no
	// predecessor, never as a failure.
	var oldPrev *NodeRef[T]
	if n.prev != nil {
		oldPrev, _ = n.prev.Upgrade()
		n.prev = nil
	}
	oldNext := n.next
	n.next = nil

	// Link the old neighbors to each other.
	if oldNext != nil {
		succ, err := keycell.Write(o, oldNext.Cell())
		if err != nil {
			return err
		}
		if oldPrev != nil {
			succ.prev = oldPrev.Weak()
		} else {
			succ.prev = nil
		}
	}
	if oldPrev != nil {
		pred, err := keycell.Write(o, oldPrev.Cell())
		if err != nil {
			return err
		}
		// The predecessor's strong link to the removed node is dropped,
		// unless the caller passed exactly that handle, in which case its
		// share transfers to the caller.
		if pred.next != nil && pred.next != node {
			pred.next.Release()
		}
		// The strong link to the successor transfers to the predecessor.
		pred.next = oldNext
		oldPrev.Release()
	} else if oldNext != nil {
		// No predecessor takes the link over, so the node's share of the
		// successor is dropped here. If that was the last strong handle,
		// the successor is destroyed now.
		oldNext.Release()
	}
	return nil
}

// InsertNext splices node2 immediately after node1, first detaching node2
// from wherever it was linked. The prior link between node1 and its old
// successor is fully replaced.
func InsertNext[T any](o keycell.Owner, node1, node2 *NodeRef[T]) error {
	if err := Remove(o, node2); err != nil {
		return err
	}

	n1, n2, err := keycell.Write2(o, node1.Cell(), node2.Cell())
	if err != nil {
		return err
	}

	oldNext := n1.next
	n1.next = nil
	if oldNext != nil {
		succ, err := keycell.Write(o, oldNext.Cell())
		if err != nil {
			return err
		}
		succ.prev = node2.Weak()
	}

	n2.prev = node1.Weak()
	n2.next = oldNext
	n1.next = node2.Clone()
	return nil
}

// FromSeq builds a list left to right from items and returns its head, or
// nil for empty input. Each node ends up owned by its predecessor's
// forward link; the caller owns only the returned head handle.
func FromSeq[T any](o keycell.Owner, items []T) (*NodeRef[T], error) {
	if len(items) == 0 {
		return nil, nil
	}
	head, err := New(o, items[0])
	if err != nil {
		return nil, err
	}
	tail := head
	for _, v := range items[1:] {
		node, err := New(o, v)
		if err != nil {
			return nil, err
		}
		if err := InsertNext(o, tail, node); err != nil {
			return nil, err
		}
		if tail != head {
			tail.Release()
		}
		tail = node
	}
	if tail != head {
		tail.Release()
	}
	return head, nil
}
