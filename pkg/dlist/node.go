package dlist

import "github.com/mesh-intelligence/keycell/pkg/keycell"

// Node is one list element: a payload, a strong forward link, and a weak
// backward link. Outside the body of a single mutating operation, for
// adjacent nodes A before B, A's next resolves to B and upgrading B's
// prev yields A.
type Node[T any] struct {
	Data T
	// The link fields spell out the alias RHS (NodeRef[T] and
	// WeakNodeRef[T] denote these exact types) because referencing the
	// aliases here forms a recursive generic-alias cycle that deadlocks
	// the compiler's importer in every released toolchain.
	next *keycell.StrongRef[Node[T]]
	prev *keycell.WeakRef[Node[T]]
}

// NodeRef is a strong, shared-ownership handle to a node's cell.
type NodeRef[T any] = keycell.StrongRef[Node[T]]

// WeakNodeRef is a non-owning handle to a node's cell.
type WeakNodeRef[T any] = keycell.WeakRef[Node[T]]

// New creates a detached node holding value: both links empty. The node's
// cell is stamped with o's brand.
func New[T any](o keycell.Owner, value T) (*NodeRef[T], error) {
	return keycell.NewRef(o, Node[T]{Data: value})
}

// Next returns the strong handle to the successor, or nil at the tail.
func (n *Node[T]) Next() *NodeRef[T] { return n.next }

// PrevWeak returns the weak handle to the predecessor, or nil at the head.
func (n *Node[T]) PrevWeak() *WeakNodeRef[T] { return n.prev }

// ReleaseRefs drops the node's forward link when the node itself is
// destroyed, so a released list head unwinds the whole chain unless
// someone else still holds a handle to a later node.
func (n *Node[T]) ReleaseRefs() {
	if n.next != nil {
		n.next.Release()
		n.next = nil
	}
	n.prev = nil
}

// Prev upgrades the backward link. Absence means no predecessor: either
// none was ever linked or the predecessor has been destroyed; the two
// cases are deliberately indistinguishable.
func (n *Node[T]) Prev() (*NodeRef[T], bool) {
	if n.prev == nil {
		return nil, false
	}
	return n.prev.Upgrade()
}

// Pos is a node's position in its list, derived from which links are
// populated rather than stored.
type Pos int

const (
	Detached Pos = iota
	Head
	Middle
	Tail
)

// String returns the position name.
func (p Pos) String() string {
	switch p {
	case Detached:
		return "detached"
	case Head:
		return "head"
	case Middle:
		return "middle"
	case Tail:
		return "tail"
	}
	return "unknown"
}

// Position derives node's position. A backward link whose target has been
// destroyed counts as absent, so the sole survivor of a released list
// reports Head or Detached rather than Middle or Tail.
func Position[T any](o keycell.Owner, node *NodeRef[T]) (Pos, error) {
	n, err := keycell.Read(o, node.Cell())
	if err != nil {
		return Detached, err
	}
	prev, ok := n.Prev()
	if ok {
		prev.Release()
	}
	switch {
	case !ok && n.next == nil:
		return Detached, nil
	case !ok:
		return Head, nil
	case n.next == nil:
		return Tail, nil
	default:
		return Middle, nil
	}
}
