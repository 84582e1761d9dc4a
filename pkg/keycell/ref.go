package keycell

// slot is the shared state behind all handles to one cell. The cell
// pointer is cleared when the strong count reaches zero, which is how
// weak handles learn that the referent is gone.
type slot[T any] struct {
	cell   *Cell[T]
	strong int
}

// StrongRef is a shared-ownership handle to a cell. The cell is destroyed
// exactly when the last strong handle is released. Handles are not safe
// for concurrent use; cross-thread sharing is outside this package's
// model.
type StrongRef[T any] struct {
	s        *slot[T]
	released bool
}

// Releaser is implemented by cell payloads that hold strong handles of
// their own. When a cell is destroyed, its payload's ReleaseRefs is
// invoked so ownership unwinds deterministically, the way a linked
// structure's forward chain must.
type Releaser interface {
	ReleaseRefs()
}

// NewStrongRef wraps c in a fresh strong handle with count one.
func NewStrongRef[T any](c *Cell[T]) *StrongRef[T] {
	return &StrongRef[T]{s: &slot[T]{cell: c, strong: 1}}
}

// NewRef creates a cell holding value stamped with o's brand and returns
// it wrapped in a strong handle.
func NewRef[T any](o Owner, value T) (*StrongRef[T], error) {
	c, err := NewCell(o, value)
	if err != nil {
		return nil, err
	}
	return NewStrongRef(c), nil
}

// Cell returns the referenced cell. It panics if r has been released.
func (r *StrongRef[T]) Cell() *Cell[T] {
	r.must()
	return r.s.cell
}

// Clone returns a new strong handle to the same cell, incrementing the
// strong count. It panics if r has been released.
func (r *StrongRef[T]) Clone() *StrongRef[T] {
	r.must()
	r.s.strong++
	return &StrongRef[T]{s: r.s}
}

// Weak returns a non-owning handle to the same cell. It panics if r has
// been released.
func (r *StrongRef[T]) Weak() *WeakRef[T] {
	r.must()
	return &WeakRef[T]{s: r.s}
}

// Release drops this handle's share of ownership. When the last strong
// handle is released the cell is destroyed and every weak handle to it
// reports absence from then on. Release is idempotent per handle.
func (r *StrongRef[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.s.strong--
	if r.s.strong == 0 {
		c := r.s.cell
		r.s.cell = nil
		if rel, ok := any(&c.value).(Releaser); ok {
			rel.ReleaseRefs()
		}
	}
}

// must panics on use of a released handle. Using a released handle is a
// lifetime bug equivalent to a use-after-free, not a recoverable
// condition.
func (r *StrongRef[T]) must() {
	if r.released || r.s.cell == nil {
		panic("keycell: use of released StrongRef")
	}
}

// WeakRef is a non-owning handle to a cell. Upgrading after the referent
// is destroyed yields absence, never a failure.
type WeakRef[T any] struct {
	s *slot[T]
}

// Upgrade returns a new strong handle to the referent, or (nil, false) if
// the referent has been destroyed.
func (w *WeakRef[T]) Upgrade() (*StrongRef[T], bool) {
	if w.s.cell == nil {
		return nil, false
	}
	w.s.strong++
	return &StrongRef[T]{s: w.s}, true
}
