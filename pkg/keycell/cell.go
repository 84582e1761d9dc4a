package keycell

// Cell exclusively owns one value of type T together with the brand
// stamped on it at construction. The brand never changes, and the value
// is reachable only through Read, Write, and Write2 with a matching
// owner.
type Cell[T any] struct {
	brand Brand
	value T
}

// NewCell creates a cell holding value, stamped with o's brand. It
// returns ErrOwnerRevoked if the owner's validity has lapsed.
func NewCell[T any](o Owner, value T) (*Cell[T], error) {
	if o.revoked() {
		return nil, ErrOwnerRevoked
	}
	return &Cell[T]{brand: o.Brand(), value: value}, nil
}

// CellBrand returns the brand stamped on c, for diagnostics.
func (c *Cell[T]) CellBrand() Brand { return c.brand }

// Read returns a shared view of c's content. It fails with
// ErrBrandMismatch if o's brand does not match c's, or ErrOwnerRevoked if
// o has lapsed.
func Read[T any](o Owner, c *Cell[T]) (*T, error) {
	if err := check(o, c.brand); err != nil {
		return nil, err
	}
	return &c.value, nil
}

// Write returns a mutable view of c's content under the same matching
// rule as Read. The caller must not hold the view across another access
// through the same owner; Go cannot enforce this statically, so the
// guarantee is the documented access discipline.
func Write[T any](o Owner, c *Cell[T]) (*T, error) {
	if err := check(o, c.brand); err != nil {
		return nil, err
	}
	return &c.value, nil
}

// Write2 returns two independent mutable views in one call. It fails with
// ErrAliasViolation when a and b resolve to the same underlying cell;
// this check applies to every owner variant, since per-cell identity is
// not something a brand can resolve by itself.
func Write2[T any](o Owner, a, b *Cell[T]) (*T, *T, error) {
	if err := check(o, a.brand); err != nil {
		return nil, nil, err
	}
	if err := check(o, b.brand); err != nil {
		return nil, nil, err
	}
	if a == b {
		return nil, nil, ErrAliasViolation
	}
	return &a.value, &b.value, nil
}
