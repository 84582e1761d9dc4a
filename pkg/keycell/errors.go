package keycell

import "errors"

// Access and construction errors. Brand and alias violations are
// programming defects, not transient conditions; callers should not retry.
var (
	// ErrBrandMismatch is returned when an owner and a cell disagree on
	// their brand.
	ErrBrandMismatch = errors.New("owner and cell brands do not match")

	// ErrDuplicateOwner is returned when a second owner is constructed for
	// a static brand that already has a live owner.
	ErrDuplicateOwner = errors.New("a live owner for this brand already exists")

	// ErrAliasViolation is returned by Write2 when both cell arguments
	// resolve to the same underlying cell.
	ErrAliasViolation = errors.New("two mutable views of one cell requested")

	// ErrOwnerRevoked is returned when an owner is used after its validity
	// has lapsed: a scoped owner outside its callback, or a released
	// static owner.
	ErrOwnerRevoked = errors.New("owner is no longer valid")
)

// A dangling weak reference is not an error: WeakRef.Upgrade reports
// absence with its boolean result instead.
