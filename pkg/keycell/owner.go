package keycell

// Owner is the single capability required to read or write any cell
// sharing its brand. The interface is sealed; the four variants in this
// package (dynamic, static, scoped, family) are the only implementations.
type Owner interface {
	// Brand returns the identity this owner was constructed with.
	Brand() Brand

	// revoked reports whether the owner's validity has lapsed. It also
	// seals the interface.
	revoked() bool
}

// DynOwner is the dynamic variant: every NewOwner call allocates a fresh
// process-unique brand, so any number of dynamic owners may coexist, each
// guarding the disjoint set of cells it stamped.
type DynOwner struct {
	brand Brand
}

// NewOwner creates a dynamic owner with a fresh brand. It never fails.
func NewOwner() *DynOwner {
	return &DynOwner{brand: newBrand()}
}

// Brand returns the owner's brand.
func (o *DynOwner) Brand() Brand { return o.brand }

func (o *DynOwner) revoked() bool { return false }

// check verifies that o may access a cell stamped with brand b.
func check(o Owner, b Brand) error {
	if o.revoked() {
		return ErrOwnerRevoked
	}
	if o.Brand() != b {
		return ErrBrandMismatch
	}
	return nil
}
