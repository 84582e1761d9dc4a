package keycell

// FamilyOwner and FamilyCell are the machinery behind generated families
// (see cmd/cellgen). A generated family declares its own unexported
// marker type and aliases these generics over it, so two families are
// structurally distinct Go types even when generated from the same
// requested name: presenting family A's owner to family B's cell is
// rejected by the compiler. Within one family, each owner carries its own
// runtime brand like the dynamic variant, so same-family cross-owner
// access fails with ErrBrandMismatch at the first access.

// FamilyOwner is an owner belonging to the family tagged by marker type M.
type FamilyOwner[M any] struct {
	brand Brand
}

// NewFamilyOwner creates a new owner for family M with a fresh brand. Any
// number of owners may coexist within one family, each guarding the cells
// it stamped.
func NewFamilyOwner[M any]() *FamilyOwner[M] {
	return &FamilyOwner[M]{brand: newBrand()}
}

// Brand returns the owner's brand.
func (o *FamilyOwner[M]) Brand() Brand { return o.brand }

func (o *FamilyOwner[M]) revoked() bool { return false }

// FamilyCell is a cell belonging to the family tagged by marker type M.
// Its content is reachable only through the Family* access functions with
// an owner of the same family.
type FamilyCell[M any, T any] struct {
	cell Cell[T]
}

// NewFamilyCell creates a cell holding value, stamped with o's brand.
func NewFamilyCell[M any, T any](o *FamilyOwner[M], value T) *FamilyCell[M, T] {
	return &FamilyCell[M, T]{cell: Cell[T]{brand: o.brand, value: value}}
}

// FamilyRead returns a shared view of c's content.
func FamilyRead[M any, T any](o *FamilyOwner[M], c *FamilyCell[M, T]) (*T, error) {
	return Read(o, &c.cell)
}

// FamilyWrite returns a mutable view of c's content.
func FamilyWrite[M any, T any](o *FamilyOwner[M], c *FamilyCell[M, T]) (*T, error) {
	return Write(o, &c.cell)
}

// FamilyWrite2 returns two independent mutable views, rejecting aliased
// arguments with ErrAliasViolation.
func FamilyWrite2[M any, T any](o *FamilyOwner[M], a, b *FamilyCell[M, T]) (*T, *T, error) {
	return Write2(o, &a.cell, &b.cell)
}
