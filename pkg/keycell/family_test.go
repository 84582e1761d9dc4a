package keycell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Marker types standing in for two generated families.
type (
	redFamily  struct{}
	blueFamily struct{}
)

func TestFamilyAccess(t *testing.T) {
	owner := NewFamilyOwner[redFamily]()
	cell := NewFamilyCell(owner, 4)

	v, err := FamilyWrite(owner, cell)
	require.NoError(t, err)
	*v += 38

	got, err := FamilyRead(owner, cell)
	require.NoError(t, err)
	assert.Equal(t, 42, *got)
}

func TestFamilyCrossOwnerRejected(t *testing.T) {
	// Two owners of the same family guard disjoint cells, like the
	// dynamic variant.
	ownerA := NewFamilyOwner[blueFamily]()
	ownerB := NewFamilyOwner[blueFamily]()
	cell := NewFamilyCell(ownerA, "a")

	_, err := FamilyRead(ownerB, cell)
	assert.ErrorIs(t, err, ErrBrandMismatch)

	_, err = FamilyWrite(ownerB, cell)
	assert.ErrorIs(t, err, ErrBrandMismatch)
}

func TestFamilyWrite2(t *testing.T) {
	owner := NewFamilyOwner[redFamily]()
	a := NewFamilyCell(owner, 1)
	b := NewFamilyCell(owner, 2)

	va, vb, err := FamilyWrite2(owner, a, b)
	require.NoError(t, err)
	*va, *vb = *vb, *va

	ga, err := FamilyRead(owner, a)
	require.NoError(t, err)
	gb, err := FamilyRead(owner, b)
	require.NoError(t, err)
	assert.Equal(t, 2, *ga)
	assert.Equal(t, 1, *gb)

	_, _, err = FamilyWrite2(owner, a, a)
	assert.ErrorIs(t, err, ErrAliasViolation)
}

// Cross-family incompatibility is structural: a FamilyOwner[redFamily]
// cannot be passed where a FamilyOwner[blueFamily] is expected, so the
// mismatch is rejected by the compiler rather than at run time. See
// pkg/demofam for a generated family exercising the same contract.
