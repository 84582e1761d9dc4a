package keycell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrongRefSharing(t *testing.T) {
	owner := NewOwner()
	ref, err := NewRef(owner, "shared")
	require.NoError(t, err)

	clone := ref.Clone()
	assert.Same(t, ref.Cell(), clone.Cell())

	// The referent survives releasing one of two handles.
	ref.Release()
	got, err := Read(owner, clone.Cell())
	require.NoError(t, err)
	assert.Equal(t, "shared", *got)

	clone.Release()
}

func TestWeakRefAbsence(t *testing.T) {
	owner := NewOwner()
	ref, err := NewRef(owner, 1)
	require.NoError(t, err)
	weak := ref.Weak()

	up, ok := weak.Upgrade()
	require.True(t, ok)
	up.Release()

	ref.Release()

	// The last strong handle is gone, so upgrading reports absence.
	_, ok = weak.Upgrade()
	assert.False(t, ok)
}

func TestUpgradeKeepsReferentAlive(t *testing.T) {
	owner := NewOwner()
	ref, err := NewRef(owner, 3)
	require.NoError(t, err)
	weak := ref.Weak()

	up, ok := weak.Upgrade()
	require.True(t, ok)

	// Releasing the original handle is not the last release: the upgraded
	// handle still owns a share.
	ref.Release()
	got, err := Read(owner, up.Cell())
	require.NoError(t, err)
	assert.Equal(t, 3, *got)

	up.Release()
	_, ok = weak.Upgrade()
	assert.False(t, ok)
}

func TestReleaseIdempotentPerHandle(t *testing.T) {
	owner := NewOwner()
	ref, err := NewRef(owner, 1)
	require.NoError(t, err)
	clone := ref.Clone()

	ref.Release()
	ref.Release() // second release of the same handle is a no-op

	got, err := Read(owner, clone.Cell())
	require.NoError(t, err)
	assert.Equal(t, 1, *got)
	clone.Release()
}

func TestReleasedHandlePanics(t *testing.T) {
	owner := NewOwner()
	ref, err := NewRef(owner, 1)
	require.NoError(t, err)
	ref.Release()

	assert.Panics(t, func() { ref.Cell() })
	assert.Panics(t, func() { ref.Clone() })
	assert.Panics(t, func() { ref.Weak() })
}

// chainPayload releases an owned handle when its cell is destroyed.
type chainPayload struct {
	next *StrongRef[int]
}

func (p *chainPayload) ReleaseRefs() {
	if p.next != nil {
		p.next.Release()
		p.next = nil
	}
}

func TestReleaserUnwindsOwnedHandles(t *testing.T) {
	owner := NewOwner()
	inner, err := NewRef(owner, 9)
	require.NoError(t, err)
	innerWeak := inner.Weak()

	outer, err := NewRef(owner, chainPayload{next: inner})
	require.NoError(t, err)

	// Destroying the outer cell releases its owned handle, which was the
	// inner cell's last, so both are gone.
	outer.Release()
	_, ok := innerWeak.Upgrade()
	assert.False(t, ok)
}
