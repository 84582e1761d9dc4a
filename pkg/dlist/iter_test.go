package dlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/keycell/pkg/keycell"
)

func TestIterTraversesInOrder(t *testing.T) {
	owner := keycell.NewOwner()
	head, err := FromSeq(owner, []int{1, 2, 3})
	require.NoError(t, err)

	var got []int
	it := NewIter(owner, head)
	for it.Next() {
		got = append(got, *it.Value())
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestIterRestartable(t *testing.T) {
	owner := keycell.NewOwner()
	head, err := FromSeq(owner, []int{1, 2})
	require.NoError(t, err)

	// Traversals are read-only, so independent runs interleave freely and
	// a fresh iterator restarts from the head.
	first := NewIter(owner, head)
	second := NewIter(owner, head)

	require.True(t, first.Next())
	require.True(t, second.Next())
	assert.Equal(t, *first.Value(), *second.Value())

	require.True(t, first.Next())
	assert.False(t, first.Next())
	require.True(t, second.Next())
	assert.False(t, second.Next())
	require.NoError(t, first.Err())
	require.NoError(t, second.Err())
}

func TestIterEmptyAndNilHead(t *testing.T) {
	owner := keycell.NewOwner()

	it := NewIter[int](owner, nil)
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
	assert.Nil(t, it.Value())
}

func TestIterForeignOwnerStops(t *testing.T) {
	owner := keycell.NewOwner()
	head, err := FromSeq(owner, []int{1, 2, 3})
	require.NoError(t, err)

	it := NewIter(keycell.NewOwner(), head)
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), keycell.ErrBrandMismatch)
}

func TestCollect(t *testing.T) {
	owner := keycell.NewOwner()
	head, err := FromSeq(owner, []int{4, 5})
	require.NoError(t, err)

	views, err := Collect(owner, head)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 4, *views[0])
	assert.Equal(t, 5, *views[1])

	empty, err := Collect[int](owner, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEach(t *testing.T) {
	owner := keycell.NewOwner()
	head, err := FromSeq(owner, []int{1, 2, 3})
	require.NoError(t, err)

	sum := 0
	require.NoError(t, Each(owner, head, func(v *int) { sum += *v }))
	assert.Equal(t, 6, sum)
}

func TestUpdateMutatesEveryNode(t *testing.T) {
	owner := keycell.NewOwner()
	head, err := FromSeq(owner, []int{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, Update(owner, head, func(v *int) { *v *= 10 }))

	got, err := CollectValues(owner, head)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, got)

	assert.ErrorIs(t, Update(keycell.NewOwner(), head, func(*int) {}), keycell.ErrBrandMismatch)
}
