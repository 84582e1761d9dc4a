package dlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/keycell/pkg/keycell"
)

func TestNewNodeIsDetached(t *testing.T) {
	owner := keycell.NewOwner()
	node, err := New(owner, 42)
	require.NoError(t, err)

	n, err := keycell.Read(owner, node.Cell())
	require.NoError(t, err)
	assert.Equal(t, 42, n.Data)
	assert.Nil(t, n.Next())
	assert.Nil(t, n.PrevWeak())
	_, ok := n.Prev()
	assert.False(t, ok)
}

func TestPosition(t *testing.T) {
	owner := keycell.NewOwner()
	nodes := build(t, owner, 1, 2, 3)

	tests := []struct {
		name string
		node *NodeRef[int]
		want Pos
	}{
		{name: "first node is head", node: nodes[0], want: Head},
		{name: "interior node is middle", node: nodes[1], want: Middle},
		{name: "last node is tail", node: nodes[2], want: Tail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Position(owner, tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("removed node is detached", func(t *testing.T) {
		require.NoError(t, Remove(owner, nodes[1]))
		got, err := Position(owner, nodes[1])
		require.NoError(t, err)
		assert.Equal(t, Detached, got)
	})

	t.Run("position transitions after re-splice", func(t *testing.T) {
		// Splice the removed node back after the tail.
		require.NoError(t, InsertNext(owner, nodes[2], nodes[1]))
		got, err := Position(owner, nodes[1])
		require.NoError(t, err)
		assert.Equal(t, Tail, got)

		got, err = Position(owner, nodes[2])
		require.NoError(t, err)
		assert.Equal(t, Middle, got)
	})
}

func TestPosStrings(t *testing.T) {
	assert.Equal(t, "detached", Detached.String())
	assert.Equal(t, "head", Head.String())
	assert.Equal(t, "middle", Middle.String())
	assert.Equal(t, "tail", Tail.String())
}
