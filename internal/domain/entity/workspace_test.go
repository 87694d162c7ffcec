package entity

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryWith(n int) *WorkspaceRegistry {
	reg := NewWorkspaceRegistry()
	for i := 0; i < n; i++ {
		idx := reg.NextIndex()
		reg.Append(NewWorkspace(idx, SessionID(rune('a'+i))+"-session"))
	}
	return reg
}

func TestWorkspace_Label(t *testing.T) {
	ws := NewWorkspace(3, "s")
	assert.Equal(t, "Workspace 3", ws.Label())
	assert.Equal(t, 1, ws.PaneCount())
}

func TestWorkspaceRegistry_IndicesAreMonotonic(t *testing.T) {
	reg := registryWith(3)
	_, err := reg.Remove(2)
	require.NoError(t, err)

	idx := reg.NextIndex()
	assert.Equal(t, 4, idx, "removed indices are never reused")
	assert.Equal(t, 1, reg.At(0).Index)
	assert.Equal(t, 2, reg.At(1).Index)
}

func TestWorkspaceRegistry_RemoveKeepsActiveWorkspace(t *testing.T) {
	reg := registryWith(3)
	require.NoError(t, reg.Activate(2))
	active := reg.ActiveWorkspace()

	_, err := reg.Remove(0)
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Active())
	assert.Same(t, active, reg.ActiveWorkspace())
}

func TestWorkspaceRegistry_OutOfRange(t *testing.T) {
	reg := registryWith(1)

	_, err := reg.Remove(4)
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
	assert.ErrorIs(t, reg.Activate(-1), ErrWorkspaceNotFound)
	assert.Nil(t, reg.At(7))
}

func TestWorkspaceRegistry_Lookup(t *testing.T) {
	reg := registryWith(2)
	second := reg.At(1)

	assert.Equal(t, 1, reg.IndexOf(second))
	assert.Equal(t, -1, reg.IndexOf(NewWorkspace(99, "x")))

	ws, pos := reg.ByIndex(2)
	assert.Same(t, second, ws)
	assert.Equal(t, 1, pos)

	found, leaf, ok := reg.FindSession("b-session")
	require.True(t, ok)
	assert.Same(t, second, found)
	assert.Equal(t, second.Tree.Root(), leaf)
}

func TestWorkspaceRegistry_EmptyHasNoActive(t *testing.T) {
	reg := NewWorkspaceRegistry()
	assert.Equal(t, -1, reg.Active())
	assert.Nil(t, reg.ActiveWorkspace())
	assert.Equal(t, FirstWorkspaceIndex, reg.PeekNextIndex())
}

func TestThumbnail_Size(t *testing.T) {
	var missing *Thumbnail
	assert.Zero(t, missing.Width())

	thumb := &Thumbnail{Image: image.NewRGBA(image.Rect(0, 0, 160, 120))}
	assert.Equal(t, 160, thumb.Width())
	assert.Equal(t, 120, thumb.Height())
}
