package entity

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shape renders a tree as a compact string: leaves by session, splits as
// H(first,second) or V(first,second).
func shape(t *PaneTree, id NodeID) string {
	n, ok := t.Node(id)
	if !ok {
		return "?"
	}
	if n.IsLeaf() {
		return string(n.Session)
	}
	prefix := "H"
	if n.Orientation == Vertical {
		prefix = "V"
	}
	return prefix + "(" + shape(t, n.First) + "," + shape(t, n.Second) + ")"
}

func TestPaneTree_NewTreeIsValidLeafRoot(t *testing.T) {
	tree := NewPaneTree("a")

	require.NoError(t, tree.Validate())
	root, ok := tree.Node(tree.Root())
	require.True(t, ok)
	assert.True(t, root.IsLeaf())
	assert.True(t, root.IsRoot())
	assert.Equal(t, SessionID("a"), root.Session)
	assert.Equal(t, 1, tree.LeafCount())
}

func TestPaneTree_SplitLeaf(t *testing.T) {
	tree := NewPaneTree("a")
	root := tree.Root()

	first, second, err := tree.SplitLeaf(root, Horizontal, "b")
	require.NoError(t, err)
	require.NoError(t, tree.Validate())

	split, ok := tree.Node(root)
	require.True(t, ok)
	assert.True(t, split.IsSplit())
	assert.Equal(t, Horizontal, split.Orientation)
	assert.InDelta(t, 0.5, split.Ratio, 1e-9)
	assert.Equal(t, first, split.First)
	assert.Equal(t, second, split.Second)

	f, _ := tree.Node(first)
	s, _ := tree.Node(second)
	assert.Equal(t, SessionID("a"), f.Session, "existing session is reparented into the first child")
	assert.Equal(t, SessionID("b"), s.Session)
	assert.Equal(t, root, f.Parent)
	assert.Equal(t, root, s.Parent)
	assert.Equal(t, "H(a,b)", shape(tree, tree.Root()))
}

func TestPaneTree_SplitLeaf_RejectsSplitNode(t *testing.T) {
	tree := NewPaneTree("a")
	_, _, err := tree.SplitLeaf(tree.Root(), Vertical, "b")
	require.NoError(t, err)

	_, _, err = tree.SplitLeaf(tree.Root(), Vertical, "c")
	assert.ErrorIs(t, err, ErrNotLeaf)
	assert.Equal(t, "V(a,b)", shape(tree, tree.Root()))
	assert.NoError(t, tree.Validate())
}

func TestPaneTree_RemoveLeaf_RootLeafIsRejected(t *testing.T) {
	tree := NewPaneTree("a")

	_, err := tree.RemoveLeaf(tree.Root())
	assert.ErrorIs(t, err, ErrRootLeaf)
	assert.NoError(t, tree.Validate())
}

func TestPaneTree_SplitThenRemoveRestoresTree(t *testing.T) {
	tests := []struct {
		name     string
		removeAt func(first, second NodeID) NodeID
		survivor SessionID
		expected string
	}{
		{
			name:     "remove new second child",
			removeAt: func(_, second NodeID) NodeID { return second },
			survivor: "a",
			expected: "H(V(a,b),x)",
		},
		{
			name:     "remove reparented first child",
			removeAt: func(first, _ NodeID) NodeID { return first },
			survivor: "c",
			expected: "H(V(c,b),x)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewPaneTree("a")
			left, _, err := tree.SplitLeaf(tree.Root(), Horizontal, "x")
			require.NoError(t, err)
			top, _, err := tree.SplitLeaf(left, Vertical, "b")
			require.NoError(t, err)
			require.Equal(t, "H(V(a,b),x)", shape(tree, tree.Root()))
			nodes := tree.NodeCount()

			first, second, err := tree.SplitLeaf(top, Horizontal, "c")
			require.NoError(t, err)
			require.NoError(t, tree.Validate())
			require.Equal(t, nodes+2, tree.NodeCount())

			promoted, err := tree.RemoveLeaf(tt.removeAt(first, second))
			require.NoError(t, err)
			require.NoError(t, tree.Validate())

			assert.Equal(t, nodes, tree.NodeCount())
			p, _ := tree.Node(promoted)
			assert.Equal(t, tt.survivor, p.Session)
			assert.Equal(t, tt.expected, shape(tree, tree.Root()))
		})
	}
}

func TestPaneTree_RemoveLeaf_PromotesSplitSibling(t *testing.T) {
	tree := NewPaneTree("a")
	first, second, err := tree.SplitLeaf(tree.Root(), Horizontal, "b")
	require.NoError(t, err)
	_, _, err = tree.SplitLeaf(second, Vertical, "c")
	require.NoError(t, err)
	require.Equal(t, "H(a,V(b,c))", shape(tree, tree.Root()))
	nodes := tree.NodeCount()

	promoted, err := tree.RemoveLeaf(first)
	require.NoError(t, err)
	require.NoError(t, tree.Validate())

	assert.Equal(t, second, promoted, "split sibling keeps its handle")
	assert.Equal(t, second, tree.Root())
	assert.Equal(t, nodes-2, tree.NodeCount())
	assert.Equal(t, "V(b,c)", shape(tree, tree.Root()))
	assert.False(t, tree.Contains(first), "removed handle is stale")
}

func TestPaneTree_RemoveLeaf_RelinksIntoGrandparent(t *testing.T) {
	tree := NewPaneTree("a")
	_, right, err := tree.SplitLeaf(tree.Root(), Horizontal, "b")
	require.NoError(t, err)
	top, bottom, err := tree.SplitLeaf(right, Vertical, "c")
	require.NoError(t, err)

	promoted, err := tree.RemoveLeaf(bottom)
	require.NoError(t, err)
	require.NoError(t, tree.Validate())

	assert.Equal(t, top, promoted)
	n, _ := tree.Node(promoted)
	assert.Equal(t, tree.Root(), n.Parent)
	root, _ := tree.Node(tree.Root())
	assert.Equal(t, promoted, root.Second)
	assert.Equal(t, "H(a,b)", shape(tree, tree.Root()))
}

func TestPaneTree_StaleHandlesNeverResolve(t *testing.T) {
	tree := NewPaneTree("a")
	_, second, err := tree.SplitLeaf(tree.Root(), Horizontal, "b")
	require.NoError(t, err)
	_, err = tree.RemoveLeaf(second)
	require.NoError(t, err)

	// Reuse the freed slots.
	_, _, err = tree.SplitLeaf(tree.Root(), Vertical, "c")
	require.NoError(t, err)

	assert.False(t, tree.Contains(second))
	_, err = tree.RemoveLeaf(second)
	assert.ErrorIs(t, err, ErrNodeNotFound)
	assert.NoError(t, tree.Validate())
}

func TestPaneTree_LeavesInOrder(t *testing.T) {
	tree := NewPaneTree("a")
	first, second, err := tree.SplitLeaf(tree.Root(), Horizontal, "c")
	require.NoError(t, err)
	_, _, err = tree.SplitLeaf(first, Vertical, "b")
	require.NoError(t, err)
	_, _, err = tree.SplitLeaf(second, Vertical, "d")
	require.NoError(t, err)

	assert.Equal(t, []SessionID{"a", "b", "c", "d"}, tree.Sessions())
	id, ok := tree.LeafBySession("c")
	require.True(t, ok)
	n, _ := tree.Node(id)
	assert.Equal(t, SessionID("c"), n.Session)

	_, ok = tree.LeafBySession("missing")
	assert.False(t, ok)
}

func TestPaneTree_SiblingAndFirstLeaf(t *testing.T) {
	tree := NewPaneTree("a")
	first, second, err := tree.SplitLeaf(tree.Root(), Horizontal, "b")
	require.NoError(t, err)
	_, _, err = tree.SplitLeaf(second, Vertical, "c")
	require.NoError(t, err)

	sib, ok := tree.Sibling(first)
	require.True(t, ok)
	assert.Equal(t, second, sib)

	leaf, ok := tree.FirstLeaf(second)
	require.True(t, ok)
	n, _ := tree.Node(leaf)
	assert.Equal(t, SessionID("b"), n.Session)

	_, ok = tree.Sibling(tree.Root())
	assert.False(t, ok)
}

func TestPaneTree_RemoveKeepsOtherSessions(t *testing.T) {
	tree := NewPaneTree("a")
	_, second, err := tree.SplitLeaf(tree.Root(), Horizontal, "b")
	require.NoError(t, err)
	mid, _, err := tree.SplitLeaf(second, Vertical, "c")
	require.NoError(t, err)
	_, _, err = tree.SplitLeaf(mid, Horizontal, "d")
	require.NoError(t, err)

	before := tree.Sessions()
	target, ok := tree.LeafBySession("d")
	require.True(t, ok)
	_, err = tree.RemoveLeaf(target)
	require.NoError(t, err)
	require.NoError(t, tree.Validate())

	after := tree.Sessions()
	var expected []SessionID
	for _, s := range before {
		if s != "d" {
			expected = append(expected, s)
		}
	}
	sort.Slice(after, func(i, j int) bool { return after[i] < after[j] })
	sort.Slice(expected, func(i, j int) bool { return expected[i] < expected[j] })
	assert.Equal(t, expected, after)
}

func TestPaneTree_SetRatio(t *testing.T) {
	tree := NewPaneTree("a")
	first, _, err := tree.SplitLeaf(tree.Root(), Horizontal, "b")
	require.NoError(t, err)

	require.NoError(t, tree.SetRatio(tree.Root(), 0.3))
	n, _ := tree.Node(tree.Root())
	assert.InDelta(t, 0.3, n.Ratio, 1e-9)

	assert.Error(t, tree.SetRatio(first, 0.3))
}

func TestPaneTree_Layout(t *testing.T) {
	tree := NewPaneTree("a")
	_, right, err := tree.SplitLeaf(tree.Root(), Horizontal, "b")
	require.NoError(t, err)
	_, _, err = tree.SplitLeaf(right, Vertical, "c")
	require.NoError(t, err)

	rects := tree.Layout(Rect{W: 201, H: 101}, 1)
	require.Len(t, rects, 3)

	assert.Equal(t, Rect{X: 0, Y: 0, W: 100, H: 101}, rects[0].Rect)
	assert.Equal(t, Rect{X: 101, Y: 0, W: 100, H: 50}, rects[1].Rect)
	assert.Equal(t, Rect{X: 101, Y: 51, W: 100, H: 50}, rects[2].Rect)
}

func TestPaneTree_RandomSplitRemoveKeepsInvariants(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1337} {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			tree := NewPaneTree("s0")
			live := map[SessionID]bool{"s0": true}
			next := 1

			for step := 0; step < 500; step++ {
				leaves := tree.Leaves()
				leaf := leaves[rng.Intn(len(leaves))]

				if len(leaves) == 1 || rng.Intn(5) < 3 {
					session := SessionID(fmt.Sprintf("s%d", next))
					next++
					orientation := Horizontal
					if rng.Intn(2) == 0 {
						orientation = Vertical
					}
					_, _, err := tree.SplitLeaf(leaf.ID, orientation, session)
					require.NoError(t, err, "step %d", step)
					live[session] = true
				} else {
					_, err := tree.RemoveLeaf(leaf.ID)
					require.NoError(t, err, "step %d", step)
					delete(live, leaf.Session)
				}

				require.NoError(t, tree.Validate(), "step %d", step)

				sessions := tree.Sessions()
				require.Len(t, sessions, len(live), "step %d", step)
				seen := make(map[SessionID]bool, len(sessions))
				for _, s := range sessions {
					require.True(t, live[s], "step %d: unexpected session %s", step, s)
					require.False(t, seen[s], "step %d: duplicate session %s", step, s)
					seen[s] = true
				}
				require.Equal(t, 2*len(live)-1, tree.NodeCount(), "step %d", step)
			}
		})
	}
}
