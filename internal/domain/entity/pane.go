// Package entity contains domain entities representing core shell concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"errors"
	"fmt"
)

// SessionID identifies a terminal session owned by the session collaborator.
// The core never looks inside it.
type SessionID string

// NodeKind tells whether a pane node hosts a session or splits into two children.
type NodeKind uint8

const (
	NodeLeaf  NodeKind = iota + 1 // Hosts exactly one session
	NodeSplit                     // Holds exactly two children
)

// Orientation indicates how a split node divides its area.
type Orientation uint8

const (
	Horizontal Orientation = iota + 1 // Children side by side (divides width)
	Vertical                          // Children stacked (divides height)
)

// String returns the orientation name used in logs and snapshots.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "none"
	}
}

// DefaultSplitRatio is the divider position of a freshly split node.
const DefaultSplitRatio = 0.5

var (
	// ErrNotLeaf is returned when a leaf-only operation targets a split node.
	ErrNotLeaf = errors.New("pane node is not a leaf")
	// ErrNodeNotFound is returned for stale or foreign node handles.
	ErrNodeNotFound = errors.New("pane node not found")
	// ErrRootLeaf is returned when removing the only leaf of a tree.
	ErrRootLeaf = errors.New("cannot remove root leaf")
)

// NodeID is a generational handle into a PaneTree arena.
// The zero value never resolves and is used as "no node".
type NodeID struct {
	slot uint32
	gen  uint32
}

// IsZero reports whether the handle is the "no node" value.
func (id NodeID) IsZero() bool {
	return id.gen == 0
}

func (id NodeID) String() string {
	if id.IsZero() {
		return "none"
	}
	return fmt.Sprintf("n%d.%d", id.slot, id.gen)
}

// PaneNode is a node of the pane tree: either a leaf hosting one session,
// or a split with two children.
type PaneNode struct {
	ID      NodeID
	Kind    NodeKind
	Session SessionID // Leaf only

	// Split only
	Orientation Orientation
	Ratio       float64 // 0.0-1.0, share of the first child
	First       NodeID  // Left/top child
	Second      NodeID  // Right/bottom child

	// Back-reference, zero for root. Never owning.
	Parent NodeID
}

// IsLeaf returns true if this node hosts a session.
func (n PaneNode) IsLeaf() bool {
	return n.Kind == NodeLeaf
}

// IsSplit returns true if this node splits into two children.
func (n PaneNode) IsSplit() bool {
	return n.Kind == NodeSplit
}

// IsRoot returns true if this node has no parent.
func (n PaneNode) IsRoot() bool {
	return n.Parent.IsZero()
}

type paneSlot struct {
	node PaneNode
	gen  uint32
	used bool
}

// PaneTree owns every node of one workspace's pane grid.
// Nodes live in an arena; parent links are plain handles, so there are no
// reference cycles and upward traversal stays O(1).
type PaneTree struct {
	slots []paneSlot
	free  []uint32
	root  NodeID
}

// NewPaneTree creates a tree whose root is a leaf hosting session.
func NewPaneTree(session SessionID) *PaneTree {
	t := &PaneTree{}
	t.root = t.alloc(PaneNode{Kind: NodeLeaf, Session: session})
	return t
}

// Root returns the root handle.
func (t *PaneTree) Root() NodeID {
	return t.root
}

// Node returns a copy of the node behind id.
func (t *PaneTree) Node(id NodeID) (PaneNode, bool) {
	n := t.get(id)
	if n == nil {
		return PaneNode{}, false
	}
	return *n, true
}

// Contains reports whether id resolves in this tree.
func (t *PaneTree) Contains(id NodeID) bool {
	return t.get(id) != nil
}

func (t *PaneTree) alloc(node PaneNode) NodeID {
	var slot uint32
	if n := len(t.free); n > 0 {
		slot = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.slots = append(t.slots, paneSlot{})
		slot = uint32(len(t.slots) - 1)
	}

	s := &t.slots[slot]
	s.gen++
	s.used = true
	node.ID = NodeID{slot: slot, gen: s.gen}
	s.node = node
	return node.ID
}

func (t *PaneTree) release(id NodeID) {
	if t.get(id) == nil {
		return
	}
	s := &t.slots[id.slot]
	s.used = false
	s.node = PaneNode{}
	t.free = append(t.free, id.slot)
}

// get returns a pointer into the arena. The pointer is invalidated by the next alloc.
func (t *PaneTree) get(id NodeID) *PaneNode {
	if t == nil || id.IsZero() || int(id.slot) >= len(t.slots) {
		return nil
	}
	s := &t.slots[id.slot]
	if !s.used || s.gen != id.gen {
		return nil
	}
	return &s.node
}

// SplitLeaf converts the leaf id into a split. The existing session moves to
// a new first child and newSession is hosted by a new second child.
// The handle id stays valid and now names the split node.
func (t *PaneTree) SplitLeaf(id NodeID, orientation Orientation, newSession SessionID) (first, second NodeID, err error) {
	target := t.get(id)
	if target == nil {
		return NodeID{}, NodeID{}, fmt.Errorf("split %s: %w", id, ErrNodeNotFound)
	}
	if !target.IsLeaf() {
		return NodeID{}, NodeID{}, fmt.Errorf("split %s: %w", id, ErrNotLeaf)
	}
	existing := target.Session

	first = t.alloc(PaneNode{Kind: NodeLeaf, Session: existing, Parent: id})
	second = t.alloc(PaneNode{Kind: NodeLeaf, Session: newSession, Parent: id})

	// Re-resolve: alloc may have grown the arena.
	target = t.get(id)
	target.Kind = NodeSplit
	target.Session = ""
	target.Orientation = orientation
	target.Ratio = DefaultSplitRatio
	target.First = first
	target.Second = second

	return first, second, nil
}

// RemoveLeaf deletes leaf id and its parent split, promoting the sibling
// subtree into the parent's slot. Returns the promoted node.
func (t *PaneTree) RemoveLeaf(id NodeID) (NodeID, error) {
	leaf := t.get(id)
	if leaf == nil {
		return NodeID{}, fmt.Errorf("remove %s: %w", id, ErrNodeNotFound)
	}
	if !leaf.IsLeaf() {
		return NodeID{}, fmt.Errorf("remove %s: %w", id, ErrNotLeaf)
	}
	if leaf.IsRoot() {
		return NodeID{}, fmt.Errorf("remove %s: %w", id, ErrRootLeaf)
	}

	parentID := leaf.Parent
	parent := t.get(parentID)
	siblingID := parent.First
	if siblingID == id {
		siblingID = parent.Second
	}
	grandID := parent.Parent

	sibling := t.get(siblingID)
	sibling.Parent = grandID
	if grandID.IsZero() {
		t.root = siblingID
	} else {
		grand := t.get(grandID)
		if grand.First == parentID {
			grand.First = siblingID
		} else {
			grand.Second = siblingID
		}
	}

	t.release(id)
	t.release(parentID)
	return siblingID, nil
}

// SetRatio updates the divider of split id.
func (t *PaneTree) SetRatio(id NodeID, ratio float64) error {
	n := t.get(id)
	if n == nil {
		return fmt.Errorf("set ratio %s: %w", id, ErrNodeNotFound)
	}
	if !n.IsSplit() {
		return fmt.Errorf("set ratio %s: node is not a split", id)
	}
	n.Ratio = ratio
	return nil
}

// Sibling returns the other child of id's parent.
func (t *PaneTree) Sibling(id NodeID) (NodeID, bool) {
	n := t.get(id)
	if n == nil || n.IsRoot() {
		return NodeID{}, false
	}
	p := t.get(n.Parent)
	if p.First == id {
		return p.Second, true
	}
	return p.First, true
}

// Walk visits the subtree at from in pre-order, first child before second.
// Returns early if fn returns false.
func (t *PaneTree) Walk(from NodeID, fn func(PaneNode) bool) {
	t.walk(from, fn)
}

func (t *PaneTree) walk(id NodeID, fn func(PaneNode) bool) bool {
	n, ok := t.Node(id)
	if !ok {
		return true
	}
	if !fn(n) {
		return false
	}
	if n.IsSplit() {
		if !t.walk(n.First, fn) {
			return false
		}
		return t.walk(n.Second, fn)
	}
	return true
}

// Leaves returns every leaf in traversal order.
func (t *PaneTree) Leaves() []PaneNode {
	var leaves []PaneNode
	t.Walk(t.root, func(n PaneNode) bool {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}

// FirstLeaf returns the first leaf of the subtree at from.
func (t *PaneTree) FirstLeaf(from NodeID) (NodeID, bool) {
	var found NodeID
	t.Walk(from, func(n PaneNode) bool {
		if n.IsLeaf() {
			found = n.ID
			return false
		}
		return true
	})
	return found, !found.IsZero()
}

// LeafBySession finds the leaf hosting session.
func (t *PaneTree) LeafBySession(session SessionID) (NodeID, bool) {
	var found NodeID
	t.Walk(t.root, func(n PaneNode) bool {
		if n.IsLeaf() && n.Session == session {
			found = n.ID
			return false
		}
		return true
	})
	return found, !found.IsZero()
}

// Sessions returns the sessions of every leaf in traversal order.
func (t *PaneTree) Sessions() []SessionID {
	leaves := t.Leaves()
	sessions := make([]SessionID, 0, len(leaves))
	for _, l := range leaves {
		sessions = append(sessions, l.Session)
	}
	return sessions
}

// LeafCount returns the number of leaf nodes (panes) in the tree.
func (t *PaneTree) LeafCount() int {
	return len(t.Leaves())
}

// NodeCount returns the number of live nodes.
func (t *PaneTree) NodeCount() int {
	count := 0
	t.Walk(t.root, func(PaneNode) bool {
		count++
		return true
	})
	return count
}

// Validate checks the structural invariants: one root, splits with exactly
// two children whose parent link points back, leaves without children.
func (t *PaneTree) Validate() error {
	root := t.get(t.root)
	if root == nil {
		return errors.New("tree has no root")
	}
	if !root.IsRoot() {
		return fmt.Errorf("root %s has parent %s", t.root, root.Parent)
	}

	reachable := 0
	var check func(id NodeID) error
	check = func(id NodeID) error {
		n := t.get(id)
		if n == nil {
			return fmt.Errorf("dangling handle %s", id)
		}
		reachable++
		switch n.Kind {
		case NodeLeaf:
			if !n.First.IsZero() || !n.Second.IsZero() {
				return fmt.Errorf("leaf %s has children", id)
			}
			return nil
		case NodeSplit:
			if n.First.IsZero() || n.Second.IsZero() || n.First == n.Second {
				return fmt.Errorf("split %s does not have exactly two children", id)
			}
			for _, c := range []NodeID{n.First, n.Second} {
				child := t.get(c)
				if child == nil {
					return fmt.Errorf("split %s: dangling child %s", id, c)
				}
				if child.Parent != id {
					return fmt.Errorf("child %s of %s points at parent %s", c, id, child.Parent)
				}
				if err := check(c); err != nil {
					return err
				}
			}
			return nil
		default:
			return fmt.Errorf("node %s has unknown kind %d", id, n.Kind)
		}
	}
	if err := check(t.root); err != nil {
		return err
	}

	live := 0
	for _, s := range t.slots {
		if s.used {
			live++
		}
	}
	if live != reachable {
		return fmt.Errorf("%d live nodes but %d reachable from root", live, reachable)
	}
	return nil
}
