package entity

import (
	"errors"
	"fmt"
	"time"
)

// LayoutSnapshotVersion is the current schema version for layout snapshots.
// Increment when making breaking changes to the serialization format.
const LayoutSnapshotVersion = 1

// LayoutSnapshotID uniquely identifies a saved layout.
type LayoutSnapshotID string

// LayoutSnapshot is a saved arrangement of workspaces and pane grids.
// This is serialized to JSON and stored in the database.
type LayoutSnapshot struct {
	Version     int                 `json:"version"`
	ID          LayoutSnapshotID    `json:"id"`
	Name        string              `json:"name"`
	Workspaces  []WorkspaceSnapshot `json:"workspaces"`
	ActiveIndex int                 `json:"active_index"` // Position in Workspaces
	NextIndex   int                 `json:"next_index"`
	SavedAt     time.Time           `json:"saved_at"`
}

// WorkspaceSnapshot captures one workspace's pane tree.
type WorkspaceSnapshot struct {
	Index int               `json:"index"`
	Root  *PaneNodeSnapshot `json:"root"`
}

// PaneNodeSnapshot captures a node in the pane tree.
// Leaves carry a working directory; splits carry two children.
type PaneNodeSnapshot struct {
	Orientation      string            `json:"orientation,omitempty"`
	Ratio            float64           `json:"ratio,omitempty"`
	First            *PaneNodeSnapshot `json:"first,omitempty"`
	Second           *PaneNodeSnapshot `json:"second,omitempty"`
	WorkingDirectory string            `json:"working_directory,omitempty"`
	Focused          bool              `json:"focused,omitempty"`
}

// IsLeaf returns true for leaf snapshots.
func (s *PaneNodeSnapshot) IsLeaf() bool {
	return s.First == nil && s.Second == nil
}

// LeafCount returns the number of leaves in the snapshot subtree.
func (s *PaneNodeSnapshot) LeafCount() int {
	if s == nil {
		return 0
	}
	if s.IsLeaf() {
		return 1
	}
	return s.First.LeafCount() + s.Second.LeafCount()
}

// PaneCount returns the total number of panes across all workspaces.
func (s *LayoutSnapshot) PaneCount() int {
	count := 0
	for _, ws := range s.Workspaces {
		count += ws.Root.LeafCount()
	}
	return count
}

// ErrInvalidSnapshot is returned for snapshots that do not describe a valid tree.
var ErrInvalidSnapshot = errors.New("invalid layout snapshot")

// SnapshotFromRegistry captures the registry's layout. dirOf resolves a
// session's working directory; focused marks the leaf that held focus.
func SnapshotFromRegistry(
	id LayoutSnapshotID,
	name string,
	reg *WorkspaceRegistry,
	dirOf func(SessionID) string,
	focused SessionID,
) *LayoutSnapshot {
	snap := &LayoutSnapshot{
		Version:     LayoutSnapshotVersion,
		ID:          id,
		Name:        name,
		Workspaces:  make([]WorkspaceSnapshot, 0, reg.Len()),
		ActiveIndex: max(reg.Active(), 0),
		NextIndex:   reg.PeekNextIndex(),
		SavedAt:     time.Now(),
	}
	for _, ws := range reg.All() {
		snap.Workspaces = append(snap.Workspaces, WorkspaceSnapshot{
			Index: ws.Index,
			Root:  snapshotNode(ws.Tree, ws.Tree.Root(), dirOf, focused),
		})
	}
	return snap
}

func snapshotNode(t *PaneTree, id NodeID, dirOf func(SessionID) string, focused SessionID) *PaneNodeSnapshot {
	n, ok := t.Node(id)
	if !ok {
		return nil
	}
	if n.IsLeaf() {
		return &PaneNodeSnapshot{
			WorkingDirectory: dirOf(n.Session),
			Focused:          focused != "" && n.Session == focused,
		}
	}
	return &PaneNodeSnapshot{
		Orientation: n.Orientation.String(),
		Ratio:       n.Ratio,
		First:       snapshotNode(t, n.First, dirOf, focused),
		Second:      snapshotNode(t, n.Second, dirOf, focused),
	}
}

// ParseOrientation converts a snapshot orientation name.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("%w: unknown orientation %q", ErrInvalidSnapshot, s)
	}
}

// BuildTree rebuilds a pane tree from a snapshot. spawn is called once per
// leaf with the leaf's recorded working directory.
// Returns the tree and the leaf that was focused (zero when none was).
func BuildTree(root *PaneNodeSnapshot, spawn func(dir string) (SessionID, error)) (*PaneTree, NodeID, error) {
	if root == nil {
		return nil, NodeID{}, fmt.Errorf("%w: empty tree", ErrInvalidSnapshot)
	}
	first := firstLeafSnapshot(root)
	sid, err := spawn(first.WorkingDirectory)
	if err != nil {
		return nil, NodeID{}, err
	}
	tree := NewPaneTree(sid)
	var focused NodeID
	if err := tree.grow(tree.Root(), root, spawn, &focused); err != nil {
		return nil, NodeID{}, err
	}
	return tree, focused, nil
}

// grow expands leaf id, already hosting the session of snap's first leaf,
// into the shape of snap.
func (t *PaneTree) grow(id NodeID, snap *PaneNodeSnapshot, spawn func(string) (SessionID, error), focused *NodeID) error {
	if snap.IsLeaf() {
		if snap.Focused {
			*focused = id
		}
		return nil
	}
	if snap.First == nil || snap.Second == nil {
		return fmt.Errorf("%w: split with one child", ErrInvalidSnapshot)
	}
	orientation, err := ParseOrientation(snap.Orientation)
	if err != nil {
		return err
	}

	sid, err := spawn(firstLeafSnapshot(snap.Second).WorkingDirectory)
	if err != nil {
		return err
	}
	first, second, err := t.SplitLeaf(id, orientation, sid)
	if err != nil {
		return err
	}
	if snap.Ratio > 0 && snap.Ratio < 1 {
		_ = t.SetRatio(id, snap.Ratio)
	}
	if err := t.grow(first, snap.First, spawn, focused); err != nil {
		return err
	}
	return t.grow(second, snap.Second, spawn, focused)
}

func firstLeafSnapshot(s *PaneNodeSnapshot) *PaneNodeSnapshot {
	for !s.IsLeaf() && s.First != nil {
		s = s.First
	}
	return s
}
