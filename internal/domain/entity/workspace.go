package entity

import (
	"fmt"
	"image"
	"time"
)

// FirstWorkspaceIndex is the index given to the first workspace of a run.
const FirstWorkspaceIndex = 1

// Thumbnail is a scaled snapshot of a workspace surface shown by the switcher.
type Thumbnail struct {
	Image      image.Image
	CapturedAt time.Time
}

// Width returns the thumbnail width in pixels, 0 when empty.
func (t *Thumbnail) Width() int {
	if t == nil || t.Image == nil {
		return 0
	}
	return t.Image.Bounds().Dx()
}

// Height returns the thumbnail height in pixels, 0 when empty.
func (t *Thumbnail) Height() int {
	if t == nil || t.Image == nil {
		return 0
	}
	return t.Image.Bounds().Dy()
}

// Workspace represents a pane grid the user can switch to.
// Each workspace exclusively owns its pane tree.
type Workspace struct {
	Index     int // Monotonic, never reused
	Tree      *PaneTree
	Thumbnail *Thumbnail // nil until first capture
	Bounds    *Rect      // On-screen surface, nil when never realized
	CreatedAt time.Time
}

// NewWorkspace creates a workspace whose tree holds a single session.
func NewWorkspace(index int, session SessionID) *Workspace {
	return &Workspace{
		Index:     index,
		Tree:      NewPaneTree(session),
		CreatedAt: time.Now(),
	}
}

// Label returns the name shown in the switcher and menus.
func (w *Workspace) Label() string {
	return fmt.Sprintf("Workspace %d", w.Index)
}

// PaneCount returns the number of panes in the workspace.
func (w *Workspace) PaneCount() int {
	if w.Tree == nil {
		return 0
	}
	return w.Tree.LeafCount()
}

// WorkspaceRegistry is the ordered collection of live workspaces.
// Order is creation order; positions shift on removal, indices never do.
type WorkspaceRegistry struct {
	workspaces []*Workspace
	active     int
	nextIndex  int
}

// NewWorkspaceRegistry creates an empty registry.
func NewWorkspaceRegistry() *WorkspaceRegistry {
	return &WorkspaceRegistry{nextIndex: FirstWorkspaceIndex}
}

// NextIndex consumes and returns the next workspace index.
func (r *WorkspaceRegistry) NextIndex() int {
	idx := r.nextIndex
	r.nextIndex++
	return idx
}

// PeekNextIndex returns the index the next workspace will get.
func (r *WorkspaceRegistry) PeekNextIndex() int {
	return r.nextIndex
}

// RestoreNextIndex moves the counter forward so restored indices are never reused.
func (r *WorkspaceRegistry) RestoreNextIndex(next int) {
	if next > r.nextIndex {
		r.nextIndex = next
	}
}

// Append adds ws at the end of the sequence and returns its position.
func (r *WorkspaceRegistry) Append(ws *Workspace) int {
	r.workspaces = append(r.workspaces, ws)
	return len(r.workspaces) - 1
}

// Remove deletes the workspace at pos. The active position is kept pointing
// at the same workspace when it survives; callers pick a new one otherwise.
func (r *WorkspaceRegistry) Remove(pos int) (*Workspace, error) {
	if pos < 0 || pos >= len(r.workspaces) {
		return nil, fmt.Errorf("remove workspace at %d: %w", pos, ErrWorkspaceNotFound)
	}
	ws := r.workspaces[pos]
	r.workspaces = append(r.workspaces[:pos], r.workspaces[pos+1:]...)
	if pos < r.active {
		r.active--
	}
	if r.active >= len(r.workspaces) {
		r.active = max(len(r.workspaces)-1, 0)
	}
	return ws, nil
}

// IndexOf returns the position of ws, or -1.
func (r *WorkspaceRegistry) IndexOf(ws *Workspace) int {
	for i, w := range r.workspaces {
		if w == ws {
			return i
		}
	}
	return -1
}

// ByIndex finds a workspace by its monotonic index.
func (r *WorkspaceRegistry) ByIndex(index int) (*Workspace, int) {
	for i, w := range r.workspaces {
		if w.Index == index {
			return w, i
		}
	}
	return nil, -1
}

// At returns the workspace at pos, or nil.
func (r *WorkspaceRegistry) At(pos int) *Workspace {
	if pos < 0 || pos >= len(r.workspaces) {
		return nil
	}
	return r.workspaces[pos]
}

// Len returns the number of workspaces.
func (r *WorkspaceRegistry) Len() int {
	return len(r.workspaces)
}

// All returns the workspaces in order. The slice must not be modified.
func (r *WorkspaceRegistry) All() []*Workspace {
	return r.workspaces
}

// Active returns the active position, -1 when empty.
func (r *WorkspaceRegistry) Active() int {
	if len(r.workspaces) == 0 {
		return -1
	}
	return r.active
}

// ActiveWorkspace returns the active workspace, or nil when empty.
func (r *WorkspaceRegistry) ActiveWorkspace() *Workspace {
	return r.At(r.Active())
}

// Activate makes pos the active position.
func (r *WorkspaceRegistry) Activate(pos int) error {
	if pos < 0 || pos >= len(r.workspaces) {
		return fmt.Errorf("activate workspace at %d: %w", pos, ErrWorkspaceNotFound)
	}
	r.active = pos
	return nil
}

// FindSession returns the workspace and leaf hosting session.
func (r *WorkspaceRegistry) FindSession(session SessionID) (*Workspace, NodeID, bool) {
	for _, w := range r.workspaces {
		if id, ok := w.Tree.LeafBySession(session); ok {
			return w, id, true
		}
	}
	return nil, NodeID{}, false
}
