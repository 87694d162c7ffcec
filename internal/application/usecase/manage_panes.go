package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/logging"
)

// ResizeDirection indicates the direction for pane resizing.
type ResizeDirection string

const (
	ResizeIncreaseLeft  ResizeDirection = "increase_left"
	ResizeIncreaseRight ResizeDirection = "increase_right"
	ResizeIncreaseUp    ResizeDirection = "increase_up"
	ResizeIncreaseDown  ResizeDirection = "increase_down"

	ResizeDecreaseLeft  ResizeDirection = "decrease_left"
	ResizeDecreaseRight ResizeDirection = "decrease_right"
	ResizeDecreaseUp    ResizeDirection = "decrease_up"
	ResizeDecreaseDown  ResizeDirection = "decrease_down"

	ResizeIncrease ResizeDirection = "increase"
	ResizeDecrease ResizeDirection = "decrease"
)

// ManagePanesUseCase handles pane tree operations.
type ManagePanesUseCase struct {
	sessions port.SessionSpawner
	config   port.ConfigReader
}

// NewManagePanesUseCase creates a new pane management use case.
func NewManagePanesUseCase(sessions port.SessionSpawner, config port.ConfigReader) *ManagePanesUseCase {
	return &ManagePanesUseCase{
		sessions: sessions,
		config:   config,
	}
}

// SplitInput contains parameters for splitting a pane.
type SplitInput struct {
	Workspace   *entity.Workspace
	Target      entity.NodeID
	Orientation entity.Orientation
	// Focused is the session holding keyboard focus, possibly in another
	// workspace. The new session starts in its working directory.
	Focused entity.SessionID
}

// SplitOutput contains the result of a split operation.
type SplitOutput struct {
	Split   entity.NodeID // The former target, now a split node
	First   entity.NodeID // Leaf hosting the existing session
	Second  entity.NodeID // Leaf hosting the new session
	Session entity.SessionID
}

// Split spawns a new session and places it next to the target leaf.
// The tree is only mutated once the session exists, so a spawn failure
// leaves it untouched.
func (uc *ManagePanesUseCase) Split(ctx context.Context, input SplitInput) (*SplitOutput, error) {
	log := logging.FromContext(ctx)

	if input.Workspace == nil {
		return nil, ErrWorkspaceRequired
	}
	target, ok := input.Workspace.Tree.Node(input.Target)
	if !ok {
		return nil, fmt.Errorf("split %s: %w", input.Target, ErrNodeNotFound)
	}
	if !target.IsLeaf() {
		return nil, fmt.Errorf("split %s: %w", input.Target, ErrNotLeaf)
	}

	log.Debug().
		Str("orientation", input.Orientation.String()).
		Str("target_id", input.Target.String()).
		Int("workspace", input.Workspace.Index).
		Msg("splitting pane")

	req := port.SpawnRequest{
		Command:          startupCommand(uc.config),
		WorkingDirectory: sessionDirectory(ctx, uc.config, uc.sessions, "", input.Focused),
	}
	session, err := uc.sessions.Spawn(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("split pane: %w", err)
	}

	first, second, err := input.Workspace.Tree.SplitLeaf(input.Target, input.Orientation, session)
	if err != nil {
		// Target was checked above; only a concurrent mutation gets here.
		_ = uc.sessions.Terminate(ctx, session)
		return nil, fmt.Errorf("split pane: %w", err)
	}

	log.Info().
		Str("split_id", input.Target.String()).
		Str("session", string(session)).
		Str("dir", req.WorkingDirectory).
		Int("panes", input.Workspace.PaneCount()).
		Msg("pane split")

	return &SplitOutput{
		Split:   input.Target,
		First:   first,
		Second:  second,
		Session: session,
	}, nil
}

// CollapseOutput describes what a collapse did.
type CollapseOutput struct {
	// CloseWorkspace is set when the exited leaf was the workspace's last pane.
	// The tree is left as is; the caller closes the workspace.
	CloseWorkspace bool
	Promoted       entity.NodeID // Sibling that took the parent's place
	FocusFallback  entity.NodeID // First leaf of the promoted subtree
}

// Collapse removes an exited leaf and promotes its sibling into the parent's slot.
func (uc *ManagePanesUseCase) Collapse(ctx context.Context, ws *entity.Workspace, leaf entity.NodeID) (*CollapseOutput, error) {
	log := logging.FromContext(ctx)

	if ws == nil {
		return nil, ErrWorkspaceRequired
	}
	node, ok := ws.Tree.Node(leaf)
	if !ok {
		return nil, fmt.Errorf("collapse %s: %w", leaf, ErrNodeNotFound)
	}
	if !node.IsLeaf() {
		return nil, fmt.Errorf("collapse %s: %w", leaf, ErrNotLeaf)
	}

	if node.IsRoot() {
		log.Info().Int("workspace", ws.Index).Msg("last pane exited, closing workspace")
		return &CollapseOutput{CloseWorkspace: true}, nil
	}

	promoted, err := ws.Tree.RemoveLeaf(leaf)
	if err != nil {
		return nil, fmt.Errorf("collapse %s: %w", leaf, err)
	}
	fallback, _ := ws.Tree.FirstLeaf(promoted)

	log.Info().
		Str("closed_id", leaf.String()).
		Str("promoted_id", promoted.String()).
		Int("panes", ws.PaneCount()).
		Msg("pane closed, sibling promoted")

	return &CollapseOutput{
		Promoted:      promoted,
		FocusFallback: fallback,
	}, nil
}

// CloseOthers terminates every session of the workspace except the one in keep.
// The tree shrinks later as each exit is collapsed. Returns the number of
// sessions asked to terminate.
func (uc *ManagePanesUseCase) CloseOthers(ctx context.Context, ws *entity.Workspace, keep entity.NodeID) (int, error) {
	log := logging.FromContext(ctx)

	if ws == nil {
		return 0, ErrWorkspaceRequired
	}
	kept, ok := ws.Tree.Node(keep)
	if !ok || !kept.IsLeaf() {
		return 0, fmt.Errorf("close others %s: %w", keep, ErrNodeNotFound)
	}

	count := 0
	for _, leaf := range ws.Tree.Leaves() {
		if leaf.ID == keep {
			continue
		}
		if err := uc.sessions.Terminate(ctx, leaf.Session); err != nil {
			log.Warn().Err(err).Str("session", string(leaf.Session)).Msg("failed to terminate session")
			continue
		}
		count++
	}

	log.Debug().Int("terminated", count).Int("workspace", ws.Index).Msg("closed other panes")
	return count, nil
}

// Resize moves the divider of the nearest split around leaf by stepPercent,
// keeping both sides at least minPanePercent wide.
func (uc *ManagePanesUseCase) Resize(
	ctx context.Context,
	ws *entity.Workspace,
	leaf entity.NodeID,
	dir ResizeDirection,
	stepPercent float64,
	minPanePercent float64,
) error {
	log := logging.FromContext(ctx)

	if ws == nil {
		return ErrWorkspaceRequired
	}
	if !ws.Tree.Contains(leaf) {
		return fmt.Errorf("resize %s: %w", leaf, ErrNodeNotFound)
	}

	actualDir := dir
	switch dir {
	case ResizeIncrease:
		actualDir = findSmartResizeDirection(ws.Tree, leaf, true)
	case ResizeDecrease:
		actualDir = findSmartResizeDirection(ws.Tree, leaf, false)
	}
	if actualDir == "" {
		return ErrNothingToResize
	}

	axis, ok := axisForResizeDirection(actualDir)
	if !ok {
		return ErrNothingToResize
	}

	splitID, ok := findNearestSplitForAxis(ws.Tree, leaf, axis)
	if !ok {
		return ErrNothingToResize
	}
	split, _ := ws.Tree.Node(splitID)

	// Ratio is the share of the first child (left/top):
	// moving the divider right/down increases it.
	delta := deltaForDividerMove(actualDir, stepPercent)

	minRatio := minPanePercent / 100.0
	maxRatio := 1.0 - minRatio
	newRatio := roundSplitRatio(clampFloat64(split.Ratio+delta, minRatio, maxRatio))
	if err := ws.Tree.SetRatio(splitID, newRatio); err != nil {
		return err
	}

	log.Debug().
		Str("direction", string(dir)).
		Str("actual_direction", string(actualDir)).
		Float64("old_ratio", split.Ratio).
		Float64("new_ratio", newRatio).
		Msg("pane resized")

	return nil
}

// SetSplitRatioInput contains parameters for setting a divider position directly.
type SetSplitRatioInput struct {
	Workspace      *entity.Workspace
	Split          entity.NodeID
	Ratio          float64
	MinPanePercent float64
}

// SetSplitRatio sets a split's ratio, e.g. after the user dragged its divider.
func (uc *ManagePanesUseCase) SetSplitRatio(ctx context.Context, input SetSplitRatioInput) error {
	log := logging.FromContext(ctx)

	if input.Workspace == nil {
		return ErrWorkspaceRequired
	}
	split, ok := input.Workspace.Tree.Node(input.Split)
	if !ok || !split.IsSplit() {
		return fmt.Errorf("split node %s: %w", input.Split, ErrNodeNotFound)
	}

	minRatio := input.MinPanePercent / 100.0
	maxRatio := 1.0 - minRatio
	ratio := roundSplitRatio(clampFloat64(input.Ratio, minRatio, maxRatio))
	if err := input.Workspace.Tree.SetRatio(input.Split, ratio); err != nil {
		return err
	}

	log.Debug().
		Str("split_id", input.Split.String()).
		Float64("old_ratio", split.Ratio).
		Float64("new_ratio", ratio).
		Msg("split ratio set")

	return nil
}

func findSmartResizeDirection(tree *entity.PaneTree, leaf entity.NodeID, growActive bool) ResizeDirection {
	split, isStartChild, ok := findNearestSplit(tree, leaf)
	if !ok {
		return ""
	}

	// Growing the first child means increasing the ratio.
	growMeansIncreaseRatio := isStartChild
	if !growActive {
		growMeansIncreaseRatio = !growMeansIncreaseRatio
	}

	switch split.Orientation {
	case entity.Horizontal:
		if growMeansIncreaseRatio {
			return ResizeIncreaseRight
		}
		return ResizeIncreaseLeft
	case entity.Vertical:
		if growMeansIncreaseRatio {
			return ResizeIncreaseDown
		}
		return ResizeIncreaseUp
	default:
		return ""
	}
}

// findNearestSplit returns the parent split of the node and whether the node is its first child.
func findNearestSplit(tree *entity.PaneTree, id entity.NodeID) (entity.PaneNode, bool, bool) {
	node, ok := tree.Node(id)
	if !ok || node.IsRoot() {
		return entity.PaneNode{}, false, false
	}
	parent, ok := tree.Node(node.Parent)
	if !ok {
		return entity.PaneNode{}, false, false
	}
	return parent, parent.First == id, true
}

func axisForResizeDirection(dir ResizeDirection) (entity.Orientation, bool) {
	switch dir {
	case ResizeIncreaseLeft, ResizeIncreaseRight, ResizeDecreaseLeft, ResizeDecreaseRight:
		return entity.Horizontal, true
	case ResizeIncreaseUp, ResizeIncreaseDown, ResizeDecreaseUp, ResizeDecreaseDown:
		return entity.Vertical, true
	default:
		return 0, false
	}
}

func deltaForDividerMove(dir ResizeDirection, stepPercent float64) float64 {
	if stepPercent < 0 {
		stepPercent = -stepPercent
	}
	delta := stepPercent / 100.0

	switch dir {
	case ResizeIncreaseRight, ResizeIncreaseDown:
		return delta
	case ResizeIncreaseLeft, ResizeIncreaseUp:
		return -delta
	case ResizeDecreaseRight, ResizeDecreaseDown:
		return -delta
	case ResizeDecreaseLeft, ResizeDecreaseUp:
		return delta
	default:
		return 0
	}
}

// findNearestSplitForAxis walks up the tree to find the nearest split matching the axis.
func findNearestSplitForAxis(tree *entity.PaneTree, id entity.NodeID, axis entity.Orientation) (entity.NodeID, bool) {
	current, ok := tree.Node(id)
	for ok && !current.IsRoot() {
		parent, found := tree.Node(current.Parent)
		if !found {
			break
		}
		if parent.IsSplit() && parent.Orientation == axis {
			return parent.ID, true
		}
		current, ok = parent, found
	}
	return entity.NodeID{}, false
}

const splitRatioRoundFactor = 100.0

func roundSplitRatio(ratio float64) float64 {
	return math.Round(ratio*splitRatioRoundFactor) / splitRatioRoundFactor
}

func clampFloat64(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
