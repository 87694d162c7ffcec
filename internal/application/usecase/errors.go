package usecase

import (
	"errors"

	"github.com/bnema/gridterm/internal/domain/entity"
)

var (
	// ErrNotLeaf is returned when a leaf-only operation targets a split node.
	ErrNotLeaf = entity.ErrNotLeaf
	// ErrNodeNotFound is returned for handles that do not resolve in the workspace tree.
	ErrNodeNotFound = entity.ErrNodeNotFound
	// ErrWorkspaceRequired is returned when an operation is given no workspace.
	ErrWorkspaceRequired = errors.New("workspace is required")
	// ErrNothingToResize is returned when no split divider can move in the requested direction.
	ErrNothingToResize = errors.New("nothing to resize")
)

// ErrRegistryRequired is returned when an operation is given no workspace registry.
var ErrRegistryRequired = errors.New("workspace registry is required")
