package entity

import "errors"

// ErrWorkspaceNotFound is returned for positions or indices outside the registry.
var ErrWorkspaceNotFound = errors.New("workspace not found")
