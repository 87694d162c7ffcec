package repository

import (
	"context"
	"errors"

	"github.com/bnema/gridterm/internal/domain/entity"
)

// ErrLayoutNotFound is returned when no saved layout matches.
var ErrLayoutNotFound = errors.New("layout not found")

// LayoutRepository persists layout snapshots.
type LayoutRepository interface {
	// Save creates or updates a snapshot, keyed by its name.
	Save(ctx context.Context, snap *entity.LayoutSnapshot) error

	// FindByName returns the snapshot saved under name.
	FindByName(ctx context.Context, name string) (*entity.LayoutSnapshot, error)

	// List returns all snapshots, most recently saved first.
	List(ctx context.Context) ([]*entity.LayoutSnapshot, error)

	// Delete removes the snapshot saved under name.
	Delete(ctx context.Context, name string) error
}
