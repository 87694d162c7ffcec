package port

import (
	"context"

	"github.com/bnema/gridterm/internal/domain/entity"
)

// LayoutProvider captures the current workspace layout.
// CaptureLayout must be called on the dispatch loop. A nil snapshot with a
// nil error means there is nothing worth saving.
type LayoutProvider interface {
	CaptureLayout(ctx context.Context) (*entity.LayoutSnapshot, error)
}
