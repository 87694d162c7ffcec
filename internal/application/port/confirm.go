package port

import "context"

// ConfirmRequest is the content of a yes/no dialog.
type ConfirmRequest struct {
	Title   string
	Message string
}

// Confirmer asks the user a yes/no question.
// The answer arrives asynchronously on the dispatch loop.
type Confirmer interface {
	Confirm(ctx context.Context, req ConfirmRequest, answer func(confirmed bool))
}
