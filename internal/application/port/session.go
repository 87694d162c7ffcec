package port

import (
	"context"
	"fmt"

	"github.com/bnema/gridterm/internal/domain/entity"
)

// SpawnRequest describes a terminal session to start.
type SpawnRequest struct {
	// Command is the program to run; empty means the user's shell.
	Command string
	// WorkingDirectory is where the session starts; empty inherits the process cwd.
	WorkingDirectory string
}

// SpawnError reports a session that could not be started.
type SpawnError struct {
	Command string
	Dir     string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn %q in %q: %v", e.Command, e.Dir, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// SessionSpawner owns terminal sessions: it starts them, stops them and
// answers questions about the processes running inside.
type SessionSpawner interface {
	// Spawn starts a session and returns its opaque handle.
	// Failures are reported as *SpawnError.
	Spawn(ctx context.Context, req SpawnRequest) (entity.SessionID, error)

	// Terminate asks the session's process group to exit.
	// The exit callback still fires once the process is gone.
	Terminate(ctx context.Context, id entity.SessionID) error

	// OnExit registers fn to run once on the dispatch loop when the session exits.
	OnExit(id entity.SessionID, fn func(entity.SessionID))

	// WorkingDirectory returns the current directory of the session's foreground process.
	WorkingDirectory(id entity.SessionID) (string, error)

	// LiveChildCount returns the number of child processes of the session's shell.
	LiveChildCount(id entity.SessionID) (int, error)
}
