// Package pty runs terminal sessions on pseudo-terminals.
package pty

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	creackpty "github.com/creack/pty"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/logging"
)

const (
	defaultShell = "/bin/sh"
	defaultCols  = 80
	defaultRows  = 24
	termEnv      = "TERM=xterm-256color"
)

// ErrUnknownSession is returned for handles the spawner does not own.
var ErrUnknownSession = errors.New("unknown session")

type session struct {
	id      entity.SessionID
	cmd     *exec.Cmd
	ptmx    *os.File
	exited  bool
	onExit  []func(entity.SessionID)
	command string
}

// Spawner implements port.SessionSpawner with one pty per session.
// Exit callbacks are delivered through post, the dispatch loop's Post.
type Spawner struct {
	post  func(func())
	shell string

	mu       sync.Mutex
	sessions map[entity.SessionID]*session
	wg       sync.WaitGroup
}

var _ port.SessionSpawner = (*Spawner)(nil)

// NewSpawner creates a spawner. shell is used when a request has no
// command; empty falls back to $SHELL, then /bin/sh.
func NewSpawner(post func(func()), shell string) *Spawner {
	if post == nil {
		panic("pty.NewSpawner: post function cannot be nil")
	}
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = defaultShell
	}
	return &Spawner{
		post:     post,
		shell:    shell,
		sessions: make(map[entity.SessionID]*session),
	}
}

func (s *Spawner) command(req port.SpawnRequest) *exec.Cmd {
	if req.Command == "" {
		return exec.Command(s.shell)
	}
	return exec.Command(s.shell, "-c", req.Command)
}

// Spawn starts a session in its own process group.
func (s *Spawner) Spawn(ctx context.Context, req port.SpawnRequest) (entity.SessionID, error) {
	log := logging.FromContext(ctx)

	cmd := s.command(req)
	cmd.Dir = req.WorkingDirectory
	cmd.Env = append(os.Environ(), termEnv)

	ptmx, err := creackpty.StartWithSize(cmd, &creackpty.Winsize{Cols: defaultCols, Rows: defaultRows})
	if err != nil {
		return "", &port.SpawnError{Command: cmd.String(), Dir: req.WorkingDirectory, Err: err}
	}

	sess := &session{
		id:      entity.SessionID(uuid.NewString()),
		cmd:     cmd,
		ptmx:    ptmx,
		command: cmd.String(),
	}
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	log.Debug().
		Str("session", string(sess.id)).
		Int("pid", cmd.Process.Pid).
		Str("command", sess.command).
		Str("dir", req.WorkingDirectory).
		Msg("session spawned")

	s.wg.Add(1)
	go s.wait(log, sess)
	return sess.id, nil
}

func (s *Spawner) wait(log *zerolog.Logger, sess *session) {
	defer s.wg.Done()

	err := sess.cmd.Wait()
	_ = sess.ptmx.Close()

	ev := log.Debug().Str("session", string(sess.id))
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("session exited")

	s.post(func() {
		s.mu.Lock()
		sess.exited = true
		callbacks := sess.onExit
		sess.onExit = nil
		delete(s.sessions, sess.id)
		s.mu.Unlock()

		for _, fn := range callbacks {
			fn(sess.id)
		}
	})
}

// OnExit registers fn to run on the dispatch loop once the session exits.
// For a session that is already gone, fn is posted right away.
func (s *Spawner) OnExit(id entity.SessionID, fn func(entity.SessionID)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok && !sess.exited {
		sess.onExit = append(sess.onExit, fn)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.post(func() { fn(id) })
}

func (s *Spawner) lookup(id entity.SessionID) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	return sess, nil
}

// Terminate sends SIGHUP to the session's process group, the way a closing
// terminal hangs up its shell.
func (s *Spawner) Terminate(ctx context.Context, id entity.SessionID) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	pid := sess.cmd.Process.Pid
	if err := unix.Kill(-pid, unix.SIGHUP); err != nil && !errors.Is(err, unix.ESRCH) {
		return fmt.Errorf("hang up session %s: %w", id, err)
	}
	logging.FromContext(ctx).Debug().Str("session", string(id)).Int("pgid", pid).Msg("session hung up")
	return nil
}

// WorkingDirectory returns the directory of the session's foreground process
// group leader, falling back to the shell's own directory.
func (s *Spawner) WorkingDirectory(id entity.SessionID) (string, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return "", err
	}
	if pgrp, err := unix.IoctlGetInt(int(sess.ptmx.Fd()), unix.TIOCGPGRP); err == nil && pgrp > 0 {
		if dir, err := readProcCwd(pgrp); err == nil {
			return dir, nil
		}
	}
	return readProcCwd(sess.cmd.Process.Pid)
}

// LiveChildCount returns the number of direct children of the session's shell.
func (s *Spawner) LiveChildCount(id entity.SessionID) (int, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return 0, err
	}
	children, err := readChildPIDs(sess.cmd.Process.Pid)
	if err != nil {
		return 0, fmt.Errorf("count children of %s: %w", id, err)
	}
	return len(children), nil
}

// Terminal returns the pty master of a live session for the frontend to
// read output from and write input to.
func (s *Spawner) Terminal(id entity.SessionID) (*os.File, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return sess.ptmx, nil
}

// Resize sets the session's terminal size in cells.
func (s *Spawner) Resize(id entity.SessionID, cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("resize session %s: invalid size %dx%d", id, cols, rows)
	}
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	return creackpty.Setsize(sess.ptmx, &creackpty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
}

// Live returns the number of sessions that have not exited yet.
func (s *Spawner) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Shutdown hangs up every session and waits for their processes to be reaped
// or ctx to end.
func (s *Spawner) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	ids := make([]entity.SessionID, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		if err := s.Terminate(ctx, id); err != nil && !errors.Is(err, ErrUnknownSession) {
			logging.FromContext(ctx).Warn().Err(err).Str("session", string(id)).Msg("failed to hang up session")
		}
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
