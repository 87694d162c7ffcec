package usecase

import (
	"context"
	"os"
	"strings"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/logging"
)

const (
	configSectionAdvanced = "advanced"
	configStartupCommand  = "startup_command"
	configStartupDir      = "startup_directory"
	configAskOnQuit       = "ask_on_quit"
)

// startupCommand returns the configured command for new sessions,
// empty for the user's shell.
func startupCommand(cfg port.ConfigReader) string {
	if cfg == nil {
		return ""
	}
	return strings.TrimSpace(cfg.GetString(configSectionAdvanced, configStartupCommand))
}

// startupDirectory returns the configured startup directory, env-expanded,
// when it exists on disk.
func startupDirectory(cfg port.ConfigReader) string {
	if cfg == nil {
		return ""
	}
	dir := os.ExpandEnv(strings.TrimSpace(cfg.GetString(configSectionAdvanced, configStartupDir)))
	if dirExists(dir) {
		return dir
	}
	return ""
}

// sessionDirectory picks where a new session starts: the configured startup
// directory, else explicit when it exists, else the focused session's directory.
func sessionDirectory(
	ctx context.Context,
	cfg port.ConfigReader,
	sessions port.SessionSpawner,
	explicit string,
	focused entity.SessionID,
) string {
	if dir := startupDirectory(cfg); dir != "" {
		return dir
	}
	if dirExists(explicit) {
		return explicit
	}
	return focusedDirectory(ctx, sessions, focused)
}

// focusedDirectory returns the working directory of the focused session, or
// empty so the spawner inherits the process directory.
func focusedDirectory(ctx context.Context, sessions port.SessionSpawner, focused entity.SessionID) string {
	if focused == "" {
		return ""
	}
	dir, err := sessions.WorkingDirectory(focused)
	if err != nil {
		logging.FromContext(ctx).Debug().
			Err(err).
			Str("session", string(focused)).
			Msg("could not resolve focused working directory")
		return ""
	}
	return dir
}

func dirExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
