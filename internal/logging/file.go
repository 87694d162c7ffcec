package logging

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	sessionLogPrefix = "session_"
	sessionLogSuffix = ".log"
)

// GenerateRunID creates a unique identifier for one run of the program.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 random hex chars)
func GenerateRunID() string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return time.Now().Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// SessionLogName returns the log filename for a run ID.
func SessionLogName(runID string) string {
	return sessionLogPrefix + runID + sessionLogSuffix
}

// ParseSessionLogName extracts the run ID from a log filename.
func ParseSessionLogName(name string) (string, bool) {
	if !strings.HasPrefix(name, sessionLogPrefix) || !strings.HasSuffix(name, sessionLogSuffix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(name, sessionLogPrefix), sessionLogSuffix)
	return id, id != ""
}

// OpenSessionLog creates the log file for runID in dir and removes the
// oldest session logs so that at most keep files remain.
// keep <= 0 keeps every file.
func OpenSessionLog(dir, runID string, keep int) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, SessionLogName(runID)), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open session log: %w", err)
	}
	if keep > 0 {
		pruneSessionLogs(dir, keep)
	}
	return f, nil
}

func pruneSessionLogs(dir string, keep int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := ParseSessionLogName(e.Name()); ok {
			names = append(names, e.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	// Run IDs start with a timestamp, so names sort oldest first.
	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
		}
	}
}
