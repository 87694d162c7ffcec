package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/gridterm/internal/cli/styles"
	"github.com/bnema/gridterm/internal/infrastructure/config"
	"github.com/bnema/gridterm/internal/logging"
)

var (
	logsFollow    bool
	logsLines     int
	logsClearAll  bool
	logsOlderThan time.Duration
)

const (
	defaultLogsLines  = 50
	defaultLogsMaxAge = 7 * 24 * time.Hour
	shortRunIDLen     = 4
)

var logsCmd = &cobra.Command{
	Use:   "logs [run]",
	Short: "View per-run log files",
	Long: `View gridterm log files, one per 'gridterm run'.

Without arguments, lists all available runs.
With a run ID (or partial match), shows the log of that run.

Examples:
  gridterm logs                 # List all runs
  gridterm logs a7b3            # View the run ending in 'a7b3'
  gridterm logs -f a7b3         # Follow the log in real-time
  gridterm logs -n 100 a7b3     # Show last 100 lines`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove old log files",
	Long: `Remove run log files older than --older-than (7 days by default).
Use --all to remove every log file.`,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove all log files")
	logsClearCmd.Flags().DurationVar(&logsOlderThan, "older-than", defaultLogsMaxAge, "remove logs last written before this age")
}

// RunLog describes one run's log file.
type RunLog struct {
	RunID    string
	ShortID  string
	Filename string
	Path     string
	Size     int64
	ModTime  time.Time
}

func runLogs(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logDir := resolveLogDir(app.Config)

	if len(args) == 0 {
		return listRuns(logDir, app.Theme)
	}

	run, err := findRun(logDir, args[0])
	if err != nil {
		return err
	}

	if logsFollow {
		return tailRun(run.Path, app.Theme)
	}
	return showRun(run.Path, logsLines, app.Theme)
}

// resolveLogDir returns logging.log_dir, or the XDG log directory when unset.
func resolveLogDir(cfg *config.Config) string {
	if cfg != nil && cfg.Logging.LogDir != "" {
		return cfg.Logging.LogDir
	}
	logDir, err := config.GetLogDir()
	if err != nil {
		stateDir := os.Getenv("XDG_STATE_HOME")
		if stateDir == "" {
			home, _ := os.UserHomeDir()
			stateDir = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(stateDir, "gridterm", "logs")
	}
	return logDir
}

func shortRunID(runID string) string {
	if len(runID) <= shortRunIDLen {
		return runID
	}
	return runID[len(runID)-shortRunIDLen:]
}

// listRunLogs returns all run log files, newest first.
func listRunLogs(logDir string) ([]RunLog, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var runs []RunLog
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		runID, ok := logging.ParseSessionLogName(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		runs = append(runs, RunLog{
			RunID:    runID,
			ShortID:  shortRunID(runID),
			Filename: entry.Name(),
			Path:     filepath.Join(logDir, entry.Name()),
			Size:     info.Size(),
			ModTime:  info.ModTime(),
		})
	}

	// Run IDs start with a timestamp; ties fall back to the write time.
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].RunID != runs[j].RunID {
			return runs[i].RunID > runs[j].RunID
		}
		return runs[i].ModTime.After(runs[j].ModTime)
	})
	return runs, nil
}

func listRuns(logDir string, theme *styles.Theme) error {
	runs, err := listRunLogs(logDir)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println(theme.Subtle.Render("No logs found. Enable logging.enable_file_log and use 'gridterm run'."))
		return nil
	}

	t := styles.NewTable(theme, "ID", "Run", "Last write", "Size")
	for i := range runs {
		r := &runs[i]
		t.Row(r.ShortID, r.RunID, r.ModTime.Format("2006-01-02 15:04:05"), styles.FormatSize(r.Size))
	}
	fmt.Println(t.String())
	fmt.Println(theme.Subtle.Render("Use 'gridterm logs <id>' to view a run"))
	return nil
}

// findRun finds a run by short ID, then by partial run ID match.
func findRun(logDir, query string) (*RunLog, error) {
	runs, err := listRunLogs(logDir)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("no logs found in %s", logDir)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	for i := range runs {
		if strings.EqualFold(runs[i].ShortID, q) {
			return &runs[i], nil
		}
	}

	var matches []RunLog
	for i := range runs {
		if strings.Contains(strings.ToLower(runs[i].RunID), q) {
			matches = append(matches, runs[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no run matching '%s' found", query)
	case 1:
		return &matches[0], nil
	default:
		ids := make([]string, 0, len(matches))
		for i := range matches {
			ids = append(ids, matches[i].RunID)
		}
		return nil, fmt.Errorf("multiple runs match '%s': %s", query, strings.Join(ids, ", "))
	}
}

// showRun prints the last n lines of a log file.
func showRun(path string, n int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	lines, err := lastLines(file, n)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Println(colorizeLogLine(line, theme))
	}
	return nil
}

// lastLines keeps a ring of the last n lines read from r.
func lastLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(ring) == n {
			copy(ring, ring[1:])
			ring = ring[:n-1]
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return ring, nil
}

// tailRun follows a log file until interrupted.
func tailRun(path string, theme *styles.Theme) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	_, _ = file.Seek(0, io.SeekEnd)

	fmt.Println(theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Println()

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				pending += chunk
				time.Sleep(100 * time.Millisecond)
				continue
			}
			return fmt.Errorf("read log file: %w", err)
		}

		pending += chunk
		for {
			idx := strings.IndexByte(pending, '\n')
			if idx == -1 {
				break
			}
			fmt.Println(colorizeLogLine(pending[:idx], theme))
			pending = pending[idx+1:]
		}
	}
}

// logEntry is the subset of a JSON log line the viewer shows.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}

	switch {
	case containsAny(line, "ERR", "ERROR"):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, "WRN", "WARN"):
		return theme.WarningStyle.Render(line)
	case containsAny(line, "DBG", "DEBUG"):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error", "fatal", "panic":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render("["+entry.Component+"]") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}

func containsAny(s string, substrs ...string) bool {
	sLower := strings.ToLower(s)
	for _, substr := range substrs {
		if strings.Contains(sLower, strings.ToLower(substr)) {
			return true
		}
	}
	return false
}

func runLogsClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	removed, err := clearRunLogs(resolveLogDir(app.Config), logsClearAll, time.Now().Add(-logsOlderThan), app.Theme)
	if err != nil {
		return err
	}
	if removed == 0 {
		fmt.Println(app.Theme.Subtle.Render("No logs to clear"))
		return nil
	}
	fmt.Printf("\n%s\n", app.Theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d log file(s)", removed)))
	return nil
}

// clearRunLogs removes log files written before cutoff, or all of them.
func clearRunLogs(logDir string, all bool, cutoff time.Time, theme *styles.Theme) (int, error) {
	runs, err := listRunLogs(logDir)
	if err != nil {
		return 0, err
	}

	var removed int
	for i := range runs {
		r := &runs[i]
		if !all && !r.ModTime.Before(cutoff) {
			continue
		}
		if err := os.Remove(r.Path); err != nil {
			fmt.Printf("%s %s: %v\n", theme.ErrorStyle.Render(styles.IconX), r.ShortID, err)
			continue
		}
		fmt.Printf("%s %s (%s)\n", theme.SuccessStyle.Render(styles.IconCheck), r.ShortID, styles.FormatSize(r.Size))
		removed++
	}
	return removed, nil
}
