package config

// Config represents the complete configuration for gridterm.
type Config struct {
	// General holds terminal appearance settings.
	General GeneralConfig `mapstructure:"general" toml:"general" json:"general"`
	// Keybind maps every command to a hotkey in "Ctrl + Shift + c" notation.
	Keybind KeybindConfig `mapstructure:"keybind" toml:"keybind" json:"keybind"`
	// Advanced controls session startup and quit behavior.
	Advanced AdvancedConfig `mapstructure:"advanced" toml:"advanced" json:"advanced"`
	// Layout tunes pane geometry, resizing and layout persistence.
	Layout   LayoutConfig   `mapstructure:"layout" toml:"layout" json:"layout"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
}

// GeneralConfig holds terminal appearance settings.
type GeneralConfig struct {
	Font        string `mapstructure:"font" toml:"font" json:"font" jsonschema:"default=Monospace"`
	FontSize    int    `mapstructure:"font_size" toml:"font_size" json:"font_size" jsonschema:"minimum=1,maximum=72,default=11"`
	ColorScheme string `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme"`
	// FontColor and BackgroundColor are #RRGGBB colors.
	FontColor       string `mapstructure:"font_color" toml:"font_color" json:"font_color" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	BackgroundColor string `mapstructure:"background_color" toml:"background_color" json:"background_color" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	// BackgroundTransparent is the background opacity (0.0 - 1.0).
	BackgroundTransparent float64 `mapstructure:"background_transparent" toml:"background_transparent" json:"background_transparent" jsonschema:"minimum=0,maximum=1"`
}

// KeybindConfig maps commands to hotkeys. An empty value leaves the command unbound.
type KeybindConfig struct {
	CopyClipboard         string `mapstructure:"copy_clipboard" toml:"copy_clipboard" json:"copy_clipboard"`
	PasteClipboard        string `mapstructure:"paste_clipboard" toml:"paste_clipboard" json:"paste_clipboard"`
	SplitVertically       string `mapstructure:"split_vertically" toml:"split_vertically" json:"split_vertically"`
	SplitHorizontally     string `mapstructure:"split_horizontally" toml:"split_horizontally" json:"split_horizontally"`
	CloseCurrentWindow    string `mapstructure:"close_current_window" toml:"close_current_window" json:"close_current_window"`
	CloseOtherWindow      string `mapstructure:"close_other_window" toml:"close_other_window" json:"close_other_window"`
	ScrollPageUp          string `mapstructure:"scroll_page_up" toml:"scroll_page_up" json:"scroll_page_up"`
	ScrollPageDown        string `mapstructure:"scroll_page_down" toml:"scroll_page_down" json:"scroll_page_down"`
	FocusUpTerminal       string `mapstructure:"focus_up_terminal" toml:"focus_up_terminal" json:"focus_up_terminal"`
	FocusDownTerminal     string `mapstructure:"focus_down_terminal" toml:"focus_down_terminal" json:"focus_down_terminal"`
	FocusLeftTerminal     string `mapstructure:"focus_left_terminal" toml:"focus_left_terminal" json:"focus_left_terminal"`
	FocusRightTerminal    string `mapstructure:"focus_right_terminal" toml:"focus_right_terminal" json:"focus_right_terminal"`
	ZoomOut               string `mapstructure:"zoom_out" toml:"zoom_out" json:"zoom_out"`
	ZoomIn                string `mapstructure:"zoom_in" toml:"zoom_in" json:"zoom_in"`
	RevertDefaultSize     string `mapstructure:"revert_default_size" toml:"revert_default_size" json:"revert_default_size"`
	NewWorkspace          string `mapstructure:"new_workspace" toml:"new_workspace" json:"new_workspace"`
	CloseCurrentWorkspace string `mapstructure:"close_current_workspace" toml:"close_current_workspace" json:"close_current_workspace"`
	SwitchPrevWorkspace   string `mapstructure:"switch_prev_workspace" toml:"switch_prev_workspace" json:"switch_prev_workspace"`
	SwitchNextWorkspace   string `mapstructure:"switch_next_workspace" toml:"switch_next_workspace" json:"switch_next_workspace"`
	SearchForward         string `mapstructure:"search_forward" toml:"search_forward" json:"search_forward"`
	SearchBackward        string `mapstructure:"search_backward" toml:"search_backward" json:"search_backward"`
	ToggleFullScreen      string `mapstructure:"toggle_full_screen" toml:"toggle_full_screen" json:"toggle_full_screen"`
	ShowHelperWindow      string `mapstructure:"show_helper_window" toml:"show_helper_window" json:"show_helper_window"`
	ShowRemoteLoginWindow string `mapstructure:"show_remote_login_window" toml:"show_remote_login_window" json:"show_remote_login_window"`
	ShowCorrelativeWindow string `mapstructure:"show_correlative_window" toml:"show_correlative_window" json:"show_correlative_window"`
}

// Binding is one keybind entry.
type Binding struct {
	Action string
	Hotkey string
}

// Bindings returns the keybind entries in declaration order.
func (k KeybindConfig) Bindings() []Binding {
	return []Binding{
		{"copy_clipboard", k.CopyClipboard},
		{"paste_clipboard", k.PasteClipboard},
		{"split_vertically", k.SplitVertically},
		{"split_horizontally", k.SplitHorizontally},
		{"close_current_window", k.CloseCurrentWindow},
		{"close_other_window", k.CloseOtherWindow},
		{"scroll_page_up", k.ScrollPageUp},
		{"scroll_page_down", k.ScrollPageDown},
		{"focus_up_terminal", k.FocusUpTerminal},
		{"focus_down_terminal", k.FocusDownTerminal},
		{"focus_left_terminal", k.FocusLeftTerminal},
		{"focus_right_terminal", k.FocusRightTerminal},
		{"zoom_out", k.ZoomOut},
		{"zoom_in", k.ZoomIn},
		{"revert_default_size", k.RevertDefaultSize},
		{"new_workspace", k.NewWorkspace},
		{"close_current_workspace", k.CloseCurrentWorkspace},
		{"switch_prev_workspace", k.SwitchPrevWorkspace},
		{"switch_next_workspace", k.SwitchNextWorkspace},
		{"search_forward", k.SearchForward},
		{"search_backward", k.SearchBackward},
		{"toggle_full_screen", k.ToggleFullScreen},
		{"show_helper_window", k.ShowHelperWindow},
		{"show_remote_login_window", k.ShowRemoteLoginWindow},
		{"show_correlative_window", k.ShowCorrelativeWindow},
	}
}

// CursorShape selects the terminal cursor.
type CursorShape string

const (
	CursorBlock     CursorShape = "block"
	CursorIBeam     CursorShape = "ibeam"
	CursorUnderline CursorShape = "underline"
)

// CursorBlinkMode selects cursor blinking.
type CursorBlinkMode string

const (
	CursorBlinkSystem CursorBlinkMode = "system"
	CursorBlinkOn     CursorBlinkMode = "on"
	CursorBlinkOff    CursorBlinkMode = "off"
)

// AdvancedConfig controls session startup and quit behavior.
type AdvancedConfig struct {
	// StartupCommand replaces $SHELL for new sessions when set.
	StartupCommand string `mapstructure:"startup_command" toml:"startup_command" json:"startup_command"`
	// StartupDirectory is where every new session starts when it exists.
	// Environment variables are expanded.
	StartupDirectory string          `mapstructure:"startup_directory" toml:"startup_directory" json:"startup_directory"`
	CursorShape      CursorShape     `mapstructure:"cursor_shape" toml:"cursor_shape" json:"cursor_shape" jsonschema:"enum=block,enum=ibeam,enum=underline"`
	CursorBlinkMode  CursorBlinkMode `mapstructure:"cursor_blink_mode" toml:"cursor_blink_mode" json:"cursor_blink_mode" jsonschema:"enum=system,enum=on,enum=off"`
	// AskOnQuit asks before closing sessions that still run child processes.
	AskOnQuit       bool `mapstructure:"ask_on_quit" toml:"ask_on_quit" json:"ask_on_quit"`
	ScrollOnKey     bool `mapstructure:"scroll_on_key" toml:"scroll_on_key" json:"scroll_on_key"`
	ScrollOnOutput  bool `mapstructure:"scroll_on_output" toml:"scroll_on_output" json:"scroll_on_output"`
	CopyOnSelection bool `mapstructure:"copy_on_selection" toml:"copy_on_selection" json:"copy_on_selection"`
}

// LayoutConfig tunes pane geometry and layout persistence.
type LayoutConfig struct {
	// HandleGap is the divider thickness between panes, in cells.
	HandleGap int `mapstructure:"handle_gap" toml:"handle_gap" json:"handle_gap" jsonschema:"minimum=0,maximum=8"`
	// ResizeStepPercent is how far one resize key press moves a divider.
	ResizeStepPercent float64 `mapstructure:"resize_step_percent" toml:"resize_step_percent" json:"resize_step_percent" jsonschema:"exclusiveMinimum=0,maximum=50"`
	// MinPanePercent is the smallest share a pane can be resized to.
	MinPanePercent float64 `mapstructure:"min_pane_percent" toml:"min_pane_percent" json:"min_pane_percent" jsonschema:"minimum=0,maximum=45"`
	// ThumbnailHeight is the switcher thumbnail height in pixels.
	ThumbnailHeight int `mapstructure:"thumbnail_height" toml:"thumbnail_height" json:"thumbnail_height" jsonschema:"minimum=16"`
	// RestoreOnStartup rebuilds the layout saved on last exit.
	RestoreOnStartup bool `mapstructure:"restore_on_startup" toml:"restore_on_startup" json:"restore_on_startup"`
	// AutosaveIntervalMs debounces layout saves after changes. 0 disables autosave.
	AutosaveIntervalMs int `mapstructure:"autosave_interval_ms" toml:"autosave_interval_ms" json:"autosave_interval_ms" jsonschema:"minimum=0"`
}

// LoggingConfig controls the application logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// EnableFileLog writes one log file per run in LogDir.
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	// MaxFiles is how many run logs are kept.
	MaxFiles int `mapstructure:"max_files" toml:"max_files" json:"max_files" jsonschema:"minimum=1"`
}

// DatabaseConfig locates the layout database.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/gridterm/gridterm.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}
