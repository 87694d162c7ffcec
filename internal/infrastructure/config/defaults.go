package config

// Default configuration constants
const (
	// General defaults
	defaultFont                  = "Monospace"
	defaultFontSize              = 11 // points
	defaultColorScheme           = "deepin"
	defaultFontColor             = "#00FF00"
	defaultBackgroundColor       = "#000000"
	defaultBackgroundTransparent = 0.8

	// Layout defaults
	defaultHandleGap          = 1
	defaultResizeStepPercent  = 5.0
	defaultMinPanePercent     = 10.0
	defaultThumbnailHeight    = 120 // pixels
	defaultAutosaveIntervalMs = 2000

	// Logging defaults
	defaultMaxLogFiles = 10
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Font:                  defaultFont,
			FontSize:              defaultFontSize,
			ColorScheme:           defaultColorScheme,
			FontColor:             defaultFontColor,
			BackgroundColor:       defaultBackgroundColor,
			BackgroundTransparent: defaultBackgroundTransparent,
		},
		Keybind: DefaultKeybindings(),
		Advanced: AdvancedConfig{
			CursorShape:     CursorBlock,
			CursorBlinkMode: CursorBlinkSystem,
			AskOnQuit:       true,
			ScrollOnKey:     true,
		},
		Layout: LayoutConfig{
			HandleGap:          defaultHandleGap,
			ResizeStepPercent:  defaultResizeStepPercent,
			MinPanePercent:     defaultMinPanePercent,
			ThumbnailHeight:    defaultThumbnailHeight,
			RestoreOnStartup:   false,
			AutosaveIntervalMs: defaultAutosaveIntervalMs,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "console",
			MaxFiles: defaultMaxLogFiles,
		},
	}
}

// DefaultKeybindings returns the stock hotkeys.
func DefaultKeybindings() KeybindConfig {
	return KeybindConfig{
		CopyClipboard:         "Ctrl + Shift + c",
		PasteClipboard:        "Ctrl + Shift + v",
		SplitVertically:       "Ctrl + v",
		SplitHorizontally:     "Ctrl + h",
		CloseCurrentWindow:    "Ctrl + Shift + w",
		CloseOtherWindow:      "Ctrl + Shift + q",
		ScrollPageUp:          "Alt + ,",
		ScrollPageDown:        "Alt + .",
		FocusUpTerminal:       "Alt + k",
		FocusDownTerminal:     "Alt + j",
		FocusLeftTerminal:     "Alt + h",
		FocusRightTerminal:    "Alt + l",
		ZoomOut:               "Ctrl + =",
		ZoomIn:                "Ctrl + -",
		RevertDefaultSize:     "Ctrl + 0",
		NewWorkspace:          "Ctrl + /",
		CloseCurrentWorkspace: "Ctrl + Shift + :",
		SwitchPrevWorkspace:   "Ctrl + ,",
		SwitchNextWorkspace:   "Ctrl + .",
		SearchForward:         "Ctrl + '",
		SearchBackward:        "Ctrl + \"",
		ToggleFullScreen:      "F11",
		ShowHelperWindow:      "Ctrl + Shift + ?",
		ShowRemoteLoginWindow: "Ctrl + 9",
		ShowCorrelativeWindow: "Ctrl + 8",
	}
}
