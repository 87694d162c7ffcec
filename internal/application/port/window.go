package port

import "context"

// WindowCommand names a window-level action handled by the toolkit layer.
type WindowCommand string

const (
	WindowToggleFullscreen WindowCommand = "toggle_full_screen"
	WindowShowHelper       WindowCommand = "show_helper_window"
	WindowShowRemoteLogin  WindowCommand = "show_remote_login_window"
	WindowShowCorrelative  WindowCommand = "show_correlative_window"
	WindowSearchForward    WindowCommand = "search_forward"
	WindowSearchBackward   WindowCommand = "search_backward"
	WindowCopy             WindowCommand = "copy_clipboard"
	WindowPaste            WindowCommand = "paste_clipboard"
	WindowScrollPageUp     WindowCommand = "scroll_page_up"
	WindowScrollPageDown   WindowCommand = "scroll_page_down"
	WindowZoomOut          WindowCommand = "zoom_out"
	WindowZoomIn           WindowCommand = "zoom_in"
	WindowRevertSize       WindowCommand = "revert_default_size"
)

// WindowCommander performs window actions the core only routes.
// The session the action applies to is the focused one.
type WindowCommander interface {
	Perform(ctx context.Context, cmd WindowCommand) error
}
