package input

// Command is something a hotkey can trigger.
type Command uint8

const (
	CmdNone Command = iota
	CmdCopy
	CmdPaste
	CmdSplitVertically
	CmdSplitHorizontally
	CmdCloseCurrentPane
	CmdCloseOtherPanes
	CmdScrollPageUp
	CmdScrollPageDown
	CmdFocusUp
	CmdFocusDown
	CmdFocusLeft
	CmdFocusRight
	CmdZoomOut
	CmdZoomIn
	CmdRevertDefaultSize
	CmdNewWorkspace
	CmdCloseWorkspace
	CmdSwitchPrevWorkspace
	CmdSwitchNextWorkspace
	CmdSearchForward
	CmdSearchBackward
	CmdToggleFullscreen
	CmdShowHelper
	CmdShowRemoteLogin
	CmdShowCorrelative
)

// commandByAction maps keybind config keys to commands.
var commandByAction = map[string]Command{
	"copy_clipboard":           CmdCopy,
	"paste_clipboard":          CmdPaste,
	"split_vertically":         CmdSplitVertically,
	"split_horizontally":       CmdSplitHorizontally,
	"close_current_window":     CmdCloseCurrentPane,
	"close_other_window":       CmdCloseOtherPanes,
	"scroll_page_up":           CmdScrollPageUp,
	"scroll_page_down":         CmdScrollPageDown,
	"focus_up_terminal":        CmdFocusUp,
	"focus_down_terminal":      CmdFocusDown,
	"focus_left_terminal":      CmdFocusLeft,
	"focus_right_terminal":     CmdFocusRight,
	"zoom_out":                 CmdZoomOut,
	"zoom_in":                  CmdZoomIn,
	"revert_default_size":      CmdRevertDefaultSize,
	"new_workspace":            CmdNewWorkspace,
	"close_current_workspace":  CmdCloseWorkspace,
	"switch_prev_workspace":    CmdSwitchPrevWorkspace,
	"switch_next_workspace":    CmdSwitchNextWorkspace,
	"search_forward":           CmdSearchForward,
	"search_backward":          CmdSearchBackward,
	"toggle_full_screen":       CmdToggleFullscreen,
	"show_helper_window":       CmdShowHelper,
	"show_remote_login_window": CmdShowRemoteLogin,
	"show_correlative_window":  CmdShowCorrelative,
}

var actionByCommand = func() map[Command]string {
	m := make(map[Command]string, len(commandByAction))
	for action, cmd := range commandByAction {
		m[cmd] = action
	}
	return m
}()

// CommandForAction returns the command bound to a keybind config key.
func CommandForAction(action string) (Command, bool) {
	cmd, ok := commandByAction[action]
	return cmd, ok
}

// String returns the keybind config key of the command.
func (c Command) String() string {
	if s, ok := actionByCommand[c]; ok {
		return s
	}
	return "none"
}

// SwitchesWorkspace reports whether the command drives the workspace switcher.
func (c Command) SwitchesWorkspace() bool {
	return c == CmdSwitchPrevWorkspace || c == CmdSwitchNextWorkspace
}
