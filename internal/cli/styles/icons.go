package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconTerminal  = "" //  terminal
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGo        = "" //  go gopher
	IconGithub    = "" //  github

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconConfig  = "" // config
	IconLogs    = "" // file-text
	IconKey     = "" // key

	IconWorkspace = "" // window
	IconPane      = "" // columns
	IconClock     = "" // clock
	IconFocus     = "" // chevron-right
)
