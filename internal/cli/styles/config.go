package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file path and whether it exists.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	if !exists {
		return fmt.Sprintf(
			"\n  %s Config %s\n  %s\n",
			iconStyle.Render(IconConfig),
			pathStyle.Render(path),
			r.theme.Subtle.Render("Config file will be created on first run with all defaults."),
		)
	}
	return fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), pathStyle.Render(path))
}

// RenderSchemaWritten renders the message shown after writing the JSON schema.
func (r *ConfigRenderer) RenderSchemaWritten(dir string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf(
		"\n  %s Schema written to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(dir),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
