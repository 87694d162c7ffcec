package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gridterm/internal/cli/styles"
	"github.com/bnema/gridterm/internal/domain/build"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/infrastructure/config"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(config.DefaultConfig())
}

func TestNewTheme_UsesTerminalColors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.FontColor = "#abcdef"
	cfg.General.BackgroundColor = "#123456"

	theme := styles.NewTheme(cfg)
	assert.Equal(t, "#abcdef", string(theme.Text))
	assert.Equal(t, "#123456", string(theme.Background))

	fallback := styles.NewTheme(nil)
	assert.Equal(t, styles.DefaultDarkPalette().Text, string(fallback.Text))
}

func TestConfigRenderer_RenderPath(t *testing.T) {
	r := styles.NewConfigRenderer(testTheme())

	out := r.RenderPath("/tmp/gridterm/config.toml", true)
	require.Contains(t, out, "config.toml")
	require.NotContains(t, out, "created on first run")

	out = r.RenderPath("/tmp/gridterm/config.toml", false)
	require.Contains(t, out, "created on first run")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	out := styles.NewConfigRenderer(testTheme()).RenderError(errors.New("bad toml"))
	require.Contains(t, out, "bad toml")
}

func TestAboutRenderer_Render(t *testing.T) {
	out := styles.NewAboutRenderer(testTheme()).Render(build.Info{
		Version:   "v1.2.3",
		Commit:    "abc123",
		BuildDate: "2026-01-01",
		GoVersion: "go1.24.3",
	})
	for _, want := range []string{"v1.2.3", "abc123", "2026-01-01", "go1.24.3", build.RepoURL()} {
		assert.Contains(t, out, want)
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512B", styles.FormatSize(512))
	assert.Equal(t, "1.5K", styles.FormatSize(1536))
	assert.Equal(t, "2M", styles.FormatSize(2*1024*1024))
}

func TestLayoutRenderer_RenderList(t *testing.T) {
	r := styles.NewLayoutRenderer(testTheme())
	assert.Contains(t, r.RenderList(nil), "No saved layouts")

	snap := &entity.LayoutSnapshot{
		Name:    "last",
		SavedAt: time.Date(2026, 3, 4, 10, 30, 0, 0, time.Local),
		Workspaces: []entity.WorkspaceSnapshot{
			{Index: 1, Root: &entity.PaneNodeSnapshot{
				Orientation: "horizontal",
				Ratio:       0.5,
				First:       &entity.PaneNodeSnapshot{WorkingDirectory: "/a"},
				Second:      &entity.PaneNodeSnapshot{WorkingDirectory: "/b"},
			}},
		},
	}
	out := r.RenderList([]*entity.LayoutSnapshot{snap})
	assert.Contains(t, out, "last")
	assert.Contains(t, out, "2026-03-04 10:30")
	assert.Contains(t, out, "Panes")
}

func TestLayoutRenderer_RenderTree(t *testing.T) {
	snap := &entity.LayoutSnapshot{
		Name: "work",
		Workspaces: []entity.WorkspaceSnapshot{
			{Index: 1, Root: &entity.PaneNodeSnapshot{WorkingDirectory: "/home/me"}},
			{Index: 2, Root: &entity.PaneNodeSnapshot{
				Orientation: "vertical",
				Ratio:       0.25,
				First:       &entity.PaneNodeSnapshot{WorkingDirectory: "/srv", Focused: true},
				Second:      &entity.PaneNodeSnapshot{},
			}},
		},
		ActiveIndex: 1,
	}

	out := styles.NewLayoutRenderer(testTheme()).RenderTree(snap)
	for _, want := range []string{"work", "workspace 1", "workspace 2", "(active)", "/home/me", "/srv", "vertical 0.25", "~"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderKeymap(t *testing.T) {
	out := styles.RenderKeymap(testTheme(), []styles.KeyBinding{
		{Action: "split_right", Hotkey: "ctrl+v"},
	}, []string{"toggle_fullscreen"})

	assert.Contains(t, out, "split_right")
	assert.Contains(t, out, "ctrl+v")
	assert.Contains(t, out, "1 action(s) unbound")
}
