package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "Ctrl + Shift + c", mgr.viper.GetString("keybind.copy_clipboard"))
	assert.True(t, mgr.viper.GetBool("advanced.ask_on_quit"))
	assert.Equal(t, 1, mgr.viper.GetInt("layout.handle_gap"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.FileExists(t, filepath.Join(dir, "config.schema.json"))

	cfg := mgr.Get()
	assert.Equal(t, "Monospace", cfg.General.Font)
	assert.Equal(t, filepath.Join(dir, "data", "gridterm", "gridterm.sqlite"), cfg.Database.Path)
	assert.Equal(t, "Ctrl + v", mgr.GetString("keybind", "split_vertically"))
	assert.True(t, mgr.GetBool("advanced", "ask_on_quit"))
}

func TestManager_LoadReadsUserValues(t *testing.T) {
	dir := t.TempDir()
	content := `
[advanced]
startup_directory = '$HOME/src'
ask_on_quit = false
cursor_shape = 'IBEAM'

[keybind]
split_vertically = 'Ctrl + Shift + v'
paste_clipboard = ''

[layout]
handle_gap = 2

[database]
path = '/tmp/layouts.sqlite'
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.False(t, cfg.Advanced.AskOnQuit)
	assert.Equal(t, CursorIBeam, cfg.Advanced.CursorShape)
	assert.Equal(t, 2, cfg.Layout.HandleGap)
	assert.Equal(t, "/tmp/layouts.sqlite", cfg.Database.Path)
	assert.Equal(t, "Ctrl + Shift + v", cfg.Keybind.SplitVertically)
	assert.Empty(t, cfg.Keybind.PasteClipboard)
	assert.Equal(t, "Ctrl + h", cfg.Keybind.SplitHorizontally, "unset keys keep their default")
	assert.Equal(t, "$HOME/src", mgr.GetString("advanced", "startup_directory"))
}

func TestManager_LoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[keybind]
split_vertically = 'Ctrl + h'
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already bound")
}

func TestManager_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GRIDTERM_LOG_LEVEL", "debug")
	t.Setenv("GRIDTERM_LAYOUT_HANDLE_GAP", "3")

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, "debug", mgr.Get().Logging.Level)
	assert.Equal(t, 3, mgr.Get().Layout.HandleGap)
}

func TestSchema_HasSections(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	for _, key := range []string{`"general"`, `"keybind"`, `"advanced"`, `"layout"`, `"split_vertically"`} {
		assert.Contains(t, string(data), key)
	}
}
