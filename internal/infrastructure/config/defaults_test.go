package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Path = "/tmp/gridterm.sqlite"

	require.NoError(t, validateConfig(cfg))
	assert.Equal(t, 1, cfg.Layout.HandleGap)
	assert.True(t, cfg.Advanced.AskOnQuit)
}

func TestDefaultKeybindings_AllBound(t *testing.T) {
	bindings := DefaultKeybindings().Bindings()
	assert.Len(t, bindings, 25)
	for _, b := range bindings {
		assert.NotEmpty(t, b.Hotkey, b.Action)
	}
}
