package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHotkey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ctrl + Shift + c", "Ctrl + Shift + c"},
		{"shift+ctrl+C", "Ctrl + Shift + c"},
		{"Alt + ,", "Alt + ,"},
		{"F11", "F11"},
		{"Ctrl + +", "Ctrl + +"},
		{"Ctrl + Shift + :", "Ctrl + Shift + :"},
		{"control + alt + Delete", "Ctrl + Alt + Delete"},
		{"+", "+"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, err := ParseHotkey(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.String())
		})
	}
}

func TestParseHotkey_Invalid(t *testing.T) {
	for _, in := range []string{"", "Ctrl +", "Hyper + x", "Ctrl + Ctrl + x", "Ctrl x +"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseHotkey(in)
			assert.ErrorIs(t, err, ErrInvalidHotkey)
		})
	}
}

func TestValidateHotkey_EmptyMeansUnbound(t *testing.T) {
	assert.Empty(t, ValidateHotkey("keybind.zoom_in", ""))
	assert.Len(t, ValidateHotkey("keybind.zoom_in", "Ctrl +"), 1)
}
