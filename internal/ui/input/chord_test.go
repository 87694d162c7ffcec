package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gridterm/internal/domain/validation"
)

func TestParseChord(t *testing.T) {
	tests := []struct {
		hotkey string
		want   Chord
	}{
		{"Ctrl + Shift + c", Chord{Key: tcell.KeyRune, Rune: 'c', Mod: tcell.ModCtrl | tcell.ModShift}},
		{"Ctrl + v", Chord{Key: tcell.KeyRune, Rune: 'v', Mod: tcell.ModCtrl}},
		{"Alt + ,", Chord{Key: tcell.KeyRune, Rune: ',', Mod: tcell.ModAlt}},
		{"Ctrl + Shift + :", Chord{Key: tcell.KeyRune, Rune: ':', Mod: tcell.ModCtrl}},
		{"Ctrl + Shift + ?", Chord{Key: tcell.KeyRune, Rune: '?', Mod: tcell.ModCtrl}},
		{"Ctrl + +", Chord{Key: tcell.KeyRune, Rune: '+', Mod: tcell.ModCtrl}},
		{"ctrl+plus", Chord{Key: tcell.KeyRune, Rune: '+', Mod: tcell.ModCtrl}},
		{"F11", Chord{Key: tcell.KeyF11}},
		{"Super + Return", Chord{Key: tcell.KeyEnter, Mod: tcell.ModMeta}},
		{"Alt + PageUp", Chord{Key: tcell.KeyPgUp, Mod: tcell.ModAlt}},
	}
	for _, tt := range tests {
		t.Run(tt.hotkey, func(t *testing.T) {
			got, err := ParseChord(tt.hotkey)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChord_Errors(t *testing.T) {
	for _, hotkey := range []string{"", "Ctrl + ", "Hyper + x", "Ctrl + NoSuchKey"} {
		_, err := ParseChord(hotkey)
		assert.ErrorIs(t, err, validation.ErrInvalidHotkey, hotkey)
	}
}

func TestChordFromEvent_MatchesParsedHotkey(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		hotkey string
	}{
		{"control code", tcell.NewEventKey(tcell.KeyCtrlV, 0, tcell.ModCtrl), "Ctrl + v"},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModCtrl), "Ctrl + v"},
		{"shifted letter", tcell.NewEventKey(tcell.KeyRune, 'C', tcell.ModCtrl|tcell.ModShift), "Ctrl + Shift + c"},
		{"shifted control code", tcell.NewEventKey(tcell.KeyCtrlW, 'W', tcell.ModCtrl|tcell.ModShift), "Ctrl + Shift + w"},
		{"uppercase control code rune", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl|tcell.ModShift), "Ctrl + Shift + q"},
		{"case folded by the terminal", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModCtrl), "Ctrl + w"},
		{"shifted symbol", tcell.NewEventKey(tcell.KeyRune, ':', tcell.ModCtrl|tcell.ModShift), "Ctrl + Shift + :"},
		{"alt letter", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModAlt), "Alt + h"},
		{"function key", tcell.NewEventKey(tcell.KeyF11, 0, tcell.ModNone), "F11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := ParseChord(tt.hotkey)
			require.NoError(t, err)
			assert.Equal(t, want, ChordFromEvent(tt.ev))
		})
	}
}

func TestChord_String(t *testing.T) {
	c, err := ParseChord("shift + ctrl + C")
	require.NoError(t, err)
	assert.Equal(t, "Ctrl + Shift + c", c.String())

	f, err := ParseChord("f11")
	require.NoError(t, err)
	assert.Equal(t, "F11", f.String())
}
