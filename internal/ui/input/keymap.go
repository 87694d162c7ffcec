package input

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/bnema/gridterm/internal/infrastructure/config"
	"github.com/bnema/gridterm/internal/logging"
)

// Keymap resolves chords to commands.
type Keymap struct {
	commands map[Chord]Command
	chords   map[Command]Chord
}

// KeymapEntry is one resolved binding.
type KeymapEntry struct {
	Command Command
	Hotkey  string
	Chord   Chord
}

// NewKeymap builds a keymap from the keybind section. Empty hotkeys leave
// a command unbound; bindings that fail to parse are logged and skipped.
func NewKeymap(ctx context.Context, cfg config.KeybindConfig) *Keymap {
	log := logging.FromContext(ctx)
	km := &Keymap{
		commands: make(map[Chord]Command),
		chords:   make(map[Command]Chord),
	}

	var registered, parseErrors int
	for _, b := range cfg.Bindings() {
		if b.Hotkey == "" {
			continue
		}
		cmd, ok := CommandForAction(b.Action)
		if !ok {
			log.Warn().Str("action", b.Action).Msg("unknown keybind action")
			continue
		}
		chord, err := ParseChord(b.Hotkey)
		if err != nil {
			parseErrors++
			log.Warn().Err(err).Str("action", b.Action).Str("hotkey", b.Hotkey).Msg("failed to parse hotkey")
			continue
		}
		if prev, taken := km.commands[chord]; taken {
			log.Warn().
				Str("hotkey", b.Hotkey).
				Str("kept", prev.String()).
				Str("ignored", cmd.String()).
				Msg("hotkey bound twice")
			continue
		}
		km.commands[chord] = cmd
		km.chords[cmd] = chord
		registered++
		log.Trace().Str("action", b.Action).Str("hotkey", b.Hotkey).Msg("hotkey registered")
	}

	log.Debug().Int("registered", registered).Int("parse_errors", parseErrors).Msg("keymap built")
	return km
}

// Lookup returns the command bound to chord.
// Legacy terminals send the same control code for Ctrl+letter with and
// without Shift, so an unbound Ctrl+letter falls back to its Shift binding.
func (k *Keymap) Lookup(chord Chord) (Command, bool) {
	chord.Mod &= modifierMask
	if cmd, ok := k.commands[chord]; ok {
		return cmd, true
	}
	if chord.Key == tcell.KeyRune && chord.Rune >= 'a' && chord.Rune <= 'z' &&
		chord.Mod&tcell.ModCtrl != 0 && chord.Mod&tcell.ModShift == 0 {
		chord.Mod |= tcell.ModShift
		cmd, ok := k.commands[chord]
		return cmd, ok
	}
	return CmdNone, false
}

// ChordFor returns the chord bound to cmd.
func (k *Keymap) ChordFor(cmd Command) (Chord, bool) {
	chord, ok := k.chords[cmd]
	return chord, ok
}

// Len returns the number of bound commands.
func (k *Keymap) Len() int {
	return len(k.commands)
}

// Entries returns the bindings in keybind config order.
func (k *Keymap) Entries(cfg config.KeybindConfig) []KeymapEntry {
	entries := make([]KeymapEntry, 0, len(k.chords))
	for _, b := range cfg.Bindings() {
		cmd, ok := CommandForAction(b.Action)
		if !ok {
			continue
		}
		chord, bound := k.chords[cmd]
		if !bound {
			continue
		}
		entries = append(entries, KeymapEntry{Command: cmd, Hotkey: b.Hotkey, Chord: chord})
	}
	return entries
}
