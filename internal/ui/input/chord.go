// Package input turns key events into commands.
package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/bnema/gridterm/internal/domain/validation"
)

// modifierMask keeps the modifiers hotkeys can use.
const modifierMask = tcell.ModCtrl | tcell.ModShift | tcell.ModAlt | tcell.ModMeta

// Chord is one key press with its modifiers, normalized so that a parsed
// hotkey and a key event for the same keys compare equal.
type Chord struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

var keyByName = map[string]tcell.Key{
	"escape":    tcell.KeyEscape,
	"esc":       tcell.KeyEscape,
	"return":    tcell.KeyEnter,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"del":       tcell.KeyDelete,
	"insert":    tcell.KeyInsert,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pageup":    tcell.KeyPgUp,
	"page_up":   tcell.KeyPgUp,
	"pagedown":  tcell.KeyPgDn,
	"page_down": tcell.KeyPgDn,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
	"f5":        tcell.KeyF5,
	"f6":        tcell.KeyF6,
	"f7":        tcell.KeyF7,
	"f8":        tcell.KeyF8,
	"f9":        tcell.KeyF9,
	"f10":       tcell.KeyF10,
	"f11":       tcell.KeyF11,
	"f12":       tcell.KeyF12,
}

var runeByName = map[string]rune{
	"space":      ' ',
	"plus":       '+',
	"minus":      '-',
	"equal":      '=',
	"comma":      ',',
	"period":     '.',
	"slash":      '/',
	"colon":      ':',
	"question":   '?',
	"quotedbl":   '"',
	"apostrophe": '\'',
}

// runeChord normalizes a printable key. Letters are lowercased and keep
// Shift; for symbols Shift is part of the symbol and is dropped.
func runeChord(r rune, mod tcell.ModMask) Chord {
	mod &= modifierMask
	switch {
	case unicode.IsUpper(r):
		r = unicode.ToLower(r)
		mod |= tcell.ModShift
	case !unicode.IsLetter(r):
		mod &^= tcell.ModShift
	}
	return Chord{Key: tcell.KeyRune, Rune: r, Mod: mod}
}

// ChordFromEvent normalizes a tcell key event.
func ChordFromEvent(ev *tcell.EventKey) Chord {
	mod := ev.Modifiers() & modifierMask
	key := ev.Key()

	if key == tcell.KeyRune {
		return runeChord(ev.Rune(), mod)
	}
	// Terminals report Ctrl+letter as control codes. The rune carries the
	// letter case when the terminal reports it; raw codes carry none.
	if mod&tcell.ModCtrl != 0 && key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		r := ev.Rune()
		if unicode.ToLower(r) != 'a'+rune(key-tcell.KeyCtrlA) {
			r = 'a' + rune(key-tcell.KeyCtrlA)
		}
		return runeChord(r, mod)
	}
	if key == tcell.KeyBackspace {
		key = tcell.KeyBackspace2
	}
	return Chord{Key: key, Mod: mod}
}

// ParseChord converts a hotkey such as "Ctrl + Shift + c" into a chord.
func ParseChord(value string) (Chord, error) {
	hk, err := validation.ParseHotkey(value)
	if err != nil {
		return Chord{}, err
	}

	var mod tcell.ModMask
	for _, m := range hk.Modifiers {
		switch m {
		case "Ctrl":
			mod |= tcell.ModCtrl
		case "Shift":
			mod |= tcell.ModShift
		case "Alt":
			mod |= tcell.ModAlt
		case "Super":
			mod |= tcell.ModMeta
		}
	}

	name := strings.ToLower(hk.Key)
	if key, ok := keyByName[name]; ok {
		return Chord{Key: key, Mod: mod}, nil
	}
	if r, ok := runeByName[name]; ok {
		return runeChord(r, mod), nil
	}
	if runes := []rune(hk.Key); len(runes) == 1 && unicode.IsPrint(runes[0]) {
		return runeChord(runes[0], mod), nil
	}
	return Chord{}, fmt.Errorf("%w: unknown key %q", validation.ErrInvalidHotkey, hk.Key)
}

// String renders the chord in hotkey notation.
func (c Chord) String() string {
	var parts []string
	for _, m := range []struct {
		mask tcell.ModMask
		name string
	}{
		{tcell.ModCtrl, "Ctrl"},
		{tcell.ModMeta, "Super"},
		{tcell.ModAlt, "Alt"},
		{tcell.ModShift, "Shift"},
	} {
		if c.Mod&m.mask != 0 {
			parts = append(parts, m.name)
		}
	}
	if c.Key == tcell.KeyRune {
		parts = append(parts, string(c.Rune))
	} else {
		parts = append(parts, tcell.KeyNames[c.Key])
	}
	return strings.Join(parts, " + ")
}
