package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHotkey is returned for hotkeys that do not follow the
// "Mod + Mod + key" notation.
var ErrInvalidHotkey = errors.New("invalid hotkey")

// Modifier names in the order they are printed.
var hotkeyModifiers = []string{"Ctrl", "Super", "Alt", "Shift"}

// Hotkey is a parsed "Ctrl + Shift + c" binding. Modifiers are canonical
// names; Key keeps the user's spelling, except single letters which are
// lowercased.
type Hotkey struct {
	Modifiers []string
	Key       string
}

// Has reports whether the modifier is part of the hotkey.
func (h Hotkey) Has(mod string) bool {
	for _, m := range h.Modifiers {
		if m == mod {
			return true
		}
	}
	return false
}

// String renders the hotkey in canonical form, e.g. "Ctrl + Shift + c".
func (h Hotkey) String() string {
	parts := make([]string, 0, len(h.Modifiers)+1)
	for _, mod := range hotkeyModifiers {
		if h.Has(mod) {
			parts = append(parts, mod)
		}
	}
	return strings.Join(append(parts, h.Key), " + ")
}

// ParseHotkey parses a hotkey such as "Ctrl + Shift + c", "Alt+h" or "F11".
// A trailing "+" binds the plus key itself ("Ctrl + +").
func ParseHotkey(value string) (Hotkey, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Hotkey{}, fmt.Errorf("%w: empty", ErrInvalidHotkey)
	}

	var key string
	rest := value
	if strings.HasSuffix(value, "+") && len(value) > 1 {
		key = "+"
		rest = strings.TrimSpace(strings.TrimSuffix(value, "+"))
		if !strings.HasSuffix(rest, "+") {
			return Hotkey{}, fmt.Errorf("%w: %q", ErrInvalidHotkey, value)
		}
		rest = strings.TrimSuffix(rest, "+")
	} else if value == "+" {
		return Hotkey{Key: "+"}, nil
	}

	tokens := strings.Split(rest, "+")
	if key == "" {
		key = strings.TrimSpace(tokens[len(tokens)-1])
		tokens = tokens[:len(tokens)-1]
	}
	if key == "" {
		return Hotkey{}, fmt.Errorf("%w: %q has no key", ErrInvalidHotkey, value)
	}
	if len([]rune(key)) == 1 {
		key = strings.ToLower(key)
	}

	h := Hotkey{Key: key}
	for _, tok := range tokens {
		mod, ok := canonicalModifier(strings.TrimSpace(tok))
		if !ok {
			return Hotkey{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidHotkey, strings.TrimSpace(tok), value)
		}
		if h.Has(mod) {
			return Hotkey{}, fmt.Errorf("%w: %s repeated in %q", ErrInvalidHotkey, mod, value)
		}
		h.Modifiers = append(h.Modifiers, mod)
	}
	return h, nil
}

func canonicalModifier(tok string) (string, bool) {
	switch strings.ToLower(tok) {
	case "ctrl", "control":
		return "Ctrl", true
	case "shift":
		return "Shift", true
	case "alt", "meta":
		return "Alt", true
	case "super", "win":
		return "Super", true
	default:
		return "", false
	}
}

// ValidateHotkey checks a single binding. Empty bindings are allowed and
// mean "unbound".
func ValidateHotkey(field string, value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := ParseHotkey(value); err != nil {
		return []string{fmt.Sprintf("%s: %v", field, err)}
	}
	return nil
}
