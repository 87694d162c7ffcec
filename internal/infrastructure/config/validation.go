package config

import (
	"fmt"
	"strings"

	"github.com/bnema/gridterm/internal/domain/validation"
	"github.com/bnema/gridterm/internal/logging"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateGeneral(config)...)
	validationErrors = append(validationErrors, validateKeybind(config)...)
	validationErrors = append(validationErrors, validateAdvanced(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateGeneral(config *Config) []string {
	var errs []string
	errs = append(errs, validation.ValidateFontFamily("general.font", config.General.Font)...)
	errs = append(errs, validation.ValidateFontSize("general.font_size", config.General.FontSize)...)
	errs = append(errs, validation.ValidateHexColor("general.font_color", config.General.FontColor)...)
	errs = append(errs, validation.ValidateHexColor("general.background_color", config.General.BackgroundColor)...)
	errs = append(errs, validation.ValidateTransparency("general.background_transparent", config.General.BackgroundTransparent)...)
	return errs
}

// validateKeybind rejects malformed hotkeys and hotkeys bound twice.
func validateKeybind(config *Config) []string {
	var errs []string
	seen := make(map[string]string)
	for _, b := range config.Keybind.Bindings() {
		field := "keybind." + b.Action
		if fieldErrs := validation.ValidateHotkey(field, b.Hotkey); len(fieldErrs) > 0 {
			errs = append(errs, fieldErrs...)
			continue
		}
		if strings.TrimSpace(b.Hotkey) == "" {
			continue
		}
		h, _ := validation.ParseHotkey(b.Hotkey)
		key := h.String()
		if other, dup := seen[key]; dup {
			errs = append(errs, fmt.Sprintf("%s: %q is already bound to keybind.%s", field, key, other))
			continue
		}
		seen[key] = b.Action
	}
	return errs
}

func validateAdvanced(config *Config) []string {
	var errs []string
	switch config.Advanced.CursorShape {
	case CursorBlock, CursorIBeam, CursorUnderline:
	default:
		errs = append(errs, "advanced.cursor_shape must be one of: block, ibeam, underline")
	}
	switch config.Advanced.CursorBlinkMode {
	case CursorBlinkSystem, CursorBlinkOn, CursorBlinkOff:
	default:
		errs = append(errs, "advanced.cursor_blink_mode must be one of: system, on, off")
	}
	return errs
}

func validateLayout(config *Config) []string {
	var errs []string
	l := config.Layout
	if l.HandleGap < 0 || l.HandleGap > 8 {
		errs = append(errs, "layout.handle_gap must be between 0 and 8")
	}
	if l.ResizeStepPercent <= 0 || l.ResizeStepPercent > 50 {
		errs = append(errs, "layout.resize_step_percent must be greater than 0 and at most 50")
	}
	if l.MinPanePercent < 0 || l.MinPanePercent > 45 {
		errs = append(errs, "layout.min_pane_percent must be between 0 and 45")
	}
	if l.ThumbnailHeight < 16 {
		errs = append(errs, "layout.thumbnail_height must be at least 16")
	}
	if l.AutosaveIntervalMs < 0 {
		errs = append(errs, "layout.autosave_interval_ms must be non-negative")
	}
	return errs
}

func validateLogging(config *Config) []string {
	var errs []string
	if _, ok := logging.ParseLevel(config.Logging.Level); !ok {
		errs = append(errs, "logging.level must be one of: trace, debug, info, warn, error, disabled")
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, "logging.format must be one of: console, json")
	}
	if config.Logging.MaxFiles < 1 {
		errs = append(errs, "logging.max_files must be at least 1")
	}
	return errs
}
