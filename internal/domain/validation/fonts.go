package validation

import (
	"fmt"
	"strings"
)

const (
	MinFontSize = 1
	MaxFontSize = 72
)

func ValidateFontFamily(field string, value string) []string {
	value = strings.TrimSpace(value)
	var errs []string

	if value == "" {
		errs = append(errs, field+" cannot be empty")
		return errs
	}

	if strings.ContainsAny(value, "\r\n") {
		errs = append(errs, field+" must not contain newlines")
	}

	if len(value) > 200 {
		errs = append(errs, field+" is too long")
	}

	return errs
}

func ValidateFontSize(field string, value int) []string {
	if value < MinFontSize || value > MaxFontSize {
		return []string{fmt.Sprintf("%s must be between %d and %d", field, MinFontSize, MaxFontSize)}
	}
	return nil
}
