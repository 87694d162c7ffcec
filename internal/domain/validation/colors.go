package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidateHexColor checks a #RRGGBB color setting.
func ValidateHexColor(field string, value string) []string {
	if !IsHexColor(value) {
		return []string{field + " must be a hex color like #RRGGBB"}
	}
	return nil
}

// ValidateTransparency checks an opacity setting between 0 and 1.
func ValidateTransparency(field string, value float64) []string {
	if value < 0 || value > 1 {
		return []string{field + " must be between 0.0 and 1.0"}
	}
	return nil
}
