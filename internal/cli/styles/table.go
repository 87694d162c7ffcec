package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// NewTable creates a themed static table with the given headers.
func NewTable(theme *Theme, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.TableHeader
			}
			return theme.TableCell
		})
}

// FormatSize formats a byte count for display.
func FormatSize(n int64) string {
	const unit = 1024
	switch {
	case n >= unit*unit:
		return formatFloat(float64(n)/(unit*unit)) + "M"
	case n >= unit:
		return formatFloat(float64(n)/unit) + "K"
	default:
		return intToString(int(n)) + "B"
	}
}

// formatFloat formats a float with one decimal.
func formatFloat(f float64) string {
	i := int(f * 10)
	whole := i / 10
	dec := i % 10
	if dec == 0 {
		return intToString(whole)
	}
	return intToString(whole) + "." + intToString(dec)
}

// intToString converts int to string without fmt.
func intToString(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + intToString(-n)
	}

	digits := make([]byte, 0, 10)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
