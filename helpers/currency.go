package helpers

import (
	"fmt"
	"strings"
)

// FormatUSD formats a price as US dollars with thousand separators and four
// decimal places, e.g. "$1,234.5000".
func FormatUSD(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.4f", amount)
	whole, frac, _ := strings.Cut(str, ".")

	var b strings.Builder
	length := len(whole)
	for i, digit := range whole {
		if i > 0 && (length-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if negative {
		return fmt.Sprintf("-$%s.%s", b.String(), frac)
	}
	return fmt.Sprintf("$%s.%s", b.String(), frac)
}

// FormatPercent formats a signed percentage with two decimals, e.g. "+1.25%".
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%+.2f%%", pct)
}
