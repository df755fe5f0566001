// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DisplayCurrency is the single currency every amount is shown in.
var DisplayCurrency = currency.EUR

const displaySymbol = "€"

// activePrinter formats numbers for the active locale.
var activePrinter = message.NewPrinter(language.AmericanEnglish)

// SetLocale switches number grouping and decimal marks to the given BCP 47
// tag. Unknown tags fall back to en-US and return an error.
func SetLocale(tag string) error {
	t, err := language.Parse(tag)
	if err != nil {
		activePrinter = message.NewPrinter(language.AmericanEnglish)
		return fmt.Errorf("parsing locale %q: %w", tag, err)
	}
	activePrinter = message.NewPrinter(t)
	return nil
}

// CurrencySymbol returns the symbol printed before every amount.
func CurrencySymbol() string {
	return displaySymbol
}

// FormatCurrencyWhole formats an amount with no decimals, e.g. "€2,825".
// Used for axis labels.
func FormatCurrencyWhole(v float64) string {
	return formatMoney(v, 0)
}

// FormatCurrency formats an amount with two decimals, e.g. "€999.00".
// Used for headline values.
func FormatCurrency(v float64) string {
	return formatMoney(v, 2)
}

func formatMoney(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}

	// Round before formatting so the sign matches the printed digits
	// and half-way cases round away from zero.
	scale := math.Pow(10, float64(decimals))
	r := math.Round(math.Abs(v)*scale) / scale

	sign := ""
	if v < 0 && r != 0 {
		sign = "-"
	}

	digits := activePrinter.Sprintf("%v", number.Decimal(r,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
	return sign + CurrencySymbol() + digits
}

// FormatGrowth formats a growth percentage with an explicit sign and one
// decimal. An undefined growth (zero or missing start value) renders as "+0.0%".
func FormatGrowth(pct float64, defined bool) string {
	if !defined || math.IsNaN(pct) || math.IsInf(pct, 0) {
		return "+0.0%"
	}
	r := math.Round(pct*10) / 10
	if r == 0 {
		return "+0.0%"
	}
	return fmt.Sprintf("%+.1f%%", r)
}

// FormatMonth formats a period as "Jan 2023".
func FormatMonth(t time.Time) string {
	return t.Format("Jan 2006")
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a plain percentage value with one decimal.
// Non-finite values render as "n/a".
func FormatPercent(pct float64) string {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", pct)
}

// Share returns part as a percentage of total, or 0 when total is 0.
func Share(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}
