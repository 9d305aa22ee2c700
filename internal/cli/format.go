// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrencyPrefix is prepended to every amount.
const DefaultCurrencyPrefix = "Rp"

// Indonesian month names. June and July keep their English spelling, as in
// the screen this tool was modeled on.
var monthNames = [12]string{
	"Januari",
	"Februari",
	"Maret",
	"April",
	"Mei",
	"June",
	"July",
	"Agustus",
	"September",
	"Oktober",
	"November",
	"Desember",
}

// ErrInvalidAmount is returned by ParseAmount for input that is not a number.
var ErrInvalidAmount = errors.New("invalid amount")

// German digit grouping: period for thousands, comma for decimals.
var amountPrinter = message.NewPrinter(language.German)

// Formatter renders labels for the display. The zero value uses the Rp
// prefix and hides the year in day headers.
type Formatter struct {
	CurrencyPrefix string
	ShowYear       bool
}

// Currency formats amount with the formatter's prefix.
func (f Formatter) Currency(amount decimal.Decimal) string {
	prefix := f.CurrencyPrefix
	if prefix == "" {
		prefix = DefaultCurrencyPrefix
	}
	return prefix + " " + FormatAmount(amount)
}

// DayHeader returns the header shown above a day's records.
func (f Formatter) DayHeader(t time.Time) string {
	label := FormatDateLabel(t)
	if f.ShowYear {
		return label
	}
	return FormatDayHeader(label)
}

// FormatDateLabel renders t as "5 Maret 2024".
func FormatDateLabel(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// FormatDayHeader drops the trailing year from a date label:
// "5 Maret 2024" -> "5 Maret". A label without spaces is returned as is.
func FormatDayHeader(label string) string {
	i := strings.LastIndex(label, " ")
	if i < 0 {
		return label
	}
	return label[:i]
}

// FormatTimeLabel renders the 24-hour clock time of t as "HH:MM".
func FormatTimeLabel(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// FormatCurrency formats an amount with the default prefix.
// e.g., 1500000 -> "Rp 1.500.000", 1500.5 -> "Rp 1.500,5"
func FormatCurrency(amount decimal.Decimal) string {
	return Formatter{}.Currency(amount)
}

// FormatAmount groups digits German style, with up to three decimals and
// none for whole numbers.
func FormatAmount(amount decimal.Decimal) string {
	if amount.Equal(amount.Truncate(0)) && amount.Abs().LessThan(decimal.NewFromInt(1<<62)) {
		return amountPrinter.Sprintf("%d", amount.IntPart())
	}
	return amountPrinter.Sprint(number.Decimal(amount.Round(3).InexactFloat64(), number.MaxFractionDigits(3)))
}

// FormatNumber groups an integer with periods.
// e.g., 1234567 -> "1.234.567"
func FormatNumber(n int64) string {
	return amountPrinter.Sprintf("%d", n)
}

// ParseAmount coerces form input into an amount. It accepts an optional
// currency prefix, periods as thousands separators and a comma (or a lone
// period) as the decimal separator.
//
// Examples:
//
//	ParseAmount("15000")      -> 15000
//	ParseAmount("Rp 15.000")  -> 15000
//	ParseAmount("1.500,50")   -> 1500.5
//	ParseAmount("12.5")       -> 12.5
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, DefaultCurrencyPrefix))
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart := s, ""
	if i := strings.LastIndex(s, ","); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		intPart = strings.ReplaceAll(intPart, ".", "")
	} else if parts := strings.Split(s, "."); len(parts) > 1 {
		if isGrouped(parts) {
			intPart = strings.Join(parts, "")
		} else if len(parts) == 2 {
			intPart, fracPart = parts[0], parts[1]
		} else {
			return decimal.Zero, ErrInvalidAmount
		}
	}

	if intPart == "" {
		intPart = "0"
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return decimal.Zero, ErrInvalidAmount
	}

	text := intPart
	if fracPart != "" {
		text += "." + fracPart
	}
	if neg {
		text = "-" + text
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// isGrouped reports whether parts look like "1.500.000": a leading group of
// one to three digits followed by groups of exactly three.
func isGrouped(parts []string) bool {
	if len(parts[0]) == 0 || len(parts[0]) > 3 {
		return false
	}
	for _, p := range parts[1:] {
		if len(p) != 3 {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
