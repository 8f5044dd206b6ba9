package posting

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
)

func ParseCurrency(s string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case CurrencyARS, CurrencyUSD:
		return c, true
	default:
		return "", false
	}
}

// es-AR groups thousands with dots: 1000000 -> "1.000.000".
var arPrinter = message.NewPrinter(language.MustParse("es-AR"))

// ParseAmount strips everything but digits from a free-text salary bound.
// The second return is false when no digits remain, meaning the bound was
// not provided.
func ParseAmount(s string) (int64, bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0, false
	}

	var n int64
	for _, r := range digits {
		n = n*10 + int64(r-'0')
	}
	return n, true
}

// FormatSalary renders the single display string stored on a posting.
// Both bounds: "$800.000 - $1.000.000 ARS". Lower only: "$800.000 ARS".
// Neither: "".
func FormatSalary(lower, upper string, currency Currency) string {
	lo, hasLo := ParseAmount(lower)
	hi, hasHi := ParseAmount(upper)

	switch {
	case hasLo && hasHi:
		return "$" + group(lo) + " - $" + group(hi) + " " + string(currency)
	case hasLo:
		return "$" + group(lo) + " " + string(currency)
	default:
		return ""
	}
}

func group(n int64) string {
	return arPrinter.Sprintf("%d", n)
}
