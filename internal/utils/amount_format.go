package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount for a WhatsApp reply with thousands
// separators, e.g. 50000 -> "50,000" and 1234567.5 -> "1,234,567.5".
func FormatAmount(amount decimal.Decimal) string {
	s := amount.String()

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

// FormatMoney renders an amount with its currency code, e.g. "UGX 50,000".
func FormatMoney(currencyCode string, amount decimal.Decimal) string {
	return currencyCode + " " + FormatAmount(amount)
}
