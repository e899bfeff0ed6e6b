package common

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	currencyPrefix = regexp.MustCompile(`^(r\$|R\$|\$)`)
	nonNumeric     = regexp.MustCompile(`[^0-9,.\-]`)
)

// placeholders are the cells accountants use for "no value this month".
var placeholders = map[string]bool{
	"-": true, "–": true, "—": true,
}

// ParseAmount parses a cell in the report's locale format (R$ prefix, period
// thousands separator, comma decimal separator, parenthesized or
// trailing-minus negatives) into a decimal. Malformed cells degrade to zero;
// a bad cell must never fail the whole extraction.
func ParseAmount(text string) decimal.Decimal {
	amount, _ := ParseAmountOK(text)
	return amount
}

// ParseAmountOK is ParseAmount plus a flag reporting whether the cell
// actually held a number. Empty cells and dash placeholders yield (0, false),
// which the column mapper relies on to tell numbers from filler.
func ParseAmountOK(text string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(text)
	if s == "" || placeholders[s] {
		return decimal.Zero, false
	}

	s = strings.Join(strings.Fields(s), "")
	s = currencyPrefix.ReplaceAllString(s, "")

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	if strings.HasSuffix(s, "-") {
		negative = true
		s = strings.TrimSuffix(s, "-")
	}

	s = nonNumeric.ReplaceAllString(s, "")

	// Mixed separators: period is the thousands separator, comma the decimal
	// one. A lone comma is also decimal ("1,5" == 1.5).
	if strings.Contains(s, ",") && strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ".", "")
	}
	s = strings.ReplaceAll(s, ",", ".")

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, true
}
