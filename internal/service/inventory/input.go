package inventory

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// priceInputPattern admits in-progress currency input: digits, an optional
// decimal point, at most two decimal places.
var priceInputPattern = regexp.MustCompile(`^\d*\.?\d{0,2}$`)

// ValidPriceInput reports whether the string is acceptable while typing a
// price. The empty string is valid; it parses to zero on blur.
func ValidPriceInput(value string) bool {
	return priceInputPattern.MatchString(value)
}

// ParsePriceInput converts a finished price entry to a decimal, defaulting
// unparseable input to 0.00.
func ParsePriceInput(value string) decimal.Decimal {
	price, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return price
}

// AdjustQty applies a signed delta to an in-progress quantity edit, clamped
// so the quantity never goes negative.
func AdjustQty(current, delta int) int {
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}
