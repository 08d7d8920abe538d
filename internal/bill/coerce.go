package bill

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a user-typed amount. Malformed or negative input is 0.
func ParseAmount(s string) decimal.Decimal {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// ParseQuantity reads a user-typed item count. Malformed or negative input is 0.
func ParseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func nonNegative(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}
