package utils

import (
	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount for display with the standard 2-decimal
// precision used on bills and ledgers.
// Example: 12.3456 returns "12.35".
func FormatMoney(amount decimal.Decimal) string {
	return amount.Round(2).StringFixed(2)
}

// FormatLength formats a metre length for display with up to 3 decimals,
// trimming trailing zeros. Example: 2.500 returns "2.5".
func FormatLength(length decimal.Decimal) string {
	return length.Round(3).String()
}
