// Package output provides output formatting for bt-admin.
package output

import (
	"fmt"
	"strconv"
	"strings"
)

// Money formats a decimal-string amount with a currency prefix and
// two decimal places. Unparseable input is returned as-is so a broken
// backend value is visible instead of a silent zero.
func Money(amount string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		if amount == "" {
			return "₹0.00"
		}
		return amount
	}
	return fmt.Sprintf("₹%.2f", v)
}
