// Package format renders currency amounts in the Indian numbering system.
package format

import (
	"fmt"
	"math"
	"strings"
)

const (
	lakh  = 100000.0
	crore = 10000000.0
)

// Rupees returns a currency string with a rupee sign and Indian-system
// separators (e.g., "₹12,34,567").
func Rupees(amount float64) string {
	formatted := groupIndian(math.Abs(math.Round(amount)))
	if amount < 0 {
		return "-₹" + formatted
	}
	return "₹" + formatted
}

// NumericRupees returns a currency string without a currency symbol but with
// Indian-system separators (e.g., "-12,34,567").
func NumericRupees(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + groupIndian(math.Abs(math.Round(amount)))
}

// Compact returns a short-form amount in lakhs or crores (e.g., "1.25 cr",
// "85.00 lakhs"); amounts below one lakh fall back to grouped digits.
func Compact(amount float64) string {
	abs := math.Abs(amount)
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	switch {
	case abs >= crore:
		return fmt.Sprintf("%s%.2f cr", sign, abs/crore)
	case abs >= lakh:
		return fmt.Sprintf("%s%.2f lakhs", sign, abs/lakh)
	default:
		return sign + groupIndian(math.Round(abs))
	}
}

// groupIndian applies 2-2-3 digit grouping: the last three digits form one
// group, then pairs (e.g., 12345678 -> "1,23,45,678").
func groupIndian(value float64) string {
	digits := fmt.Sprintf("%.0f", value)
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)

	return strings.Join(groups, ",")
}
