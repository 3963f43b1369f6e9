package format

import "testing"

func TestRupees(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "under a thousand", amount: 500, expected: "₹500"},
		{name: "thousands", amount: 43391, expected: "₹43,391"},
		{name: "lakhs", amount: 1234567, expected: "₹12,34,567"},
		{name: "crores", amount: 12345678, expected: "₹1,23,45,678"},
		{name: "negative", amount: -43391, expected: "-₹43,391"},
		{name: "rounds fraction", amount: 999.6, expected: "₹1,000"},
		{name: "zero", amount: 0, expected: "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rupees(tt.amount); got != tt.expected {
				t.Errorf("Rupees(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestNumericRupees(t *testing.T) {
	if got := NumericRupees(-1234567); got != "-12,34,567" {
		t.Errorf("NumericRupees(-1234567) = %q, expected -12,34,567", got)
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "crores", amount: 12500000, expected: "1.25 cr"},
		{name: "exact crore", amount: 10000000, expected: "1.00 cr"},
		{name: "lakhs", amount: 8500000, expected: "85.00 lakhs"},
		{name: "exact lakh", amount: 100000, expected: "1.00 lakhs"},
		{name: "below a lakh", amount: 43391, expected: "43,391"},
		{name: "negative crores", amount: -25000000, expected: "-2.50 cr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compact(tt.amount); got != tt.expected {
				t.Errorf("Compact(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}
