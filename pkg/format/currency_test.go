package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "$0.00"},
		{"Under one thousand", 500, "$500.00"},
		{"Thousands separator", 1520, "$1,520.00"},
		{"Cents preserved", 1200.5, "$1,200.50"},
		{"Millions", 1234567.89, "$1,234,567.89"},
		{"Negative", -1020, "-$1,020.00"},
		{"Exactly one thousand", 1000, "$1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Positive with separator", 1520, "1,520.00"},
		{"Negative", -500, "-500.00"},
		{"Rounds to two decimals", 8.5, "8.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumericCurrency(tt.amount); got != tt.expected {
				t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPerWeek(t *testing.T) {
	got := PerWeek(304, 4)
	expected := "$304.00/week × 4 weeks"
	if got != expected {
		t.Errorf("PerWeek(304, 4) = %q, expected %q", got, expected)
	}
}
