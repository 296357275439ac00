// Package testutil provides common utility functions for testing.
package testutil

import (
	"strings"

	"github.com/tbg-enterprises/quote-builder/internal/quote"
)

// SampleQuote returns the two-item renovation quote used as a fixture
// across test suites: subtotal 1520.00, deposit 304.00, four weekly
// payments of 304.00.
func SampleQuote() quote.Quote {
	return quote.Quote{
		Number:        "TBG-20260115-0930",
		Date:          "01/15/2026",
		ValidDays:     "30",
		DurationWeeks: "4",
		Customer: quote.Customer{
			Name:    "Jane Smith",
			Address: "12 Maple Ave",
			City:    "Burlington",
			State:   "ON",
			Zip:     "L7M 4R3",
			Phone:   "(905) 555-0172",
			Email:   "jane@example.com",
		},
		ProjectDescription: "Master bathroom renovation",
		LineItems: []quote.LineItem{
			{Category: "Demo", Description: "Tear out old tile", Quantity: "1", Unit: "lot", Rate: "500.00"},
			{Category: "Tile", Description: "Install new tile", Quantity: "120", Unit: "sq ft", Rate: "8.50"},
		},
		Notes: "20% deposit required to begin work\nRemaining balance split evenly over project duration",
	}
}

// FindWarning reports whether any warning in the slice contains the given
// substring.
func FindWarning(warnings []string, substring string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substring) {
			return true
		}
	}
	return false
}
