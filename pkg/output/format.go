// Package output provides utilities for formatting and displaying quote totals.
package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tbg-enterprises/quote-builder/internal/quote"
	"github.com/tbg-enterprises/quote-builder/pkg/format"
)

// Summary outputs a human-readable recap of the quote: the included line
// items followed by the derived payment figures.
func Summary(q quote.Quote, totals quote.Totals) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Estimate %s for %s ---\n", q.Number, q.Customer.Name)
	fmt.Printf("%-40s | %-10s | %-12s | %s\n", "Item", "Qty", "Rate", "Amount")
	fmt.Printf("%-40s | %-10s | %-12s | %s\n", strings.Repeat("_", 4), strings.Repeat("_", 3), strings.Repeat("_", 4), strings.Repeat("_", 6))
	for _, item := range q.IncludedItems() {
		_, _ = p.Printf("%-40s | %-10s | $%.2f | $%.2f\n",
			item.Memo(), item.Quantity, quote.ParseRate(item.Rate), item.Amount())
	}
	fmt.Printf("\n")
	_, _ = p.Printf("Subtotal: $%.2f\n", totals.Subtotal)
	_, _ = p.Printf("20%% Deposit: $%.2f\n", totals.Deposit)
	_, _ = p.Printf("Remaining: $%.2f\n", totals.Remaining)
	fmt.Printf("Weekly Payments: %s\n", format.PerWeek(totals.WeeklyPayment, totals.Weeks))
}

// Categories outputs the ordered category list, one per line.
func Categories(list []string) {
	for _, category := range list {
		fmt.Println(category)
	}
}
