package quote

import (
	"strconv"
	"strings"

	"github.com/tbg-enterprises/quote-builder/pkg/constants"
)

// Totals holds the payment figures derived from one quote record. Values are
// unrounded; rounding to display precision happens only at presentation time.
type Totals struct {
	Subtotal      float64
	Deposit       float64
	Remaining     float64
	WeeklyPayment float64
	Weeks         int
}

// ComputeTotals derives the subtotal and payment schedule from the record.
// The deposit is a fixed 20% of the subtotal and the remainder is split
// evenly across the project duration, so deposit + weekly × weeks always
// partitions the subtotal.
func ComputeTotals(q Quote) Totals {
	var subtotal float64
	for _, item := range q.IncludedItems() {
		subtotal += item.Amount()
	}

	deposit := subtotal * constants.DepositRate
	remaining := subtotal - deposit
	weeks := ParseWeeks(q.DurationWeeks)

	return Totals{
		Subtotal:      subtotal,
		Deposit:       deposit,
		Remaining:     remaining,
		WeeklyPayment: remaining / float64(weeks),
		Weeks:         weeks,
	}
}

// ParseWeeks interprets the free-text project duration as a whole number of
// weeks, clamped to at least 1 so the weekly split never divides by zero.
func ParseWeeks(s string) int {
	weeks, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || weeks < constants.MinDurationWeeks {
		return constants.MinDurationWeeks
	}
	return weeks
}
