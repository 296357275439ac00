// Package quote defines the canonical quote record and the financial
// calculations derived from it. A record is snapshotted once per export and
// every consumer (document renderer, accounting exporters, summary output)
// is a pure function of that snapshot.
package quote

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Validation errors reported to the caller before any file I/O is attempted.
var (
	// ErrMissingCustomerName indicates the customer name field was empty.
	ErrMissingCustomerName = errors.New("customer name is required")

	// ErrNoLineItems indicates no line item carried a description.
	ErrNoLineItems = errors.New("quote needs at least one line item with a description")
)

// Quote is the canonical snapshot of one quote. Scalar fields hold raw text
// as entered; numeric interpretation happens on read.
type Quote struct {
	Number             string
	Date               string
	ValidDays          string
	DurationWeeks      string
	Customer           Customer
	ProjectDescription string
	LineItems          []LineItem
	Notes              string
	Attachments        []string
}

// Customer identifies who the quote is for. Only Name is required.
type Customer struct {
	Name    string
	Address string
	City    string
	State   string
	Zip     string
	Phone   string
	Email   string
}

// LineItem is one billable row. Quantity and Rate are free text; Amount is
// always derived from them so it can never drift out of sync.
type LineItem struct {
	Category    string
	Description string
	Quantity    string
	Unit        string
	Rate        string
}

// Amount returns quantity × rate for this item. Unparseable quantity or rate
// degrades that factor to 0 rather than failing the quote.
func (li LineItem) Amount() float64 {
	return ParseQuantity(li.Quantity) * ParseRate(li.Rate)
}

// Memo returns the "Category: Description" label both accounting exports use.
func (li LineItem) Memo() string {
	return li.Category + ": " + li.Description
}

// IncludedItems returns the line items that participate in totals and
// exports: those whose description is non-blank. Empty rows are dropped
// silently, never reported as errors.
func (q Quote) IncludedItems() []LineItem {
	var items []LineItem
	for _, li := range q.LineItems {
		if strings.TrimSpace(li.Description) != "" {
			items = append(items, li)
		}
	}
	return items
}

// Validate performs the presence checks every export path requires.
func (q Quote) Validate() error {
	if strings.TrimSpace(q.Customer.Name) == "" {
		return ErrMissingCustomerName
	}
	if len(q.IncludedItems()) == 0 {
		return ErrNoLineItems
	}
	return nil
}

// NewNumber generates a default quote number from the given time,
// e.g. "TBG-20260115-0930". Numbers are user-editable and not guaranteed
// unique.
func NewNumber(t time.Time) string {
	return "TBG-" + t.Format("20060102-1504")
}

// ParseQuantity interprets a free-text quantity. Blank or non-numeric input
// yields 0.
func ParseQuantity(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	qty, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return qty
}

// ParseRate interprets a free-text currency rate, tolerating thousands
// separators ("1,200.50"). Blank or non-numeric input yields 0.
func ParseRate(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	rate, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return rate
}
