// Package datetime provides date utility functions for quote dates.
package datetime

import (
	"strconv"
	"strings"
	"time"

	"github.com/tbg-enterprises/quote-builder/pkg/constants"
)

const (
	// DateLayout is the MM/DD/YYYY format used on quotes and in both
	// accounting exports.
	DateLayout = constants.DateLayout
)

// OffsetDays returns the string-formatted date offset by the given number of
// calendar days relative to the given date.
func OffsetDays(date, layout string, days int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, 0, days).Format(layout), nil
}

// ExpirationDate returns the date the quote stops being valid: the quote date
// plus validDays calendar days. The quote date and validity period are free
// text; if either fails to parse the documented placeholder is returned
// instead of an error.
func ExpirationDate(date, validDays string) string {
	days, err := strconv.Atoi(strings.TrimSpace(validDays))
	if err != nil {
		return constants.ExpirationFallback
	}
	expiration, err := OffsetDays(strings.TrimSpace(date), DateLayout, days)
	if err != nil {
		return constants.ExpirationFallback
	}
	return expiration
}

// ValidDate reports whether the given string is a well-formed MM/DD/YYYY date.
func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, strings.TrimSpace(date))
	return err == nil
}
