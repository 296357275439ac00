package validation

import (
	"fmt"
	"strings"

	"github.com/tbg-enterprises/quote-builder/internal/quote"
	"github.com/tbg-enterprises/quote-builder/pkg/datetime"
	"github.com/tbg-enterprises/quote-builder/pkg/mathutil"
)

// knownUnits is the recognized unit vocabulary. Items may carry any unit
// string; an unknown one is only worth a warning.
var knownUnits = map[string]bool{
	"ea":    true,
	"hr":    true,
	"sq ft": true,
	"ln ft": true,
	"day":   true,
	"lot":   true,
}

// ValidateQuote performs advisory checks on a quote record and returns any
// warnings. These never block an export; the hard presence checks live on
// the record itself.
func ValidateQuote(q quote.Quote) []string {
	var warnings []string

	if !datetime.ValidDate(q.Date) {
		warnings = append(warnings, fmt.Sprintf("Quote date %q is not in MM/DD/YYYY form; the expiration date will fall back to a placeholder", q.Date))
	}

	for i, item := range q.IncludedItems() {
		if unit := strings.TrimSpace(item.Unit); unit != "" && !knownUnits[unit] {
			warnings = append(warnings, fmt.Sprintf("Line item %d (%s) has unrecognized unit %q", i+1, item.Description, item.Unit))
		}
		if mathutil.IsZero(item.Amount()) {
			warnings = append(warnings, fmt.Sprintf("Line item %d (%s) has a zero amount", i+1, item.Description))
		}
	}

	return warnings
}
