// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/tbg-enterprises/quote-builder/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPDF,
		constants.OutputFormatQBOCSV,
		constants.OutputFormatQBIIF,
		constants.OutputFormatSummary:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s, %s or %s, got %s",
		constants.OutputFormatPDF, constants.OutputFormatQBOCSV,
		constants.OutputFormatQBIIF, constants.OutputFormatSummary, format)
}
