// Package export serializes a quote record into the flat-file formats the
// two accounting systems import: a comma-delimited estimate file for the
// online product and a tab-delimited IIF transaction for the desktop one.
// Both serializers are pure functions of the record; validation happens
// before any file is opened so a rejected quote never leaves a partial file.
package export

import (
	"fmt"
	"os"

	"github.com/tbg-enterprises/quote-builder/internal/quote"
)

// truncate limits a memo field to max characters, the way the desktop
// import expects.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// writeFile validates the quote, then creates path and streams the given
// serializer into it. Write and close failures surface with the path for
// context; there is no retry and no cleanup of a partially written file.
func writeFile(path string, q quote.Quote, serialize func(*os.File) error) error {
	if err := q.Validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := serialize(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
