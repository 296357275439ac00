package export

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/tbg-enterprises/quote-builder/internal/quote"
	"github.com/tbg-enterprises/quote-builder/pkg/mathutil"
)

func exportIIF(t *testing.T, q quote.Quote) []string {
	t.Helper()
	var buf bytes.Buffer
	if err := QBIIF(&buf, q, quote.ComputeTotals(q)); err != nil {
		t.Fatalf("QBIIF() unexpected error: %v", err)
	}
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestQBIIFFraming(t *testing.T) {
	lines := exportIIF(t, renovationQuote())

	// 3 schema lines, 1 TRNS, 2 SPL, 1 ENDTRNS.
	if len(lines) != 7 {
		t.Fatalf("line count = %d, expected 7:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if lines[0] != "!TRNS\tTRNSTYPE\tDATE\tACCNT\tNAME\tCLASS\tAMOUNT\tDOCNUM\tMEMO" {
		t.Errorf("TRNS schema line = %q", lines[0])
	}
	if lines[1] != "!SPL\tTRNSTYPE\tDATE\tACCNT\tNAME\tAMOUNT\tDOCNUM\tMEMO\tQNTY\tPRICE" {
		t.Errorf("SPL schema line = %q", lines[1])
	}
	if lines[2] != "!ENDTRNS" {
		t.Errorf("end schema line = %q", lines[2])
	}
	if lines[len(lines)-1] != "ENDTRNS" {
		t.Errorf("last line = %q, expected ENDTRNS", lines[len(lines)-1])
	}
}

func TestQBIIFTransactionHeader(t *testing.T) {
	lines := exportIIF(t, renovationQuote())

	fields := strings.Split(lines[3], "\t")
	expected := []string{
		"TRNS", "ESTIMATE", "01/15/2026", "Accounts Receivable", "Jane Smith",
		"", "1520.00", "TBG-20260115-0930", "Master bathroom renovation",
	}
	if len(fields) != len(expected) {
		t.Fatalf("TRNS field count = %d, expected %d: %v", len(fields), len(expected), fields)
	}
	for i := range expected {
		if fields[i] != expected[i] {
			t.Errorf("TRNS field %d = %q, expected %q", i, fields[i], expected[i])
		}
	}
}

func TestQBIIFSplits(t *testing.T) {
	lines := exportIIF(t, renovationQuote())

	first := strings.Split(lines[4], "\t")
	expected := []string{
		"SPL", "ESTIMATE", "01/15/2026", "Services", "Jane Smith",
		"-500.00", "TBG-20260115-0930", "Demo: Tear out old tile", "1", "500.00",
	}
	for i := range expected {
		if first[i] != expected[i] {
			t.Errorf("SPL field %d = %q, expected %q", i, first[i], expected[i])
		}
	}

	second := strings.Split(lines[5], "\t")
	if second[5] != "-1020.00" || second[8] != "120" || second[9] != "8.50" {
		t.Errorf("second split amount/qty/price = %q/%q/%q", second[5], second[8], second[9])
	}
}

func TestQBIIFSplitsBalanceHeader(t *testing.T) {
	q := renovationQuote()
	q.LineItems = append(q.LineItems,
		quote.LineItem{Category: "Paint", Description: "Two coats", Quantity: "3", Rate: "151.13"},
		quote.LineItem{Category: "Other", Description: "", Quantity: "9", Rate: "9"},
	)
	totals := quote.ComputeTotals(q)
	lines := exportIIF(t, q)

	var splits float64
	splitCount := 0
	for _, line := range lines {
		if !strings.HasPrefix(line, "SPL\t") {
			continue
		}
		splitCount++
		amount, err := strconv.ParseFloat(strings.Split(line, "\t")[5], 64)
		if err != nil {
			t.Fatalf("split amount is not numeric: %v", err)
		}
		splits += amount
	}

	if splitCount != len(q.IncludedItems()) {
		t.Errorf("split count = %d, expected %d included items", splitCount, len(q.IncludedItems()))
	}
	if !mathutil.SameCents(splits, -totals.Subtotal) {
		t.Errorf("splits sum to %v, expected -subtotal %v", splits, -totals.Subtotal)
	}

	header := strings.Split(lines[3], "\t")
	headerAmount, _ := strconv.ParseFloat(header[6], 64)
	if !mathutil.SameCents(headerAmount, totals.Subtotal) {
		t.Errorf("header amount = %v, expected subtotal %v", headerAmount, totals.Subtotal)
	}
}

func TestQBIIFMemoTruncation(t *testing.T) {
	q := renovationQuote()
	q.ProjectDescription = strings.Repeat("renovate ", 20)
	q.LineItems[0].Description = strings.Repeat("tile ", 20)
	lines := exportIIF(t, q)

	header := strings.Split(lines[3], "\t")
	if got := len([]rune(header[8])); got != 50 {
		t.Errorf("TRNS memo length = %d, expected 50", got)
	}
	split := strings.Split(lines[4], "\t")
	if got := len([]rune(split[7])); got != 50 {
		t.Errorf("SPL memo length = %d, expected 50", got)
	}
}

func TestQBIIFIdempotent(t *testing.T) {
	q := renovationQuote()
	totals := quote.ComputeTotals(q)

	var first, second bytes.Buffer
	if err := QBIIF(&first, q, totals); err != nil {
		t.Fatalf("first export failed: %v", err)
	}
	if err := QBIIF(&second, q, totals); err != nil {
		t.Fatalf("second export failed: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two exports of the same record differ")
	}
}

func TestQBIIFFileValidation(t *testing.T) {
	q := renovationQuote()
	q.Customer.Name = "   "
	err := QBIIFFile(t.TempDir()+"/estimate.iif", q, quote.ComputeTotals(q))
	if !errors.Is(err, quote.ErrMissingCustomerName) {
		t.Errorf("QBIIFFile() = %v, expected ErrMissingCustomerName", err)
	}
}
