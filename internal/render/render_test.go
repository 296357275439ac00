package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tbg-enterprises/quote-builder/internal/config"
	"github.com/tbg-enterprises/quote-builder/internal/quote"
	"github.com/tbg-enterprises/quote-builder/pkg/testutil"
)

func renovationQuote() quote.Quote {
	return testutil.SampleQuote()
}

func testGenerator() *Generator {
	g := New(config.Default().Company, nil, nil)
	g.uncompressed = true
	return g
}

// renderText renders the quote and returns the raw document bytes as a
// string for content assertions.
func renderText(t *testing.T, g *Generator, q quote.Quote) string {
	t.Helper()
	var buf bytes.Buffer
	if err := g.Render(&buf, q, quote.ComputeTotals(q)); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	return buf.String()
}

// tinyPNG writes a small valid PNG into dir and returns its path.
func tinyPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encoding %s: %v", name, err)
	}
	return path
}

func TestRenderDocumentStructure(t *testing.T) {
	doc := renderText(t, testGenerator(), renovationQuote())

	if !strings.HasPrefix(doc, "%PDF-") {
		t.Fatal("output is not a PDF document")
	}

	for _, want := range []string{
		"ESTIMATE",
		"#TBG-20260115-0930",
		"SCOPE OF WORK",
		"PAYMENT SCHEDULE",
		"PROJECT DESCRIPTION",
		"TERMS & CONDITIONS",
		"Jane Smith",
		"12 Maple Ave",
		"Burlington, ON L7M 4R3",
		"Valid Until: ",
		"02/14/2026",
		"4 weeks",
		"Tear out old tile",
		"$1,520.00",
		"$304.00",
		"Upon acceptance",
		"TOTAL",
		"Customer Signature",
		"Authorized Signature",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document is missing %q", want)
		}
	}
}

func TestRenderPaymentScheduleRows(t *testing.T) {
	q := renovationQuote()
	doc := renderText(t, testGenerator(), q)

	for week := 1; week <= 4; week++ {
		if !strings.Contains(doc, fmt.Sprintf("Week %d", week)) {
			t.Errorf("payment schedule is missing week %d", week)
		}
	}
	if strings.Contains(doc, "Week 5") {
		t.Error("payment schedule has more weekly rows than the duration")
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	q := renovationQuote()
	q.ProjectDescription = ""
	q.Notes = "  \n  "
	doc := renderText(t, testGenerator(), q)

	if strings.Contains(doc, "PROJECT DESCRIPTION") {
		t.Error("empty project description still rendered a section")
	}
	if strings.Contains(doc, "TERMS & CONDITIONS") {
		t.Error("blank notes still rendered a terms section")
	}
	// The signature block renders unconditionally.
	if !strings.Contains(doc, "ACCEPTED BY:") {
		t.Error("signature block missing")
	}
}

func TestRenderUnparseableDateFallsBack(t *testing.T) {
	q := renovationQuote()
	q.Date = "sometime soon"
	doc := renderText(t, testGenerator(), q)

	if !strings.Contains(doc, "30 days from date") {
		t.Error("expiry fallback text missing for unparseable date")
	}
}

func TestRenderExcludesBlankDescriptions(t *testing.T) {
	q := renovationQuote()
	q.LineItems = append(q.LineItems, quote.LineItem{Category: "Ghost", Quantity: "9", Rate: "999"})
	doc := renderText(t, testGenerator(), q)

	if strings.Contains(doc, "Ghost") {
		t.Error("blank-description item leaked into the document")
	}
}

func TestRenderValidation(t *testing.T) {
	g := testGenerator()

	q := renovationQuote()
	q.Customer.Name = ""
	var buf bytes.Buffer
	if err := g.Render(&buf, q, quote.ComputeTotals(q)); !errors.Is(err, quote.ErrMissingCustomerName) {
		t.Errorf("Render() = %v, expected ErrMissingCustomerName", err)
	}
	if buf.Len() != 0 {
		t.Error("rejected quote still produced output")
	}
}

func TestRenderFileWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.pdf")
	q := renovationQuote()
	if err := testGenerator().RenderFile(path, q, quote.ComputeTotals(q)); err != nil {
		t.Fatalf("RenderFile() unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading rendered file: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("rendered file is not a PDF")
	}
}

func TestRenderImageAttachment(t *testing.T) {
	dir := t.TempDir()
	q := renovationQuote()
	q.Attachments = []string{tinyPNG(t, dir, "floor-plan.png", 40, 30)}

	doc := renderText(t, testGenerator(), q)
	if !strings.Contains(doc, "ATTACHED PLANS & DOCUMENTS") {
		t.Error("attachment section heading missing")
	}
	if !strings.Contains(doc, "Attachment 1: floor-plan.png") {
		t.Error("attachment label missing")
	}
	if strings.Contains(doc, "Could not embed attachment") {
		t.Error("valid image produced an embed failure notice")
	}
}

func TestRenderAttachmentFailureIsRecovered(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "corrupt.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	q := renovationQuote()
	q.Attachments = []string{bad, tinyPNG(t, dir, "site-photo.png", 20, 20)}

	doc := renderText(t, testGenerator(), q)
	if !strings.Contains(doc, "Could not embed attachment") {
		t.Error("corrupt attachment did not produce an inline notice")
	}
	if !strings.Contains(doc, "Attachment 2: site-photo.png") {
		t.Error("attachment after a failed one was not rendered")
	}
}

func TestRenderUnsupportedAttachmentType(t *testing.T) {
	q := renovationQuote()
	q.Attachments = []string{"plans.docx"}

	doc := renderText(t, testGenerator(), q)
	if !strings.Contains(doc, "Could not embed attachment") {
		t.Error("unsupported attachment type did not produce an inline notice")
	}
}
