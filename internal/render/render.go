// Package render builds the styled PDF quote document. The document is
// assembled as a fixed sequence of layout stages appended to a single page
// flow: branding header, info columns, scope-of-work table, payment
// schedule, terms, signature block, then one fresh-page section per
// attachment. Pagination is automatic.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/tbg-enterprises/quote-builder/internal/config"
	"github.com/tbg-enterprises/quote-builder/internal/quote"
	"github.com/tbg-enterprises/quote-builder/pkg/datetime"
	"github.com/tbg-enterprises/quote-builder/pkg/format"
)

// Page geometry in points. US Letter with half-inch margins.
const (
	pageMargin   = 36.0
	contentWidth = 612.0 - 2*pageMargin

	lineHeight    = 12.0
	tableRowPad   = 6.0
	sectionGap    = 15.0
	separatorRule = 3.0
)

// Brand palette.
var (
	brandRed       = rgb{196, 30, 58}   // #C41E3A
	brandBlack     = rgb{26, 26, 26}    // #1A1A1A
	brandGray      = rgb{74, 74, 74}    // #4A4A4A
	brandLightGray = rgb{245, 245, 245} // #F5F5F5
	white          = rgb{255, 255, 255}
)

type rgb struct{ r, g, b int }

// Column widths in points.
var (
	itemColWidths    = [6]float64{72, 201.6, 36, 36, 64.8, 64.8}
	itemColAligns    = [6]string{"L", "L", "R", "R", "R", "R"}
	paymentColWidths = [3]float64{144, 180, 108}
	infoColWidth     = 252.0
)

// Generator renders quote documents. The zero Rasterizer and Logger are
// usable: paged attachments degrade to an inline notice and logging is
// disabled.
type Generator struct {
	Company    config.Company
	Rasterizer Rasterizer
	Logger     *zap.Logger

	// uncompressed disables stream compression so tests can inspect the
	// document text.
	uncompressed bool
}

// New returns a Generator for the given company identity.
func New(company config.Company, rasterizer Rasterizer, logger *zap.Logger) *Generator {
	if rasterizer == nil {
		rasterizer = NoRasterizer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{Company: company, Rasterizer: rasterizer, Logger: logger}
}

// RenderFile validates the quote and writes the rendered document to path.
func (g *Generator) RenderFile(path string, q quote.Quote, totals quote.Totals) error {
	if err := q.Validate(); err != nil {
		return err
	}
	pdf := g.build(q, totals)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Render validates the quote and streams the rendered document to w.
func (g *Generator) Render(w io.Writer, q quote.Quote, totals quote.Totals) error {
	if err := q.Validate(); err != nil {
		return err
	}
	pdf := g.build(q, totals)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	return nil
}

func (g *Generator) build(q quote.Quote, totals quote.Totals) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	if g.uncompressed {
		pdf.SetCompression(false)
	}
	pdf.SetTitle("Estimate "+q.Number, true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	g.header(pdf, tr, q)
	g.infoColumns(pdf, tr, q, totals)
	g.projectDescription(pdf, tr, q)
	g.itemsTable(pdf, tr, q)
	g.subtotalRow(pdf, totals)
	g.paymentSchedule(pdf, tr, totals)
	g.terms(pdf, tr, q)
	g.signatures(pdf, tr)
	g.attachmentPages(pdf, tr, q)

	return pdf
}

// header draws the logo, the right-aligned estimate number block, the
// contact banner and the brand rule.
func (g *Generator) header(pdf *gofpdf.Fpdf, tr func(string) string, q quote.Quote) {
	top := pdf.GetY()

	g.drawLogo(pdf, pageMargin, top)

	pdf.SetXY(pageMargin+logoWidth, top)
	setTextColor(pdf, brandBlack)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentWidth-logoWidth, 18, "ESTIMATE", "", 2, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentWidth-logoWidth, 12, tr("#"+q.Number), "", 2, "R", false, 0, "")

	pdf.SetY(top + logoHeight + 6)
	setTextColor(pdf, brandGray)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetX(pageMargin)
	pdf.CellFormat(contentWidth, 10, tr(g.Company.ContactLine()), "", 1, "L", false, 0, "")

	pdf.Ln(8)
	setDrawColor(pdf, brandRed)
	pdf.SetLineWidth(separatorRule)
	y := pdf.GetY()
	pdf.Line(pageMargin, y, pageMargin+contentWidth, y)
	pdf.Ln(sectionGap)
}

// infoColumns lays out the scheduling details on the left and the customer
// block on the right.
func (g *Generator) infoColumns(pdf *gofpdf.Fpdf, tr func(string) string, q quote.Quote, totals quote.Totals) {
	top := pdf.GetY()

	labeledLine(pdf, tr, pageMargin, "Date: ", q.Date)
	labeledLine(pdf, tr, pageMargin, "Valid Until: ", datetime.ExpirationDate(q.Date, q.ValidDays))
	labeledLine(pdf, tr, pageMargin, "Estimated Duration: ", fmt.Sprintf("%d weeks", totals.Weeks))
	leftBottom := pdf.GetY()

	rightX := pageMargin + infoColWidth
	pdf.SetXY(rightX, top)
	setTextColor(pdf, brandGray)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentWidth-infoColWidth, lineHeight, tr(q.Customer.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range customerLines(q.Customer) {
		pdf.SetX(rightX)
		pdf.CellFormat(contentWidth-infoColWidth, lineHeight, tr(line), "", 1, "L", false, 0, "")
	}
	if bottom := pdf.GetY(); bottom < leftBottom {
		pdf.SetY(leftBottom)
	}
	pdf.Ln(sectionGap)
}

// customerLines returns the address block lines below the customer name,
// skipping the optional contact lines when empty.
func customerLines(c quote.Customer) []string {
	lines := []string{c.Address, strings.TrimSpace(fmt.Sprintf("%s, %s %s", c.City, c.State, c.Zip))}
	if c.Phone != "" {
		lines = append(lines, c.Phone)
	}
	if c.Email != "" {
		lines = append(lines, c.Email)
	}
	return lines
}

func (g *Generator) projectDescription(pdf *gofpdf.Fpdf, tr func(string) string, q quote.Quote) {
	if strings.TrimSpace(q.ProjectDescription) == "" {
		return
	}
	g.sectionHeader(pdf, "PROJECT DESCRIPTION")
	setTextColor(pdf, brandGray)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(contentWidth, lineHeight, tr(q.ProjectDescription), "", "L", false)
	pdf.Ln(10)
}

// itemsTable renders the scope-of-work table with a dark header row and
// alternating row shading.
func (g *Generator) itemsTable(pdf *gofpdf.Fpdf, tr func(string) string, q quote.Quote) {
	g.sectionHeader(pdf, "SCOPE OF WORK")

	headers := [6]string{"Category", "Description", "Qty", "Unit", "Rate", "Amount"}
	setFillColor(pdf, brandBlack)
	setTextColor(pdf, white)
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(itemColWidths[i], lineHeight+tableRowPad, h, "1", 0, itemColAligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	setTextColor(pdf, brandGray)
	pdf.SetFont("Helvetica", "", 9)
	for i, item := range q.IncludedItems() {
		shaded := i%2 == 1
		if shaded {
			setFillColor(pdf, brandLightGray)
		}
		cells := [6]string{
			clip(pdf, item.Category, itemColWidths[0]),
			clip(pdf, item.Description, itemColWidths[1]),
			item.Quantity,
			item.Unit,
			format.Currency(quote.ParseRate(item.Rate)),
			format.Currency(item.Amount()),
		}
		for j, cell := range cells {
			pdf.CellFormat(itemColWidths[j], lineHeight+tableRowPad, tr(cell), "1", 0, itemColAligns[j], shaded, 0, "")
		}
		pdf.Ln(-1)
	}
}

// subtotalRow right-aligns the subtotal under the amount column.
func (g *Generator) subtotalRow(pdf *gofpdf.Fpdf, totals quote.Totals) {
	pdf.Ln(4)
	var lead float64
	for _, w := range itemColWidths[:4] {
		lead += w
	}
	setTextColor(pdf, brandBlack)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetX(pageMargin + lead)
	pdf.CellFormat(itemColWidths[4], lineHeight+4, "Subtotal:", "T", 0, "R", false, 0, "")
	pdf.CellFormat(itemColWidths[5], lineHeight+4, format.Currency(totals.Subtotal), "T", 1, "R", false, 0, "")
	pdf.Ln(sectionGap)
}

// paymentSchedule renders the deposit, the weekly installments and the
// total row. Data rows are always weeks + 2.
func (g *Generator) paymentSchedule(pdf *gofpdf.Fpdf, tr func(string) string, totals quote.Totals) {
	g.sectionHeader(pdf, "PAYMENT SCHEDULE")

	headers := [3]string{"Payment", "When", "Amount"}
	setFillColor(pdf, brandBlack)
	setTextColor(pdf, white)
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		align := "L"
		if i == 2 {
			align = "R"
		}
		pdf.CellFormat(paymentColWidths[i], lineHeight+tableRowPad, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	setTextColor(pdf, brandGray)
	pdf.SetFont("Helvetica", "", 9)
	g.paymentRow(pdf, tr, "Deposit (20%)", "Upon acceptance", totals.Deposit, false)
	for week := 1; week <= totals.Weeks; week++ {
		g.paymentRow(pdf, tr, fmt.Sprintf("Payment %d", week), fmt.Sprintf("Week %d", week), totals.WeeklyPayment, week%2 == 0)
	}

	setFillColor(pdf, brandLightGray)
	setTextColor(pdf, brandBlack)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(paymentColWidths[0], lineHeight+tableRowPad, "TOTAL", "1", 0, "L", true, 0, "")
	pdf.CellFormat(paymentColWidths[1], lineHeight+tableRowPad, "", "1", 0, "L", true, 0, "")
	pdf.CellFormat(paymentColWidths[2], lineHeight+tableRowPad, format.Currency(totals.Subtotal), "1", 1, "R", true, 0, "")
	pdf.Ln(sectionGap)
}

func (g *Generator) paymentRow(pdf *gofpdf.Fpdf, tr func(string) string, payment, when string, amount float64, shaded bool) {
	if shaded {
		setFillColor(pdf, brandLightGray)
	}
	pdf.CellFormat(paymentColWidths[0], lineHeight+tableRowPad, tr(payment), "1", 0, "L", shaded, 0, "")
	pdf.CellFormat(paymentColWidths[1], lineHeight+tableRowPad, tr(when), "1", 0, "L", shaded, 0, "")
	pdf.CellFormat(paymentColWidths[2], lineHeight+tableRowPad, format.Currency(amount), "1", 1, "R", shaded, 0, "")
}

// terms renders one paragraph per non-blank notes line.
func (g *Generator) terms(pdf *gofpdf.Fpdf, tr func(string) string, q quote.Quote) {
	var lines []string
	for _, line := range strings.Split(q.Notes, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return
	}

	g.sectionHeader(pdf, "TERMS & CONDITIONS")
	setTextColor(pdf, brandGray)
	pdf.SetFont("Helvetica", "", 8)
	for _, line := range lines {
		pdf.MultiCell(contentWidth, 10, tr(line), "", "L", false)
	}
	pdf.Ln(sectionGap)
}

// signatures renders the acceptance block. Always present.
func (g *Generator) signatures(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.Ln(20)

	colWidths := [4]float64{180, 72, 180, 72}
	setTextColor(pdf, brandGray)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(colWidths[0]+colWidths[1], lineHeight, "ACCEPTED BY:", "", 0, "L", false, 0, "")
	pdf.CellFormat(colWidths[2]+colWidths[3], lineHeight, tr(g.Company.Name+":"), "", 1, "L", false, 0, "")

	pdf.Ln(24)
	rule := strings.Repeat("_", 35)
	pdf.CellFormat(colWidths[0]+colWidths[1], lineHeight, rule, "", 0, "L", false, 0, "")
	pdf.CellFormat(colWidths[2]+colWidths[3], lineHeight, rule, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(colWidths[0], 10, "Customer Signature", "", 0, "L", false, 0, "")
	pdf.CellFormat(colWidths[1], 10, "Date", "", 0, "L", false, 0, "")
	pdf.CellFormat(colWidths[2], 10, "Authorized Signature", "", 0, "L", false, 0, "")
	pdf.CellFormat(colWidths[3], 10, "Date", "", 1, "L", false, 0, "")
}

func (g *Generator) sectionHeader(pdf *gofpdf.Fpdf, title string) {
	setTextColor(pdf, brandRed)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentWidth, 14, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

// clip shortens cell text to fit its column, appending an ellipsis.
func clip(pdf *gofpdf.Fpdf, s string, width float64) string {
	limit := width - 4
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	r := []rune(s)
	for len(r) > 1 && pdf.GetStringWidth(string(r)+"...") > limit {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

func labeledLine(pdf *gofpdf.Fpdf, tr func(string) string, x float64, label, value string) {
	pdf.SetX(x)
	setTextColor(pdf, brandGray)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(pdf.GetStringWidth(label)+2, lineHeight, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, lineHeight, tr(value), "", 1, "L", false, 0, "")
}

func setTextColor(pdf *gofpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func setFillColor(pdf *gofpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
func setDrawColor(pdf *gofpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }
