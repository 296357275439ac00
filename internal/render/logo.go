package render

import "github.com/jung-kurt/gofpdf"

// Logo box dimensions in points.
const (
	logoWidth  = 120.0
	logoHeight = 55.0
)

// drawLogo draws the company mark: a red roof chevron over the mark text
// with the tagline underneath.
func (g *Generator) drawLogo(pdf *gofpdf.Fpdf, x, y float64) {
	const (
		roofWidth  = 56.0
		roofHeight = 14.0
	)
	roofX := x + (logoWidth-roofWidth)/2
	baseY := y + 2 + roofHeight

	setFillColor(pdf, brandRed)
	setDrawColor(pdf, brandRed)
	pdf.Polygon([]gofpdf.PointType{
		{X: roofX, Y: baseY},
		{X: roofX + roofWidth/2, Y: baseY - roofHeight},
		{X: roofX + roofWidth, Y: baseY},
		{X: roofX + roofWidth - 6, Y: baseY},
		{X: roofX + roofWidth/2, Y: baseY - roofHeight + 6},
		{X: roofX + 6, Y: baseY},
	}, "F")

	setTextColor(pdf, brandBlack)
	pdf.SetFont("Helvetica", "B", 24)
	markWidth := pdf.GetStringWidth(g.Company.Mark)
	pdf.Text(x+(logoWidth-markWidth)/2, y+38, g.Company.Mark)

	setTextColor(pdf, brandRed)
	pdf.SetFont("Helvetica", "", 10)
	tagWidth := pdf.GetStringWidth(g.Company.Tagline)
	pdf.Text(x+(logoWidth-tagWidth)/2, y+50, g.Company.Tagline)
}
