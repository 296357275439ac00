package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/tbg-enterprises/quote-builder/internal/quote"
	"github.com/tbg-enterprises/quote-builder/pkg/constants"
)

// Attachment content box in points.
const (
	attachmentMaxWidth  = constants.AttachmentMaxWidthInches * 72
	attachmentMaxHeight = constants.AttachmentMaxHeightInches * 72
)

// attachmentPages appends one section per attachment, starting on a fresh
// page. An attachment that cannot be embedded degrades to an inline notice;
// it never aborts the rest of the document.
func (g *Generator) attachmentPages(pdf *gofpdf.Fpdf, tr func(string) string, q quote.Quote) {
	if len(q.Attachments) == 0 {
		return
	}

	pdf.AddPage()
	g.sectionHeader(pdf, "ATTACHED PLANS & DOCUMENTS")
	pdf.Ln(10)

	for i, path := range q.Attachments {
		name := filepath.Base(path)

		setTextColor(pdf, brandBlack)
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(contentWidth, 10, tr(fmt.Sprintf("Attachment %d: %s", i+1, name)), "", 1, "L", false, 0, "")
		pdf.Ln(5)

		var err error
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".jpg", ".jpeg", ".png":
			err = g.embedImage(pdf, path, ext)
		case ".pdf":
			err = g.embedPagedDocument(pdf, tr, path, name)
		default:
			err = fmt.Errorf("unsupported attachment type %q", ext)
		}
		if err != nil {
			g.Logger.Warn("could not embed attachment",
				zap.String("op", "render.attachmentPages"),
				zap.String("file", name),
				zap.Error(err),
			)
			g.embedNotice(pdf, tr, err)
			continue
		}
		pdf.Ln(20)
	}
}

func (g *Generator) embedImage(pdf *gofpdf.Fpdf, path, ext string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return g.placeImage(pdf, path, imageType(ext), data)
}

// embedPagedDocument rasterizes every page of the document through the
// injected capability and embeds each as a full-page image. Pages after the
// first carry a page label.
func (g *Generator) embedPagedDocument(pdf *gofpdf.Fpdf, tr func(string) string, path, name string) error {
	pages, err := g.Rasterizer.PageCount(path)
	if err != nil {
		return err
	}

	for page := 0; page < pages; page++ {
		data, err := g.Rasterizer.RasterizePage(path, page, constants.AttachmentDPI)
		if err != nil {
			return err
		}
		if page > 0 {
			setTextColor(pdf, brandGray)
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(contentWidth, 10, tr(fmt.Sprintf("(Page %d of %s)", page+1, name)), "", 1, "L", false, 0, "")
		}
		imgName := fmt.Sprintf("%s#page%d", path, page)
		if err := g.placeImage(pdf, imgName, "PNG", data); err != nil {
			return err
		}
		pdf.Ln(10)
	}
	return nil
}

// placeImage embeds one raster image scaled to fit the attachment content
// box, never enlarged past 1:1.
func (g *Generator) placeImage(pdf *gofpdf.Fpdf, name, imgType string, data []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return fmt.Errorf("image has no pixels")
	}

	scale := attachmentMaxWidth / float64(cfg.Width)
	if s := attachmentMaxHeight / float64(cfg.Height); s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}
	w := float64(cfg.Width) * scale
	h := float64(cfg.Height) * scale

	opts := gofpdf.ImageOptions{ImageType: imgType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if pdf.Err() {
		err := pdf.Error()
		pdf.ClearError()
		return err
	}

	pdf.ImageOptions(name, pageMargin, 0, w, h, true, opts, 0, "")
	if pdf.Err() {
		err := pdf.Error()
		pdf.ClearError()
		return err
	}
	return nil
}

func (g *Generator) embedNotice(pdf *gofpdf.Fpdf, tr func(string) string, cause error) {
	setTextColor(pdf, brandGray)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(contentWidth, 10, tr(fmt.Sprintf("Could not embed attachment: %v", cause)), "", "L", false)
	pdf.Ln(10)
}

func imageType(ext string) string {
	if ext == ".png" {
		return "PNG"
	}
	return "JPG"
}
