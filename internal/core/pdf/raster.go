package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster canvas at roughly 150dpi A4. The preview path is single-page by
// contract: content past the canvas bottom is clipped, which is the accepted
// limitation of rasterize-and-place.
const (
	canvasWidth   = 1240
	canvasHeight  = 1754
	canvasMargin  = 70
	canvasLine    = 18
	canvasHeading = 26
)

// RasterPreview flattens the render tree onto a bitmap, fits it into the A4
// content box and places it on a single PDF page. It trades multi-page
// correctness for speed; long invoices come out visually truncated.
func RasterPreview(tree domain.RenderTree) (*Document, error) {
	bitmap := rasterize(tree)

	// Bound the bitmap to the content box at the page's pixel density and
	// re-encode; Fit preserves aspect ratio.
	fitted := imaging.Fit(bitmap, canvasWidth, canvasHeight, imaging.Lanczos)

	var img bytes.Buffer
	if err := png.Encode(&img, fitted); err != nil {
		return nil, fmt.Errorf("encode preview bitmap: %w", err)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(margin, margin, margin)
	doc.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("preview", opts, &img)

	// Scale to content width and center vertically on the single page.
	w := contentWidth
	h := w * float64(fitted.Bounds().Dy()) / float64(fitted.Bounds().Dx())
	if h > pageHeight-2*margin {
		h = pageHeight - 2*margin
		w = h * float64(fitted.Bounds().Dx()) / float64(fitted.Bounds().Dy())
	}
	x := (pageWidth - w) / 2
	y := (pageHeight - h) / 2
	doc.ImageOptions("preview", x, y, w, h, false, opts, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return &Document{Bytes: buf.Bytes(), Pages: doc.PageCount()}, nil
}

type rasterCanvas struct {
	img  *image.RGBA
	y    int
	face font.Face
}

func rasterize(tree domain.RenderTree) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	c := &rasterCanvas{img: img, y: canvasMargin, face: basicfont.Face7x13}
	accent := color.RGBA{uint8(tree.Style.Accent.R), uint8(tree.Style.Accent.G), uint8(tree.Style.Accent.B), 255}
	body := color.RGBA{33, 33, 33, 255}

	for _, kind := range tree.SectionOrder {
		switch kind {
		case domain.SectionHeader:
			h := tree.Header
			c.text(h.BusinessName, accent, canvasHeading)
			c.text("INVOICE  # "+h.InvoiceNumber, body, canvasLine)
			c.text("Issued: "+h.IssueDate+"   Due: "+h.DueDate, body, canvasLine)
			c.multiline(h.BusinessAddress, body)
		case domain.SectionBillTo:
			b := tree.BillTo
			c.gap()
			c.text("BILL TO", accent, canvasLine)
			c.text(b.Name, body, canvasLine)
			if b.Email != "" {
				c.text(b.Email, body, canvasLine)
			}
			c.multiline(b.Address, body)
		case domain.SectionItems:
			c.gap()
			c.text(strings.Join(tree.Items.Columns, "  |  "), accent, canvasLine)
			for _, row := range tree.Items.Rows {
				c.text(row.Description+"  "+row.Quantity+"  "+row.Rate+"  "+row.Amount, body, canvasLine)
			}
		case domain.SectionTotals:
			c.gap()
			for _, row := range tree.Totals.Rows {
				col := body
				if row.Emphasized {
					col = accent
				}
				c.text(row.Label+"  "+row.Amount, col, canvasLine)
			}
		case domain.SectionNotes:
			c.gap()
			c.text("NOTES", accent, canvasLine)
			c.multiline(tree.Notes.Text, body)
		case domain.SectionBanking:
			b := tree.Banking
			c.gap()
			c.text("PAYMENT DETAILS", accent, canvasLine)
			c.text("Bank: "+b.BankName, body, canvasLine)
			c.text("Account: "+b.AccountNumber, body, canvasLine)
			c.text("SWIFT: "+b.SwiftCode, body, canvasLine)
			if b.IBAN != "" {
				c.text("IBAN: "+b.IBAN, body, canvasLine)
			}
		}
	}

	return img
}

func (c *rasterCanvas) gap() {
	c.y += canvasLine
}

// text draws one line and advances the cursor; lines past the canvas bottom
// are dropped, which is the raster path's documented clipping behavior.
func (c *rasterCanvas) text(s string, col color.RGBA, advance int) {
	if c.y > canvasHeight-canvasMargin {
		return
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(canvasMargin, c.y),
	}
	d.DrawString(s)
	c.y += advance
}

func (c *rasterCanvas) multiline(s string, col color.RGBA) {
	for _, line := range strings.Split(s, "\n") {
		if line == "" {
			continue
		}
		c.text(line, col, canvasLine)
	}
}
