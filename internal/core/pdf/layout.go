// Package pdf turns a RenderTree into a fixed-page-size document. The
// structured layout path draws text and table primitives onto explicit page
// coordinates with row-height bookkeeping; the raster path flattens the tree
// to a bitmap for instant single-page previews.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/jung-kurt/gofpdf"
)

// Page geometry: ISO A4 in millimetres with a uniform margin on all sides.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	margin     = 12.0

	contentWidth = pageWidth - 2*margin
	bottomLimit  = pageHeight - margin

	lineHeight    = 5.0
	rowPadding    = 2.0
	sectionGap    = 6.0
	tableColQty   = 18.0
	tableColMoney = 34.0
)

// Document is the result of a layout pass.
type Document struct {
	Bytes []byte
	Pages int
}

// Layout draws the render tree onto as many A4 pages as its line items need.
// Table rows are measured before drawing: a row that would cross the bottom
// threshold starts a new page (with a repeated table header) instead of being
// split or clipped.
func Layout(tree domain.RenderTree) (*Document, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(true, margin)
	doc.AddPage()

	l := &layouter{
		pdf:   doc,
		tree:  tree,
		style: tree.Style,
		tr:    doc.UnicodeTranslatorFromDescriptor(""),
	}
	l.draw()

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return &Document{Bytes: buf.Bytes(), Pages: doc.PageCount()}, nil
}

type layouter struct {
	pdf   *gofpdf.Fpdf
	tree  domain.RenderTree
	style domain.TemplateStyle
	tr    func(string) string
}

func (l *layouter) draw() {
	for _, kind := range l.tree.SectionOrder {
		switch kind {
		case domain.SectionHeader:
			l.drawHeader()
		case domain.SectionBillTo:
			l.drawBillTo()
		case domain.SectionItems:
			l.drawItems()
		case domain.SectionTotals:
			l.drawTotals()
		case domain.SectionNotes:
			l.drawNotes()
		case domain.SectionBanking:
			l.drawBanking()
		}
		l.pdf.Ln(sectionGap)
	}
}

func (l *layouter) setFont(styleStr string, size float64) {
	l.pdf.SetFont(l.style.FontFamily, styleStr, size)
}

func (l *layouter) setAccent() {
	l.pdf.SetTextColor(l.style.Accent.R, l.style.Accent.G, l.style.Accent.B)
}

func (l *layouter) setBodyColor() {
	l.pdf.SetTextColor(33, 33, 33)
}

// ensureSpace starts a new page when fewer than need millimetres remain.
func (l *layouter) ensureSpace(need float64) {
	if l.pdf.GetY()+need > bottomLimit {
		l.pdf.AddPage()
	}
}

func (l *layouter) drawHeader() {
	h := l.tree.Header

	fill := l.style.HeaderFill
	banded := fill.R != 255 || fill.G != 255 || fill.B != 255
	if banded {
		l.pdf.SetFillColor(fill.R, fill.G, fill.B)
		l.pdf.Rect(margin, l.pdf.GetY(), contentWidth, 24, "F")
	}

	l.pdf.SetTextColor(l.style.HeaderText.R, l.style.HeaderText.G, l.style.HeaderText.B)
	top := l.pdf.GetY() + 2
	l.pdf.SetXY(margin+2, top)
	l.setFont("B", l.style.TitleSize)
	l.pdf.CellFormat(contentWidth/2, 8, l.tr(h.BusinessName), "", 0, "L", false, 0, "")

	l.setFont("B", l.style.TitleSize-4)
	l.pdf.CellFormat(contentWidth/2-4, 8, "INVOICE", "", 1, "R", false, 0, "")

	l.setFont("", l.style.BodySize)
	l.pdf.SetX(margin + 2)
	meta := fmt.Sprintf("# %s    Issued: %s    Due: %s", h.InvoiceNumber, h.IssueDate, h.DueDate)
	l.pdf.CellFormat(contentWidth-4, lineHeight, l.tr(meta), "", 1, "R", false, 0, "")

	l.setBodyColor()
	l.pdf.SetX(margin + 2)
	contact := h.BusinessEmail
	if h.BusinessPhone != "" {
		contact += "  ·  " + h.BusinessPhone
	}
	l.pdf.CellFormat(contentWidth-4, lineHeight, l.tr(contact), "", 1, "L", false, 0, "")
	l.pdf.SetX(margin + 2)
	l.pdf.MultiCell(contentWidth-4, lineHeight, l.tr(h.BusinessAddress), "", "L", false)

	if l.style.RuleUnder {
		l.pdf.SetDrawColor(l.style.Accent.R, l.style.Accent.G, l.style.Accent.B)
		y := l.pdf.GetY() + 1
		l.pdf.Line(margin, y, pageWidth-margin, y)
		l.pdf.Ln(2)
	}
}

func (l *layouter) drawBillTo() {
	b := l.tree.BillTo
	l.ensureSpace(4 * lineHeight)

	l.setAccent()
	l.setFont("B", l.style.BodySize)
	l.pdf.CellFormat(contentWidth, lineHeight, "BILL TO", "", 1, "L", false, 0, "")

	l.setBodyColor()
	l.setFont("", l.style.BodySize)
	l.pdf.CellFormat(contentWidth, lineHeight, l.tr(b.Name), "", 1, "L", false, 0, "")
	if b.Email != "" {
		l.pdf.CellFormat(contentWidth, lineHeight, l.tr(b.Email), "", 1, "L", false, 0, "")
	}
	if b.Phone != "" {
		l.pdf.CellFormat(contentWidth, lineHeight, l.tr(b.Phone), "", 1, "L", false, 0, "")
	}
	if b.Address != "" {
		l.pdf.MultiCell(contentWidth, lineHeight, l.tr(b.Address), "", "L", false)
	}
}

func (l *layouter) descColumnWidth() float64 {
	return contentWidth - tableColQty - 2*tableColMoney
}

// itemRowHeight measures a row before it is drawn so pagination can decide
// whether it still fits on the current page.
func (l *layouter) itemRowHeight(row domain.ItemRow) float64 {
	l.setFont("", l.style.BodySize)
	lines := l.pdf.SplitLines([]byte(l.tr(row.Description)), l.descColumnWidth()-2)
	n := len(lines)
	if n < 1 {
		n = 1
	}
	return float64(n)*lineHeight + rowPadding
}

func (l *layouter) drawItemsHeader() {
	items := l.tree.Items
	l.pdf.SetFillColor(l.style.Accent.R, l.style.Accent.G, l.style.Accent.B)
	l.pdf.SetTextColor(255, 255, 255)
	l.setFont("B", l.style.BodySize)

	widths := []float64{l.descColumnWidth(), tableColQty, tableColMoney, tableColMoney}
	aligns := []string{"L", "C", "R", "R"}
	for i, col := range items.Columns {
		if l.style.UppercaseHead {
			col = strings.ToUpper(col)
		}
		l.pdf.CellFormat(widths[i], lineHeight+2, l.tr(col), "", 0, aligns[i], true, 0, "")
	}
	l.pdf.Ln(-1)
	l.setBodyColor()
}

func (l *layouter) drawItems() {
	items := l.tree.Items
	l.ensureSpace(3*lineHeight + rowPadding)
	l.drawItemsHeader()

	descW := l.descColumnWidth()
	for i, row := range items.Rows {
		rowH := l.itemRowHeight(row)

		// Never split a row across the page boundary.
		if l.pdf.GetY()+rowH > bottomLimit {
			l.pdf.AddPage()
			l.drawItemsHeader()
		}

		x := margin
		y := l.pdf.GetY()

		if l.style.TableStripe && i%2 == 1 {
			l.pdf.SetFillColor(245, 245, 245)
			l.pdf.Rect(margin, y, contentWidth, rowH, "F")
		}

		l.setFont("", l.style.BodySize)
		l.pdf.SetXY(x, y+rowPadding/2)
		l.pdf.MultiCell(descW, lineHeight, l.tr(row.Description), "", "L", false)

		l.pdf.SetXY(x+descW, y+rowPadding/2)
		l.pdf.CellFormat(tableColQty, lineHeight, row.Quantity, "", 0, "C", false, 0, "")
		l.pdf.CellFormat(tableColMoney, lineHeight, l.tr(row.Rate), "", 0, "R", false, 0, "")
		l.pdf.CellFormat(tableColMoney, lineHeight, l.tr(row.Amount), "", 0, "R", false, 0, "")

		l.pdf.SetXY(margin, y+rowH)
	}

	l.pdf.SetDrawColor(200, 200, 200)
	l.pdf.Line(margin, l.pdf.GetY(), pageWidth-margin, l.pdf.GetY())
}

func (l *layouter) drawTotals() {
	totals := l.tree.Totals
	blockH := float64(len(totals.Rows))*(lineHeight+rowPadding) + rowPadding
	l.ensureSpace(blockH)

	labelW := contentWidth - tableColMoney - 60
	for _, row := range totals.Rows {
		if row.Emphasized {
			l.setFont("B", l.style.BodySize+2)
			l.setAccent()
		} else {
			l.setFont("", l.style.BodySize)
			l.setBodyColor()
		}
		l.pdf.SetX(margin + 60)
		l.pdf.CellFormat(labelW, lineHeight+rowPadding, l.tr(row.Label), "", 0, "R", false, 0, "")
		l.pdf.CellFormat(tableColMoney, lineHeight+rowPadding, l.tr(row.Amount), "", 1, "R", false, 0, "")
	}
	l.setBodyColor()
}

func (l *layouter) drawNotes() {
	notes := l.tree.Notes
	if notes == nil {
		return
	}
	l.ensureSpace(3 * lineHeight)

	l.setAccent()
	l.setFont("B", l.style.BodySize)
	l.pdf.CellFormat(contentWidth, lineHeight, "NOTES", "", 1, "L", false, 0, "")

	l.setBodyColor()
	l.setFont("", l.style.BodySize)
	l.pdf.MultiCell(contentWidth, lineHeight, l.tr(notes.Text), "", "L", false)
}

func (l *layouter) drawBanking() {
	banking := l.tree.Banking
	if banking == nil {
		return
	}
	l.ensureSpace(6 * lineHeight)

	l.setAccent()
	l.setFont("B", l.style.BodySize)
	l.pdf.CellFormat(contentWidth, lineHeight, "PAYMENT DETAILS", "", 1, "L", false, 0, "")

	l.setBodyColor()
	l.setFont("", l.style.BodySize)
	rows := [][2]string{
		{"Bank", banking.BankName},
		{"Account", banking.AccountNumber},
		{"SWIFT", banking.SwiftCode},
	}
	if banking.IBAN != "" {
		rows = append(rows, [2]string{"IBAN", banking.IBAN})
	}
	for _, r := range rows {
		l.pdf.CellFormat(30, lineHeight, r[0], "", 0, "L", false, 0, "")
		l.pdf.CellFormat(contentWidth-30, lineHeight, l.tr(r[1]), "", 1, "L", false, 0, "")
	}
}
