package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/invoicecraft/invoice_craft_app/internal/core/pdf"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/core/render"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
	"github.com/invoicecraft/invoice_craft_app/internal/utils/invoicecalc"
)

// templateService implements the TemplateSvc interface
type templateService struct {
	BaseService
}

// NewTemplateService creates a new template service
func NewTemplateService() portssvc.TemplateSvc {
	return &templateService{}
}

var _ portssvc.TemplateSvc = (*templateService)(nil)

func (s *templateService) ListTemplates(ctx context.Context) []dto.TemplateInfoResponse {
	rs := render.Renderers()
	out := make([]dto.TemplateInfoResponse, len(rs))
	for i, r := range rs {
		out[i] = dto.TemplateInfoResponse{
			TemplateID:  string(r.ID()),
			Description: r.Describe(),
			Default:     r.ID() == domain.DefaultTemplateID,
		}
	}
	return out
}

func (s *templateService) DownloadTemplate(ctx context.Context, templateID, format string) (*dto.TemplateArtifact, error) {
	id := domain.ParseTemplateID(templateID)

	switch format {
	case dto.TemplateFormatPDF:
		return s.pdfTemplate(id)
	case dto.TemplateFormatWord:
		return s.wordPlaceholder(id)
	case dto.TemplateFormatExcel:
		return s.excelPlaceholder(id)
	default:
		return nil, apperrors.NewValidationError("format must be pdf, word or excel", "format")
	}
}

// pdfTemplate runs the real paginator over a sample invoice so the download
// shows the actual skin, not a mockup.
func (s *templateService) pdfTemplate(id domain.TemplateID) (*dto.TemplateArtifact, error) {
	tree := render.Project(sampleInvoice(), id)
	doc, err := pdf.Layout(tree)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExport, err)
	}
	return &dto.TemplateArtifact{
		Filename:    fmt.Sprintf("invoice-template-%s.pdf", id),
		ContentType: "application/pdf",
		Status:      dto.ArtifactStatusGenerated,
		Message:     "Generated from the live template renderer.",
		Data:        doc.Bytes,
	}, nil
}

func (s *templateService) wordPlaceholder(id domain.TemplateID) (*dto.TemplateArtifact, error) {
	body := fmt.Sprintf("Invoice template %q\n\nA native Word version of this template is not available yet.\nUse the PDF download for the fully rendered layout.\n", id)
	return &dto.TemplateArtifact{
		Filename:    fmt.Sprintf("invoice-template-%s.doc", id),
		ContentType: "application/msword",
		Status:      dto.ArtifactStatusPlaceholder,
		Message:     "Word generation is not implemented; a text placeholder was returned.",
		Data:        []byte(body),
	}, nil
}

// excelPlaceholder returns a valid workbook with the template's column grid.
// It is a starting point for manual editing, not the styled template, so it
// reports placeholder status.
func (s *templateService) excelPlaceholder(id domain.TemplateID) (*dto.TemplateArtifact, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("Invoice template: %s", id))
	_ = f.SetCellValue(sheet, "A2", "Fill in the rows below; amounts are quantity times rate.")

	headers := []string{"Description", "Qty", "Rate", "Amount"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 4)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrExport, err)
		}
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row := 5; row <= 14; row++ {
		formula := fmt.Sprintf("B%d*C%d", row, row)
		cell, _ := excelize.CoordinatesToCellName(4, row)
		_ = f.SetCellFormula(sheet, cell, formula)
	}
	_ = f.SetColWidth(sheet, "A", "A", 50)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExport, err)
	}

	return &dto.TemplateArtifact{
		Filename:    fmt.Sprintf("invoice-template-%s.xlsx", id),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Status:      dto.ArtifactStatusPlaceholder,
		Message:     "Excel download is a basic starter grid, not the styled template.",
		Data:        buf.Bytes(),
	}, nil
}

// sampleInvoice is the fixture every template download renders.
func sampleInvoice() domain.Invoice {
	issue := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	inv := domain.Invoice{
		InvoiceNumber: "INV-0001",
		IssueDate:     issue,
		DueDate:       issue.AddDate(0, 0, 30),
		CurrencyCode:  "USD",
		LineItems: []domain.LineItem{
			{LineItemID: "sample-1", Description: "Design work", Quantity: 10, Rate: decimal.NewFromInt(120)},
			{LineItemID: "sample-2", Description: "Development", Quantity: 24, Rate: decimal.NewFromInt(95)},
			{LineItemID: "sample-3", Description: "Project management", Quantity: 6, Rate: decimal.NewFromInt(80)},
		},
		TaxRate:      decimal.NewFromInt(10),
		DiscountRate: decimal.NewFromInt(5),
		Notes:        "Payment due within 30 days.",
		Business: domain.BusinessInfo{
			Name:    "Acme Studio",
			Email:   "billing@acme.example",
			Address: "1 Example Street\nSpringfield",
		},
		Client: domain.ClientInfo{
			Name:    "Globex Corporation",
			Email:   "accounts@globex.example",
			Address: "42 Industry Road\nShelbyville",
		},
		Banking: domain.BankingInfo{
			BankName:      "First Example Bank",
			AccountNumber: "000123456789",
			SwiftCode:     "FEBKUS33",
		},
	}
	return invoicecalc.Recompute(inv)
}
