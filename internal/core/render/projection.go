package render

import (
	"strconv"

	"github.com/invoicecraft/invoice_craft_app/internal/core/currencies"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/invoicecraft/invoice_craft_app/internal/utils"
)

const dateLayout = "Jan 02, 2006"

// Projection is the template-agnostic section set built once per render.
// Conditional visibility lives here and only here: discount/tax rows appear
// iff their rate is non-zero, notes iff non-empty, banking iff the trio is
// complete. Template skins arrange and style these sections; they never
// re-decide visibility.
type Projection struct {
	Header  domain.HeaderSection
	BillTo  domain.BillToSection
	Items   domain.ItemsSection
	Totals  domain.TotalsSection
	Notes   *domain.NotesSection
	Banking *domain.BankingSection
}

// buildProjection formats an invoice into sections. An unknown currency code
// falls back to a code-as-symbol display currency rather than failing.
func buildProjection(inv domain.Invoice) Projection {
	currency := currencies.ResolveOrDefault(inv.CurrencyCode)

	p := Projection{
		Header: domain.HeaderSection{
			BusinessName:    inv.Business.Name,
			BusinessEmail:   inv.Business.Email,
			BusinessAddress: inv.Business.Address,
			BusinessPhone:   inv.Business.Phone,
			LogoURL:         inv.Business.LogoURL,
			InvoiceNumber:   inv.InvoiceNumber,
			IssueDate:       inv.IssueDate.Format(dateLayout),
			DueDate:         inv.DueDate.Format(dateLayout),
		},
		BillTo: domain.BillToSection{
			Name:    inv.Client.Name,
			Email:   inv.Client.Email,
			Address: inv.Client.Address,
			Phone:   inv.Client.Phone,
		},
	}

	p.Items = domain.ItemsSection{
		Columns: []string{"Description", "Qty", "Rate", "Amount"},
		Rows:    make([]domain.ItemRow, 0, len(inv.LineItems)),
	}
	for _, item := range inv.LineItems {
		p.Items.Rows = append(p.Items.Rows, domain.ItemRow{
			Description: item.Description,
			Quantity:    strconv.FormatInt(item.Quantity, 10),
			Rate:        utils.FormatAmount(item.Rate, currency),
			Amount:      utils.FormatAmount(item.Amount, currency),
		})
	}

	rows := []domain.TotalsRow{
		{Label: "Subtotal", Amount: utils.FormatAmount(inv.Totals.Subtotal, currency)},
	}
	if !inv.DiscountRate.IsZero() {
		rows = append(rows, domain.TotalsRow{
			Label:  "Discount (" + inv.DiscountRate.String() + "%)",
			Amount: utils.FormatAmount(inv.Totals.DiscountAmount, currency),
		})
	}
	if !inv.TaxRate.IsZero() {
		rows = append(rows, domain.TotalsRow{
			Label:  "Tax (" + inv.TaxRate.String() + "%)",
			Amount: utils.FormatAmount(inv.Totals.TaxAmount, currency),
		})
	}
	rows = append(rows, domain.TotalsRow{
		Label:      "Total",
		Amount:     utils.FormatAmount(inv.Totals.Total, currency),
		Emphasized: true,
	})
	p.Totals = domain.TotalsSection{Rows: rows}

	if inv.Notes != "" {
		p.Notes = &domain.NotesSection{Text: inv.Notes}
	}
	if inv.Banking.HasCompleteTrio() {
		p.Banking = &domain.BankingSection{
			BankName:      inv.Banking.BankName,
			AccountNumber: inv.Banking.AccountNumber,
			SwiftCode:     inv.Banking.SwiftCode,
			IBAN:          inv.Banking.IBAN,
		}
	}

	return p
}

// assemble builds a RenderTree from a projection, keeping only the sections
// present and the order the skin asked for.
func assemble(id domain.TemplateID, style domain.TemplateStyle, order []domain.SectionKind, p Projection) domain.RenderTree {
	tree := domain.RenderTree{
		TemplateID: id,
		Style:      style,
		Header:     &p.Header,
		BillTo:     &p.BillTo,
		Items:      &p.Items,
		Totals:     &p.Totals,
		Notes:      p.Notes,
		Banking:    p.Banking,
	}

	tree.SectionOrder = make([]domain.SectionKind, 0, len(order))
	for _, kind := range order {
		switch kind {
		case domain.SectionNotes:
			if p.Notes == nil {
				continue
			}
		case domain.SectionBanking:
			if p.Banking == nil {
				continue
			}
		}
		tree.SectionOrder = append(tree.SectionOrder, kind)
	}

	return tree
}
