package render_test

import (
	"testing"
	"time"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/invoicecraft/invoice_craft_app/internal/core/render"
	"github.com/invoicecraft/invoice_craft_app/internal/utils/invoicecalc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func fixtureInvoice() domain.Invoice {
	inv := domain.Invoice{
		InvoiceID:     "inv-1",
		InvoiceNumber: "INV-0042",
		IssueDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		CurrencyCode:  "USD",
		LineItems: []domain.LineItem{
			{LineItemID: "li-1", Description: "Design work", Quantity: 2, Rate: dec("500")},
			{LineItemID: "li-2", Description: "Hosting", Quantity: 5, Rate: dec("100")},
		},
		TaxRate:      dec("20"),
		DiscountRate: decimal.Zero,
		Notes:        "Payment due within 30 days.",
		Business: domain.BusinessInfo{
			Name:    "Acme Studio",
			Email:   "billing@acme.example",
			Address: "1 Main St\nSpringfield",
		},
		Client: domain.ClientInfo{
			Name:    "Globex Corp",
			Email:   "ap@globex.example",
			Address: "742 Evergreen Terrace",
		},
		Banking: domain.BankingInfo{
			BankName:      "First National",
			AccountNumber: "12345678",
			SwiftCode:     "FNBKUS33",
			IBAN:          "US00 1234 5678",
		},
	}
	return invoicecalc.Recompute(inv)
}

func totalsLabels(tree domain.RenderTree) []string {
	labels := make([]string, 0, len(tree.Totals.Rows))
	for _, row := range tree.Totals.Rows {
		labels = append(labels, row.Label)
	}
	return labels
}

func TestProject_TotalsRows(t *testing.T) {
	inv := fixtureInvoice()

	tree := render.Project(inv, domain.TemplateModern)

	require.NotNil(t, tree.Totals)
	assert.Equal(t, []string{"Subtotal", "Tax (20%)", "Total"}, totalsLabels(tree))
	assert.Equal(t, "$1500.00", tree.Totals.Rows[0].Amount)
	assert.Equal(t, "$300.00", tree.Totals.Rows[1].Amount)
	assert.Equal(t, "$1800.00", tree.Totals.Rows[2].Amount)
	assert.True(t, tree.Totals.Rows[2].Emphasized)
	assert.False(t, tree.Totals.Rows[0].Emphasized)
}

func TestProject_DiscountRowAppearsWithDiscountRate(t *testing.T) {
	inv := fixtureInvoice()
	inv.DiscountRate = dec("10")
	inv.TaxRate = dec("15")
	inv.LineItems = []domain.LineItem{
		{LineItemID: "li-1", Description: "Consulting", Quantity: 1, Rate: dec("2300")},
	}
	inv = invoicecalc.Recompute(inv)

	tree := render.Project(inv, domain.TemplateModern)

	assert.Equal(t, []string{"Subtotal", "Discount (10%)", "Tax (15%)", "Total"}, totalsLabels(tree))
	assert.Equal(t, "$230.00", tree.Totals.Rows[1].Amount)
	assert.Equal(t, "$310.50", tree.Totals.Rows[2].Amount)
	assert.Equal(t, "$2380.50", tree.Totals.Rows[3].Amount)
}

func TestProject_ZeroRatesOmitRows(t *testing.T) {
	inv := fixtureInvoice()
	inv.TaxRate = decimal.Zero
	inv.DiscountRate = decimal.Zero
	inv = invoicecalc.Recompute(inv)

	tree := render.Project(inv, domain.TemplateModern)

	assert.Equal(t, []string{"Subtotal", "Total"}, totalsLabels(tree))
}

func TestProject_NotesVisibility(t *testing.T) {
	inv := fixtureInvoice()
	inv.Notes = ""

	tree := render.Project(inv, domain.TemplateModern)

	assert.Nil(t, tree.Notes)
	assert.NotContains(t, tree.SectionOrder, domain.SectionNotes)

	inv.Notes = "Thank you!"
	tree = render.Project(inv, domain.TemplateModern)

	require.NotNil(t, tree.Notes)
	assert.Equal(t, "Thank you!", tree.Notes.Text)
	assert.Contains(t, tree.SectionOrder, domain.SectionNotes)
}

func TestProject_BankingOnlyWithCompleteTrio(t *testing.T) {
	inv := fixtureInvoice()
	inv.Banking = domain.BankingInfo{BankName: "First National", IBAN: "US00"}

	tree := render.Project(inv, domain.TemplateModern)

	assert.Nil(t, tree.Banking)
	assert.NotContains(t, tree.SectionOrder, domain.SectionBanking)

	inv.Banking = domain.BankingInfo{
		BankName:      "First National",
		AccountNumber: "12345678",
		SwiftCode:     "FNBKUS33",
	}
	tree = render.Project(inv, domain.TemplateModern)

	require.NotNil(t, tree.Banking)
	assert.Equal(t, "First National", tree.Banking.BankName)
	assert.Contains(t, tree.SectionOrder, domain.SectionBanking)
}

func TestProject_ItemRowsFormatted(t *testing.T) {
	inv := fixtureInvoice()

	tree := render.Project(inv, domain.TemplateModern)

	require.NotNil(t, tree.Items)
	assert.Equal(t, []string{"Description", "Qty", "Rate", "Amount"}, tree.Items.Columns)
	require.Len(t, tree.Items.Rows, 2)
	assert.Equal(t, domain.ItemRow{
		Description: "Design work",
		Quantity:    "2",
		Rate:        "$500.00",
		Amount:      "$1000.00",
	}, tree.Items.Rows[0])
}

func TestProject_HeaderDates(t *testing.T) {
	tree := render.Project(fixtureInvoice(), domain.TemplateModern)

	require.NotNil(t, tree.Header)
	assert.Equal(t, "INV-0042", tree.Header.InvoiceNumber)
	assert.Equal(t, "Mar 01, 2026", tree.Header.IssueDate)
	assert.Equal(t, "Mar 31, 2026", tree.Header.DueDate)
}

func TestProject_SectionOrderPerTemplate(t *testing.T) {
	inv := fixtureInvoice() // notes and complete banking, so all sections render

	tests := []struct {
		id   domain.TemplateID
		want []domain.SectionKind
	}{
		{domain.TemplateModern, []domain.SectionKind{
			domain.SectionHeader, domain.SectionBillTo, domain.SectionItems,
			domain.SectionTotals, domain.SectionNotes, domain.SectionBanking,
		}},
		{domain.TemplateClassic, []domain.SectionKind{
			domain.SectionHeader, domain.SectionBillTo, domain.SectionItems,
			domain.SectionTotals, domain.SectionBanking, domain.SectionNotes,
		}},
		{domain.TemplateMinimal, []domain.SectionKind{
			domain.SectionHeader, domain.SectionBillTo, domain.SectionItems,
			domain.SectionTotals, domain.SectionNotes, domain.SectionBanking,
		}},
		{domain.TemplateCreative, []domain.SectionKind{
			domain.SectionHeader, domain.SectionBillTo, domain.SectionNotes,
			domain.SectionItems, domain.SectionTotals, domain.SectionBanking,
		}},
		{domain.TemplateCorporate, []domain.SectionKind{
			domain.SectionHeader, domain.SectionBillTo, domain.SectionItems,
			domain.SectionTotals, domain.SectionBanking, domain.SectionNotes,
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			tree := render.Project(inv, tt.id)
			assert.Equal(t, tt.id, tree.TemplateID)
			assert.Equal(t, tt.want, tree.SectionOrder)
		})
	}
}

func TestRendererFor_UnknownFallsBackToDefault(t *testing.T) {
	r := render.RendererFor(domain.TemplateID("vaporwave"))
	assert.Equal(t, domain.DefaultTemplateID, r.ID())

	tree := render.Project(fixtureInvoice(), domain.TemplateID("vaporwave"))
	assert.Equal(t, domain.TemplateModern, tree.TemplateID)
}

func TestRenderers_PresentationOrder(t *testing.T) {
	list := render.Renderers()
	require.Len(t, list, 5)
	ids := make([]domain.TemplateID, len(list))
	for i, r := range list {
		ids[i] = r.ID()
		assert.NotEmpty(t, r.Describe())
	}
	assert.Equal(t, domain.AllTemplateIDs(), ids)
}

func TestProject_UnknownCurrencyFallsBackToCode(t *testing.T) {
	inv := fixtureInvoice()
	inv.CurrencyCode = "ZZZ"

	tree := render.Project(inv, domain.TemplateModern)

	assert.Equal(t, "ZZZ1500.00", tree.Totals.Rows[0].Amount)
}
