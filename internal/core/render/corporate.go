package render

import "github.com/invoicecraft/invoice_craft_app/internal/core/domain"

// corporateRenderer uses a filled navy header band and keeps banking details
// directly under the totals block.
type corporateRenderer struct{}

func (corporateRenderer) ID() domain.TemplateID { return domain.TemplateCorporate }

func (corporateRenderer) Describe() string {
	return "Navy header band with banking details under the totals"
}

func (corporateRenderer) Render(p Projection) domain.RenderTree {
	style := domain.TemplateStyle{
		Accent:        domain.RGB{R: 15, G: 23, B: 42},
		HeaderFill:    domain.RGB{R: 15, G: 23, B: 42},
		HeaderText:    domain.RGB{R: 248, G: 250, B: 252},
		RuleUnder:     true,
		UppercaseHead: true,
		FontFamily:    "Helvetica",
		TitleSize:     18,
		BodySize:      10,
	}
	order := []domain.SectionKind{
		domain.SectionHeader,
		domain.SectionBillTo,
		domain.SectionItems,
		domain.SectionTotals,
		domain.SectionBanking,
		domain.SectionNotes,
	}
	return assemble(domain.TemplateCorporate, style, order, p)
}
