package render

import "github.com/invoicecraft/invoice_craft_app/internal/core/domain"

// modernRenderer is the default skin: blue accent, striped table, sans face.
type modernRenderer struct{}

func (modernRenderer) ID() domain.TemplateID { return domain.TemplateModern }

func (modernRenderer) Describe() string {
	return "Clean sans-serif layout with a blue accent and striped item rows"
}

func (modernRenderer) Render(p Projection) domain.RenderTree {
	style := domain.TemplateStyle{
		Accent:      domain.RGB{R: 37, G: 99, B: 235},
		HeaderFill:  domain.RGB{R: 239, G: 246, B: 255},
		HeaderText:  domain.RGB{R: 30, G: 58, B: 138},
		TableStripe: true,
		FontFamily:  "Helvetica",
		TitleSize:   20,
		BodySize:    10,
	}
	order := []domain.SectionKind{
		domain.SectionHeader,
		domain.SectionBillTo,
		domain.SectionItems,
		domain.SectionTotals,
		domain.SectionNotes,
		domain.SectionBanking,
	}
	return assemble(domain.TemplateModern, style, order, p)
}
