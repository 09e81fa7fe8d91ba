package render

import "github.com/invoicecraft/invoice_craft_app/internal/core/domain"

// classicRenderer is a traditional serif skin with ruled separators and the
// banking block kept next to the totals.
type classicRenderer struct{}

func (classicRenderer) ID() domain.TemplateID { return domain.TemplateClassic }

func (classicRenderer) Describe() string {
	return "Traditional serif layout with ruled separators"
}

func (classicRenderer) Render(p Projection) domain.RenderTree {
	style := domain.TemplateStyle{
		Accent:     domain.RGB{R: 120, G: 53, B: 15},
		HeaderFill: domain.RGB{R: 255, G: 255, B: 255},
		HeaderText: domain.RGB{R: 41, G: 37, B: 36},
		RuleUnder:  true,
		FontFamily: "Times",
		TitleSize:  18,
		BodySize:   10,
	}
	order := []domain.SectionKind{
		domain.SectionHeader,
		domain.SectionBillTo,
		domain.SectionItems,
		domain.SectionTotals,
		domain.SectionBanking,
		domain.SectionNotes,
	}
	return assemble(domain.TemplateClassic, style, order, p)
}
