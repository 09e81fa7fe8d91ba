package render

import "github.com/invoicecraft/invoice_craft_app/internal/core/domain"

// minimalRenderer strips the chrome: monochrome, no fills, no stripes.
type minimalRenderer struct{}

func (minimalRenderer) ID() domain.TemplateID { return domain.TemplateMinimal }

func (minimalRenderer) Describe() string {
	return "Monochrome layout with no decorative chrome"
}

func (minimalRenderer) Render(p Projection) domain.RenderTree {
	style := domain.TemplateStyle{
		Accent:     domain.RGB{R: 23, G: 23, B: 23},
		HeaderFill: domain.RGB{R: 255, G: 255, B: 255},
		HeaderText: domain.RGB{R: 23, G: 23, B: 23},
		FontFamily: "Helvetica",
		TitleSize:  14,
		BodySize:   9,
	}
	order := []domain.SectionKind{
		domain.SectionHeader,
		domain.SectionBillTo,
		domain.SectionItems,
		domain.SectionTotals,
		domain.SectionNotes,
		domain.SectionBanking,
	}
	return assemble(domain.TemplateMinimal, style, order, p)
}
