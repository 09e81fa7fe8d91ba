package render

import "github.com/invoicecraft/invoice_craft_app/internal/core/domain"

// creativeRenderer leads with the notes block and uses a violet accent with
// uppercase table headers.
type creativeRenderer struct{}

func (creativeRenderer) ID() domain.TemplateID { return domain.TemplateCreative }

func (creativeRenderer) Describe() string {
	return "Violet-accented layout that leads with the notes block"
}

func (creativeRenderer) Render(p Projection) domain.RenderTree {
	style := domain.TemplateStyle{
		Accent:        domain.RGB{R: 124, G: 58, B: 237},
		HeaderFill:    domain.RGB{R: 245, G: 243, B: 255},
		HeaderText:    domain.RGB{R: 76, G: 29, B: 149},
		TableStripe:   true,
		UppercaseHead: true,
		FontFamily:    "Helvetica",
		TitleSize:     22,
		BodySize:      10,
	}
	order := []domain.SectionKind{
		domain.SectionHeader,
		domain.SectionBillTo,
		domain.SectionNotes,
		domain.SectionItems,
		domain.SectionTotals,
		domain.SectionBanking,
	}
	return assemble(domain.TemplateCreative, style, order, p)
}
