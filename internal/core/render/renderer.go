// Package render projects invoices through template skins into RenderTrees.
// The five templates are fixed visual skins over one section structure: they
// differ in styling, ordering and chrome, never in visibility rules.
package render

import "github.com/invoicecraft/invoice_craft_app/internal/core/domain"

// TemplateRenderer is one template skin. Renderers are stateless; template
// selection is ambient UI state owned by the caller.
type TemplateRenderer interface {
	ID() domain.TemplateID
	Describe() string
	Render(p Projection) domain.RenderTree
}

var renderers = func() map[domain.TemplateID]TemplateRenderer {
	m := make(map[domain.TemplateID]TemplateRenderer)
	for _, r := range []TemplateRenderer{
		modernRenderer{},
		classicRenderer{},
		minimalRenderer{},
		creativeRenderer{},
		corporateRenderer{},
	} {
		m[r.ID()] = r
	}
	return m
}()

// RendererFor resolves a template id to its renderer, falling back to the
// default skin on an unknown id rather than failing the render.
func RendererFor(id domain.TemplateID) TemplateRenderer {
	if r, ok := renderers[id]; ok {
		return r
	}
	return renderers[domain.DefaultTemplateID]
}

// Renderers lists every skin in presentation order.
func Renderers() []TemplateRenderer {
	out := make([]TemplateRenderer, 0, len(renderers))
	for _, id := range domain.AllTemplateIDs() {
		out = append(out, renderers[id])
	}
	return out
}

// Project builds the RenderTree for an invoice under the given template.
// Totals on the invoice are taken as-is: callers recompute them through the
// totals engine before rendering.
func Project(inv domain.Invoice, id domain.TemplateID) domain.RenderTree {
	return RendererFor(id).Render(buildProjection(inv))
}
