package domain

// TemplateID identifies one of the fixed template skins. Selecting a
// template never mutates invoice data; it only picks the renderer.
type TemplateID string

const (
	TemplateModern    TemplateID = "modern"
	TemplateClassic   TemplateID = "classic"
	TemplateMinimal   TemplateID = "minimal"
	TemplateCreative  TemplateID = "creative"
	TemplateCorporate TemplateID = "corporate"
)

// DefaultTemplateID is the fallback for unrecognized identifiers.
const DefaultTemplateID = TemplateModern

// AllTemplateIDs lists the closed set in presentation order.
func AllTemplateIDs() []TemplateID {
	return []TemplateID{
		TemplateModern,
		TemplateClassic,
		TemplateMinimal,
		TemplateCreative,
		TemplateCorporate,
	}
}

// ParseTemplateID resolves an identifier to a known template, falling back to
// the default rather than failing on unknown input.
func ParseTemplateID(s string) TemplateID {
	switch TemplateID(s) {
	case TemplateModern, TemplateClassic, TemplateMinimal, TemplateCreative, TemplateCorporate:
		return TemplateID(s)
	}
	return DefaultTemplateID
}
