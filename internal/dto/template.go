package dto

// Template download formats and statuses. The status field is how callers
// distinguish a fully realized document from a placeholder pending full
// implementation.
const (
	TemplateFormatPDF   = "pdf"
	TemplateFormatWord  = "word"
	TemplateFormatExcel = "excel"

	ArtifactStatusGenerated   = "generated"
	ArtifactStatusPlaceholder = "placeholder"
)

// TemplateInfoResponse describes one template skin.
type TemplateInfoResponse struct {
	TemplateID  string `json:"templateID"`
	Description string `json:"description"`
	Default     bool   `json:"default"`
}

// TemplateArtifact is a template download: either a real document (status
// "generated") or a clearly labeled placeholder (status "placeholder").
type TemplateArtifact struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Status      string `json:"status"`
	Message     string `json:"message"`
	Data        []byte `json:"-"`
}
