package dto

// Export modes select the paginator path. Layout is the structured,
// multi-page-correct default; preview is the single-page raster path with a
// known clipping limitation on long invoices.
const (
	ExportModeLayout  = "layout"
	ExportModePreview = "preview"
)

// ExportInvoiceRequest selects the template and paginator path for an export.
type ExportInvoiceRequest struct {
	TemplateID string `json:"templateID"`
	Mode       string `json:"mode" binding:"omitempty,oneof=layout preview"`
}

// ExportDraftRequest exports an unsaved draft: the full invoice payload plus
// the export selection.
type ExportDraftRequest struct {
	Invoice SaveInvoiceRequest `json:"invoice" binding:"required"`
	Mode    string             `json:"mode" binding:"omitempty,oneof=layout preview"`
}

// ExportArtifact is the produced document plus delivery metadata.
type ExportArtifact struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Pages       int    `json:"pages"`
	Mode        string `json:"mode"`
	Data        []byte `json:"-"`
}
