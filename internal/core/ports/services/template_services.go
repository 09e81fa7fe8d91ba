package services

import (
	"context"

	"github.com/invoicecraft/invoice_craft_app/internal/dto"
)

// TemplateSvc exposes the template catalogue and starter downloads
type TemplateSvc interface {
	// ListTemplates returns the available invoice template styles.
	ListTemplates(ctx context.Context) []dto.TemplateInfoResponse

	// DownloadTemplate produces a starter artifact for the given template and
	// format. Formats without a real generator return a placeholder artifact.
	DownloadTemplate(ctx context.Context, templateID, format string) (*dto.TemplateArtifact, error)
}
