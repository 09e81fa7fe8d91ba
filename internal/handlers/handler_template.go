package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
	"github.com/invoicecraft/invoice_craft_app/internal/middleware"
)

// templateHandler handles HTTP requests related to invoice templates.
type templateHandler struct {
	templateService portssvc.TemplateSvc
}

func newTemplateHandler(ts portssvc.TemplateSvc) *templateHandler {
	return &templateHandler{templateService: ts}
}

// registerTemplateRoutes registers routes related to templates.
func registerTemplateRoutes(rg *gin.RouterGroup, templateService portssvc.TemplateSvc, exportLimiter *limiter.Limiter) {
	h := newTemplateHandler(templateService)

	templates := rg.Group("/templates")
	{
		templates.GET("", h.listTemplates)
		templates.GET("/:id/download", middleware.RateLimit(exportLimiter), h.downloadTemplate)
	}
}

// listTemplates godoc
// @Summary List invoice templates
// @Description Lists the available template skins and which one is the default
// @Tags templates
// @Produce json
// @Success 200 {array} dto.TemplateInfoResponse
// @Security BearerAuth
// @Router /templates [get]
func (h *templateHandler) listTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.templateService.ListTemplates(c.Request.Context()))
}

// downloadTemplate godoc
// @Summary Download a template starter document
// @Description Produces a starter artifact for the template. The X-Artifact-Status response header distinguishes a generated document from a placeholder.
// @Tags templates
// @Produce application/pdf
// @Param id path string true "Template ID"
// @Param format query string false "Artifact format" Enums(pdf, word, excel) default(pdf)
// @Success 200 {file} binary "Template artifact"
// @Failure 400 {object} map[string]string "Unknown format"
// @Security BearerAuth
// @Router /templates/{id}/download [get]
func (h *templateHandler) downloadTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	format := c.DefaultQuery("format", dto.TemplateFormatPDF)

	artifact, err := h.templateService.DownloadTemplate(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
			return
		}
		logger.Error("Failed to produce template download", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to produce template download"})
		return
	}

	c.Header("X-Artifact-Status", artifact.Status)
	if artifact.Message != "" {
		c.Header("X-Artifact-Message", artifact.Message)
	}
	serveArtifact(c, artifact.Filename, artifact.ContentType, artifact.Data)
}
