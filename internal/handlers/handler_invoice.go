package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
	"github.com/invoicecraft/invoice_craft_app/internal/middleware"
)

// invoiceHandler handles HTTP requests related to invoices and their exports.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	exportService  portssvc.ExportSvc
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade, es portssvc.ExportSvc) *invoiceHandler {
	return &invoiceHandler{invoiceService: is, exportService: es}
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, exportService portssvc.ExportSvc, exportLimiter *limiter.Limiter) {
	h := newInvoiceHandler(invoiceService, exportService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("/draft-defaults", h.draftDefaults)
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoice)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
		invoices.POST("/:id/export", middleware.RateLimit(exportLimiter), h.exportInvoice)
		invoices.POST("/export-draft", middleware.RateLimit(exportLimiter), h.exportDraft)
		invoices.POST("/logo", h.uploadLogo)
	}
}

// draftDefaults godoc
// @Summary Draft defaults for a new invoice
// @Description Returns the seed values (dates, currency, template) for a fresh editing session
// @Tags invoices
// @Produce json
// @Success 200 {object} dto.DraftDefaultsResponse
// @Security BearerAuth
// @Router /invoices/draft-defaults [get]
func (h *invoiceHandler) draftDefaults(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, h.invoiceService.NewDraftDefaults(c.Request.Context(), userID))
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Validates the payload, recomputes totals server-side and persists the invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.SaveInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req, userID)
	if err != nil {
		respondInvoiceError(c, err, "Failed to create invoice")
		return
	}

	logger.Info("Invoice created", slog.String("invoice_id", invoice.InvoiceID))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists the caller's saved invoices, newest first
// @Tags invoices
// @Produce json
// @Success 200 {array} dto.InvoiceResponse
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), userID)
	if err != nil {
		respondInvoiceError(c, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}

// getInvoice godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondInvoiceError(c, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Replaces the invoice wholesale with the request payload and recomputes totals
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body dto.SaveInvoiceRequest true "Invoice details"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvoice", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondInvoiceError(c, err, "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Tags invoices
// @Param id path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondInvoiceError(c, err, "Failed to delete invoice")
		return
	}
	c.Status(http.StatusNoContent)
}

// exportInvoice godoc
// @Summary Export an invoice as PDF
// @Description Renders the saved invoice with the selected template. Only one export per invoice may run at a time.
// @Tags invoices
// @Accept json
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Param export body dto.ExportInvoiceRequest false "Export options"
// @Success 200 {file} binary "PDF document"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Export already in progress"
// @Failure 500 {object} map[string]string "Export failed"
// @Security BearerAuth
// @Router /invoices/{id}/export [post]
func (h *invoiceHandler) exportInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExportInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		logger.Warn("Failed to bind JSON for ExportInvoice", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	artifact, err := h.exportService.ExportInvoice(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		respondInvoiceError(c, err, "Failed to export invoice")
		return
	}

	serveArtifact(c, artifact.Filename, artifact.ContentType, artifact.Data)
}

// exportDraft godoc
// @Summary Export an unsaved draft as PDF
// @Description Renders the submitted invoice payload without persisting anything
// @Tags invoices
// @Accept json
// @Produce application/pdf
// @Param export body dto.ExportDraftRequest true "Draft and export options"
// @Success 200 {file} binary "PDF document"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Export failed"
// @Security BearerAuth
// @Router /invoices/export-draft [post]
func (h *invoiceHandler) exportDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExportDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ExportDraft", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	artifact, err := h.exportService.ExportDraft(c.Request.Context(), req, userID)
	if err != nil {
		respondInvoiceError(c, err, "Failed to export draft")
		return
	}

	serveArtifact(c, artifact.Filename, artifact.ContentType, artifact.Data)
}

// uploadLogo godoc
// @Summary Upload a draft logo
// @Description Stores an ad-hoc logo image and returns the URL to embed in an invoice draft
// @Tags invoices
// @Accept multipart/form-data
// @Produce json
// @Param logo formData file true "Logo image"
// @Success 200 {object} dto.LogoUploadResponse
// @Failure 400 {object} map[string]string "Invalid upload"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /invoices/logo [post]
func (h *invoiceHandler) uploadLogo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		logger.Warn("Missing logo file in upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A 'logo' file field is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded logo", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	res, err := h.invoiceService.UploadLogo(c.Request.Context(), userID, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		respondInvoiceError(c, err, "Failed to upload logo")
		return
	}
	c.JSON(http.StatusOK, res)
}

// serveArtifact writes a produced document as an attachment download.
func serveArtifact(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// respondInvoiceError maps service errors onto HTTP statuses.
func respondInvoiceError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "fields": validationErr.Fields})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
	case errors.Is(err, apperrors.ErrExportInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "An export for this invoice is already in progress"})
	case errors.Is(err, apperrors.ErrExport):
		logger.Error("Export failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
