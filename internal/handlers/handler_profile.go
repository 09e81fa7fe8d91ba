package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
	"github.com/invoicecraft/invoice_craft_app/internal/middleware"
)

// profileHandler handles HTTP requests related to the business profile.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// registerProfileRoutes registers routes related to the business profile.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	profile := rg.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PUT("", h.updateProfile)
		profile.POST("/logo", h.uploadLogo)
	}
}

// getProfile godoc
// @Summary Get the business profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} map[string]string "Profile not set up yet"
// @Security BearerAuth
// @Router /profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondProfileError(c, err, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// updateProfile godoc
// @Summary Update the business profile
// @Description Replaces the caller's business profile; creates it on first call
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile details"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /profile [put]
func (h *profileHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProfile", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), req, userID)
	if err != nil {
		respondProfileError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// uploadLogo godoc
// @Summary Upload a business logo
// @Description Accepts a multipart image upload, stores it in the blob store and records its URL on the profile
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param logo formData file true "Logo image"
// @Success 200 {object} dto.LogoUploadResponse
// @Failure 400 {object} map[string]string "Invalid upload"
// @Security BearerAuth
// @Router /profile/logo [post]
func (h *profileHandler) uploadLogo(c *gin.Context) {
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

	res, err := h.profileService.UploadLogo(c.Request.Context(), userID, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		respondProfileError(c, err, "Failed to upload logo")
		return
	}
	c.JSON(http.StatusOK, res)
}

func respondProfileError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "fields": validationErr.Fields})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not set up yet"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
