package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/middleware"
	"github.com/invoicecraft/invoice_craft_app/internal/platform/config"
	"github.com/invoicecraft/invoice_craft_app/internal/utils"
)

const oauthStateCookie = "oauth_state"

// googleOAuthHandler handles the Google sign-in redirect flow.
type googleOAuthHandler struct {
	cfg          *config.Config
	oauthService portssvc.GoogleOAuthSvc
}

func newGoogleOAuthHandler(cfg *config.Config, os portssvc.GoogleOAuthSvc) *googleOAuthHandler {
	return &googleOAuthHandler{cfg: cfg, oauthService: os}
}

// registerGoogleOAuthRoutes registers the public Google OAuth routes.
func registerGoogleOAuthRoutes(r *gin.Engine, cfg *config.Config, oauthService portssvc.GoogleOAuthSvc) {
	h := newGoogleOAuthHandler(cfg, oauthService)

	google := r.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.login)
		google.GET("/callback", h.callback)
	}
}

// login godoc
// @Summary Start the Google sign-in flow
// @Description Redirects the browser to Google's consent page with a CSRF state cookie
// @Tags auth
// @Success 307 "Redirect to Google"
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start sign-in"})
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.AuthCodeURL(state))
}

// callback godoc
// @Summary Google sign-in callback
// @Description Verifies the state cookie, exchanges the authorization code and returns an access token
// @Tags auth
// @Produce json
// @Param state query string true "CSRF state"
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "State mismatch or missing code"
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) callback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	res, err := h.oauthService.HandleCallback(c.Request.Context(), code)
	if err != nil {
		logger.Error("Google sign-in failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	logger.Info("Google sign-in completed", slog.String("user_id", res.User.UserID))
	c.JSON(http.StatusOK, res)
}
