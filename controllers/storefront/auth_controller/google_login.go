package auth_controller

import (
	"log"
	"net/http"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GoogleLogin godoc
// @Summary Redirect to Google OAuth
// @Description Starts the Google OAuth flow: generates a state token, stores it in a cookie and redirects to Google's consent page.
// @Tags Storefront - Auth
// @Produce json
// @Success 307 "Temporary redirect to Google OAuth"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/google [get]
func GoogleLogin(c *gin.Context) {
	// Generate state token
	state := uuid.New().String()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"oauth_state",
		state,
		3600,
		"/",
		"",
		false,
		true,
	)

	url := config.GoogleOAuthConfig.AuthCodeURL(state)
	log.Printf("[auth.google] redirecting to consent page state=%s", state)

	c.Redirect(http.StatusTemporaryRedirect, url)
}
