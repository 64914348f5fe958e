package auth_controller

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// SignOut godoc
// @Summary Sign out
// @Description Clears the auth_token session cookie.
// @Tags Storefront - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "Signed out"
// @Router /auth/signout [post]
func SignOut(c *gin.Context) {
	isProd := os.Getenv("APP_ENV") == "production"
	// delete auth_token (must match name, path, domain, secure, httpOnly)
	c.SetCookie(
		"auth_token",
		"",
		-1, // MaxAge < 0 -> delete
		"/",
		"",
		isProd,
		true,
	)

	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
