package auth_controller

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// userLookupFailure maps a failed user fetch to a response: a missing
// row means the session references a deleted account (401), anything
// else is a database failure (500).
func userLookupFailure(err error) (int, string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusUnauthorized, "User not found"
	}
	return http.StatusInternalServerError, "Failed to fetch user"
}

// setAuthCookie installs the session JWT as an HttpOnly cookie. The
// token is also returned in the response body for Bearer-header clients.
func setAuthCookie(c *gin.Context, token string) {
	isProd := os.Getenv("APP_ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		token,
		24*60*60,
		"/",
		"",
		isProd,
		true,
	)
}

// createOrUpdateGoogleUser finds a user by email, creating one on first
// Google login and linking the Google account on later logins.
func createOrUpdateGoogleUser(
	c *gin.Context,
	googleUser *models.GoogleUserInfo,
	googleID string,
	emailVerified bool,
) (*models.User, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	result := config.StoreGorm.WithContext(ctx).
		Where("email = ?", googleUser.Email).
		First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// First-time Google login, create user
			user = models.User{
				Email:         googleUser.Email,
				Name:          googleUser.Name,
				GoogleID:      &googleID,
				Provider:      "google",
				EmailVerified: emailVerified,
				Avatar:        &googleUser.Picture,
				Status:        "active",
			}
			if err := config.StoreGorm.WithContext(ctx).Create(&user).Error; err != nil {
				return nil, err
			}
			return &user, nil
		}
		return nil, result.Error
	}

	// Existing user: update safe fields only
	updates := map[string]interface{}{
		"avatar":         googleUser.Picture,
		"email_verified": emailVerified,
	}
	if user.GoogleID == nil {
		updates["google_id"] = googleID
	}

	if err := config.StoreGorm.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	user.Avatar = &googleUser.Picture
	user.EmailVerified = emailVerified
	if user.GoogleID == nil {
		user.GoogleID = &googleID
	}

	return &user, nil
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
