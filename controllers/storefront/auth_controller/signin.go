package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/Voltline-Commerce/voltline-backend/services"
	"github.com/Voltline-Commerce/voltline-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SignIn godoc
// @Summary Sign in with email and password
// @Description Authenticates a user, issues a JWT session cookie and returns the user with the token.
// @Tags Storefront - Auth
// @Accept json
// @Produce json
// @Param request body models.SignInRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid email or password"
// @Failure 403 {object} models.ApiResponse "Account not active"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/signin [post]
func SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.StoreGorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[auth.signin] user not found: %s", req.Email)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		} else {
			log.Printf("[auth.signin] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	if user.Status != "active" {
		log.Printf("[auth.signin] inactive account attempt: %s", req.Email)
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is not active"))
		return
	}

	// Google-only accounts have no password hash
	if user.PasswordHash == nil || !services.VerifyPassword(*user.PasswordHash, req.Password) {
		log.Printf("[auth.signin] invalid password: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("[auth.signin] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	setAuthCookie(c, token)
	services.LogAction(user.ID, models.ActionSignIn, nil, nil, nil)

	log.Printf("[auth.signin] success: %s (%s)", user.Email, user.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Signed in",
		models.AuthResponse{User: user.ToResponse(), Token: token},
	))
}
