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

// SignUp godoc
// @Summary Register with email and password
// @Description Creates a user account, issues a JWT session cookie and returns the user with the token.
// @Tags Storefront - Auth
// @Accept json
// @Produce json
// @Param request body models.SignUpRequest true "Name, email and password"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/signup [post]
func SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Reject duplicate emails up front for a clean 409
	var existing models.User
	err := config.StoreGorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email already registered"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[auth.signup] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	passwordHash, err := services.HashPassword(req.Password)
	if err != nil {
		log.Printf("[auth.signup] failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	user := models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: &passwordHash,
		Provider:     "email",
		Role:         "customer",
		Status:       "active",
	}
	if err := config.StoreGorm.WithContext(ctx).Create(&user).Error; err != nil {
		log.Printf("[auth.signup] failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("[auth.signup] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	setAuthCookie(c, token)
	services.LogAction(user.ID, models.ActionSignUp, nil, nil, nil)

	log.Printf("[auth.signup] success: %s (%s)", user.Email, user.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(
		c,
		"Account created",
		models.AuthResponse{User: user.ToResponse(), Token: token},
	))
}
