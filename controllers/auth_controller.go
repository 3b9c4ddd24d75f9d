package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-backend/models"
	"campus-backend/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register handles new student account creation
func (ctl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}

	if err := ctl.auth.Register(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "account created successfully"})
}

// Login handles user authentication and returns a token with the public
// profile
func (ctl *AuthController) Login(c *gin.Context) {
	var credentials models.Credentials
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone and password are required"})
		return
	}

	token, user, err := ctl.auth.Login(c.Request.Context(), credentials.Phone, credentials.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Profile(),
	})
}

// CurrentUser returns the identity carried by the caller's token
func (ctl *AuthController) CurrentUser(c *gin.Context) {
	claims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	userClaims := claims.(*models.Claims)

	c.JSON(http.StatusOK, gin.H{
		"id":   userClaims.ID,
		"role": userClaims.Role,
	})
}
