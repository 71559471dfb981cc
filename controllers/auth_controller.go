package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"motomart-api/utils"
)

// AuthController issues short-lived admin session tokens. The password
// comparison happens server-side against a configured bcrypt hash.
type AuthController struct {
	adminPasswordHash string
	jwtSecret         string
}

func NewAuthController(adminPasswordHash, jwtSecret string) *AuthController {
	return &AuthController{
		adminPasswordHash: adminPasswordHash,
		jwtSecret:         jwtSecret,
	}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ac.adminPasswordHash), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	expiresAt := time.Now().Add(12 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	})

	tokenString, err := token.SignedString([]byte(ac.jwtSecret))
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create session token")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     tokenString,
		ExpiresAt: expiresAt,
	})
}
