package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/tillpoint-api/internal/application/service"
	"github.com/sangkips/tillpoint-api/internal/presentation/http/dto/request"
	"github.com/sangkips/tillpoint-api/internal/presentation/http/dto/response"
)

// AuthHandler handles cashier authentication
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates the cashier and returns a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
	})
}
