package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/class-coins-api/internal/models"
	"github.com/noah-isme/class-coins-api/internal/service"
	appErrors "github.com/noah-isme/class-coins-api/pkg/errors"
	"github.com/noah-isme/class-coins-api/pkg/response"
)

// AuthHandler wires the admin login endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login authenticates the administrator and returns a bearer token.
// Any malformed payload counts as a credential mismatch; the endpoint
// only ever distinguishes success from 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.ErrInvalidCredentials)
		return
	}

	res, err := h.service.Login(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// Logout always succeeds. Tokens are stateless and carry no server-side
// session, so logging out is the client discarding its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"ok": true})
}
