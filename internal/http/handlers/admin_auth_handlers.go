package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elifesajna/self-employ-final/domain"
	"github.com/elifesajna/self-employ-final/internal/workflows"
)

// AdminAuthHandlers handles admin authentication HTTP requests
type AdminAuthHandlers struct {
	auth     *workflows.AdminAuth
	tokenSvc domain.TokenService
}

// NewAdminAuthHandlers creates new admin auth handlers
func NewAdminAuthHandlers(auth *workflows.AdminAuth, tokenSvc domain.TokenService) *AdminAuthHandlers {
	return &AdminAuthHandlers{auth: auth, tokenSvc: tokenSvc}
}

// AdminLoginRequest represents the admin login request
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles admin login and issues an access token for the admin API.
func (h *AdminAuthHandlers) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	identity, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid username or password"})
		case errors.Is(err, domain.ErrCredentialsRequired):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username and password are required"})
		case errors.Is(err, domain.ErrOperationInFlight):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Another login is in progress"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Login failed"})
		}
		return
	}

	token, err := h.tokenSvc.GenerateAccessToken(identity.ID, identity.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"admin":        identity,
			"access_token": token,
			"token_type":   "Bearer",
		},
	})
}

// Logout clears the admin session. No remote call is involved.
func (h *AdminAuthHandlers) Logout(c *gin.Context) {
	h.auth.Logout()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the held admin identity.
func (h *AdminAuthHandlers) Me(c *gin.Context) {
	identity := h.auth.Current()
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"admin":          identity,
			"is_super_admin": identity.IsSuperAdmin(),
		},
	})
}
