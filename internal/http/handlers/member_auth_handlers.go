package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elifesajna/self-employ-final/internal/workflows"
)

// MemberAuthHandlers handles the two-step member login flow
type MemberAuthHandlers struct {
	auth *workflows.MemberAuth
}

// NewMemberAuthHandlers creates new member auth handlers
func NewMemberAuthHandlers(auth *workflows.MemberAuth) *MemberAuthHandlers {
	return &MemberAuthHandlers{auth: auth}
}

// SendCodeRequest represents the code request
type SendCodeRequest struct {
	MobileNumber string `json:"mobile_number"`
}

// VerifyRequest represents the code exchange request
type VerifyRequest struct {
	MobileNumber string `json:"mobile_number"`
	Code         string `json:"code"`
}

// SendCode issues a verification code for the mobile number. The
// workflow result is passed through unchanged; the code is surfaced in
// the response for the demo relay.
func (h *MemberAuthHandlers) SendCode(c *gin.Context) {
	var req SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result := h.auth.SendVerificationCode(c.Request.Context(), req.MobileNumber)
	c.JSON(http.StatusOK, result)
}

// Verify exchanges the mobile number and code for a member session.
func (h *MemberAuthHandlers) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result := h.auth.VerifyAndLogin(c.Request.Context(), req.MobileNumber, req.Code)
	c.JSON(http.StatusOK, result)
}

// Reset returns the flow to the mobile-number step, e.g. when the
// caller switches between the login and registration tabs.
func (h *MemberAuthHandlers) Reset(c *gin.Context) {
	h.auth.Reset()
	c.JSON(http.StatusOK, gin.H{"success": true, "state": h.auth.State().String()})
}

// Logout clears the member session.
func (h *MemberAuthHandlers) Logout(c *gin.Context) {
	h.auth.Logout()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the held member identity.
func (h *MemberAuthHandlers) Me(c *gin.Context) {
	identity := h.auth.Current()
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"member": identity}})
}
