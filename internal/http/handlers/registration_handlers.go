package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elifesajna/self-employ-final/internal/workflows"
)

// RegistrationHandlers handles the employment registration flow
type RegistrationHandlers struct {
	flow *workflows.Registration
}

// NewRegistrationHandlers creates new registration handlers
func NewRegistrationHandlers(flow *workflows.Registration) *RegistrationHandlers {
	return &RegistrationHandlers{flow: flow}
}

// VerifyMobileRequest represents the verification request
type VerifyMobileRequest struct {
	MobileNumber string `json:"mobile_number"`
}

// SubmitRequest represents the submission request
type SubmitRequest struct {
	CategoryID string `json:"category_id"`
}

// categoryView decorates a category with the eligibility flag used to
// disable ineligible options in the selection UI.
type categoryView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Eligible    bool   `json:"eligible"`
}

// Verify looks up the client by mobile number and, on a hit, returns
// the client details and the selectable categories.
func (h *RegistrationHandlers) Verify(c *gin.Context) {
	var req VerifyMobileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result := h.flow.VerifyMobileNumber(c.Request.Context(), req.MobileNumber)
	if !result.Success {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": result.Error})
		return
	}

	categories := make([]categoryView, 0, len(result.Categories))
	for _, cat := range result.Categories {
		categories = append(categories, categoryView{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			Eligible:    h.flow.CanApplyForCategory(cat.Name),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"client":     result.Client,
		"categories": categories,
		"step":       h.flow.Step().String(),
	})
}

// Submit runs the ordered duplicate checks and inserts the
// registration.
func (h *RegistrationHandlers) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result := h.flow.SubmitRegistration(c.Request.Context(), req.CategoryID)
	if !result.Success {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": result.Error, "step": h.flow.Step().String()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "step": h.flow.Step().String()})
}

// Reset returns the flow to the verify step, clearing held data.
func (h *RegistrationHandlers) Reset(c *gin.Context) {
	h.flow.Reset()
	c.JSON(http.StatusOK, gin.H{"success": true, "step": h.flow.Step().String()})
}
