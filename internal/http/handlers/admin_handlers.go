package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elifesajna/self-employ-final/domain"
)

// AdminHandlers exposes the management surface: category and program
// maintenance, registration review, and team-member provisioning.
// Access is gated by the JWT and Casbin middleware; handlers assume an
// authenticated admin.
type AdminHandlers struct {
	categories    domain.CategoryRepository
	programs      domain.ProgramRepository
	registrations domain.RegistrationRepository
	members       domain.MemberRepository
	clients       domain.ClientRepository
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(
	categories domain.CategoryRepository,
	programs domain.ProgramRepository,
	registrations domain.RegistrationRepository,
	members domain.MemberRepository,
	clients domain.ClientRepository,
) *AdminHandlers {
	return &AdminHandlers{
		categories:    categories,
		programs:      programs,
		registrations: registrations,
		members:       members,
		clients:       clients,
	}
}

// CategoryRequest represents a category create/update payload
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// ProgramRequest represents a program create/update payload
type ProgramRequest struct {
	CategoryID  string `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Conditions  string `json:"conditions"`
}

// StatusRequest represents a registration status change
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// MemberRequest represents a team-member provisioning payload
type MemberRequest struct {
	MobileNumber string `json:"mobile_number" binding:"required"`
	Name         string `json:"name"`
}

// ClientRequest represents a registered-client provisioning payload
type ClientRequest struct {
	Name         string `json:"name" binding:"required"`
	MobileNumber string `json:"mobile_number" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Address      string `json:"address"`
	District     string `json:"district"`
	AgentPro     string `json:"agent_pro"`
}

func validStatus(s string) bool {
	switch s {
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected, domain.StatusPaused:
		return true
	}
	return false
}

// ListCategories returns all categories, active or not.
func (h *AdminHandlers) ListCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

// CreateCategory adds a new employment category.
func (h *AdminHandlers) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	category := &domain.EmploymentCategory{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := h.categories.Create(c.Request.Context(), category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": category})
}

// UpdateCategory modifies an existing category.
func (h *AdminHandlers) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	category := &domain.EmploymentCategory{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := h.categories.Update(c.Request.Context(), category); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
}

// DeleteCategory removes a category. Super-admin only via policy.
func (h *AdminHandlers) DeleteCategory(c *gin.Context) {
	if err := h.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListPrograms returns the programs under a category.
func (h *AdminHandlers) ListPrograms(c *gin.Context) {
	programs, err := h.programs.ListByCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to list programs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": programs})
}

// CreateProgram adds a program under a category.
func (h *AdminHandlers) CreateProgram(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if _, err := h.categories.FindByID(c.Request.Context(), req.CategoryID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
		return
	}

	program := &domain.Program{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Conditions:  req.Conditions,
	}
	if err := h.programs.Create(c.Request.Context(), program); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create program"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": program})
}

// UpdateProgram modifies an existing program.
func (h *AdminHandlers) UpdateProgram(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	program := &domain.Program{
		ID:          c.Param("id"),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Conditions:  req.Conditions,
	}
	if err := h.programs.Update(c.Request.Context(), program); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update program"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": program})
}

// DeleteProgram removes a program.
func (h *AdminHandlers) DeleteProgram(c *gin.Context) {
	if err := h.programs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete program"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListRegistrations returns all registrations, newest first.
func (h *AdminHandlers) ListRegistrations(c *gin.Context) {
	regs, err := h.registrations.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to list registrations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": regs})
}

// UpdateRegistrationStatus moves a registration between the review
// statuses. Rejecting frees the client's single-active-registration
// slot; pausing does not.
func (h *AdminHandlers) UpdateRegistrationStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if !validStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid status"})
		return
	}

	if err := h.registrations.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		if errors.Is(err, domain.ErrRegistrationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Registration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreateMember provisions a team member who can log in by OTP.
func (h *AdminHandlers) CreateMember(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	member := &domain.TeamMember{
		MobileNumber: req.MobileNumber,
		Name:         req.Name,
	}
	if err := h.members.Create(c.Request.Context(), member); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create member"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": member})
}

// CreateClient provisions a registered client eligible for the
// registration flow.
func (h *AdminHandlers) CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	client := &domain.ClientRecord{
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
		Category:     req.Category,
		Address:      req.Address,
		District:     req.District,
		AgentPro:     req.AgentPro,
	}
	if err := h.clients.Create(c.Request.Context(), client); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create client"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": client})
}
