package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
)

// UserHandlers handles member profile and management requests
type UserHandlers struct {
	userSvc domain.UserService
	log     logging.Logger
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService, log logging.Logger) *UserHandlers {
	return &UserHandlers{userSvc: userSvc, log: log}
}

// UpdateProfileRequest carries the self-editable profile fields
type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	FatherName *string `json:"fatherName"`
	Email      *string `json:"email"`
	Occupation *string `json:"occupation"`
}

// Me returns the authenticated member as loaded by the auth middleware
func (h *UserHandlers) Me(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe edits the caller's own profile
func (h *UserHandlers) UpdateMe(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	updated, err := h.userSvc.UpdateProfile(c.Request.Context(), user, domain.ProfileUpdate{
		Name:       req.Name,
		FatherName: req.FatherName,
		Email:      req.Email,
		Occupation: req.Occupation,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Get returns a single member by id
func (h *UserHandlers) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	user, err := h.userSvc.Profile(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// List returns every member
func (h *UserHandlers) List(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	users, err := h.userSvc.List(c.Request.Context(), user)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Verify marks a member as verified
func (h *UserHandlers) Verify(c *gin.Context) {
	h.mutate(c, h.userSvc.VerifyMember)
}

// MakeAdmin promotes a member to admin
func (h *UserHandlers) MakeAdmin(c *gin.Context) {
	h.mutate(c, h.userSvc.MakeAdmin)
}

// Delete removes a member and their screenshots
func (h *UserHandlers) Delete(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), user, id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *UserHandlers) mutate(c *gin.Context, op func(ctx context.Context, actor *domain.User, id uint) (*domain.User, error)) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	updated, err := op(c.Request.Context(), user, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
