package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
)

// FeedbackHandlers handles member feedback requests
type FeedbackHandlers struct {
	feedbackSvc domain.FeedbackService
	log         logging.Logger
}

// NewFeedbackHandlers creates new feedback handlers
func NewFeedbackHandlers(feedbackSvc domain.FeedbackService, log logging.Logger) *FeedbackHandlers {
	return &FeedbackHandlers{feedbackSvc: feedbackSvc, log: log}
}

// FeedbackRequest represents a feedback submission
type FeedbackRequest struct {
	Target  string `json:"target"`
	Message string `json:"message"`
}

// Submit stores feedback addressed to admins or superadmins
func (h *FeedbackHandlers) Submit(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	fb, err := h.feedbackSvc.Submit(c.Request.Context(), user, domain.Role(req.Target), req.Message)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}

// List returns feedback addressed to the caller's role
func (h *FeedbackHandlers) List(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	items, err := h.feedbackSvc.List(c.Request.Context(), user)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
