package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
)

// ContributionHandlers handles monthly contribution requests
type ContributionHandlers struct {
	contributionSvc domain.ContributionService
	log             logging.Logger
}

// NewContributionHandlers creates new contribution handlers
func NewContributionHandlers(contributionSvc domain.ContributionService, log logging.Logger) *ContributionHandlers {
	return &ContributionHandlers{contributionSvc: contributionSvc, log: log}
}

// ContributionRequest represents a contribution to record for a member and month
type ContributionRequest struct {
	UserID uint   `json:"userId"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Amount int64  `json:"amount"`
	Mode   string `json:"mode"`
}

// UpdateContributionRequest carries the editable contribution fields
type UpdateContributionRequest struct {
	Amount *int64  `json:"amount"`
	Mode   *string `json:"mode"`
}

// Record creates or overwrites the contribution for a member and month
func (h *ContributionHandlers) Record(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req ContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	contribution, err := h.contributionSvc.Record(c.Request.Context(), user, domain.ContributionInput{
		UserID: req.UserID,
		Year:   req.Year,
		Month:  req.Month,
		Amount: req.Amount,
		Mode:   req.Mode,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, contribution)
}

// Update edits amount or mode of an existing contribution
func (h *ContributionHandlers) Update(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	contribution, err := h.contributionSvc.Update(c.Request.Context(), user, id, domain.ContributionUpdate{
		Amount: req.Amount,
		Mode:   req.Mode,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, contribution)
}

// Delete removes a contribution
func (h *ContributionHandlers) Delete(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.contributionSvc.Delete(c.Request.Context(), user, id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contribution deleted"})
}

// Mine lists the caller's own contributions
func (h *ContributionHandlers) Mine(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	h.listForUser(c, user, user.ID)
}

// ForUser lists the contributions of one member
func (h *ContributionHandlers) ForUser(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	h.listForUser(c, user, id)
}

// ForMonth lists every contribution recorded for ?month=&year=
func (h *ContributionHandlers) ForMonth(c *gin.Context) {
	month, ok := intQuery(c, "month")
	if !ok {
		return
	}
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}

	contributions, err := h.contributionSvc.ListForMonth(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, contributions)
}

// Summary returns per-month totals for ?year=
func (h *ContributionHandlers) Summary(c *gin.Context) {
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}

	totals, err := h.contributionSvc.Summary(c.Request.Context(), year)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (h *ContributionHandlers) listForUser(c *gin.Context, user *domain.User, userID uint) {
	contributions, err := h.contributionSvc.ListForUser(c.Request.Context(), user, userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, contributions)
}
