package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
)

// ScreenshotHandlers handles payment proof uploads and reviews
type ScreenshotHandlers struct {
	screenshotSvc domain.ScreenshotService
	log           logging.Logger
}

// NewScreenshotHandlers creates new screenshot handlers
func NewScreenshotHandlers(screenshotSvc domain.ScreenshotService, log logging.Logger) *ScreenshotHandlers {
	return &ScreenshotHandlers{screenshotSvc: screenshotSvc, log: log}
}

// UploadURLRequest names the month a screenshot will be uploaded for
type UploadURLRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// SubmitScreenshotRequest records an object that was uploaded to a presigned URL
type SubmitScreenshotRequest struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Key   string `json:"key"`
}

// VerifyScreenshotRequest carries the contribution recorded for a verified screenshot
type VerifyScreenshotRequest struct {
	Amount int64  `json:"amount"`
	Mode   string `json:"mode"`
}

// UploadURL returns a presigned upload destination for the caller
func (h *ScreenshotHandlers) UploadURL(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	ticket, err := h.screenshotSvc.UploadURL(c.Request.Context(), user, req.Year, req.Month)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// Submit records an uploaded screenshot
func (h *ScreenshotHandlers) Submit(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req SubmitScreenshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	shot, err := h.screenshotSvc.Submit(c.Request.Context(), user, req.Year, req.Month, req.Key)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, shot)
}

// Mine lists the caller's screenshots
func (h *ScreenshotHandlers) Mine(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	shots, err := h.screenshotSvc.ListMine(c.Request.Context(), user)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, shots)
}

// ForMonth lists screenshots awaiting review for ?month=&year=
func (h *ScreenshotHandlers) ForMonth(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	month, ok := intQuery(c, "month")
	if !ok {
		return
	}
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}

	shots, err := h.screenshotSvc.ListForMonth(c.Request.Context(), user, year, month)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, shots)
}

// Verify accepts a screenshot and records the matching contribution
func (h *ScreenshotHandlers) Verify(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req VerifyScreenshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	contribution, err := h.screenshotSvc.Verify(c.Request.Context(), user, id, req.Amount, req.Mode)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, contribution)
}
