package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
)

const dateLayout = "2006-01-02"

// ExpenseHandlers handles fund expense requests
type ExpenseHandlers struct {
	expenseSvc domain.ExpenseService
	log        logging.Logger
}

// NewExpenseHandlers creates new expense handlers
func NewExpenseHandlers(expenseSvc domain.ExpenseService, log logging.Logger) *ExpenseHandlers {
	return &ExpenseHandlers{expenseSvc: expenseSvc, log: log}
}

// ExpenseRequest represents an expense create or update body.
// ExpenseDate accepts YYYY-MM-DD or RFC 3339.
type ExpenseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Amount      *int64  `json:"amount"`
	ExpenseDate *string `json:"expenseDate"`
}

// Create records a new expense
func (h *ExpenseHandlers) Create(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	date, ok := parseExpenseDate(c, req.ExpenseDate)
	if !ok {
		return
	}

	e := &domain.Expense{}
	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if date != nil {
		e.ExpenseDate = *date
	}

	created, err := h.expenseSvc.Create(c.Request.Context(), user, e)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update edits an existing expense
func (h *ExpenseHandlers) Update(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	date, ok := parseExpenseDate(c, req.ExpenseDate)
	if !ok {
		return
	}

	updated, err := h.expenseSvc.Update(c.Request.Context(), user, id, domain.ExpenseUpdate{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: date,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes an expense
func (h *ExpenseHandlers) Delete(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.expenseSvc.Delete(c.Request.Context(), user, id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

// List returns every expense
func (h *ExpenseHandlers) List(c *gin.Context) {
	expenses, err := h.expenseSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// Summary returns per-month expense totals for ?year=
func (h *ExpenseHandlers) Summary(c *gin.Context) {
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}

	totals, err := h.expenseSvc.Summary(c.Request.Context(), year)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func parseExpenseDate(c *gin.Context, raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, *raw); err == nil {
			t = t.UTC()
			return &t, true
		}
	}
	badRequest(c, "expenseDate must be YYYY-MM-DD")
	return nil, false
}
