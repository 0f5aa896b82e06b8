package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/mocks"
)

func newExpenseTestRouter(actor *domain.User, svc domain.ExpenseService) *gin.Engine {
	r, g := authedRouter(actor)
	h := NewExpenseHandlers(svc, testLog())
	g.GET("/expenses", h.List)
	g.GET("/expenses/summary", h.Summary)
	g.POST("/expenses", h.Create)
	g.PUT("/expenses/:id", h.Update)
	g.DELETE("/expenses/:id", h.Delete)
	return r
}

func TestExpenseHandlers_Create(t *testing.T) {
	tests := []struct {
		name           string
		actor          *domain.User
		body           map[string]interface{}
		expectDate     time.Time
		createErr      error
		expectedStatus int
	}{
		{
			name:           "date only",
			actor:          testAdmin,
			body:           map[string]interface{}{"title": "Tent hire", "amount": 1500, "expenseDate": "2025-02-14"},
			expectDate:     time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC),
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "rfc3339 date",
			actor:          testAdmin,
			body:           map[string]interface{}{"title": "Tent hire", "amount": 1500, "expenseDate": "2025-02-14T10:30:00+05:30"},
			expectDate:     time.Date(2025, 2, 14, 5, 0, 0, 0, time.UTC),
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad date",
			actor:          testAdmin,
			body:           map[string]interface{}{"title": "Tent hire", "amount": 1500, "expenseDate": "14/02/2025"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "member forbidden",
			actor:          testMember,
			body:           map[string]interface{}{"title": "Tent hire", "amount": 1500},
			createErr:      domain.ErrForbidden,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockExpenseService()
			svc.CreateFunc = func(ctx context.Context, actor *domain.User, e *domain.Expense) (*domain.Expense, error) {
				if tt.createErr != nil {
					return nil, tt.createErr
				}
				assert.Equal(t, "Tent hire", e.Title)
				assert.Equal(t, int64(1500), e.Amount)
				assert.True(t, tt.expectDate.Equal(e.ExpenseDate), "got %v", e.ExpenseDate)
				e.ID = 11
				e.CreatedBy = actor.ID
				return e, nil
			}

			w := doRequest(t, newExpenseTestRouter(tt.actor, svc), http.MethodPost, "/expenses", tt.body, tt.actor)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				body := decodeMap(t, w)
				assert.Equal(t, float64(11), body["id"])
				assert.Equal(t, float64(testAdmin.ID), body["createdBy"])
			}
		})
	}
}

func TestExpenseHandlers_UpdateDeleteList(t *testing.T) {
	svc := mocks.NewMockExpenseService()
	svc.UpdateFunc = func(ctx context.Context, actor *domain.User, id uint, upd domain.ExpenseUpdate) (*domain.Expense, error) {
		require.NotNil(t, upd.Title)
		assert.Nil(t, upd.Amount)
		assert.Nil(t, upd.ExpenseDate)
		return &domain.Expense{ID: id, Title: *upd.Title, Amount: 10}, nil
	}
	svc.DeleteFunc = func(ctx context.Context, actor *domain.User, id uint) error {
		return domain.ErrExpenseNotFound
	}
	svc.ListFunc = func(ctx context.Context) ([]*domain.Expense, error) {
		return []*domain.Expense{{ID: 1}, {ID: 2}, {ID: 3}}, nil
	}
	svc.SummaryFunc = func(ctx context.Context, year int) ([]domain.MonthlyTotal, error) {
		return nil, domain.NewValidationError("year is out of range")
	}
	r := newExpenseTestRouter(testAdmin, svc)

	w := doRequest(t, r, http.MethodPut, "/expenses/4", map[string]string{"title": "Chairs"}, testAdmin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Chairs", decodeMap(t, w)["title"])

	w = doRequest(t, r, http.MethodDelete, "/expenses/4", nil, testAdmin)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, "/expenses", nil, testAdmin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 3)

	w = doRequest(t, r, http.MethodGet, "/expenses/summary?year=1900", nil, testAdmin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
