package mocks

import (
	"context"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// MockExpenseService implements domain.ExpenseService for handler tests
type MockExpenseService struct {
	CreateFunc  func(ctx context.Context, actor *domain.User, e *domain.Expense) (*domain.Expense, error)
	UpdateFunc  func(ctx context.Context, actor *domain.User, id uint, upd domain.ExpenseUpdate) (*domain.Expense, error)
	DeleteFunc  func(ctx context.Context, actor *domain.User, id uint) error
	ListFunc    func(ctx context.Context) ([]*domain.Expense, error)
	SummaryFunc func(ctx context.Context, year int) ([]domain.MonthlyTotal, error)
}

func NewMockExpenseService() *MockExpenseService {
	return &MockExpenseService{}
}

func (m *MockExpenseService) Create(ctx context.Context, actor *domain.User, e *domain.Expense) (*domain.Expense, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, e)
	}
	out := *e
	out.ID = 1
	out.CreatedBy = actor.ID
	return &out, nil
}

func (m *MockExpenseService) Update(ctx context.Context, actor *domain.User, id uint, upd domain.ExpenseUpdate) (*domain.Expense, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, id, upd)
	}
	return nil, domain.ErrExpenseNotFound
}

func (m *MockExpenseService) Delete(ctx context.Context, actor *domain.User, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, id)
	}
	return nil
}

func (m *MockExpenseService) List(ctx context.Context) ([]*domain.Expense, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*domain.Expense{}, nil
}

func (m *MockExpenseService) Summary(ctx context.Context, year int) ([]domain.MonthlyTotal, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, year)
	}
	return []domain.MonthlyTotal{}, nil
}

var _ domain.ExpenseService = (*MockExpenseService)(nil)
