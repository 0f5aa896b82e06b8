package mocks

import (
	"context"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// MockExpenseRepository implements domain.ExpenseRepository for testing
type MockExpenseRepository struct {
	CreateFunc        func(ctx context.Context, e *domain.Expense) error
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.Expense, error)
	UpdateFunc        func(ctx context.Context, e *domain.Expense) error
	DeleteFunc        func(ctx context.Context, id uint) error
	ListFunc          func(ctx context.Context) ([]*domain.Expense, error)
	MonthlyTotalsFunc func(ctx context.Context, year int) ([]domain.MonthlyTotal, error)
}

func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{}
}

func (m *MockExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return nil
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id uint) (*domain.Expense, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Update(ctx context.Context, e *domain.Expense) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockExpenseRepository) List(ctx context.Context) ([]*domain.Expense, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*domain.Expense{}, nil
}

func (m *MockExpenseRepository) MonthlyTotals(ctx context.Context, year int) ([]domain.MonthlyTotal, error) {
	if m.MonthlyTotalsFunc != nil {
		return m.MonthlyTotalsFunc(ctx, year)
	}
	return []domain.MonthlyTotal{}, nil
}

var _ domain.ExpenseRepository = (*MockExpenseRepository)(nil)
