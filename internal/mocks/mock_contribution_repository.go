package mocks

import (
	"context"
	"time"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// MockContributionRepository implements domain.ContributionRepository for testing
type MockContributionRepository struct {
	UpsertFunc        func(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error)
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.Contribution, error)
	UpdateFunc        func(ctx context.Context, c *domain.Contribution) error
	DeleteFunc        func(ctx context.Context, id uint) error
	ListByUserFunc    func(ctx context.Context, userID uint) ([]*domain.Contribution, error)
	ListByMonthFunc   func(ctx context.Context, month time.Time) ([]*domain.Contribution, error)
	MonthlyTotalsFunc func(ctx context.Context, year int) ([]domain.MonthlyTotal, error)
}

func NewMockContributionRepository() *MockContributionRepository {
	return &MockContributionRepository{}
}

func (m *MockContributionRepository) Upsert(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, c)
	}
	// Default behavior: echo the record back with an id
	out := *c
	if out.ID == 0 {
		out.ID = 1
	}
	return &out, nil
}

func (m *MockContributionRepository) FindByID(ctx context.Context, id uint) (*domain.Contribution, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrContributionNotFound
}

func (m *MockContributionRepository) Update(ctx context.Context, c *domain.Contribution) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *MockContributionRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockContributionRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.Contribution, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []*domain.Contribution{}, nil
}

func (m *MockContributionRepository) ListByMonth(ctx context.Context, month time.Time) ([]*domain.Contribution, error) {
	if m.ListByMonthFunc != nil {
		return m.ListByMonthFunc(ctx, month)
	}
	return []*domain.Contribution{}, nil
}

func (m *MockContributionRepository) MonthlyTotals(ctx context.Context, year int) ([]domain.MonthlyTotal, error) {
	if m.MonthlyTotalsFunc != nil {
		return m.MonthlyTotalsFunc(ctx, year)
	}
	return []domain.MonthlyTotal{}, nil
}

var _ domain.ContributionRepository = (*MockContributionRepository)(nil)
