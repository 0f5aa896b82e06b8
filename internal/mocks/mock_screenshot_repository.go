package mocks

import (
	"context"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// MockScreenshotRepository implements domain.ScreenshotRepository for testing
type MockScreenshotRepository struct {
	CreateFunc                 func(ctx context.Context, s *domain.Screenshot) error
	FindByIDFunc               func(ctx context.Context, id uint) (*domain.Screenshot, error)
	ListByUserFunc             func(ctx context.Context, userID uint) ([]*domain.Screenshot, error)
	ListByMonthFunc            func(ctx context.Context, year, month int) ([]*domain.Screenshot, error)
	VerifyWithContributionFunc func(ctx context.Context, id uint, c *domain.Contribution) (*domain.Contribution, error)
}

func NewMockScreenshotRepository() *MockScreenshotRepository {
	return &MockScreenshotRepository{}
}

func (m *MockScreenshotRepository) Create(ctx context.Context, s *domain.Screenshot) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *MockScreenshotRepository) FindByID(ctx context.Context, id uint) (*domain.Screenshot, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrScreenshotNotFound
}

func (m *MockScreenshotRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.Screenshot, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []*domain.Screenshot{}, nil
}

func (m *MockScreenshotRepository) ListByMonth(ctx context.Context, year, month int) ([]*domain.Screenshot, error) {
	if m.ListByMonthFunc != nil {
		return m.ListByMonthFunc(ctx, year, month)
	}
	return []*domain.Screenshot{}, nil
}

func (m *MockScreenshotRepository) VerifyWithContribution(ctx context.Context, id uint, c *domain.Contribution) (*domain.Contribution, error) {
	if m.VerifyWithContributionFunc != nil {
		return m.VerifyWithContributionFunc(ctx, id, c)
	}
	stored := *c
	stored.ID = 1
	return &stored, nil
}

var _ domain.ScreenshotRepository = (*MockScreenshotRepository)(nil)
