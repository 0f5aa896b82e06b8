package mocks

import (
	"context"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// MockContributionService implements domain.ContributionService for handler tests
type MockContributionService struct {
	PrepareFunc      func(ctx context.Context, actor *domain.User, in domain.ContributionInput) (*domain.Contribution, error)
	RecordFunc       func(ctx context.Context, actor *domain.User, in domain.ContributionInput) (*domain.Contribution, error)
	UpdateFunc       func(ctx context.Context, actor *domain.User, id uint, upd domain.ContributionUpdate) (*domain.Contribution, error)
	DeleteFunc       func(ctx context.Context, actor *domain.User, id uint) error
	ListForUserFunc  func(ctx context.Context, actor *domain.User, userID uint) ([]*domain.Contribution, error)
	ListForMonthFunc func(ctx context.Context, year, month int) ([]*domain.Contribution, error)
	SummaryFunc      func(ctx context.Context, year int) ([]domain.MonthlyTotal, error)
}

func NewMockContributionService() *MockContributionService {
	return &MockContributionService{}
}

func (m *MockContributionService) Prepare(ctx context.Context, actor *domain.User, in domain.ContributionInput) (*domain.Contribution, error) {
	if m.PrepareFunc != nil {
		return m.PrepareFunc(ctx, actor, in)
	}
	return &domain.Contribution{
		UserID:           in.UserID,
		ContributionDate: domain.MonthStart(in.Year, in.Month),
		Amount:           in.Amount,
		Mode:             in.Mode,
		ScreenshotID:     in.ScreenshotID,
		VerifiedBy:       actor.ID,
	}, nil
}

func (m *MockContributionService) Record(ctx context.Context, actor *domain.User, in domain.ContributionInput) (*domain.Contribution, error) {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, actor, in)
	}
	return &domain.Contribution{
		ID:               1,
		UserID:           in.UserID,
		ContributionDate: domain.MonthStart(in.Year, in.Month),
		Amount:           in.Amount,
		Mode:             in.Mode,
		VerifiedBy:       actor.ID,
	}, nil
}

func (m *MockContributionService) Update(ctx context.Context, actor *domain.User, id uint, upd domain.ContributionUpdate) (*domain.Contribution, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, id, upd)
	}
	return nil, domain.ErrContributionNotFound
}

func (m *MockContributionService) Delete(ctx context.Context, actor *domain.User, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, id)
	}
	return nil
}

func (m *MockContributionService) ListForUser(ctx context.Context, actor *domain.User, userID uint) ([]*domain.Contribution, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, actor, userID)
	}
	return []*domain.Contribution{}, nil
}

func (m *MockContributionService) ListForMonth(ctx context.Context, year, month int) ([]*domain.Contribution, error) {
	if m.ListForMonthFunc != nil {
		return m.ListForMonthFunc(ctx, year, month)
	}
	return []*domain.Contribution{}, nil
}

func (m *MockContributionService) Summary(ctx context.Context, year int) ([]domain.MonthlyTotal, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, year)
	}
	return []domain.MonthlyTotal{}, nil
}

var _ domain.ContributionService = (*MockContributionService)(nil)
