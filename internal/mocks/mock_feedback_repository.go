package mocks

import (
	"context"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// MockFeedbackRepository implements domain.FeedbackRepository for testing
type MockFeedbackRepository struct {
	CreateFunc       func(ctx context.Context, f *domain.Feedback) error
	ListByTargetFunc func(ctx context.Context, target domain.Role) ([]*domain.Feedback, error)
}

func NewMockFeedbackRepository() *MockFeedbackRepository {
	return &MockFeedbackRepository{}
}

func (m *MockFeedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, f)
	}
	return nil
}

func (m *MockFeedbackRepository) ListByTarget(ctx context.Context, target domain.Role) ([]*domain.Feedback, error) {
	if m.ListByTargetFunc != nil {
		return m.ListByTargetFunc(ctx, target)
	}
	return []*domain.Feedback{}, nil
}

var _ domain.FeedbackRepository = (*MockFeedbackRepository)(nil)
