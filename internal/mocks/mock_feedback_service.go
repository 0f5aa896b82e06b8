package mocks

import (
	"context"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// MockFeedbackService implements domain.FeedbackService for handler tests
type MockFeedbackService struct {
	SubmitFunc func(ctx context.Context, actor *domain.User, target domain.Role, message string) (*domain.Feedback, error)
	ListFunc   func(ctx context.Context, actor *domain.User) ([]*domain.Feedback, error)
}

func NewMockFeedbackService() *MockFeedbackService {
	return &MockFeedbackService{}
}

func (m *MockFeedbackService) Submit(ctx context.Context, actor *domain.User, target domain.Role, message string) (*domain.Feedback, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, actor, target, message)
	}
	return &domain.Feedback{ID: 1, UserID: actor.ID, Target: target, Message: message}, nil
}

func (m *MockFeedbackService) List(ctx context.Context, actor *domain.User) ([]*domain.Feedback, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, actor)
	}
	return []*domain.Feedback{}, nil
}

var _ domain.FeedbackService = (*MockFeedbackService)(nil)
