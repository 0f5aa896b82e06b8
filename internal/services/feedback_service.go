package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

const maxFeedbackLength = 2000

// FeedbackServiceImpl implements domain.FeedbackService
type FeedbackServiceImpl struct {
	feedback domain.FeedbackRepository
	policy   domain.PolicyService
	now      func() time.Time
}

// NewFeedbackService creates the feedback service
func NewFeedbackService(feedback domain.FeedbackRepository, policy domain.PolicyService) domain.FeedbackService {
	return &FeedbackServiceImpl{feedback: feedback, policy: policy, now: time.Now}
}

// Submit implements domain.FeedbackService. Any authenticated member may
// write to admins or superadmins.
func (s *FeedbackServiceImpl) Submit(ctx context.Context, actor *domain.User, target domain.Role, message string) (*domain.Feedback, error) {
	if target != domain.RoleAdmin && target != domain.RoleSuperAdmin {
		return nil, domain.NewValidationError("target must be admin or superadmin")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.NewValidationError("message is required")
	}
	if utf8.RuneCountInString(message) > maxFeedbackLength {
		return nil, domain.NewValidationError(fmt.Sprintf("message must be at most %d characters", maxFeedbackLength))
	}

	f := &domain.Feedback{
		UserID:    actor.ID,
		Target:    target,
		Message:   message,
		CreatedAt: s.now(),
	}
	if err := s.feedback.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}
	return f, nil
}

// List implements domain.FeedbackService. Callers see feedback addressed to their own role.
func (s *FeedbackServiceImpl) List(ctx context.Context, actor *domain.User) ([]*domain.Feedback, error) {
	if err := s.policy.Require(ctx, actor, domain.ResourceFeedback, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.feedback.ListByTarget(ctx, actor.Role)
}
