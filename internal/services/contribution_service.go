package services

import (
	"context"
	"fmt"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// ContributionServiceImpl implements domain.ContributionService
type ContributionServiceImpl struct {
	contributions domain.ContributionRepository
	users         domain.UserRepository
	policy        domain.PolicyService
	audit         domain.AuditLogger
}

// NewContributionService creates the contribution service
func NewContributionService(
	contributions domain.ContributionRepository,
	users domain.UserRepository,
	policy domain.PolicyService,
	audit domain.AuditLogger,
) domain.ContributionService {
	return &ContributionServiceImpl{
		contributions: contributions,
		users:         users,
		policy:        policy,
		audit:         audit,
	}
}

// Prepare implements domain.ContributionService
func (s *ContributionServiceImpl) Prepare(ctx context.Context, actor *domain.User, in domain.ContributionInput) (*domain.Contribution, error) {
	if err := s.policy.Require(ctx, actor, domain.ResourceContribution, domain.ActionWrite); err != nil {
		return nil, err
	}
	if err := domain.ValidateMonth(in.Year, in.Month); err != nil {
		return nil, err
	}
	if in.Amount <= 0 {
		return nil, domain.NewValidationError("amount must be positive")
	}
	mode, err := parseMode(in.Mode)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	return &domain.Contribution{
		UserID:           in.UserID,
		ContributionDate: domain.MonthStart(in.Year, in.Month),
		Amount:           in.Amount,
		Mode:             mode,
		ScreenshotID:     in.ScreenshotID,
		VerifiedBy:       actor.ID,
	}, nil
}

// Record implements domain.ContributionService. Recording the same member
// and month twice overwrites the first record.
func (s *ContributionServiceImpl) Record(ctx context.Context, actor *domain.User, in domain.ContributionInput) (*domain.Contribution, error) {
	c, err := s.Prepare(ctx, actor, in)
	if err != nil {
		return nil, err
	}

	stored, err := s.contributions.Upsert(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to record contribution: %w", err)
	}

	emitContributionRecorded(ctx, s.audit, actor, stored)
	return stored, nil
}

// Update implements domain.ContributionService
func (s *ContributionServiceImpl) Update(ctx context.Context, actor *domain.User, id uint, upd domain.ContributionUpdate) (*domain.Contribution, error) {
	if err := s.policy.Require(ctx, actor, domain.ResourceContribution, domain.ActionWrite); err != nil {
		return nil, err
	}

	c, err := s.contributions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Amount != nil {
		if *upd.Amount <= 0 {
			return nil, domain.NewValidationError("amount must be positive")
		}
		c.Amount = *upd.Amount
	}
	if upd.Mode != nil {
		mode, err := parseMode(*upd.Mode)
		if err != nil {
			return nil, err
		}
		c.Mode = mode
	}
	c.VerifiedBy = actor.ID

	if err := s.contributions.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.contributions.FindByID(ctx, id)
}

// Delete implements domain.ContributionService
func (s *ContributionServiceImpl) Delete(ctx context.Context, actor *domain.User, id uint) error {
	if err := s.policy.Require(ctx, actor, domain.ResourceContribution, domain.ActionWrite); err != nil {
		return err
	}
	if err := s.contributions.Delete(ctx, id); err != nil {
		return err
	}
	emit(ctx, s.audit, domain.NewAuditEvent(domain.ContributionDeletedEvent, actor.ID).
		WithMetadata("contribution_id", id))
	return nil
}

// ListForUser implements domain.ContributionService. Members see only their own.
func (s *ContributionServiceImpl) ListForUser(ctx context.Context, actor *domain.User, userID uint) ([]*domain.Contribution, error) {
	if actor.ID != userID {
		if err := s.policy.Require(ctx, actor, domain.ResourceUser, domain.ActionList); err != nil {
			return nil, err
		}
	}
	return s.contributions.ListByUser(ctx, userID)
}

// ListForMonth implements domain.ContributionService
func (s *ContributionServiceImpl) ListForMonth(ctx context.Context, year, month int) ([]*domain.Contribution, error) {
	if err := domain.ValidateMonth(year, month); err != nil {
		return nil, err
	}
	return s.contributions.ListByMonth(ctx, domain.MonthStart(year, month))
}

// Summary implements domain.ContributionService
func (s *ContributionServiceImpl) Summary(ctx context.Context, year int) ([]domain.MonthlyTotal, error) {
	if err := domain.ValidateMonth(year, 1); err != nil {
		return nil, err
	}
	return s.contributions.MonthlyTotals(ctx, year)
}

func parseMode(mode string) (string, error) {
	switch mode {
	case "":
		return domain.ModeOnline, nil
	case domain.ModeOnline, domain.ModeCash:
		return mode, nil
	}
	return "", domain.NewValidationError("mode must be online or cash")
}

func emitContributionRecorded(ctx context.Context, audit domain.AuditLogger, actor *domain.User, c *domain.Contribution) {
	event := domain.NewAuditEvent(domain.ContributionRecordedEvent, actor.ID).
		WithMetadata("member_id", c.UserID).
		WithMetadata("month", c.ContributionDate.Format("2006-01")).
		WithMetadata("amount", c.Amount)
	if c.ScreenshotID != nil {
		event = event.WithMetadata("screenshot_id", *c.ScreenshotID)
	}
	emit(ctx, audit, event)
}
