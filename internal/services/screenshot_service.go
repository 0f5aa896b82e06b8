package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// ScreenshotServiceImpl implements domain.ScreenshotService
type ScreenshotServiceImpl struct {
	screenshots   domain.ScreenshotRepository
	contributions domain.ContributionService
	storage       domain.ObjectStorage
	policy        domain.PolicyService
	audit         domain.AuditLogger
	now           func() time.Time
}

// NewScreenshotService creates the screenshot service. Verification records
// contributions through the contribution service's checks.
func NewScreenshotService(
	screenshots domain.ScreenshotRepository,
	contributions domain.ContributionService,
	storage domain.ObjectStorage,
	policy domain.PolicyService,
	audit domain.AuditLogger,
) domain.ScreenshotService {
	return &ScreenshotServiceImpl{
		screenshots:   screenshots,
		contributions: contributions,
		storage:       storage,
		policy:        policy,
		audit:         audit,
		now:           time.Now,
	}
}

// monthPrefix is the object key prefix of one member's uploads for a month
func monthPrefix(userID uint, year, month int) string {
	return fmt.Sprintf("screenshots/%d/%d/%02d/", userID, year, month)
}

// UploadURL implements domain.ScreenshotService
func (s *ScreenshotServiceImpl) UploadURL(ctx context.Context, actor *domain.User, year, month int) (*domain.UploadTicket, error) {
	if err := domain.ValidateMonth(year, month); err != nil {
		return nil, err
	}

	key := monthPrefix(actor.ID, year, month) + uuid.NewString()
	url, expires, err := s.storage.PresignUpload(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &domain.UploadTicket{ObjectKey: key, UploadURL: url, ExpiresAt: expires}, nil
}

// Submit implements domain.ScreenshotService. The key must come from an
// upload ticket issued to the same member for the same month.
func (s *ScreenshotServiceImpl) Submit(ctx context.Context, actor *domain.User, year, month int, objectKey string) (*domain.Screenshot, error) {
	if err := domain.ValidateMonth(year, month); err != nil {
		return nil, err
	}
	prefix := monthPrefix(actor.ID, year, month)
	if !strings.HasPrefix(objectKey, prefix) || len(objectKey) == len(prefix) || strings.Contains(objectKey, "..") {
		return nil, domain.NewValidationError("object key does not match your upload for this month")
	}

	shot := &domain.Screenshot{
		UserID:     actor.ID,
		Month:      month,
		Year:       year,
		ObjectKey:  objectKey,
		URL:        s.storage.ObjectURL(objectKey),
		UploadedAt: s.now(),
	}
	if err := s.screenshots.Create(ctx, shot); err != nil {
		return nil, fmt.Errorf("failed to save screenshot: %w", err)
	}
	return shot, nil
}

// ListMine implements domain.ScreenshotService
func (s *ScreenshotServiceImpl) ListMine(ctx context.Context, actor *domain.User) ([]*domain.Screenshot, error) {
	return s.screenshots.ListByUser(ctx, actor.ID)
}

// ListForMonth implements domain.ScreenshotService
func (s *ScreenshotServiceImpl) ListForMonth(ctx context.Context, actor *domain.User, year, month int) ([]*domain.Screenshot, error) {
	if err := s.policy.Require(ctx, actor, domain.ResourceScreenshot, domain.ActionReview); err != nil {
		return nil, err
	}
	if err := domain.ValidateMonth(year, month); err != nil {
		return nil, err
	}
	return s.screenshots.ListByMonth(ctx, year, month)
}

// Verify implements domain.ScreenshotService. The screenshot is marked
// verified and its member's contribution for that month is upserted in one
// transaction.
func (s *ScreenshotServiceImpl) Verify(ctx context.Context, actor *domain.User, id uint, amount int64, mode string) (*domain.Contribution, error) {
	if err := s.policy.Require(ctx, actor, domain.ResourceScreenshot, domain.ActionReview); err != nil {
		return nil, err
	}

	shot, err := s.screenshots.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contribution, err := s.contributions.Prepare(ctx, actor, domain.ContributionInput{
		UserID:       shot.UserID,
		Year:         shot.Year,
		Month:        shot.Month,
		Amount:       amount,
		Mode:         mode,
		ScreenshotID: &shot.ID,
	})
	if err != nil {
		return nil, err
	}

	stored, err := s.screenshots.VerifyWithContribution(ctx, shot.ID, contribution)
	if err != nil {
		return nil, fmt.Errorf("failed to verify screenshot: %w", err)
	}

	emitContributionRecorded(ctx, s.audit, actor, stored)
	return stored, nil
}
