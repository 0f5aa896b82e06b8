package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// FeedbackRepositoryImpl implements domain.FeedbackRepository using GORM
type FeedbackRepositoryImpl struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB) domain.FeedbackRepository {
	return &FeedbackRepositoryImpl{db: db}
}

func (r *FeedbackRepositoryImpl) Create(ctx context.Context, f *domain.Feedback) error {
	row := &DBFeedback{UserID: f.UserID, Target: string(f.Target), Message: f.Message}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	f.ID = row.ID
	f.CreatedAt = row.CreatedAt
	return nil
}

func (r *FeedbackRepositoryImpl) ListByTarget(ctx context.Context, target domain.Role) ([]*domain.Feedback, error) {
	var rows []DBFeedback
	err := r.db.WithContext(ctx).Where("target = ?", string(target)).Order("created_at DESC, id DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Feedback, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.Feedback{
			ID:        row.ID,
			UserID:    row.UserID,
			Target:    domain.Role(row.Target),
			Message:   row.Message,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}
