package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// ScreenshotRepositoryImpl implements domain.ScreenshotRepository using GORM
type ScreenshotRepositoryImpl struct {
	db *gorm.DB
}

// NewScreenshotRepository creates a new screenshot repository
func NewScreenshotRepository(db *gorm.DB) domain.ScreenshotRepository {
	return &ScreenshotRepositoryImpl{db: db}
}

func (r *ScreenshotRepositoryImpl) Create(ctx context.Context, s *domain.Screenshot) error {
	row := &DBScreenshot{
		UserID:     s.UserID,
		Month:      s.Month,
		Year:       s.Year,
		ObjectKey:  s.ObjectKey,
		URL:        s.URL,
		Verified:   s.Verified,
		UploadedAt: s.UploadedAt,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	s.ID = row.ID
	return nil
}

func (r *ScreenshotRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Screenshot, error) {
	var row DBScreenshot
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScreenshotNotFound
		}
		return nil, err
	}
	return screenshotToDomain(&row), nil
}

func (r *ScreenshotRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]*domain.Screenshot, error) {
	var rows []DBScreenshot
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("year DESC, month DESC, id DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return screenshotsToDomain(rows), nil
}

func (r *ScreenshotRepositoryImpl) ListByMonth(ctx context.Context, year, month int) ([]*domain.Screenshot, error) {
	var rows []DBScreenshot
	err := r.db.WithContext(ctx).Where("year = ? AND month = ?", year, month).Order("uploaded_at ASC, id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return screenshotsToDomain(rows), nil
}

// VerifyWithContribution implements domain.ScreenshotRepository
func (r *ScreenshotRepositoryImpl) VerifyWithContribution(ctx context.Context, id uint, c *domain.Contribution) (*domain.Contribution, error) {
	var stored *domain.Contribution
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&DBScreenshot{}).Where("id = ?", id).Update("verified", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrScreenshotNotFound
		}

		var err error
		stored, err = upsertContribution(tx, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func screenshotToDomain(row *DBScreenshot) *domain.Screenshot {
	return &domain.Screenshot{
		ID:         row.ID,
		UserID:     row.UserID,
		Month:      row.Month,
		Year:       row.Year,
		ObjectKey:  row.ObjectKey,
		URL:        row.URL,
		Verified:   row.Verified,
		UploadedAt: row.UploadedAt,
	}
}

func screenshotsToDomain(rows []DBScreenshot) []*domain.Screenshot {
	out := make([]*domain.Screenshot, 0, len(rows))
	for i := range rows {
		out = append(out, screenshotToDomain(&rows[i]))
	}
	return out
}
