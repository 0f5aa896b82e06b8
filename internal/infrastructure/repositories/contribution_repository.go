package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// ContributionRepositoryImpl implements domain.ContributionRepository using GORM
type ContributionRepositoryImpl struct {
	db *gorm.DB
}

// NewContributionRepository creates a new contribution repository
func NewContributionRepository(db *gorm.DB) domain.ContributionRepository {
	return &ContributionRepositoryImpl{db: db}
}

// Upsert implements domain.ContributionRepository.
// The insert and the conflict update are a single INSERT ... ON CONFLICT statement.
func (r *ContributionRepositoryImpl) Upsert(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error) {
	return upsertContribution(r.db.WithContext(ctx), c)
}

// upsertContribution runs on db, which may be a transaction
func upsertContribution(db *gorm.DB, c *domain.Contribution) (*domain.Contribution, error) {
	row := contributionToDB(c)
	row.ID = 0
	row.ContributionDate = normalizeMonth(row.ContributionDate)

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "contribution_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "mode", "screenshot_id", "verified_by", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return nil, err
	}

	var stored DBContribution
	err = db.Where("user_id = ? AND contribution_date = ?", row.UserID, row.ContributionDate).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return contributionToDomain(&stored), nil
}

// FindByID implements domain.ContributionRepository
func (r *ContributionRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Contribution, error) {
	var row DBContribution
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContributionNotFound
		}
		return nil, err
	}
	return contributionToDomain(&row), nil
}

// Update implements domain.ContributionRepository
func (r *ContributionRepositoryImpl) Update(ctx context.Context, c *domain.Contribution) error {
	res := r.db.WithContext(ctx).Model(&DBContribution{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"amount":      c.Amount,
		"mode":        c.Mode,
		"verified_by": c.VerifiedBy,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrContributionNotFound
	}
	return nil
}

// Delete implements domain.ContributionRepository
func (r *ContributionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&DBContribution{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrContributionNotFound
	}
	return nil
}

// ListByUser implements domain.ContributionRepository
func (r *ContributionRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]*domain.Contribution, error) {
	var rows []DBContribution
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("contribution_date DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return contributionsToDomain(rows), nil
}

// ListByMonth implements domain.ContributionRepository
func (r *ContributionRepositoryImpl) ListByMonth(ctx context.Context, month time.Time) ([]*domain.Contribution, error) {
	var rows []DBContribution
	err := r.db.WithContext(ctx).Where("contribution_date = ?", normalizeMonth(month)).Order("user_id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return contributionsToDomain(rows), nil
}

// MonthlyTotals implements domain.ContributionRepository.
// contribution_date is always a month start, so grouping on it groups by month.
func (r *ContributionRepositoryImpl) MonthlyTotals(ctx context.Context, year int) ([]domain.MonthlyTotal, error) {
	var rows []struct {
		ContributionDate time.Time
		Total            int64
		Entries          int64
	}
	err := r.db.WithContext(ctx).Model(&DBContribution{}).
		Select("contribution_date, SUM(amount) AS total, COUNT(*) AS entries").
		Where("contribution_date >= ? AND contribution_date < ?", domain.MonthStart(year, 1), domain.MonthStart(year+1, 1)).
		Group("contribution_date").
		Order("contribution_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]domain.MonthlyTotal, 0, len(rows))
	for _, row := range rows {
		d := row.ContributionDate.UTC()
		totals = append(totals, domain.MonthlyTotal{
			Year:    d.Year(),
			Month:   int(d.Month()),
			Total:   row.Total,
			Entries: row.Entries,
		})
	}
	return totals, nil
}

func normalizeMonth(t time.Time) time.Time {
	t = t.UTC()
	return domain.MonthStart(t.Year(), int(t.Month()))
}

func contributionToDB(c *domain.Contribution) *DBContribution {
	return &DBContribution{
		ID:               c.ID,
		UserID:           c.UserID,
		ContributionDate: c.ContributionDate,
		Amount:           c.Amount,
		Mode:             c.Mode,
		ScreenshotID:     c.ScreenshotID,
		VerifiedBy:       c.VerifiedBy,
	}
}

func contributionToDomain(row *DBContribution) *domain.Contribution {
	return &domain.Contribution{
		ID:               row.ID,
		UserID:           row.UserID,
		ContributionDate: row.ContributionDate.UTC(),
		Amount:           row.Amount,
		Mode:             row.Mode,
		ScreenshotID:     row.ScreenshotID,
		VerifiedBy:       row.VerifiedBy,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func contributionsToDomain(rows []DBContribution) []*domain.Contribution {
	out := make([]*domain.Contribution, 0, len(rows))
	for i := range rows {
		out = append(out, contributionToDomain(&rows[i]))
	}
	return out
}
