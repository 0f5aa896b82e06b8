package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// ExpenseRepositoryImpl implements domain.ExpenseRepository using GORM
type ExpenseRepositoryImpl struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domain.ExpenseRepository {
	return &ExpenseRepositoryImpl{db: db}
}

func (r *ExpenseRepositoryImpl) Create(ctx context.Context, e *domain.Expense) error {
	row := expenseToDB(e)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	e.ID = row.ID
	e.CreatedAt = row.CreatedAt
	e.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *ExpenseRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Expense, error) {
	var row DBExpense
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return expenseToDomain(&row), nil
}

func (r *ExpenseRepositoryImpl) Update(ctx context.Context, e *domain.Expense) error {
	res := r.db.WithContext(ctx).Model(&DBExpense{}).Where("id = ?", e.ID).Updates(map[string]interface{}{
		"title":        e.Title,
		"description":  e.Description,
		"amount":       e.Amount,
		"expense_date": e.ExpenseDate,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&DBExpense{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepositoryImpl) List(ctx context.Context) ([]*domain.Expense, error) {
	var rows []DBExpense
	if err := r.db.WithContext(ctx).Order("expense_date DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Expense, 0, len(rows))
	for i := range rows {
		out = append(out, expenseToDomain(&rows[i]))
	}
	return out, nil
}

// MonthlyTotals buckets the year's expenses by calendar month. Bucketing
// happens after the range query so the SQL stays dialect neutral.
func (r *ExpenseRepositoryImpl) MonthlyTotals(ctx context.Context, year int) ([]domain.MonthlyTotal, error) {
	var rows []DBExpense
	err := r.db.WithContext(ctx).
		Where("expense_date >= ? AND expense_date < ?", domain.MonthStart(year, 1), domain.MonthStart(year+1, 1)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	var buckets [12]domain.MonthlyTotal
	for _, row := range rows {
		m := int(row.ExpenseDate.UTC().Month())
		buckets[m-1].Total += row.Amount
		buckets[m-1].Entries++
	}

	totals := make([]domain.MonthlyTotal, 0, 12)
	for i, b := range buckets {
		if b.Entries == 0 {
			continue
		}
		b.Year = year
		b.Month = i + 1
		totals = append(totals, b)
	}
	return totals, nil
}

func expenseToDB(e *domain.Expense) *DBExpense {
	return &DBExpense{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Amount:      e.Amount,
		ExpenseDate: e.ExpenseDate,
		CreatedBy:   e.CreatedBy,
	}
}

func expenseToDomain(row *DBExpense) *domain.Expense {
	return &domain.Expense{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Amount:      row.Amount,
		ExpenseDate: row.ExpenseDate.UTC(),
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
