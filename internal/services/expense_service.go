package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// ExpenseServiceImpl implements domain.ExpenseService
type ExpenseServiceImpl struct {
	expenses domain.ExpenseRepository
	policy   domain.PolicyService
	audit    domain.AuditLogger
	now      func() time.Time
}

// NewExpenseService creates the expense service
func NewExpenseService(expenses domain.ExpenseRepository, policy domain.PolicyService, audit domain.AuditLogger) domain.ExpenseService {
	return &ExpenseServiceImpl{
		expenses: expenses,
		policy:   policy,
		audit:    audit,
		now:      time.Now,
	}
}

// Create implements domain.ExpenseService
func (s *ExpenseServiceImpl) Create(ctx context.Context, actor *domain.User, e *domain.Expense) (*domain.Expense, error) {
	if err := s.policy.Require(ctx, actor, domain.ResourceExpense, domain.ActionWrite); err != nil {
		return nil, err
	}

	out := *e
	out.ID = 0
	out.Title = strings.TrimSpace(out.Title)
	out.Description = strings.TrimSpace(out.Description)
	if out.ExpenseDate.IsZero() {
		out.ExpenseDate = s.now().UTC()
	}
	out.CreatedBy = actor.ID
	if err := validateExpense(&out); err != nil {
		return nil, err
	}

	if err := s.expenses.Create(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	emit(ctx, s.audit, domain.NewAuditEvent(domain.ExpenseRecordedEvent, actor.ID).
		WithMetadata("expense_id", out.ID).
		WithMetadata("amount", out.Amount))
	return &out, nil
}

// Update implements domain.ExpenseService
func (s *ExpenseServiceImpl) Update(ctx context.Context, actor *domain.User, id uint, upd domain.ExpenseUpdate) (*domain.Expense, error) {
	if err := s.policy.Require(ctx, actor, domain.ResourceExpense, domain.ActionWrite); err != nil {
		return nil, err
	}

	e, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		e.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		e.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Amount != nil {
		e.Amount = *upd.Amount
	}
	if upd.ExpenseDate != nil {
		e.ExpenseDate = upd.ExpenseDate.UTC()
	}
	if err := validateExpense(e); err != nil {
		return nil, err
	}

	if err := s.expenses.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete implements domain.ExpenseService
func (s *ExpenseServiceImpl) Delete(ctx context.Context, actor *domain.User, id uint) error {
	if err := s.policy.Require(ctx, actor, domain.ResourceExpense, domain.ActionWrite); err != nil {
		return err
	}
	if err := s.expenses.Delete(ctx, id); err != nil {
		return err
	}
	emit(ctx, s.audit, domain.NewAuditEvent(domain.ExpenseDeletedEvent, actor.ID).
		WithMetadata("expense_id", id))
	return nil
}

// List implements domain.ExpenseService
func (s *ExpenseServiceImpl) List(ctx context.Context) ([]*domain.Expense, error) {
	return s.expenses.List(ctx)
}

// Summary implements domain.ExpenseService
func (s *ExpenseServiceImpl) Summary(ctx context.Context, year int) ([]domain.MonthlyTotal, error) {
	if err := domain.ValidateMonth(year, 1); err != nil {
		return nil, err
	}
	return s.expenses.MonthlyTotals(ctx, year)
}

func validateExpense(e *domain.Expense) error {
	if e.Title == "" {
		return domain.NewValidationError("title is required")
	}
	if e.Amount <= 0 {
		return domain.NewValidationError("amount must be positive")
	}
	return nil
}
