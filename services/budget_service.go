package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"firestation-backend/models"
	"firestation-backend/repository"
	"firestation-backend/utils/logger"
)

const maxSpendAttempts = 3

type BudgetService struct {
	repo   repository.BudgetRepositoryInterface
	logger logger.Logger
}

func NewBudgetService(repo repository.BudgetRepositoryInterface, log logger.Logger) *BudgetService {
	return &BudgetService{
		repo:   repo,
		logger: log,
	}
}

func (s *BudgetService) CreateBudget(ctx context.Context, req *models.CreateBudgetRequest, createdBy string) (*models.BudgetView, error) {
	if !req.Allocated.IsPositive() {
		return nil, NewValidationError(map[string]string{"allocated": "Allocated must be greater than 0"})
	}

	budget, err := s.repo.CreateBudget(ctx, &models.Budget{
		FiscalYear: req.FiscalYear,
		Category:   strings.TrimSpace(req.Category),
		Allocated:  models.NewMoney(req.Allocated.Round(2)),
		Spent:      models.MustMoney("0"),
		CreatedBy:  createdBy,
	})
	if err != nil {
		return nil, err
	}
	return budgetView(budget), nil
}

func (s *BudgetService) GetBudget(ctx context.Context, id string) (*models.BudgetView, error) {
	budget, err := s.repo.GetBudget(ctx, id)
	if err != nil {
		return nil, err
	}
	return budgetView(budget), nil
}

func (s *BudgetService) ListBudgets(ctx context.Context, fiscalYear int) ([]*models.BudgetView, error) {
	budgets, err := s.repo.ListBudgets(ctx, fiscalYear)
	if err != nil {
		return nil, err
	}
	views := make([]*models.BudgetView, 0, len(budgets))
	for _, b := range budgets {
		views = append(views, budgetView(b))
	}
	return views, nil
}

// RecordExpense charges an expense to a budget. An expense larger than the
// remaining amount is rejected with models.ErrBudgetExceeded.
func (s *BudgetService) RecordExpense(ctx context.Context, budgetID string, req *models.RecordExpenseRequest, recordedBy string) (*models.Expense, error) {
	fields := map[string]string{}
	if !req.Amount.IsPositive() {
		fields["amount"] = "Amount must be greater than 0"
	}
	if _, err := time.Parse(models.ShiftDateLayout, strings.TrimSpace(req.IncurredOn)); err != nil {
		fields["incurred_on"] = "Incurred on must be in YYYY-MM-DD format"
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields)
	}

	amount := req.Amount.Round(2)
	for attempt := 1; ; attempt++ {
		budget, err := s.repo.GetBudget(ctx, budgetID)
		if err != nil {
			return nil, err
		}
		if amount.GreaterThan(budget.Remaining()) {
			return nil, fmt.Errorf("%s requested, %s remaining in %s: %w",
				amount.StringFixed(2), budget.Remaining().StringFixed(2), budget.Category, models.ErrBudgetExceeded)
		}

		expense, err := s.repo.RecordExpense(ctx, budget, models.NewMoney(budget.Spent.Add(amount)), &models.Expense{
			BudgetID:    budgetID,
			Description: strings.TrimSpace(req.Description),
			Amount:      models.NewMoney(amount),
			IncurredOn:  strings.TrimSpace(req.IncurredOn),
			RecordedBy:  recordedBy,
		})
		if err == nil {
			return expense, nil
		}
		if !errors.Is(err, models.ErrConflict) || attempt >= maxSpendAttempts {
			return nil, err
		}
		s.logger.Warnf("Budget %s changed while recording expense, retrying (attempt %d)", budgetID, attempt)
	}
}

func (s *BudgetService) ListExpenses(ctx context.Context, budgetID string) ([]*models.Expense, error) {
	if _, err := s.repo.GetBudget(ctx, budgetID); err != nil {
		return nil, err
	}
	return s.repo.ListExpenses(ctx, budgetID)
}

func budgetView(b *models.Budget) *models.BudgetView {
	return &models.BudgetView{Budget: b, Remaining: b.Remaining()}
}
