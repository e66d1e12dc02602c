package repository

import (
	"context"
	"firestation-backend/dal"
	"firestation-backend/models"
	"firestation-backend/utils"
	"firestation-backend/utils/logger"
	"fmt"
	"sort"
	"time"
)

type BudgetRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewBudgetRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *BudgetRepository) budgetTable() string {
	return r.config.TableName(TableBudgets)
}

func (r *BudgetRepository) expenseTable() string {
	return r.config.TableName(TableExpenses)
}

func (r *BudgetRepository) CreateBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	r.logger.Infof("Creating budget: %s %d", budget.Category, budget.FiscalYear)

	existing, err := r.ListBudgets(ctx, budget.FiscalYear)
	if err != nil {
		return nil, err
	}
	for _, b := range existing {
		if b.Category == budget.Category {
			return nil, fmt.Errorf("budget %s/%d already exists: %w", budget.Category, budget.FiscalYear, models.ErrConflict)
		}
	}

	now := time.Now()
	budget.ID = utils.GenerateUUID()
	budget.CreatedAt = now
	budget.UpdatedAt = now

	if err := r.db.CreateItem(ctx, r.budgetTable(), budget); err != nil {
		r.logger.Errorf("Failed to create budget: %v", err)
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	return budget, nil
}

func (r *BudgetRepository) GetBudget(ctx context.Context, id string) (*models.Budget, error) {
	budget := &models.Budget{}
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.budgetTable(),
		KeyName:   "id",
		KeyValue:  id,
		KeyType:   models.StringType,
	}, budget)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget %s: %w", id, err)
	}
	return budget, nil
}

// ListBudgets returns budgets ordered by category; fiscalYear 0 lists every year
func (r *BudgetRepository) ListBudgets(ctx context.Context, fiscalYear int) ([]*models.Budget, error) {
	var budgets []*models.Budget
	if err := r.db.Scan(ctx, r.budgetTable(), &budgets); err != nil {
		r.logger.Errorf("Failed to list budgets: %v", err)
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	filtered := make([]*models.Budget, 0, len(budgets))
	for _, b := range budgets {
		if fiscalYear != 0 && b.FiscalYear != fiscalYear {
			continue
		}
		filtered = append(filtered, b)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].FiscalYear != filtered[j].FiscalYear {
			return filtered[i].FiscalYear > filtered[j].FiscalYear
		}
		return filtered[i].Category < filtered[j].Category
	})
	return filtered, nil
}

// RecordExpense stores expense and the budget's new spent total in one
// transaction, provided the stored total still equals budget.Spent. A
// concurrent expense yields models.ErrConflict and nothing is written.
func (r *BudgetRepository) RecordExpense(ctx context.Context, budget *models.Budget, spent models.Money, expense *models.Expense) (*models.Expense, error) {
	r.logger.Infof("Recording expense of %s against budget %s", expense.Amount.String(), budget.ID)

	now := time.Now()
	expense.ID = utils.GenerateUUID()
	expense.BudgetID = budget.ID
	expense.CreatedAt = now

	err := r.db.TransactWrite(ctx, []models.WriteOp{
		{
			TableName: r.budgetTable(),
			KeyValue:  budget.ID,
			Set:       map[string]interface{}{"spent": spent, "updated_at": now},
			Condition: &models.Condition{Field: "spent", Equals: budget.Spent},
		},
		{TableName: r.expenseTable(), Item: expense},
	})
	if err != nil {
		if dal.FailedWrite(err) == 0 {
			return nil, fmt.Errorf("budget %s changed concurrently: %w", budget.ID, models.ErrConflict)
		}
		r.logger.Errorf("Failed to record expense against budget %s: %v", budget.ID, err)
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}
	return expense, nil
}

func (r *BudgetRepository) ListExpenses(ctx context.Context, budgetID string) ([]*models.Expense, error) {
	var expenses []*models.Expense
	if err := r.db.QueryByIndex(ctx, r.expenseTable(), "budget_id-index", "budget_id", budgetID, &expenses); err != nil {
		r.logger.Errorf("Failed to list expenses for %s: %v", budgetID, err)
		return nil, fmt.Errorf("failed to list expenses for %s: %w", budgetID, err)
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].IncurredOn > expenses[j].IncurredOn
	})
	return expenses, nil
}
