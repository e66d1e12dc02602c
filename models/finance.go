package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is an allocation for a category within a fiscal year
type Budget struct {
	ID         string    `json:"id" dynamodbav:"id"`
	FiscalYear int       `json:"fiscal_year" dynamodbav:"fiscal_year"`
	Category   string    `json:"category" dynamodbav:"category"`
	Allocated  Money     `json:"allocated" dynamodbav:"allocated"`
	Spent      Money     `json:"spent" dynamodbav:"spent"`
	CreatedBy  string    `json:"created_by" dynamodbav:"created_by"`
	CreatedAt  time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// Remaining is allocated minus spent
func (b *Budget) Remaining() decimal.Decimal {
	return b.Allocated.Sub(b.Spent.Decimal)
}

// BudgetView adds the derived remaining amount for responses
type BudgetView struct {
	*Budget
	Remaining decimal.Decimal `json:"remaining"`
}

// Expense is money spent against a budget
type Expense struct {
	ID          string    `json:"id" dynamodbav:"id"`
	BudgetID    string    `json:"budget_id" dynamodbav:"budget_id"`
	Description string    `json:"description" dynamodbav:"description"`
	Amount      Money     `json:"amount" dynamodbav:"amount"`
	IncurredOn  string    `json:"incurred_on" dynamodbav:"incurred_on"`
	RecordedBy  string    `json:"recorded_by" dynamodbav:"recorded_by"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`
}

// CreateBudgetRequest is the body of POST /budgets
type CreateBudgetRequest struct {
	FiscalYear int    `json:"fiscal_year" validate:"required,min=2000,max=2100"`
	Category   string `json:"category" validate:"required,max=100"`
	Allocated  Money  `json:"allocated"`
}

// RecordExpenseRequest is the body of POST /budgets/:id/expenses
type RecordExpenseRequest struct {
	Description string `json:"description" validate:"required,max=300"`
	Amount      Money  `json:"amount"`
	IncurredOn  string `json:"incurred_on" validate:"required"`
}
