package controller

import (
	"net/http"
	"strconv"

	"firestation-backend/models"
	"firestation-backend/services"
	"firestation-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type BudgetController struct {
	responder
	budgetService services.BudgetServiceInterface
}

func NewBudgetController(budgetService services.BudgetServiceInterface, log logger.Logger) *BudgetController {
	return &BudgetController{
		responder:     newResponder(log),
		budgetService: budgetService,
	}
}

// ListBudgets handles GET /budgets
// @Summary List budgets
// @Tags Finance
// @Security BearerAuth
// @Produce json
// @Param fiscal_year query int false "Fiscal year"
// @Success 200 {object} models.APIResponse{data=[]models.BudgetView}
// @Failure 400 {object} models.APIResponse
// @Router /budgets [get]
func (h *BudgetController) ListBudgets(c *gin.Context) {
	year := 0
	if raw := c.Query("fiscal_year"); raw != "" {
		var err error
		if year, err = strconv.Atoi(raw); err != nil {
			h.invalid(c, "Invalid query parameters", map[string]string{"fiscal_year": "fiscal_year must be a number"})
			return
		}
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), year)
	if err != nil {
		h.fail(c, "Failed to list budgets", err)
		return
	}
	h.ok(c, http.StatusOK, "Budgets retrieved successfully", budgets)
}

// GetBudget handles GET /budgets/:id
// @Summary Get a budget
// @Tags Finance
// @Security BearerAuth
// @Produce json
// @Param id path string true "Budget ID"
// @Success 200 {object} models.APIResponse{data=models.BudgetView}
// @Failure 404 {object} models.APIResponse
// @Router /budgets/{id} [get]
func (h *BudgetController) GetBudget(c *gin.Context) {
	budget, err := h.budgetService.GetBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Failed to get budget", err)
		return
	}
	h.ok(c, http.StatusOK, "Budget retrieved successfully", budget)
}

// CreateBudget handles POST /budgets
// @Summary Allocate a budget
// @Description Admin only. One budget per category and fiscal year.
// @Tags Finance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateBudgetRequest true "Budget"
// @Success 201 {object} models.APIResponse{data=models.BudgetView}
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Router /budgets [post]
func (h *BudgetController) CreateBudget(c *gin.Context) {
	var req models.CreateBudgetRequest
	if !h.bind(c, &req) {
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), &req, session(c).UserID)
	if err != nil {
		h.fail(c, "Failed to create budget", err)
		return
	}
	h.ok(c, http.StatusCreated, "Budget created successfully", budget)
}

// RecordExpense handles POST /budgets/:id/expenses
// @Summary Record an expense
// @Tags Finance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Budget ID"
// @Param request body models.RecordExpenseRequest true "Expense"
// @Success 201 {object} models.APIResponse{data=models.Expense}
// @Failure 400 {object} models.APIResponse
// @Failure 422 {object} models.APIResponse "Exceeds the remaining budget"
// @Router /budgets/{id}/expenses [post]
func (h *BudgetController) RecordExpense(c *gin.Context) {
	var req models.RecordExpenseRequest
	if !h.bind(c, &req) {
		return
	}

	expense, err := h.budgetService.RecordExpense(c.Request.Context(), c.Param("id"), &req, session(c).UserID)
	if err != nil {
		h.fail(c, "Failed to record expense", err)
		return
	}
	h.ok(c, http.StatusCreated, "Expense recorded successfully", expense)
}

// ListExpenses handles GET /budgets/:id/expenses
// @Summary List expenses of a budget
// @Tags Finance
// @Security BearerAuth
// @Produce json
// @Param id path string true "Budget ID"
// @Success 200 {object} models.APIResponse{data=[]models.Expense}
// @Failure 404 {object} models.APIResponse
// @Router /budgets/{id}/expenses [get]
func (h *BudgetController) ListExpenses(c *gin.Context) {
	expenses, err := h.budgetService.ListExpenses(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Failed to list expenses", err)
		return
	}
	h.ok(c, http.StatusOK, "Expenses retrieved successfully", expenses)
}
