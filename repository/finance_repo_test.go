package repository

import (
	"context"
	"errors"
	"testing"

	"firestation-backend/dal"
	"firestation-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBudgetRepository_CreateRejectsDuplicateCategory(t *testing.T) {
	db := &MockDatabaseClient{}
	repo := NewBudgetRepository(db, testConfig(), newMockLogger())
	ctx := context.Background()

	db.On("Scan", ctx, "test_budgets", mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(2).(*[]*models.Budget) = []*models.Budget{
			{ID: "b-1", FiscalYear: 2025, Category: "Equipment"},
			{ID: "b-2", FiscalYear: 2024, Category: "Training"},
		}
	}).Return(nil)
	db.On("CreateItem", ctx, "test_budgets", mock.Anything).Return(nil)

	_, err := repo.CreateBudget(ctx, &models.Budget{FiscalYear: 2025, Category: "Equipment"})
	assert.True(t, errors.Is(err, models.ErrConflict))

	created, err := repo.CreateBudget(ctx, &models.Budget{FiscalYear: 2025, Category: "Training"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestBudgetRepository_RecordExpenseIsOneTransaction(t *testing.T) {
	db := &MockDatabaseClient{}
	repo := NewBudgetRepository(db, testConfig(), newMockLogger())
	ctx := context.Background()
	budget := &models.Budget{ID: "b-1", Spent: models.MustMoney("100.00")}

	db.On("TransactWrite", ctx, mock.MatchedBy(func(ops []models.WriteOp) bool {
		if len(ops) != 2 {
			return false
		}
		spend, put := ops[0], ops[1]
		expense, ok := put.Item.(*models.Expense)
		return spend.TableName == "test_budgets" &&
			spend.KeyValue == "b-1" &&
			*spend.Condition == models.Condition{Field: "spent", Equals: budget.Spent} &&
			put.TableName == "test_expenses" &&
			ok && expense.ID != "" && expense.BudgetID == "b-1"
	})).Return(nil).Once()

	created, err := repo.RecordExpense(ctx, budget, models.MustMoney("150.00"), &models.Expense{Amount: models.MustMoney("50")})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	db.AssertExpectations(t)
}

func TestBudgetRepository_RecordExpenseConflict(t *testing.T) {
	db := &MockDatabaseClient{}
	repo := NewBudgetRepository(db, testConfig(), newMockLogger())
	ctx := context.Background()
	budget := &models.Budget{ID: "b-1", Spent: models.MustMoney("100.00")}

	db.On("TransactWrite", ctx, mock.Anything).Return(&dal.ConditionError{Index: 0}).Once()
	_, err := repo.RecordExpense(ctx, budget, models.MustMoney("150.00"), &models.Expense{Amount: models.MustMoney("50")})
	assert.True(t, errors.Is(err, models.ErrConflict))

	db.On("TransactWrite", ctx, mock.Anything).Return(errors.New("throttled")).Once()
	_, err = repo.RecordExpense(ctx, budget, models.MustMoney("150.00"), &models.Expense{Amount: models.MustMoney("50")})
	assert.False(t, errors.Is(err, models.ErrConflict))
	assert.ErrorContains(t, err, "throttled")
}

func TestProcurementRepository_AwardUpdatesEveryBid(t *testing.T) {
	db := &MockDatabaseClient{}
	repo := NewProcurementRepository(db, testConfig(), newMockLogger())
	ctx := context.Background()
	bids := []*models.Bid{{ID: "bid-1", Supplier: "Acme Fire Supply"}, {ID: "bid-2", Supplier: "Hose Depot"}}

	db.On("TransactWrite", ctx, mock.MatchedBy(func(ops []models.WriteOp) bool {
		return len(ops) == 3 &&
			ops[0].TableName == "test_supply_requests" &&
			ops[0].Set["awarded_bid_id"] == "bid-2" &&
			ops[1].KeyValue == "bid-1" && ops[1].Set["status"] == models.BidStatusRejected &&
			ops[2].KeyValue == "bid-2" && ops[2].Set["status"] == models.BidStatusAccepted
	})).Return(nil).Once()
	db.On("GetItem", ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(2).(*models.SupplyRequest) = models.SupplyRequest{ID: "sr-1", Status: models.SupplyRequestAwarded, AwardedBidID: "bid-2"}
	}).Return(nil)

	awarded, err := repo.AwardSupplyRequest(ctx, "sr-1", bids[1], bids)
	require.NoError(t, err)
	assert.Equal(t, "bid-2", awarded.AwardedBidID)
	db.AssertExpectations(t)
}

func TestProcurementRepository_AwardRequiresOpen(t *testing.T) {
	db := &MockDatabaseClient{}
	repo := NewProcurementRepository(db, testConfig(), newMockLogger())
	ctx := context.Background()
	bids := []*models.Bid{{ID: "bid-1", Supplier: "Acme Fire Supply"}, {ID: "bid-2"}}

	db.On("TransactWrite", ctx, mock.MatchedBy(func(ops []models.WriteOp) bool {
		return *ops[0].Condition == models.Condition{Field: "status", Equals: "open"}
	})).Return(&dal.ConditionError{Index: 0}).Once()
	_, err := repo.AwardSupplyRequest(ctx, "sr-1", bids[0], bids)
	assert.True(t, errors.Is(err, models.ErrRequestNotOpen))

	db.On("TransactWrite", ctx, mock.Anything).Return(&dal.ConditionError{Index: 2}).Once()
	_, err = repo.AwardSupplyRequest(ctx, "sr-1", bids[0], bids)
	assert.True(t, errors.Is(err, models.ErrNotFound))
	assert.ErrorContains(t, err, "bid-2")
}

func TestShiftRepository_ListShiftsByDateAndMember(t *testing.T) {
	db := &MockDatabaseClient{}
	repo := NewShiftRepository(db, testConfig(), newMockLogger())
	ctx := context.Background()

	db.On("QueryByIndex", ctx, "test_shift_schedules", "date-index", "date", "2025-06-01", mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(5).(*[]*models.ShiftSchedule) = []*models.ShiftSchedule{
				{ID: "s-2", Date: "2025-06-01", Vehicle: "Ladder 3", Members: []string{"u-1"}},
				{ID: "s-1", Date: "2025-06-01", Vehicle: "Engine 1", Members: []string{"u-1", "u-2"}},
				{ID: "s-3", Date: "2025-06-01", Vehicle: "Rescue 2", Members: []string{"u-3"}},
			}
		}).Return(nil)

	shifts, err := repo.ListShifts(ctx, &models.ShiftFilter{Date: "2025-06-01", MemberID: "u-1"})
	require.NoError(t, err)
	require.Len(t, shifts, 2)
	assert.Equal(t, "Engine 1", shifts[0].Vehicle)
	assert.Equal(t, "Ladder 3", shifts[1].Vehicle)
}

func TestUserRepository_CreateUserRejectsDuplicateEmail(t *testing.T) {
	db := &MockDatabaseClient{}
	repo := NewUserRepository(db, testConfig(), newMockLogger())
	ctx := context.Background()

	db.On("QueryByIndex", ctx, "test_users", "email-index", "email", "captain@station12.org", mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(5).(*[]*models.User) = []*models.User{{ID: "u-1"}}
		}).Return(nil)

	_, err := repo.CreateUser(ctx, &models.User{Email: " Captain@Station12.org ", Username: "jmiller"})
	assert.True(t, errors.Is(err, models.ErrConflict))
	db.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything, mock.Anything)
}
