package services

import (
	"context"
	"time"

	"firestation-backend/models"
	"firestation-backend/utils/logger"

	"github.com/stretchr/testify/mock"
)

// MockLogger implements the logger interface for testing
type MockLogger struct {
	mock.Mock
}

func newMockLogger() *MockLogger {
	l := &MockLogger{}
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		l.On(method, mock.Anything).Return().Maybe()
		l.On(method+"f", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	}
	return l
}

func (m *MockLogger) Debug(args ...interface{})                 { m.Called(args) }
func (m *MockLogger) Debugf(format string, args ...interface{}) { m.Called(format, args) }
func (m *MockLogger) Info(args ...interface{})                  { m.Called(args) }
func (m *MockLogger) Infof(format string, args ...interface{})  { m.Called(format, args) }
func (m *MockLogger) Warn(args ...interface{})                  { m.Called(args) }
func (m *MockLogger) Warnf(format string, args ...interface{})  { m.Called(format, args) }
func (m *MockLogger) Error(args ...interface{})                 { m.Called(args) }
func (m *MockLogger) Errorf(format string, args ...interface{}) { m.Called(format, args) }
func (m *MockLogger) Fatal(args ...interface{})                 { m.Called(args) }
func (m *MockLogger) Fatalf(format string, args ...interface{}) { m.Called(format, args) }

func (m *MockLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return m
}

// MockSubmitter records reorder submissions
type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) SubmitReorder(ctx context.Context, draft *models.ReorderDraft, requestedBy string) (*models.ReorderRequest, error) {
	args := m.Called(ctx, draft, requestedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReorderRequest), args.Error(1)
}

// MockInventoryRepository implements repository.InventoryRepositoryInterface
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) CreateItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) GetItem(ctx context.Context, id string) (*models.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) GetItemsByIDs(ctx context.Context, ids []string) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ListItems(ctx context.Context, filter *models.InventoryFilter) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) UpdateItem(ctx context.Context, id string, updates map[string]interface{}) (*models.InventoryItem, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) DeleteItem(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockReorderRepository implements repository.ReorderRepositoryInterface
type MockReorderRepository struct {
	mock.Mock
}

func (m *MockReorderRepository) CreateReorder(ctx context.Context, reorder *models.ReorderRequest) (*models.ReorderRequest, error) {
	args := m.Called(ctx, reorder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReorderRequest), args.Error(1)
}

func (m *MockReorderRepository) GetReorder(ctx context.Context, id string) (*models.ReorderRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReorderRequest), args.Error(1)
}

func (m *MockReorderRepository) ListReorders(ctx context.Context, filter *models.ReorderFilter) ([]*models.ReorderRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ReorderRequest), args.Error(1)
}

func (m *MockReorderRepository) TransitionReorder(ctx context.Context, id string, from models.ReorderStatus, updates map[string]interface{}) (*models.ReorderRequest, error) {
	args := m.Called(ctx, id, from, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReorderRequest), args.Error(1)
}

func (m *MockReorderRepository) DeliverReorder(ctx context.Context, reorder *models.ReorderRequest, updates map[string]interface{}, received int) (*models.ReorderRequest, error) {
	args := m.Called(ctx, reorder, updates, received)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReorderRequest), args.Error(1)
}

func (m *MockReorderRepository) DeletePendingReorder(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockShiftRepository implements repository.ShiftRepositoryInterface
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) CreateShift(ctx context.Context, shift *models.ShiftSchedule) (*models.ShiftSchedule, error) {
	args := m.Called(ctx, shift)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftSchedule), args.Error(1)
}

func (m *MockShiftRepository) GetShift(ctx context.Context, id string) (*models.ShiftSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftSchedule), args.Error(1)
}

func (m *MockShiftRepository) ListShifts(ctx context.Context, filter *models.ShiftFilter) ([]*models.ShiftSchedule, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ShiftSchedule), args.Error(1)
}

func (m *MockShiftRepository) GetShiftsByDate(ctx context.Context, date string) ([]*models.ShiftSchedule, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ShiftSchedule), args.Error(1)
}

func (m *MockShiftRepository) UpdateShift(ctx context.Context, shift *models.ShiftSchedule) (*models.ShiftSchedule, error) {
	args := m.Called(ctx, shift)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftSchedule), args.Error(1)
}

func (m *MockShiftRepository) DeleteShift(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockUserRepository implements repository.UserRepositoryInterface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUsersByIDs(ctx context.Context, ids []string) ([]*models.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*models.User, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockProcurementRepository implements repository.ProcurementRepositoryInterface
type MockProcurementRepository struct {
	mock.Mock
}

func (m *MockProcurementRepository) CreateSupplyRequest(ctx context.Context, request *models.SupplyRequest) (*models.SupplyRequest, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SupplyRequest), args.Error(1)
}

func (m *MockProcurementRepository) GetSupplyRequest(ctx context.Context, id string) (*models.SupplyRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SupplyRequest), args.Error(1)
}

func (m *MockProcurementRepository) ListSupplyRequests(ctx context.Context, status models.SupplyRequestStatus) ([]*models.SupplyRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SupplyRequest), args.Error(1)
}

func (m *MockProcurementRepository) AwardSupplyRequest(ctx context.Context, id string, winner *models.Bid, bids []*models.Bid) (*models.SupplyRequest, error) {
	args := m.Called(ctx, id, winner, bids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SupplyRequest), args.Error(1)
}

func (m *MockProcurementRepository) CreateBid(ctx context.Context, bid *models.Bid) (*models.Bid, error) {
	args := m.Called(ctx, bid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bid), args.Error(1)
}

func (m *MockProcurementRepository) ListBids(ctx context.Context, supplyRequestID string) ([]*models.Bid, error) {
	args := m.Called(ctx, supplyRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bid), args.Error(1)
}

// MockBudgetRepository implements repository.BudgetRepositoryInterface
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) CreateBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	args := m.Called(ctx, budget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Budget), args.Error(1)
}

func (m *MockBudgetRepository) GetBudget(ctx context.Context, id string) (*models.Budget, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, fiscalYear int) ([]*models.Budget, error) {
	args := m.Called(ctx, fiscalYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Budget), args.Error(1)
}

func (m *MockBudgetRepository) RecordExpense(ctx context.Context, budget *models.Budget, spent models.Money, expense *models.Expense) (*models.Expense, error) {
	args := m.Called(ctx, budget, spent, expense)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *MockBudgetRepository) ListExpenses(ctx context.Context, budgetID string) ([]*models.Expense, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Expense), args.Error(1)
}

// fixedClock pins a service's notion of now
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
