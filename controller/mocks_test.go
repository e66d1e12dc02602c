package controller

import (
	"context"

	"firestation-backend/models"
	"firestation-backend/services"

	"github.com/stretchr/testify/mock"
)

// MockUserService implements services.UserServiceInterface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *models.RegisterUser) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoginResponse), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockInventoryService implements services.InventoryServiceInterface
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) ListItems(ctx context.Context, filter *models.InventoryFilter, page, limit int) ([]models.ClassifiedItem, *models.Pagination, error) {
	args := m.Called(ctx, filter, page, limit)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]models.ClassifiedItem), args.Get(1).(*models.Pagination), args.Error(2)
}

func (m *MockInventoryService) GetItem(ctx context.Context, id string) (*models.ClassifiedItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClassifiedItem), args.Error(1)
}

func (m *MockInventoryService) CreateItem(ctx context.Context, req *models.CreateInventoryItemRequest, createdBy string) (*models.ClassifiedItem, error) {
	args := m.Called(ctx, req, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClassifiedItem), args.Error(1)
}

func (m *MockInventoryService) UpdateItem(ctx context.Context, id string, req *models.UpdateInventoryItemRequest) (*models.ClassifiedItem, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClassifiedItem), args.Error(1)
}

func (m *MockInventoryService) DeleteItem(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockInventoryService) BulkReorder(ctx context.Context, itemIDs []string, requestedBy string) (*models.BulkReorderResult, error) {
	args := m.Called(ctx, itemIDs, requestedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BulkReorderResult), args.Error(1)
}

func (m *MockInventoryService) SweepStock(ctx context.Context) (*models.StockSweepReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StockSweepReport), args.Error(1)
}

// MockReorderService implements services.ReorderServiceInterface
type MockReorderService struct {
	mock.Mock
}

func (m *MockReorderService) SubmitReorder(ctx context.Context, draft *models.ReorderDraft, requestedBy string) (*models.ReorderRequest, error) {
	args := m.Called(ctx, draft, requestedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReorderRequest), args.Error(1)
}

func (m *MockReorderService) CreateReorder(ctx context.Context, req *models.CreateReorderRequest, requestedBy string) (*models.ReorderRequest, error) {
	args := m.Called(ctx, req, requestedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReorderRequest), args.Error(1)
}

func (m *MockReorderService) GetReorder(ctx context.Context, id string) (*models.ReorderRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReorderRequest), args.Error(1)
}

func (m *MockReorderService) ListReorders(ctx context.Context, filter *models.ReorderFilter) ([]*models.ReorderRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ReorderRequest), args.Error(1)
}

func (m *MockReorderService) Approve(ctx context.Context, id, approvedBy string) (*models.ReorderRequest, error) {
	args := m.Called(ctx, id, approvedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReorderRequest), args.Error(1)
}

func (m *MockReorderService) Ship(ctx context.Context, id string) (*models.ReorderRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReorderRequest), args.Error(1)
}

func (m *MockReorderService) Deliver(ctx context.Context, id string, actualQuantity *int) (*models.ReorderRequest, error) {
	args := m.Called(ctx, id, actualQuantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReorderRequest), args.Error(1)
}

func (m *MockReorderService) Cancel(ctx context.Context, id string) (*models.ReorderRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReorderRequest), args.Error(1)
}

func (m *MockReorderService) DeleteReorder(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockShiftService implements services.ShiftServiceInterface
type MockShiftService struct {
	mock.Mock
}

func (m *MockShiftService) ListShifts(ctx context.Context, filter *models.ShiftFilter) ([]*models.ShiftSchedule, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ShiftSchedule), args.Error(1)
}

func (m *MockShiftService) GetShift(ctx context.Context, id string) (*models.ShiftSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftSchedule), args.Error(1)
}

func (m *MockShiftService) Validate(ctx context.Context, id string, req *models.ShiftScheduleRequest) (map[string]string, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockShiftService) CreateShift(ctx context.Context, req *models.ShiftScheduleRequest, createdBy string) (*models.ShiftSchedule, error) {
	args := m.Called(ctx, req, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftSchedule), args.Error(1)
}

func (m *MockShiftService) UpdateShift(ctx context.Context, id string, req *models.ShiftScheduleRequest) (*models.ShiftSchedule, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftSchedule), args.Error(1)
}

func (m *MockShiftService) DeleteShift(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockVehicleService implements services.VehicleServiceInterface
type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) CreateVehicle(ctx context.Context, req *models.CreateVehicleRequest) (*models.Vehicle, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleService) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleService) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Vehicle), args.Error(1)
}

func (m *MockVehicleService) UpdateVehicle(ctx context.Context, id string, req *models.UpdateVehicleRequest) (*models.Vehicle, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleService) DeleteVehicle(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockProcurementService implements services.ProcurementServiceInterface
type MockProcurementService struct {
	mock.Mock
}

func (m *MockProcurementService) CreateSupplyRequest(ctx context.Context, req *models.CreateSupplyRequest, createdBy string) (*models.SupplyRequest, error) {
	args := m.Called(ctx, req, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SupplyRequest), args.Error(1)
}

func (m *MockProcurementService) GetSupplyRequest(ctx context.Context, id string) (*models.SupplyRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SupplyRequest), args.Error(1)
}

func (m *MockProcurementService) ListSupplyRequests(ctx context.Context, status models.SupplyRequestStatus) ([]*models.SupplyRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SupplyRequest), args.Error(1)
}

func (m *MockProcurementService) SubmitBid(ctx context.Context, requestID string, req *models.SubmitBidRequest) (*models.Bid, error) {
	args := m.Called(ctx, requestID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bid), args.Error(1)
}

func (m *MockProcurementService) CompareBids(ctx context.Context, requestID string) (*models.BidComparison, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BidComparison), args.Error(1)
}

func (m *MockProcurementService) AssignBid(ctx context.Context, requestID, bidID string) (*models.SupplyRequest, error) {
	args := m.Called(ctx, requestID, bidID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SupplyRequest), args.Error(1)
}

// MockBudgetService implements services.BudgetServiceInterface
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) CreateBudget(ctx context.Context, req *models.CreateBudgetRequest, createdBy string) (*models.BudgetView, error) {
	args := m.Called(ctx, req, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BudgetView), args.Error(1)
}

func (m *MockBudgetService) GetBudget(ctx context.Context, id string) (*models.BudgetView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BudgetView), args.Error(1)
}

func (m *MockBudgetService) ListBudgets(ctx context.Context, fiscalYear int) ([]*models.BudgetView, error) {
	args := m.Called(ctx, fiscalYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BudgetView), args.Error(1)
}

func (m *MockBudgetService) RecordExpense(ctx context.Context, budgetID string, req *models.RecordExpenseRequest, recordedBy string) (*models.Expense, error) {
	args := m.Called(ctx, budgetID, req, recordedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *MockBudgetService) ListExpenses(ctx context.Context, budgetID string) ([]*models.Expense, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Expense), args.Error(1)
}

// mockServices implements services.ServiceContainerInterface
type mockServices struct {
	users       *MockUserService
	inventory   *MockInventoryService
	reorders    *MockReorderService
	shifts      *MockShiftService
	vehicles    *MockVehicleService
	procurement *MockProcurementService
	budgets     *MockBudgetService
}

func newMockServices() *mockServices {
	return &mockServices{
		users:       &MockUserService{},
		inventory:   &MockInventoryService{},
		reorders:    &MockReorderService{},
		shifts:      &MockShiftService{},
		vehicles:    &MockVehicleService{},
		procurement: &MockProcurementService{},
		budgets:     &MockBudgetService{},
	}
}

func (s *mockServices) GetUserService() services.UserServiceInterface { return s.users }
func (s *mockServices) GetInventoryService() services.InventoryServiceInterface { return s.inventory }
func (s *mockServices) GetReorderService() services.ReorderServiceInterface { return s.reorders }
func (s *mockServices) GetShiftService() services.ShiftServiceInterface { return s.shifts }
func (s *mockServices) GetVehicleService() services.VehicleServiceInterface { return s.vehicles }
func (s *mockServices) GetProcurementService() services.ProcurementServiceInterface { return s.procurement }
func (s *mockServices) GetBudgetService() services.BudgetServiceInterface { return s.budgets }
