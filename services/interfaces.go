package services

import (
	"context"

	"firestation-backend/models"
)

// UserServiceInterface defines the contract for staff accounts
type UserServiceInterface interface {
	Register(ctx context.Context, req *models.RegisterUser) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
}

// InventoryServiceInterface defines the contract for inventory items
type InventoryServiceInterface interface {
	ListItems(ctx context.Context, filter *models.InventoryFilter, page, limit int) ([]models.ClassifiedItem, *models.Pagination, error)
	GetItem(ctx context.Context, id string) (*models.ClassifiedItem, error)
	CreateItem(ctx context.Context, req *models.CreateInventoryItemRequest, createdBy string) (*models.ClassifiedItem, error)
	UpdateItem(ctx context.Context, id string, req *models.UpdateInventoryItemRequest) (*models.ClassifiedItem, error)
	DeleteItem(ctx context.Context, id string) error
	BulkReorder(ctx context.Context, itemIDs []string, requestedBy string) (*models.BulkReorderResult, error)
	SweepStock(ctx context.Context) (*models.StockSweepReport, error)
}

// ReorderServiceInterface defines the contract for the reorder request lifecycle
type ReorderServiceInterface interface {
	ReorderSubmitter
	CreateReorder(ctx context.Context, req *models.CreateReorderRequest, requestedBy string) (*models.ReorderRequest, error)
	GetReorder(ctx context.Context, id string) (*models.ReorderRequest, error)
	ListReorders(ctx context.Context, filter *models.ReorderFilter) ([]*models.ReorderRequest, error)
	Approve(ctx context.Context, id, approvedBy string) (*models.ReorderRequest, error)
	Ship(ctx context.Context, id string) (*models.ReorderRequest, error)
	Deliver(ctx context.Context, id string, actualQuantity *int) (*models.ReorderRequest, error)
	Cancel(ctx context.Context, id string) (*models.ReorderRequest, error)
	DeleteReorder(ctx context.Context, id string) error
}

// ShiftServiceInterface defines the contract for shift schedules
type ShiftServiceInterface interface {
	ListShifts(ctx context.Context, filter *models.ShiftFilter) ([]*models.ShiftSchedule, error)
	GetShift(ctx context.Context, id string) (*models.ShiftSchedule, error)
	Validate(ctx context.Context, id string, req *models.ShiftScheduleRequest) (map[string]string, error)
	CreateShift(ctx context.Context, req *models.ShiftScheduleRequest, createdBy string) (*models.ShiftSchedule, error)
	UpdateShift(ctx context.Context, id string, req *models.ShiftScheduleRequest) (*models.ShiftSchedule, error)
	DeleteShift(ctx context.Context, id string) error
}

// VehicleServiceInterface defines the contract for vehicles
type VehicleServiceInterface interface {
	CreateVehicle(ctx context.Context, req *models.CreateVehicleRequest) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*models.Vehicle, error)
	ListVehicles(ctx context.Context) ([]*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, req *models.UpdateVehicleRequest) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
}

// ProcurementServiceInterface defines the contract for supply requests and bids
type ProcurementServiceInterface interface {
	CreateSupplyRequest(ctx context.Context, req *models.CreateSupplyRequest, createdBy string) (*models.SupplyRequest, error)
	GetSupplyRequest(ctx context.Context, id string) (*models.SupplyRequest, error)
	ListSupplyRequests(ctx context.Context, status models.SupplyRequestStatus) ([]*models.SupplyRequest, error)
	SubmitBid(ctx context.Context, requestID string, req *models.SubmitBidRequest) (*models.Bid, error)
	CompareBids(ctx context.Context, requestID string) (*models.BidComparison, error)
	AssignBid(ctx context.Context, requestID, bidID string) (*models.SupplyRequest, error)
}

// BudgetServiceInterface defines the contract for budgets and expenses
type BudgetServiceInterface interface {
	CreateBudget(ctx context.Context, req *models.CreateBudgetRequest, createdBy string) (*models.BudgetView, error)
	GetBudget(ctx context.Context, id string) (*models.BudgetView, error)
	ListBudgets(ctx context.Context, fiscalYear int) ([]*models.BudgetView, error)
	RecordExpense(ctx context.Context, budgetID string, req *models.RecordExpenseRequest, recordedBy string) (*models.Expense, error)
	ListExpenses(ctx context.Context, budgetID string) ([]*models.Expense, error)
}

// ServiceContainerInterface defines the main service container contract
type ServiceContainerInterface interface {
	GetUserService() UserServiceInterface
	GetInventoryService() InventoryServiceInterface
	GetReorderService() ReorderServiceInterface
	GetShiftService() ShiftServiceInterface
	GetVehicleService() VehicleServiceInterface
	GetProcurementService() ProcurementServiceInterface
	GetBudgetService() BudgetServiceInterface
}
