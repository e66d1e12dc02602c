package repository

import (
	"context"
	"firestation-backend/models"
)

// UserRepositoryInterface defines the contract for staff records
type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []string) ([]*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*models.User, error)
}

// InventoryRepositoryInterface defines the contract for inventory items
type InventoryRepositoryInterface interface {
	CreateItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error)
	GetItem(ctx context.Context, id string) (*models.InventoryItem, error)
	GetItemsByIDs(ctx context.Context, ids []string) ([]*models.InventoryItem, error)
	ListItems(ctx context.Context, filter *models.InventoryFilter) ([]*models.InventoryItem, error)
	UpdateItem(ctx context.Context, id string, updates map[string]interface{}) (*models.InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error
}

// ReorderRepositoryInterface defines the contract for reorder requests
type ReorderRepositoryInterface interface {
	CreateReorder(ctx context.Context, reorder *models.ReorderRequest) (*models.ReorderRequest, error)
	GetReorder(ctx context.Context, id string) (*models.ReorderRequest, error)
	ListReorders(ctx context.Context, filter *models.ReorderFilter) ([]*models.ReorderRequest, error)
	TransitionReorder(ctx context.Context, id string, from models.ReorderStatus, updates map[string]interface{}) (*models.ReorderRequest, error)
	DeliverReorder(ctx context.Context, reorder *models.ReorderRequest, updates map[string]interface{}, received int) (*models.ReorderRequest, error)
	DeletePendingReorder(ctx context.Context, id string) error
}

// ShiftRepositoryInterface defines the contract for shift schedules
type ShiftRepositoryInterface interface {
	CreateShift(ctx context.Context, shift *models.ShiftSchedule) (*models.ShiftSchedule, error)
	GetShift(ctx context.Context, id string) (*models.ShiftSchedule, error)
	ListShifts(ctx context.Context, filter *models.ShiftFilter) ([]*models.ShiftSchedule, error)
	GetShiftsByDate(ctx context.Context, date string) ([]*models.ShiftSchedule, error)
	UpdateShift(ctx context.Context, shift *models.ShiftSchedule) (*models.ShiftSchedule, error)
	DeleteShift(ctx context.Context, id string) error
}

// VehicleRepositoryInterface defines the contract for vehicles
type VehicleRepositoryInterface interface {
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*models.Vehicle, error)
	ListVehicles(ctx context.Context) ([]*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, updates map[string]interface{}) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
}

// ProcurementRepositoryInterface defines the contract for supply requests and bids
type ProcurementRepositoryInterface interface {
	CreateSupplyRequest(ctx context.Context, request *models.SupplyRequest) (*models.SupplyRequest, error)
	GetSupplyRequest(ctx context.Context, id string) (*models.SupplyRequest, error)
	ListSupplyRequests(ctx context.Context, status models.SupplyRequestStatus) ([]*models.SupplyRequest, error)
	AwardSupplyRequest(ctx context.Context, id string, winner *models.Bid, bids []*models.Bid) (*models.SupplyRequest, error)
	CreateBid(ctx context.Context, bid *models.Bid) (*models.Bid, error)
	ListBids(ctx context.Context, supplyRequestID string) ([]*models.Bid, error)
}

// BudgetRepositoryInterface defines the contract for budgets and expenses
type BudgetRepositoryInterface interface {
	CreateBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	GetBudget(ctx context.Context, id string) (*models.Budget, error)
	ListBudgets(ctx context.Context, fiscalYear int) ([]*models.Budget, error)
	RecordExpense(ctx context.Context, budget *models.Budget, spent models.Money, expense *models.Expense) (*models.Expense, error)
	ListExpenses(ctx context.Context, budgetID string) ([]*models.Expense, error)
}

// RepositoryContainerInterface defines the contract for the repository container
type RepositoryContainerInterface interface {
	GetUserRepository() UserRepositoryInterface
	GetInventoryRepository() InventoryRepositoryInterface
	GetReorderRepository() ReorderRepositoryInterface
	GetShiftRepository() ShiftRepositoryInterface
	GetVehicleRepository() VehicleRepositoryInterface
	GetProcurementRepository() ProcurementRepositoryInterface
	GetBudgetRepository() BudgetRepositoryInterface
}
