package repository

import (
	"firestation-backend/dal"
	"firestation-backend/models"
	"firestation-backend/utils/logger"
)

// Table base names; the physical name carries the configured prefix
const (
	TableUsers          = "users"
	TableInventoryItems = "inventory_items"
	TableReorders       = "inventory_reorders"
	TableShifts         = "shift_schedules"
	TableVehicles       = "vehicles"
	TableSupplyRequests = "supply_requests"
	TableBids           = "bids"
	TableBudgets        = "budgets"
	TableExpenses       = "expenses"
)

type Repository struct {
	User        *UserRepository
	Inventory   *InventoryRepository
	Reorder     *ReorderRepository
	Shift       *ShiftRepository
	Vehicle     *VehicleRepository
	Procurement *ProcurementRepository
	Budget      *BudgetRepository
}

func NewRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, cfg, log),
		Inventory:   NewInventoryRepository(db, cfg, log),
		Reorder:     NewReorderRepository(db, cfg, log),
		Shift:       NewShiftRepository(db, cfg, log),
		Vehicle:     NewVehicleRepository(db, cfg, log),
		Procurement: NewProcurementRepository(db, cfg, log),
		Budget:      NewBudgetRepository(db, cfg, log),
	}
}

func (r *Repository) GetUserRepository() UserRepositoryInterface {
	return r.User
}

func (r *Repository) GetInventoryRepository() InventoryRepositoryInterface {
	return r.Inventory
}

func (r *Repository) GetReorderRepository() ReorderRepositoryInterface {
	return r.Reorder
}

func (r *Repository) GetShiftRepository() ShiftRepositoryInterface {
	return r.Shift
}

func (r *Repository) GetVehicleRepository() VehicleRepositoryInterface {
	return r.Vehicle
}

func (r *Repository) GetProcurementRepository() ProcurementRepositoryInterface {
	return r.Procurement
}

func (r *Repository) GetBudgetRepository() BudgetRepositoryInterface {
	return r.Budget
}
