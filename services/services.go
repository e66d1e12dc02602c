package services

import (
	"firestation-backend/models"
	"firestation-backend/repository"
	"firestation-backend/utils/logger"
	"firestation-backend/utils/metrics"
)

// Service implements ServiceContainerInterface
type Service struct {
	userService        UserServiceInterface
	inventoryService   InventoryServiceInterface
	reorderService     ReorderServiceInterface
	shiftService       ShiftServiceInterface
	vehicleService     VehicleServiceInterface
	procurementService ProcurementServiceInterface
	budgetService      BudgetServiceInterface
}

// NewService creates a new service container with all dependencies injected
func NewService(
	repoContainer repository.RepositoryContainerInterface,
	tokens TokenIssuer,
	log logger.Logger,
	m *metrics.Metrics,
	config *models.Config,
) *Service {
	reorderService := NewReorderService(repoContainer.GetReorderRepository(), repoContainer.GetInventoryRepository(), log, m)

	return &Service{
		userService:        NewUserService(repoContainer.GetUserRepository(), tokens, config.JWTExpiresIn, log),
		inventoryService:   NewInventoryService(repoContainer.GetInventoryRepository(), reorderService, log, m),
		reorderService:     reorderService,
		shiftService:       NewShiftService(repoContainer.GetShiftRepository(), repoContainer.GetUserRepository(), log),
		vehicleService:     NewVehicleService(repoContainer.GetVehicleRepository(), log),
		procurementService: NewProcurementService(repoContainer.GetProcurementRepository(), log),
		budgetService:      NewBudgetService(repoContainer.GetBudgetRepository(), log),
	}
}

// GetUserService returns the user service interface
func (s *Service) GetUserService() UserServiceInterface {
	return s.userService
}

func (s *Service) GetInventoryService() InventoryServiceInterface {
	return s.inventoryService
}

func (s *Service) GetReorderService() ReorderServiceInterface {
	return s.reorderService
}

func (s *Service) GetShiftService() ShiftServiceInterface {
	return s.shiftService
}

func (s *Service) GetVehicleService() VehicleServiceInterface {
	return s.vehicleService
}

func (s *Service) GetProcurementService() ProcurementServiceInterface {
	return s.procurementService
}

func (s *Service) GetBudgetService() BudgetServiceInterface {
	return s.budgetService
}
