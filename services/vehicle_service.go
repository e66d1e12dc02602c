package services

import (
	"context"
	"strings"

	"firestation-backend/models"
	"firestation-backend/repository"
	"firestation-backend/utils/logger"
)

type VehicleService struct {
	repo   repository.VehicleRepositoryInterface
	logger logger.Logger
}

func NewVehicleService(repo repository.VehicleRepositoryInterface, log logger.Logger) *VehicleService {
	return &VehicleService{
		repo:   repo,
		logger: log,
	}
}

func (s *VehicleService) CreateVehicle(ctx context.Context, req *models.CreateVehicleRequest) (*models.Vehicle, error) {
	vehicle := &models.Vehicle{
		Name:        strings.TrimSpace(req.Name),
		Type:        req.Type,
		Status:      req.Status,
		PlateNumber: strings.ToUpper(strings.TrimSpace(req.PlateNumber)),
		Notes:       strings.TrimSpace(req.Notes),
	}
	if vehicle.Status == "" {
		vehicle.Status = models.VehicleStatusInService
	}
	return s.repo.CreateVehicle(ctx, vehicle)
}

func (s *VehicleService) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	return s.repo.GetVehicle(ctx, id)
}

func (s *VehicleService) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	return s.repo.ListVehicles(ctx)
}

func (s *VehicleService) UpdateVehicle(ctx context.Context, id string, req *models.UpdateVehicleRequest) (*models.Vehicle, error) {
	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = strings.TrimSpace(req.Name)
	}
	if req.Type != "" {
		updates["type"] = req.Type
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.PlateNumber != nil {
		updates["plate_number"] = strings.ToUpper(strings.TrimSpace(*req.PlateNumber))
	}
	if req.Notes != nil {
		updates["notes"] = strings.TrimSpace(*req.Notes)
	}
	if len(updates) == 0 {
		return nil, NewValidationError(map[string]string{"request": "No fields to update"})
	}
	return s.repo.UpdateVehicle(ctx, id, updates)
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, id string) error {
	return s.repo.DeleteVehicle(ctx, id)
}
