package repository

import (
	"context"
	"firestation-backend/dal"
	"firestation-backend/models"
	"firestation-backend/utils"
	"firestation-backend/utils/logger"
	"fmt"
	"sort"
	"time"
)

type VehicleRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewVehicleRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *VehicleRepository {
	return &VehicleRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *VehicleRepository) table() string {
	return r.config.TableName(TableVehicles)
}

func (r *VehicleRepository) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	r.logger.Infof("Creating vehicle: %s", vehicle.Name)

	var existing []*models.Vehicle
	if err := r.db.QueryByIndex(ctx, r.table(), "name-index", "name", vehicle.Name, &existing); err != nil {
		return nil, fmt.Errorf("failed to check vehicle name: %w", err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("vehicle %q already exists: %w", vehicle.Name, models.ErrConflict)
	}

	now := time.Now()
	vehicle.ID = utils.GenerateUUID()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now
	if vehicle.Status == "" {
		vehicle.Status = models.VehicleStatusInService
	}

	if err := r.db.CreateItem(ctx, r.table(), vehicle); err != nil {
		r.logger.Errorf("Failed to create vehicle: %v", err)
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return vehicle, nil
}

func (r *VehicleRepository) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	vehicle := &models.Vehicle{}
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.table(),
		KeyName:   "id",
		KeyValue:  id,
		KeyType:   models.StringType,
	}, vehicle)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle %s: %w", id, err)
	}
	return vehicle, nil
}

func (r *VehicleRepository) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	var vehicles []*models.Vehicle
	if err := r.db.Scan(ctx, r.table(), &vehicles); err != nil {
		r.logger.Errorf("Failed to list vehicles: %v", err)
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	sort.Slice(vehicles, func(i, j int) bool {
		return vehicles[i].Name < vehicles[j].Name
	})
	return vehicles, nil
}

func (r *VehicleRepository) UpdateVehicle(ctx context.Context, id string, updates map[string]interface{}) (*models.Vehicle, error) {
	r.logger.Infof("Updating vehicle: %s", id)

	updates["updated_at"] = time.Now()
	if err := r.db.UpdateItem(ctx, r.table(), "id", id, updates); err != nil {
		r.logger.Errorf("Failed to update vehicle %s: %v", id, err)
		return nil, fmt.Errorf("failed to update vehicle %s: %w", id, err)
	}
	return r.GetVehicle(ctx, id)
}

func (r *VehicleRepository) DeleteVehicle(ctx context.Context, id string) error {
	r.logger.Infof("Deleting vehicle: %s", id)

	if _, err := r.GetVehicle(ctx, id); err != nil {
		return err
	}
	if err := r.db.DeleteItem(ctx, r.table(), "id", id); err != nil {
		r.logger.Errorf("Failed to delete vehicle %s: %v", id, err)
		return fmt.Errorf("failed to delete vehicle %s: %w", id, err)
	}
	return nil
}
