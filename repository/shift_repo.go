package repository

import (
	"context"
	"errors"
	"firestation-backend/dal"
	"firestation-backend/models"
	"firestation-backend/utils"
	"firestation-backend/utils/logger"
	"fmt"
	"sort"
	"time"
)

type ShiftRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewShiftRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *ShiftRepository {
	return &ShiftRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *ShiftRepository) table() string {
	return r.config.TableName(TableShifts)
}

func (r *ShiftRepository) CreateShift(ctx context.Context, shift *models.ShiftSchedule) (*models.ShiftSchedule, error) {
	r.logger.Infof("Creating shift schedule: %s on %s", shift.Vehicle, shift.Date)

	now := time.Now()
	shift.ID = utils.GenerateUUID()
	shift.CreatedAt = now
	shift.UpdatedAt = now

	if err := r.db.CreateItem(ctx, r.table(), shift); err != nil {
		r.logger.Errorf("Failed to create shift schedule: %v", err)
		return nil, fmt.Errorf("failed to create shift schedule: %w", err)
	}
	return shift, nil
}

func (r *ShiftRepository) GetShift(ctx context.Context, id string) (*models.ShiftSchedule, error) {
	if id == "" {
		return nil, errors.New("shift id is required")
	}

	shift := &models.ShiftSchedule{}
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.table(),
		KeyName:   "id",
		KeyValue:  id,
		KeyType:   models.StringType,
	}, shift)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift schedule %s: %w", id, err)
	}
	return shift, nil
}

// ListShifts returns schedules ordered by date, then vehicle
func (r *ShiftRepository) ListShifts(ctx context.Context, filter *models.ShiftFilter) ([]*models.ShiftSchedule, error) {
	if filter == nil {
		filter = &models.ShiftFilter{}
	}

	var shifts []*models.ShiftSchedule
	var err error
	if filter.Date != "" {
		shifts, err = r.GetShiftsByDate(ctx, filter.Date)
	} else {
		err = r.db.Scan(ctx, r.table(), &shifts)
	}
	if err != nil {
		r.logger.Errorf("Failed to list shift schedules: %v", err)
		return nil, fmt.Errorf("failed to list shift schedules: %w", err)
	}

	filtered := make([]*models.ShiftSchedule, 0, len(shifts))
	for _, shift := range shifts {
		if filter.Vehicle != "" && shift.Vehicle != filter.Vehicle {
			continue
		}
		if filter.MemberID != "" && !containsString(shift.Members, filter.MemberID) {
			continue
		}
		filtered = append(filtered, shift)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date < filtered[j].Date
		}
		return filtered[i].Vehicle < filtered[j].Vehicle
	})
	return filtered, nil
}

// GetShiftsByDate reads every schedule on date from the date index
func (r *ShiftRepository) GetShiftsByDate(ctx context.Context, date string) ([]*models.ShiftSchedule, error) {
	var shifts []*models.ShiftSchedule
	if err := r.db.QueryByIndex(ctx, r.table(), "date-index", "date", date, &shifts); err != nil {
		r.logger.Errorf("Failed to query shift schedules on %s: %v", date, err)
		return nil, fmt.Errorf("failed to query shift schedules on %s: %w", date, err)
	}
	return shifts, nil
}

func (r *ShiftRepository) UpdateShift(ctx context.Context, shift *models.ShiftSchedule) (*models.ShiftSchedule, error) {
	r.logger.Infof("Updating shift schedule: %s", shift.ID)

	shift.UpdatedAt = time.Now()
	err := r.db.UpdateItem(ctx, r.table(), "id", shift.ID, map[string]interface{}{
		"date":       shift.Date,
		"vehicle":    shift.Vehicle,
		"shift_type": shift.ShiftType,
		"members":    shift.Members,
		"notes":      shift.Notes,
		"updated_at": shift.UpdatedAt,
	})
	if err != nil {
		r.logger.Errorf("Failed to update shift schedule %s: %v", shift.ID, err)
		return nil, fmt.Errorf("failed to update shift schedule %s: %w", shift.ID, err)
	}
	return shift, nil
}

func (r *ShiftRepository) DeleteShift(ctx context.Context, id string) error {
	r.logger.Infof("Deleting shift schedule: %s", id)

	if _, err := r.GetShift(ctx, id); err != nil {
		return err
	}
	if err := r.db.DeleteItem(ctx, r.table(), "id", id); err != nil {
		r.logger.Errorf("Failed to delete shift schedule %s: %v", id, err)
		return fmt.Errorf("failed to delete shift schedule %s: %w", id, err)
	}
	return nil
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
