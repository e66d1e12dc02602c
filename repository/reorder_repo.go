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

type ReorderRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewReorderRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *ReorderRepository {
	return &ReorderRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *ReorderRepository) table() string {
	return r.config.TableName(TableReorders)
}

func (r *ReorderRepository) CreateReorder(ctx context.Context, reorder *models.ReorderRequest) (*models.ReorderRequest, error) {
	r.logger.Infof("Creating reorder request for item %s (%d units)", reorder.InventoryItemID, reorder.Quantity)

	now := time.Now()
	reorder.ID = utils.GenerateUUID()
	reorder.Status = models.ReorderStatusPending
	reorder.CreatedAt = now
	reorder.UpdatedAt = now

	if err := r.db.CreateItem(ctx, r.table(), reorder); err != nil {
		r.logger.Errorf("Failed to create reorder request: %v", err)
		return nil, fmt.Errorf("failed to create reorder request: %w", err)
	}

	r.logger.Infof("Reorder request created successfully: %s", reorder.ID)
	return reorder, nil
}

func (r *ReorderRepository) GetReorder(ctx context.Context, id string) (*models.ReorderRequest, error) {
	if id == "" {
		return nil, errors.New("reorder id is required")
	}

	reorder := &models.ReorderRequest{}
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.table(),
		KeyName:   "id",
		KeyValue:  id,
		KeyType:   models.StringType,
	}, reorder)
	if err != nil {
		return nil, fmt.Errorf("failed to get reorder request %s: %w", id, err)
	}
	return reorder, nil
}

// ListReorders returns reorder requests, newest first
func (r *ReorderRepository) ListReorders(ctx context.Context, filter *models.ReorderFilter) ([]*models.ReorderRequest, error) {
	if filter == nil {
		filter = &models.ReorderFilter{}
	}

	var reorders []*models.ReorderRequest
	var err error

	switch {
	case filter.InventoryItemID != "":
		err = r.db.QueryByIndex(ctx, r.table(), "inventory_item_id-index", "inventory_item_id", filter.InventoryItemID, &reorders)
	case filter.Status != "":
		err = r.db.QueryByIndex(ctx, r.table(), "status-index", "status", string(filter.Status), &reorders)
	default:
		err = r.db.Scan(ctx, r.table(), &reorders)
	}
	if err != nil {
		r.logger.Errorf("Failed to list reorder requests: %v", err)
		return nil, fmt.Errorf("failed to list reorder requests: %w", err)
	}

	filtered := make([]*models.ReorderRequest, 0, len(reorders))
	for _, reorder := range reorders {
		if filter.Status != "" && reorder.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && reorder.Priority != filter.Priority {
			continue
		}
		filtered = append(filtered, reorder)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered, nil
}

// TransitionReorder applies updates only while the stored status is still from.
// A lost race or stale status yields models.ErrInvalidTransition.
func (r *ReorderRepository) TransitionReorder(ctx context.Context, id string, from models.ReorderStatus, updates map[string]interface{}) (*models.ReorderRequest, error) {
	r.logger.Infof("Transitioning reorder %s from %s", id, from)

	updates["updated_at"] = time.Now()
	err := r.db.UpdateItemIf(ctx, r.table(), "id", id, updates, models.Condition{Field: "status", Equals: string(from)})
	if err != nil {
		if dal.IsConditionalCheckFailed(err) {
			return nil, fmt.Errorf("reorder %s is no longer %s: %w", id, from, models.ErrInvalidTransition)
		}
		r.logger.Errorf("Failed to transition reorder %s: %v", id, err)
		return nil, fmt.Errorf("failed to update reorder request %s: %w", id, err)
	}
	return r.GetReorder(ctx, id)
}

// DeliverReorder applies updates to a reorder still in its current status and
// adds received units to the ordered item in one transaction. When either write
// is rejected neither is applied.
func (r *ReorderRepository) DeliverReorder(ctx context.Context, reorder *models.ReorderRequest, updates map[string]interface{}, received int) (*models.ReorderRequest, error) {
	r.logger.Infof("Delivering reorder %s: %d units of item %s", reorder.ID, received, reorder.InventoryItemID)

	now := time.Now()
	updates["updated_at"] = now
	ops := []models.WriteOp{{
		TableName: r.table(),
		KeyValue:  reorder.ID,
		Set:       updates,
		Condition: &models.Condition{Field: "status", Equals: string(reorder.Status)},
	}}
	if received > 0 {
		ops = append(ops, models.WriteOp{
			TableName: r.config.TableName(TableInventoryItems),
			KeyValue:  reorder.InventoryItemID,
			Set:       map[string]interface{}{"updated_at": now},
			Add:       map[string]interface{}{"quantity": received},
		})
	}

	if err := r.db.TransactWrite(ctx, ops); err != nil {
		switch dal.FailedWrite(err) {
		case 0:
			return nil, fmt.Errorf("reorder %s is no longer %s: %w", reorder.ID, reorder.Status, models.ErrInvalidTransition)
		case 1:
			return nil, fmt.Errorf("inventory item %s of reorder %s: %w", reorder.InventoryItemID, reorder.ID, models.ErrNotFound)
		}
		r.logger.Errorf("Failed to deliver reorder %s: %v", reorder.ID, err)
		return nil, fmt.Errorf("failed to deliver reorder request %s: %w", reorder.ID, err)
	}
	return r.GetReorder(ctx, reorder.ID)
}

// DeletePendingReorder removes a reorder request that has not left Pending
func (r *ReorderRepository) DeletePendingReorder(ctx context.Context, id string) error {
	r.logger.Infof("Deleting reorder request: %s", id)

	err := r.db.DeleteItemIf(ctx, r.table(), "id", id, models.Condition{Field: "status", Equals: string(models.ReorderStatusPending)})
	if err != nil {
		if dal.IsConditionalCheckFailed(err) {
			return fmt.Errorf("reorder %s: %w", id, models.ErrReorderNotDeletable)
		}
		r.logger.Errorf("Failed to delete reorder request %s: %v", id, err)
		return fmt.Errorf("failed to delete reorder request %s: %w", id, err)
	}
	return nil
}
