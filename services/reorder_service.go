package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"firestation-backend/models"
	"firestation-backend/repository"
	"firestation-backend/utils/logger"
	"firestation-backend/utils/metrics"
)

// ReorderService owns the reorder request lifecycle:
// Pending → {Approved, Cancelled}, Approved → {In Transit, Cancelled},
// In Transit → Delivered.
type ReorderService struct {
	reorderRepo   repository.ReorderRepositoryInterface
	inventoryRepo repository.InventoryRepositoryInterface
	logger        logger.Logger
	metrics       *metrics.Metrics
	now           func() time.Time
}

func NewReorderService(reorderRepo repository.ReorderRepositoryInterface, inventoryRepo repository.InventoryRepositoryInterface, log logger.Logger, m *metrics.Metrics) *ReorderService {
	return &ReorderService{
		reorderRepo:   reorderRepo,
		inventoryRepo: inventoryRepo,
		logger:        log,
		metrics:       m,
		now:           time.Now,
	}
}

// SubmitReorder validates draft and stores it as a Pending request
func (s *ReorderService) SubmitReorder(ctx context.Context, draft *models.ReorderDraft, requestedBy string) (*models.ReorderRequest, error) {
	if fields := ValidateReorder(draft, s.now()); len(fields) > 0 {
		return nil, NewValidationError(fields)
	}

	created, err := s.reorderRepo.CreateReorder(ctx, toReorderRequest(draft, requestedBy))
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveReorderStatus(created.Status)
	return created, nil
}

// CreateReorder completes a possibly partial request with the builder defaults
// for the referenced item and submits it.
func (s *ReorderService) CreateReorder(ctx context.Context, req *models.CreateReorderRequest, requestedBy string) (*models.ReorderRequest, error) {
	if strings.TrimSpace(req.InventoryItemID) == "" {
		return nil, NewValidationError(map[string]string{"inventoryItemId": "Inventory item is required"})
	}

	item, err := s.inventoryRepo.GetItem(ctx, req.InventoryItemID)
	if err != nil {
		return nil, err
	}

	draft := BuildReorderDraft(item, &req.ReorderOverrides, s.now())
	return s.SubmitReorder(ctx, draft, requestedBy)
}

func (s *ReorderService) GetReorder(ctx context.Context, id string) (*models.ReorderRequest, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("reorder id is required")
	}
	return s.reorderRepo.GetReorder(ctx, id)
}

func (s *ReorderService) ListReorders(ctx context.Context, filter *models.ReorderFilter) ([]*models.ReorderRequest, error) {
	return s.reorderRepo.ListReorders(ctx, filter)
}

// Approve moves a Pending request to Approved
func (s *ReorderService) Approve(ctx context.Context, id, approvedBy string) (*models.ReorderRequest, error) {
	if strings.TrimSpace(approvedBy) == "" {
		return nil, NewValidationError(map[string]string{"approvedBy": "Approved by is required"})
	}
	now := s.now()
	return s.transition(ctx, id, models.ReorderStatusApproved, map[string]interface{}{
		"approved_by": approvedBy,
		"approved_at": now,
	})
}

// Ship moves an Approved request to In Transit
func (s *ReorderService) Ship(ctx context.Context, id string) (*models.ReorderRequest, error) {
	return s.transition(ctx, id, models.ReorderStatusInTransit, map[string]interface{}{
		"shipped_at": s.now(),
	})
}

// Deliver marks a request Delivered and adds the received quantity to the
// item's stock, both or neither. An Approved request passes through In Transit
// first. A nil actualQuantity means the ordered quantity arrived.
func (s *ReorderService) Deliver(ctx context.Context, id string, actualQuantity *int) (*models.ReorderRequest, error) {
	if actualQuantity != nil && *actualQuantity < 0 {
		return nil, NewValidationError(map[string]string{"actualQuantity": "Actual quantity cannot be negative"})
	}

	current, err := s.GetReorder(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.Status == models.ReorderStatusApproved {
		current, err = s.transition(ctx, id, models.ReorderStatusInTransit, map[string]interface{}{
			"shipped_at": s.now(),
		})
		if err != nil {
			return nil, err
		}
	}

	if !current.Status.CanTransitionTo(models.ReorderStatusDelivered) {
		return nil, fmt.Errorf("cannot move reorder %s from %s to %s: %w", id, current.Status, models.ReorderStatusDelivered, models.ErrInvalidTransition)
	}

	received := current.Quantity
	if actualQuantity != nil {
		received = *actualQuantity
	}

	delivered, err := s.reorderRepo.DeliverReorder(ctx, current, map[string]interface{}{
		"status":          models.ReorderStatusDelivered,
		"actual_quantity": received,
		"delivered_at":    s.now(),
	}, received)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("Reorder %s delivered, %d units added to item %s", id, received, current.InventoryItemID)
	s.metrics.ObserveReorderStatus(models.ReorderStatusDelivered)
	return delivered, nil
}

// Cancel moves a Pending or Approved request to Cancelled
func (s *ReorderService) Cancel(ctx context.Context, id string) (*models.ReorderRequest, error) {
	return s.transition(ctx, id, models.ReorderStatusCancelled, map[string]interface{}{
		"cancelled_at": s.now(),
	})
}

// DeleteReorder removes a request that is still Pending
func (s *ReorderService) DeleteReorder(ctx context.Context, id string) error {
	current, err := s.GetReorder(ctx, id)
	if err != nil {
		return err
	}
	if current.Status != models.ReorderStatusPending {
		return fmt.Errorf("reorder %s is %s: %w", id, current.Status, models.ErrReorderNotDeletable)
	}
	return s.reorderRepo.DeletePendingReorder(ctx, id)
}

func (s *ReorderService) transition(ctx context.Context, id string, to models.ReorderStatus, extra map[string]interface{}) (*models.ReorderRequest, error) {
	current, err := s.GetReorder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(to) {
		return nil, fmt.Errorf("cannot move reorder %s from %s to %s: %w", id, current.Status, to, models.ErrInvalidTransition)
	}

	updates := map[string]interface{}{"status": to}
	for k, v := range extra {
		updates[k] = v
	}

	updated, err := s.reorderRepo.TransitionReorder(ctx, id, current.Status, updates)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("Reorder %s moved from %s to %s", id, current.Status, to)
	s.metrics.ObserveReorderStatus(to)
	return updated, nil
}
