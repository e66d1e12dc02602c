package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"firestation-backend/models"
	"firestation-backend/repository"
	"firestation-backend/utils/logger"
	"firestation-backend/utils/metrics"
)

type InventoryService struct {
	inventoryRepo repository.InventoryRepositoryInterface
	bulk          *BulkReorderer
	logger        logger.Logger
	metrics       *metrics.Metrics
	now           func() time.Time
}

func NewInventoryService(inventoryRepo repository.InventoryRepositoryInterface, submitter ReorderSubmitter, log logger.Logger, m *metrics.Metrics) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		bulk:          NewBulkReorderer(submitter, log, m),
		logger:        log,
		metrics:       m,
		now:           time.Now,
	}
}

// ListItems classifies every matching item, applies the stock flag filters and
// returns the requested page
func (s *InventoryService) ListItems(ctx context.Context, filter *models.InventoryFilter, page, limit int) ([]models.ClassifiedItem, *models.Pagination, error) {
	items, err := s.inventoryRepo.ListItems(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	matched := make([]models.ClassifiedItem, 0, len(items))
	for _, item := range items {
		status := Classify(item, now)
		if !matchesStockFlags(status, filter) {
			continue
		}
		matched = append(matched, models.ClassifiedItem{InventoryItem: item, StockStatus: status})
	}

	pagination := models.NewPagination(page, limit, len(matched))
	start, end := pagination.Bounds()
	return matched[start:end], pagination, nil
}

func (s *InventoryService) GetItem(ctx context.Context, id string) (*models.ClassifiedItem, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("item id is required")
	}
	item, err := s.inventoryRepo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.ClassifiedItem{InventoryItem: item, StockStatus: Classify(item, s.now())}, nil
}

func (s *InventoryService) CreateItem(ctx context.Context, req *models.CreateInventoryItemRequest, createdBy string) (*models.ClassifiedItem, error) {
	item := &models.InventoryItem{
		Name:       strings.TrimSpace(req.Name),
		Category:   strings.TrimSpace(req.Category),
		Quantity:   req.Quantity,
		Threshold:  req.Threshold,
		ExpireDate: req.ExpireDate,
		Location:   strings.TrimSpace(req.Location),
		Condition:  req.Condition,
		VehicleID:  req.VehicleID,
		CreatedBy:  createdBy,
	}
	if item.Threshold == nil {
		item.Threshold = models.IntPtr(0)
	}

	created, err := s.inventoryRepo.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}
	return &models.ClassifiedItem{InventoryItem: created, StockStatus: Classify(created, s.now())}, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, id string, req *models.UpdateInventoryItemRequest) (*models.ClassifiedItem, error) {
	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = strings.TrimSpace(req.Name)
	}
	if req.Category != "" {
		updates["category"] = strings.TrimSpace(req.Category)
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Threshold != nil {
		updates["threshold"] = *req.Threshold
	}
	if req.ExpireDate != nil {
		updates["expire_date"] = *req.ExpireDate
	}
	if req.Location != "" {
		updates["location"] = strings.TrimSpace(req.Location)
	}
	if req.Condition != "" {
		updates["condition"] = req.Condition
	}
	if req.VehicleID != nil {
		updates["vehicle_id"] = *req.VehicleID
	}
	if len(updates) == 0 {
		return nil, NewValidationError(map[string]string{"request": "No fields to update"})
	}

	updated, err := s.inventoryRepo.UpdateItem(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	return &models.ClassifiedItem{InventoryItem: updated, StockStatus: Classify(updated, s.now())}, nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id string) error {
	return s.inventoryRepo.DeleteItem(ctx, id)
}

// BulkReorder loads the selected items and reorders the low-stock ones
func (s *InventoryService) BulkReorder(ctx context.Context, itemIDs []string, requestedBy string) (*models.BulkReorderResult, error) {
	items, err := s.inventoryRepo.GetItemsByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	return s.bulk.BulkReorder(ctx, itemIDs, items, requestedBy)
}

// SweepStock classifies the whole inventory and publishes the counts
func (s *InventoryService) SweepStock(ctx context.Context) (*models.StockSweepReport, error) {
	items, err := s.inventoryRepo.ListItems(ctx, nil)
	if err != nil {
		return nil, err
	}

	report := Sweep(items, s.now())
	s.metrics.ObserveSweep(report)
	s.logger.Infof("Stock sweep: %d items, %d low stock, %d expired, %d expiring soon",
		report.TotalItems, report.LowStockCount, report.ExpiredCount, report.ExpiringSoonCount)
	return report, nil
}
