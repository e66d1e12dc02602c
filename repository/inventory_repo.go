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
	"strings"
	"time"
)

type InventoryRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewInventoryRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *InventoryRepository {
	return &InventoryRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *InventoryRepository) table() string {
	return r.config.TableName(TableInventoryItems)
}

func (r *InventoryRepository) CreateItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	r.logger.Infof("Creating inventory item: %s", item.Name)

	now := time.Now()
	item.ID = utils.GenerateUUID()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := r.db.CreateItem(ctx, r.table(), item); err != nil {
		r.logger.Errorf("Failed to create inventory item: %v", err)
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	r.logger.Infof("Inventory item created successfully: %s", item.ID)
	return item, nil
}

func (r *InventoryRepository) GetItem(ctx context.Context, id string) (*models.InventoryItem, error) {
	if id == "" {
		return nil, errors.New("item id is required")
	}

	item := &models.InventoryItem{}
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.table(),
		KeyName:   "id",
		KeyValue:  id,
		KeyType:   models.StringType,
	}, item)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item %s: %w", id, err)
	}
	return item, nil
}

// GetItemsByIDs returns the items in the order of ids; unknown ids are skipped
func (r *InventoryRepository) GetItemsByIDs(ctx context.Context, ids []string) ([]*models.InventoryItem, error) {
	items := make([]*models.InventoryItem, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		item, err := r.GetItem(ctx, id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				r.logger.Warnf("Inventory item %s not found, skipping", id)
				continue
			}
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ListItems narrows by the first indexed attribute present in filter and applies
// the remaining attribute filters in memory. Stock flags are not evaluated here.
func (r *InventoryRepository) ListItems(ctx context.Context, filter *models.InventoryFilter) ([]*models.InventoryItem, error) {
	if filter == nil {
		filter = &models.InventoryFilter{}
	}

	var items []*models.InventoryItem
	var err error

	switch {
	case filter.Category != "":
		err = r.db.QueryByIndex(ctx, r.table(), "category-index", "category", filter.Category, &items)
	case filter.Location != "":
		err = r.db.QueryByIndex(ctx, r.table(), "location-index", "location", filter.Location, &items)
	case filter.VehicleID != "":
		err = r.db.QueryByIndex(ctx, r.table(), "vehicle_id-index", "vehicle_id", filter.VehicleID, &items)
	default:
		err = r.db.Scan(ctx, r.table(), &items)
	}
	if err != nil {
		r.logger.Errorf("Failed to list inventory items: %v", err)
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}

	filtered := r.applyAdditionalFilters(items, filter)
	sort.SliceStable(filtered, func(i, j int) bool {
		return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
	})

	r.logger.Infof("Found %d inventory items", len(filtered))
	return filtered, nil
}

func (r *InventoryRepository) applyAdditionalFilters(items []*models.InventoryItem, filter *models.InventoryFilter) []*models.InventoryItem {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]*models.InventoryItem, 0, len(items))
	for _, item := range items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Location != "" && item.Location != filter.Location {
			continue
		}
		if filter.VehicleID != "" && item.VehicleID != filter.VehicleID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Category), search) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func (r *InventoryRepository) UpdateItem(ctx context.Context, id string, updates map[string]interface{}) (*models.InventoryItem, error) {
	r.logger.Infof("Updating inventory item: %s", id)

	updates["updated_at"] = time.Now()
	if err := r.db.UpdateItem(ctx, r.table(), "id", id, updates); err != nil {
		r.logger.Errorf("Failed to update inventory item %s: %v", id, err)
		return nil, fmt.Errorf("failed to update inventory item %s: %w", id, err)
	}
	return r.GetItem(ctx, id)
}

func (r *InventoryRepository) DeleteItem(ctx context.Context, id string) error {
	r.logger.Infof("Deleting inventory item: %s", id)

	if _, err := r.GetItem(ctx, id); err != nil {
		return err
	}
	if err := r.db.DeleteItem(ctx, r.table(), "id", id); err != nil {
		r.logger.Errorf("Failed to delete inventory item %s: %v", id, err)
		return fmt.Errorf("failed to delete inventory item %s: %w", id, err)
	}
	return nil
}
