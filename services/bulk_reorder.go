package services

import (
	"context"
	"strings"
	"time"

	"firestation-backend/models"
	"firestation-backend/utils/logger"
	"firestation-backend/utils/metrics"
)

// ReorderSubmitter creates a single reorder request from a draft
type ReorderSubmitter interface {
	SubmitReorder(ctx context.Context, draft *models.ReorderDraft, requestedBy string) (*models.ReorderRequest, error)
}

// BulkReorderer turns a selection of items into reorder requests for the
// low-stock subset. Submissions run one at a time in selection order.
type BulkReorderer struct {
	submitter ReorderSubmitter
	logger    logger.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewBulkReorderer(submitter ReorderSubmitter, log logger.Logger, m *metrics.Metrics) *BulkReorderer {
	return &BulkReorderer{
		submitter: submitter,
		logger:    log,
		metrics:   m,
		now:       time.Now,
	}
}

// BulkReorder submits a default reorder for every selected low-stock item in
// items. It returns models.ErrNoLowStockSelected without submitting anything
// when no selected item qualifies. Individual failures are collected and do
// not stop the remaining submissions.
func (b *BulkReorderer) BulkReorder(ctx context.Context, selectedIDs []string, items []*models.InventoryItem, requestedBy string) (*models.BulkReorderResult, error) {
	byID := make(map[string]*models.InventoryItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	result := &models.BulkReorderResult{
		Successes: []models.BulkReorderSuccess{},
		Failures:  []models.BulkReorderFailure{},
		Skipped:   []string{},
	}

	seen := make(map[string]bool, len(selectedIDs))
	var qualifying []*models.InventoryItem
	for _, id := range selectedIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		item, ok := byID[id]
		if !ok {
			result.Skipped = append(result.Skipped, id)
			continue
		}
		if !IsLowStock(item) {
			result.Skipped = append(result.Skipped, item.Name)
			continue
		}
		qualifying = append(qualifying, item)
	}

	if len(qualifying) == 0 {
		b.logger.Warnf("Bulk reorder rejected: none of %d selected items are low on stock", len(selectedIDs))
		return nil, models.ErrNoLowStockSelected
	}

	b.logger.Infof("Bulk reorder: submitting %d of %d selected items", len(qualifying), len(selectedIDs))
	for _, item := range qualifying {
		if err := ctx.Err(); err != nil {
			result.Failures = append(result.Failures, models.BulkReorderFailure{ItemName: item.Name, Error: err.Error()})
			continue
		}

		now := b.now()
		draft := BuildReorderDraft(item, nil, now)
		if fields := ValidateReorder(draft, now); len(fields) > 0 {
			result.Failures = append(result.Failures, models.BulkReorderFailure{
				ItemName: item.Name,
				Error:    NewValidationError(fields).Error(),
			})
			continue
		}

		created, err := b.submitter.SubmitReorder(ctx, draft, requestedBy)
		if err != nil {
			b.logger.Errorf("Bulk reorder failed for %s (%s): %v", item.Name, item.ID, err)
			result.Failures = append(result.Failures, models.BulkReorderFailure{ItemName: item.Name, Error: err.Error()})
			continue
		}
		result.Successes = append(result.Successes, models.BulkReorderSuccess{ItemName: item.Name, Request: created})
	}

	result.SelectionCleared = true
	result.Message = result.Summary()
	b.metrics.ObserveBulkReorder(result)

	b.logger.Infof("Bulk reorder finished: %d created, %d failed, %d skipped",
		len(result.Successes), len(result.Failures), len(result.Skipped))
	return result, nil
}
