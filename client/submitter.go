package client

import (
	"context"
	"errors"

	"firestation-backend/models"
)

// ReorderSubmitter posts reorder drafts to a remote API. It satisfies
// services.ReorderSubmitter so a BulkReorderer can drive another station's
// instance.
type ReorderSubmitter struct {
	client *Client
}

func NewReorderSubmitter(c *Client) *ReorderSubmitter {
	return &ReorderSubmitter{client: c}
}

// SubmitReorder creates one reorder request. requestedBy is not sent; the
// server records the owner of the client's token.
func (s *ReorderSubmitter) SubmitReorder(ctx context.Context, draft *models.ReorderDraft, requestedBy string) (*models.ReorderRequest, error) {
	if draft == nil {
		return nil, errors.New("reorder draft is required")
	}

	overrides := models.ReorderOverrides{
		Quantity: draft.Quantity,
		Priority: draft.Priority,
		Supplier: draft.Supplier,
		Notes:    draft.Notes,
	}
	if draft.ExpectedDate != nil {
		overrides.ExpectedDate = &models.CalendarDate{Time: *draft.ExpectedDate}
	}
	return s.client.CreateReorder(ctx, &models.CreateReorderRequest{
		InventoryItemID:  draft.InventoryItemID,
		ReorderOverrides: overrides,
	})
}
