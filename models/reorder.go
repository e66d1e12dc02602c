package models

import (
	"fmt"
	"strings"
	"time"
)

// ReorderPriority is the urgency of a reorder request
type ReorderPriority string

const (
	PriorityLow    ReorderPriority = "Low"
	PriorityMedium ReorderPriority = "Medium"
	PriorityHigh   ReorderPriority = "High"
	PriorityUrgent ReorderPriority = "Urgent"
)

// ReorderStatus is the lifecycle state of a reorder request
type ReorderStatus string

const (
	ReorderStatusPending   ReorderStatus = "Pending"
	ReorderStatusApproved  ReorderStatus = "Approved"
	ReorderStatusInTransit ReorderStatus = "In Transit"
	ReorderStatusDelivered ReorderStatus = "Delivered"
	ReorderStatusCancelled ReorderStatus = "Cancelled"
)

// DefaultSupplier is the placeholder used when no supplier is known yet
const DefaultSupplier = "To be determined"

var reorderTransitions = map[ReorderStatus][]ReorderStatus{
	ReorderStatusPending:   {ReorderStatusApproved, ReorderStatusCancelled},
	ReorderStatusApproved:  {ReorderStatusInTransit, ReorderStatusCancelled},
	ReorderStatusInTransit: {ReorderStatusDelivered},
}

// CanTransitionTo reports whether next is a legal successor of s
func (s ReorderStatus) CanTransitionTo(next ReorderStatus) bool {
	for _, allowed := range reorderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible
func (s ReorderStatus) IsTerminal() bool {
	return len(reorderTransitions[s]) == 0
}

// ReorderRequest is a request to replenish an inventory item
type ReorderRequest struct {
	ID              string          `json:"id" dynamodbav:"id"`
	InventoryItemID string          `json:"inventoryItemId" dynamodbav:"inventory_item_id"`
	ItemName        string          `json:"itemName" dynamodbav:"item_name"`
	Quantity        int             `json:"quantity" dynamodbav:"quantity"`
	Priority        ReorderPriority `json:"priority" dynamodbav:"priority"`
	Supplier        string          `json:"supplier" dynamodbav:"supplier"`
	ExpectedDate    time.Time       `json:"expectedDate" dynamodbav:"expected_date"`
	Notes           string          `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
	Status          ReorderStatus   `json:"status" dynamodbav:"status"`
	RequestedBy     string          `json:"requestedBy,omitempty" dynamodbav:"requested_by,omitempty"`
	ApprovedBy      string          `json:"approvedBy,omitempty" dynamodbav:"approved_by,omitempty"`
	ApprovedAt      *time.Time      `json:"approvedAt,omitempty" dynamodbav:"approved_at,omitempty"`
	ShippedAt       *time.Time      `json:"shippedAt,omitempty" dynamodbav:"shipped_at,omitempty"`
	ActualQuantity  *int            `json:"actualQuantity,omitempty" dynamodbav:"actual_quantity,omitempty"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty" dynamodbav:"delivered_at,omitempty"`
	CancelledAt     *time.Time      `json:"cancelledAt,omitempty" dynamodbav:"cancelled_at,omitempty"`
	CreatedAt       time.Time       `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" dynamodbav:"updated_at"`
}

// ReorderDraft is an unsubmitted reorder request. Fields are pointers so that a
// partial body can be completed with builder defaults.
type ReorderDraft struct {
	InventoryItemID string          `json:"inventoryItemId" validate:"required"`
	ItemName        string          `json:"itemName,omitempty"`
	Quantity        *int            `json:"quantity" validate:"required,min=1,max=99999"`
	Priority        ReorderPriority `json:"priority" validate:"required,oneof=Low Medium High Urgent"`
	Supplier        string          `json:"supplier,omitempty" validate:"omitempty,min=2,max=100,supplierchars"`
	ExpectedDate    *time.Time      `json:"expectedDate" validate:"required"`
	Notes           string          `json:"notes,omitempty" validate:"max=500"`
}

// ReorderOverrides are caller-supplied values that replace builder defaults
type ReorderOverrides struct {
	Quantity     *int            `json:"quantity,omitempty"`
	Priority     ReorderPriority `json:"priority,omitempty"`
	Supplier     string          `json:"supplier,omitempty"`
	ExpectedDate *CalendarDate   `json:"expectedDate,omitempty" swaggertype:"string" example:"2025-06-15"`
	Notes        string          `json:"notes,omitempty"`
}

// CalendarDate is a date sent as YYYY-MM-DD, read in local time, or as an
// RFC3339 timestamp
type CalendarDate struct {
	time.Time
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if t, err := time.ParseInLocation(ShiftDateLayout, s, time.Local); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("date %q must be YYYY-MM-DD or RFC3339", s)
	}
	d.Time = t
	return nil
}

// CreateReorderRequest is the body of POST /inventory-reorders
type CreateReorderRequest struct {
	InventoryItemID string `json:"inventoryItemId" validate:"required"`
	ReorderOverrides
}

// ApproveReorderRequest is the body of PATCH /inventory-reorders/:id/approve
type ApproveReorderRequest struct {
	ApprovedBy string `json:"approvedBy"`
}

// DeliverReorderRequest is the body of PATCH /inventory-reorders/:id/deliver
type DeliverReorderRequest struct {
	ActualQuantity *int `json:"actualQuantity" validate:"omitempty,min=0,max=99999"`
}

// ReorderFilter narrows reorder request lists
type ReorderFilter struct {
	Status          ReorderStatus   `json:"status,omitempty"`
	Priority        ReorderPriority `json:"priority,omitempty"`
	InventoryItemID string          `json:"inventoryItemId,omitempty"`
}

// BulkReorderRequest is the body of POST /inventory/bulk-reorder
type BulkReorderRequest struct {
	ItemIDs []string `json:"itemIds" validate:"required,min=1,dive,required"`
}

// BulkReorderSuccess is one submitted reorder
type BulkReorderSuccess struct {
	ItemName string          `json:"itemName"`
	Request  *ReorderRequest `json:"request"`
}

// BulkReorderFailure is one reorder that could not be submitted
type BulkReorderFailure struct {
	ItemName string `json:"itemName"`
	Error    string `json:"error"`
}

// BulkReorderResult aggregates the outcome of a bulk reorder
type BulkReorderResult struct {
	Successes        []BulkReorderSuccess `json:"successes"`
	Failures         []BulkReorderFailure `json:"failures"`
	Skipped          []string             `json:"skipped"`
	SelectionCleared bool                 `json:"selectionCleared"`
	Message          string               `json:"message"`
}

// HasSuccess reports whether at least one reorder was created
func (r *BulkReorderResult) HasSuccess() bool {
	return len(r.Successes) > 0
}

// Summary is the combined success/failure message shown after a bulk reorder
func (r *BulkReorderResult) Summary() string {
	var parts []string
	if n := len(r.Successes); n > 0 {
		parts = append(parts, fmt.Sprintf("Created %d reorder request(s)", n))
	}
	if n := len(r.Failures); n > 0 {
		details := make([]string, 0, n)
		for _, f := range r.Failures {
			details = append(details, f.ItemName+": "+f.Error)
		}
		parts = append(parts, fmt.Sprintf("%d failed (%s)", n, strings.Join(details, "; ")))
	}
	if n := len(r.Skipped); n > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped as not low on stock", n))
	}
	return strings.Join(parts, ". ")
}
