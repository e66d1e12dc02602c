package services

import (
	"errors"
	"strings"
	"time"

	"firestation-backend/models"

	"github.com/go-playground/validator/v10"
)

const (
	minSuggestedQuantity = 10
	defaultLeadTimeDays  = 14
	maxExpectedYears     = 2
)

var reorderValidator = NewValidator()

// SuggestedQuantity is twice the threshold, never fewer than ten units
func SuggestedQuantity(item *models.InventoryItem) int {
	suggested := item.ThresholdValue() * 2
	if suggested < minSuggestedQuantity {
		return minSuggestedQuantity
	}
	return suggested
}

// DefaultPriority is Urgent for an item that has run out, Medium otherwise
func DefaultPriority(item *models.InventoryItem) models.ReorderPriority {
	if item.Quantity != nil && *item.Quantity == 0 {
		return models.PriorityUrgent
	}
	return models.PriorityMedium
}

// BuildReorderDraft fills a draft for item with defaults, then applies any
// non-zero overrides.
func BuildReorderDraft(item *models.InventoryItem, overrides *models.ReorderOverrides, now time.Time) *models.ReorderDraft {
	quantity := SuggestedQuantity(item)
	expected := now.AddDate(0, 0, defaultLeadTimeDays)

	draft := &models.ReorderDraft{
		InventoryItemID: item.ID,
		ItemName:        item.Name,
		Quantity:        &quantity,
		Priority:        DefaultPriority(item),
		Supplier:        models.DefaultSupplier,
		ExpectedDate:    &expected,
	}
	if overrides == nil {
		return draft
	}

	if overrides.Quantity != nil {
		q := *overrides.Quantity
		draft.Quantity = &q
	}
	if overrides.Priority != "" {
		draft.Priority = overrides.Priority
	}
	if s := strings.TrimSpace(overrides.Supplier); s != "" {
		draft.Supplier = s
	}
	if overrides.ExpectedDate != nil {
		d := overrides.ExpectedDate.Time
		draft.ExpectedDate = &d
	}
	if overrides.Notes != "" {
		draft.Notes = strings.TrimSpace(overrides.Notes)
	}
	return draft
}

// ValidateReorder checks a draft before submission. An empty map means the
// draft may be submitted.
func ValidateReorder(draft *models.ReorderDraft, now time.Time) map[string]string {
	fields := map[string]string{}

	if err := reorderValidator.Struct(draft); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			fields["request"] = err.Error()
			return fields
		}
		for _, fe := range verrs {
			if _, seen := fields[fe.Field()]; seen {
				continue
			}
			fields[fe.Field()] = reorderMessage(fe)
		}
	}

	if draft.ExpectedDate != nil {
		if _, seen := fields["expectedDate"]; !seen {
			if msg := checkExpectedDate(*draft.ExpectedDate, now); msg != "" {
				fields["expectedDate"] = msg
			}
		}
	}
	return fields
}

func reorderMessage(fe validator.FieldError) string {
	switch fe.Field() + "." + fe.Tag() {
	case "quantity.required", "quantity.min":
		return "Quantity is required and must be at least 1"
	case "quantity.max":
		return "Quantity cannot exceed 99,999"
	case "priority.required":
		return "Priority is required"
	case "priority.oneof":
		return "Priority must be one of: Low, Medium, High, Urgent"
	case "supplier.min", "supplier.max":
		return "Supplier must be between 2 and 100 characters"
	case "expectedDate.required":
		return "Expected date is required"
	case "notes.max":
		return "Notes cannot exceed 500 characters"
	}
	return FieldMessage(fe)
}

// checkExpectedDate compares calendar days only
func checkExpectedDate(expected, now time.Time) string {
	day := truncateDay(expected.In(now.Location()))
	today := truncateDay(now)

	if day.Before(today) {
		return "Expected date cannot be in the past"
	}
	if day.After(today.AddDate(maxExpectedYears, 0, 0)) {
		return "Expected date cannot be more than 2 years in the future"
	}
	return ""
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// toReorderRequest converts a validated draft into a record ready to store
func toReorderRequest(draft *models.ReorderDraft, requestedBy string) *models.ReorderRequest {
	return &models.ReorderRequest{
		InventoryItemID: draft.InventoryItemID,
		ItemName:        draft.ItemName,
		Quantity:        *draft.Quantity,
		Priority:        draft.Priority,
		Supplier:        draft.Supplier,
		ExpectedDate:    *draft.ExpectedDate,
		Notes:           draft.Notes,
		RequestedBy:     requestedBy,
	}
}
