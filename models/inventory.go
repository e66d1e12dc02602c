package models

import "time"

// InventoryItem is a stocked item: equipment, consumables or medical supplies
type InventoryItem struct {
	ID         string     `json:"id" dynamodbav:"id"`
	Name       string     `json:"name" dynamodbav:"name"`
	Category   string     `json:"category" dynamodbav:"category"`
	Quantity   *int       `json:"quantity,omitempty" dynamodbav:"quantity,omitempty"`
	Threshold  *int       `json:"threshold,omitempty" dynamodbav:"threshold,omitempty"`
	ExpireDate *time.Time `json:"expire_date,omitempty" dynamodbav:"expire_date,omitempty"`
	Location   string     `json:"location" dynamodbav:"location"`
	Condition  string     `json:"condition,omitempty" dynamodbav:"condition,omitempty"`
	VehicleID  string     `json:"vehicle_id,omitempty" dynamodbav:"vehicle_id,omitempty"`
	CreatedBy  string     `json:"created_by,omitempty" dynamodbav:"created_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" dynamodbav:"updated_at"`
}

// QuantityValue returns the quantity or 0 when unset
func (i *InventoryItem) QuantityValue() int {
	if i.Quantity == nil {
		return 0
	}
	return *i.Quantity
}

// ThresholdValue returns the threshold or 0 when unset
func (i *InventoryItem) ThresholdValue() int {
	if i.Threshold == nil {
		return 0
	}
	return *i.Threshold
}

// StockStatus is the derived classification of an item at a point in time
type StockStatus struct {
	LowStock     bool `json:"isLowStock"`
	Expired      bool `json:"isExpired"`
	ExpiringSoon bool `json:"isExpiringSoon"`
}

// ClassifiedItem is an item together with its classification, as returned by list endpoints
type ClassifiedItem struct {
	*InventoryItem
	StockStatus
}

// CreateInventoryItemRequest is the body of POST /items
type CreateInventoryItemRequest struct {
	Name       string     `json:"name" validate:"required,min=2,max=100"`
	Category   string     `json:"category" validate:"required,max=50"`
	Quantity   *int       `json:"quantity" validate:"required,min=0"`
	Threshold  *int       `json:"threshold" validate:"omitempty,min=0"`
	ExpireDate *time.Time `json:"expire_date,omitempty"`
	Location   string     `json:"location" validate:"required,max=100"`
	Condition  string     `json:"condition,omitempty" validate:"omitempty,max=50"`
	VehicleID  string     `json:"vehicle_id,omitempty"`
}

// UpdateInventoryItemRequest is the body of PUT /items/:id
type UpdateInventoryItemRequest struct {
	Name       string     `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Category   string     `json:"category,omitempty" validate:"omitempty,max=50"`
	Quantity   *int       `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Threshold  *int       `json:"threshold,omitempty" validate:"omitempty,min=0"`
	ExpireDate *time.Time `json:"expire_date,omitempty"`
	Location   string     `json:"location,omitempty" validate:"omitempty,max=100"`
	Condition  string     `json:"condition,omitempty" validate:"omitempty,max=50"`
	VehicleID  *string    `json:"vehicle_id,omitempty"`
}

// InventoryFilter narrows item lists; the stock flags are evaluated server-side
type InventoryFilter struct {
	Category       string `json:"category,omitempty"`
	Location       string `json:"location,omitempty"`
	VehicleID      string `json:"vehicle_id,omitempty"`
	Search         string `json:"search,omitempty"`
	IsLowStock     *bool  `json:"isLowStock,omitempty"`
	IsExpired      *bool  `json:"isExpired,omitempty"`
	IsExpiringSoon *bool  `json:"isExpiringSoon,omitempty"`
}

// StockSweepReport summarises one classification pass over the whole inventory
type StockSweepReport struct {
	RanAt             time.Time `json:"ran_at"`
	TotalItems        int       `json:"total_items"`
	LowStockCount     int       `json:"low_stock_count"`
	ExpiredCount      int       `json:"expired_count"`
	ExpiringSoonCount int       `json:"expiring_soon_count"`
	LowStockItems     []string  `json:"low_stock_items"`
	ExpiredItems      []string  `json:"expired_items"`
	ExpiringSoonItems []string  `json:"expiring_soon_items"`
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
