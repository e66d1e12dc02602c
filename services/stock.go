package services

import (
	"math"
	"time"

	"firestation-backend/models"
)

// ExpiringSoonDays is the look-ahead window for IsExpiringSoon
const ExpiringSoonDays = 120

// IsLowStock reports whether quantity is strictly below a positive threshold.
// A missing quantity or threshold is never low stock.
func IsLowStock(item *models.InventoryItem) bool {
	if item == nil || item.Quantity == nil || item.Threshold == nil {
		return false
	}
	return *item.Threshold > 0 && *item.Quantity < *item.Threshold
}

// IsExpired reports whether the item's expire date lies strictly before now
func IsExpired(item *models.InventoryItem, now time.Time) bool {
	if item == nil || item.ExpireDate == nil {
		return false
	}
	return item.ExpireDate.Before(now)
}

// IsExpiringSoon reports whether an unexpired item expires within ExpiringSoonDays
func IsExpiringSoon(item *models.InventoryItem, now time.Time) bool {
	if item == nil || item.ExpireDate == nil || IsExpired(item, now) {
		return false
	}
	days := DaysUntil(*item.ExpireDate, now)
	return days > 0 && days <= ExpiringSoonDays
}

// DaysUntil is the number of days from now to t, rounded up
func DaysUntil(t, now time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}

func Classify(item *models.InventoryItem, now time.Time) models.StockStatus {
	return models.StockStatus{
		LowStock:     IsLowStock(item),
		Expired:      IsExpired(item, now),
		ExpiringSoon: IsExpiringSoon(item, now),
	}
}

// matchesStockFlags applies the optional isLowStock/isExpired/isExpiringSoon filters
func matchesStockFlags(status models.StockStatus, filter *models.InventoryFilter) bool {
	if filter == nil {
		return true
	}
	if filter.IsLowStock != nil && *filter.IsLowStock != status.LowStock {
		return false
	}
	if filter.IsExpired != nil && *filter.IsExpired != status.Expired {
		return false
	}
	if filter.IsExpiringSoon != nil && *filter.IsExpiringSoon != status.ExpiringSoon {
		return false
	}
	return true
}

// Sweep classifies every item and summarises the result
func Sweep(items []*models.InventoryItem, now time.Time) *models.StockSweepReport {
	report := &models.StockSweepReport{
		RanAt:             now,
		TotalItems:        len(items),
		LowStockItems:     []string{},
		ExpiredItems:      []string{},
		ExpiringSoonItems: []string{},
	}
	for _, item := range items {
		status := Classify(item, now)
		if status.LowStock {
			report.LowStockCount++
			report.LowStockItems = append(report.LowStockItems, item.Name)
		}
		if status.Expired {
			report.ExpiredCount++
			report.ExpiredItems = append(report.ExpiredItems, item.Name)
		}
		if status.ExpiringSoon {
			report.ExpiringSoonCount++
			report.ExpiringSoonItems = append(report.ExpiringSoonItems, item.Name)
		}
	}
	return report
}
