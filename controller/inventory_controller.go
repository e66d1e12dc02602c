package controller

import (
	"net/http"
	"strings"

	"firestation-backend/models"
	"firestation-backend/services"
	"firestation-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// StockReporter exposes the latest background stock sweep
type StockReporter interface {
	LatestReport() *models.StockSweepReport
}

type InventoryController struct {
	responder
	inventoryService services.InventoryServiceInterface
	reports          StockReporter
}

// NewInventoryController creates the inventory handlers. reports may be nil, in
// which case alerts are computed on every request.
func NewInventoryController(inventoryService services.InventoryServiceInterface, reports StockReporter, log logger.Logger) *InventoryController {
	return &InventoryController{
		responder:        newResponder(log),
		inventoryService: inventoryService,
		reports:          reports,
	}
}

// ListItems handles GET /items
// @Summary List inventory items
// @Description Stock flags are evaluated on the server, so filtering by them never needs a full client-side fetch
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param category query string false "Category"
// @Param location query string false "Location"
// @Param vehicle_id query string false "Vehicle ID"
// @Param search query string false "Name contains"
// @Param isLowStock query bool false "Only items below their threshold"
// @Param isExpired query bool false "Only expired items"
// @Param isExpiringSoon query bool false "Only items expiring within 120 days"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} models.APIResponse{data=[]models.ClassifiedItem}
// @Failure 400 {object} models.APIResponse
// @Router /items [get]
func (h *InventoryController) ListItems(c *gin.Context) {
	fields := map[string]string{}
	filter := &models.InventoryFilter{
		Category:       strings.TrimSpace(c.Query("category")),
		Location:       strings.TrimSpace(c.Query("location")),
		VehicleID:      strings.TrimSpace(c.Query("vehicle_id")),
		Search:         strings.TrimSpace(c.Query("search")),
		IsLowStock:     boolParam(c, "isLowStock", fields),
		IsExpired:      boolParam(c, "isExpired", fields),
		IsExpiringSoon: boolParam(c, "isExpiringSoon", fields),
	}
	if len(fields) > 0 {
		h.invalid(c, "Invalid query parameters", fields)
		return
	}

	page, limit := pageParams(c)
	items, pagination, err := h.inventoryService.ListItems(c.Request.Context(), filter, page, limit)
	if err != nil {
		h.fail(c, "Failed to list inventory items", err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:     "success",
		Success:    true,
		Code:       http.StatusOK,
		Message:    "Inventory items retrieved successfully",
		Data:       items,
		Pagination: pagination,
	})
}

// GetItem handles GET /items/:id
// @Summary Get an inventory item
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.APIResponse{data=models.ClassifiedItem}
// @Failure 404 {object} models.APIResponse
// @Router /items/{id} [get]
func (h *InventoryController) GetItem(c *gin.Context) {
	item, err := h.inventoryService.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Failed to get inventory item", err)
		return
	}
	h.ok(c, http.StatusOK, "Inventory item retrieved successfully", item)
}

// CreateItem handles POST /items
// @Summary Create an inventory item
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateInventoryItemRequest true "Item"
// @Success 201 {object} models.APIResponse{data=models.ClassifiedItem}
// @Failure 400 {object} models.APIResponse
// @Router /items [post]
func (h *InventoryController) CreateItem(c *gin.Context) {
	var req models.CreateInventoryItemRequest
	if !h.bind(c, &req) {
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), &req, session(c).UserID)
	if err != nil {
		h.fail(c, "Failed to create inventory item", err)
		return
	}
	h.ok(c, http.StatusCreated, "Inventory item created successfully", item)
}

// UpdateItem handles PUT /items/:id
// @Summary Update an inventory item
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body models.UpdateInventoryItemRequest true "Fields to change"
// @Success 200 {object} models.APIResponse{data=models.ClassifiedItem}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /items/{id} [put]
func (h *InventoryController) UpdateItem(c *gin.Context) {
	var req models.UpdateInventoryItemRequest
	if !h.bind(c, &req) {
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "Failed to update inventory item", err)
		return
	}
	h.ok(c, http.StatusOK, "Inventory item updated successfully", item)
}

// DeleteItem handles DELETE /items/:id
// @Summary Delete an inventory item
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /items/{id} [delete]
func (h *InventoryController) DeleteItem(c *gin.Context) {
	if err := h.inventoryService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "Failed to delete inventory item", err)
		return
	}
	h.ok(c, http.StatusOK, "Inventory item deleted successfully", nil)
}

// BulkReorder handles POST /inventory/bulk-reorder
// @Summary Reorder every selected low-stock item
// @Description Items that are not low on stock are skipped. Reorders are submitted one at a time in selection order; a failure is recorded against its item and does not stop the rest.
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.BulkReorderRequest true "Selected item IDs"
// @Success 200 {object} models.APIResponse{data=models.BulkReorderResult} "At least one reorder created"
// @Failure 400 {object} models.APIResponse "None of the selected items are low on stock"
// @Failure 502 {object} models.APIResponse{data=models.BulkReorderResult} "Every submission failed"
// @Router /inventory/bulk-reorder [post]
func (h *InventoryController) BulkReorder(c *gin.Context) {
	var req models.BulkReorderRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.inventoryService.BulkReorder(c.Request.Context(), req.ItemIDs, session(c).UserID)
	if err != nil {
		h.fail(c, "Bulk reorder failed", err)
		return
	}

	if !result.HasSuccess() {
		c.JSON(http.StatusBadGateway, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadGateway,
			Message: result.Message,
			Data:    result,
			Error:   &models.APIError{Type: "ReorderError", Details: "no reorder request could be created"},
		})
		return
	}
	h.ok(c, http.StatusOK, result.Message, result)
}

// Alerts handles GET /inventory/alerts
// @Summary Stock alerts
// @Description Latest low-stock, expired and expiring-soon counts; runs a sweep if none has completed yet
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.StockSweepReport}
// @Router /inventory/alerts [get]
func (h *InventoryController) Alerts(c *gin.Context) {
	var report *models.StockSweepReport
	if h.reports != nil {
		report = h.reports.LatestReport()
	}
	if report == nil {
		var err error
		if report, err = h.inventoryService.SweepStock(c.Request.Context()); err != nil {
			h.fail(c, "Failed to compute stock alerts", err)
			return
		}
	}
	h.ok(c, http.StatusOK, "Stock alerts retrieved successfully", report)
}
