package controller

import (
	"net/http"
	"strings"

	"firestation-backend/models"
	"firestation-backend/services"
	"firestation-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type ReorderController struct {
	responder
	reorderService services.ReorderServiceInterface
}

func NewReorderController(reorderService services.ReorderServiceInterface, log logger.Logger) *ReorderController {
	return &ReorderController{
		responder:      newResponder(log),
		reorderService: reorderService,
	}
}

// ListReorders handles GET /inventory-reorders
// @Summary List reorder requests
// @Tags Reorders
// @Security BearerAuth
// @Produce json
// @Param status query string false "Pending, Approved, In Transit, Delivered or Cancelled"
// @Param priority query string false "Low, Medium, High or Urgent"
// @Param inventoryItemId query string false "Inventory item ID"
// @Success 200 {object} models.APIResponse{data=[]models.ReorderRequest}
// @Router /inventory-reorders [get]
func (h *ReorderController) ListReorders(c *gin.Context) {
	filter := &models.ReorderFilter{
		Status:          models.ReorderStatus(strings.TrimSpace(c.Query("status"))),
		Priority:        models.ReorderPriority(strings.TrimSpace(c.Query("priority"))),
		InventoryItemID: strings.TrimSpace(c.Query("inventoryItemId")),
	}

	reorders, err := h.reorderService.ListReorders(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, "Failed to list reorder requests", err)
		return
	}
	h.ok(c, http.StatusOK, "Reorder requests retrieved successfully", reorders)
}

// GetReorder handles GET /inventory-reorders/:id
// @Summary Get a reorder request
// @Tags Reorders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reorder ID"
// @Success 200 {object} models.APIResponse{data=models.ReorderRequest}
// @Failure 404 {object} models.APIResponse
// @Router /inventory-reorders/{id} [get]
func (h *ReorderController) GetReorder(c *gin.Context) {
	reorder, err := h.reorderService.GetReorder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Failed to get reorder request", err)
		return
	}
	h.ok(c, http.StatusOK, "Reorder request retrieved successfully", reorder)
}

// CreateReorder handles POST /inventory-reorders
// @Summary Create a reorder request
// @Description Only inventoryItemId is required. Missing fields take the suggested defaults: quantity max(threshold*2, 10), priority Urgent when out of stock else Medium, expected date in 14 days.
// @Tags Reorders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateReorderRequest true "Reorder"
// @Success 201 {object} models.APIResponse{data=models.ReorderRequest}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /inventory-reorders [post]
func (h *ReorderController) CreateReorder(c *gin.Context) {
	var req models.CreateReorderRequest
	if !h.bind(c, &req) {
		return
	}

	reorder, err := h.reorderService.CreateReorder(c.Request.Context(), &req, session(c).UserID)
	if err != nil {
		h.fail(c, "Failed to create reorder request", err)
		return
	}
	h.ok(c, http.StatusCreated, "Reorder request created successfully", reorder)
}

// Approve handles PATCH /inventory-reorders/:id/approve
// @Summary Approve a pending reorder request
// @Description approvedBy defaults to the caller's display name. Officer or admin only.
// @Tags Reorders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reorder ID"
// @Param request body models.ApproveReorderRequest false "Approver"
// @Success 200 {object} models.APIResponse{data=models.ReorderRequest}
// @Failure 403 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Not pending"
// @Router /inventory-reorders/{id}/approve [patch]
func (h *ReorderController) Approve(c *gin.Context) {
	var req models.ApproveReorderRequest
	if !h.bindOptional(c, &req) {
		return
	}
	approvedBy := strings.TrimSpace(req.ApprovedBy)
	if approvedBy == "" {
		approvedBy = session(c).Name
	}

	reorder, err := h.reorderService.Approve(c.Request.Context(), c.Param("id"), approvedBy)
	if err != nil {
		h.fail(c, "Failed to approve reorder request", err)
		return
	}
	h.ok(c, http.StatusOK, "Reorder request approved", reorder)
}

// Ship handles PATCH /inventory-reorders/:id/ship
// @Summary Mark an approved reorder as in transit
// @Tags Reorders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reorder ID"
// @Success 200 {object} models.APIResponse{data=models.ReorderRequest}
// @Failure 409 {object} models.APIResponse
// @Router /inventory-reorders/{id}/ship [patch]
func (h *ReorderController) Ship(c *gin.Context) {
	reorder, err := h.reorderService.Ship(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Failed to ship reorder request", err)
		return
	}
	h.ok(c, http.StatusOK, "Reorder request marked in transit", reorder)
}

// Deliver handles PATCH /inventory-reorders/:id/deliver
// @Summary Record delivery and restock the item
// @Description actualQuantity defaults to the ordered quantity
// @Tags Reorders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reorder ID"
// @Param request body models.DeliverReorderRequest false "Received quantity"
// @Success 200 {object} models.APIResponse{data=models.ReorderRequest}
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Router /inventory-reorders/{id}/deliver [patch]
func (h *ReorderController) Deliver(c *gin.Context) {
	var req models.DeliverReorderRequest
	if !h.bindOptional(c, &req) {
		return
	}

	reorder, err := h.reorderService.Deliver(c.Request.Context(), c.Param("id"), req.ActualQuantity)
	if err != nil {
		h.fail(c, "Failed to deliver reorder request", err)
		return
	}
	h.ok(c, http.StatusOK, "Reorder request delivered", reorder)
}

// Cancel handles PATCH /inventory-reorders/:id/cancel
// @Summary Cancel a pending or approved reorder
// @Tags Reorders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reorder ID"
// @Success 200 {object} models.APIResponse{data=models.ReorderRequest}
// @Failure 409 {object} models.APIResponse
// @Router /inventory-reorders/{id}/cancel [patch]
func (h *ReorderController) Cancel(c *gin.Context) {
	reorder, err := h.reorderService.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Failed to cancel reorder request", err)
		return
	}
	h.ok(c, http.StatusOK, "Reorder request cancelled", reorder)
}

// DeleteReorder handles DELETE /inventory-reorders/:id
// @Summary Delete a pending reorder request
// @Tags Reorders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reorder ID"
// @Success 200 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Only pending requests can be deleted"
// @Router /inventory-reorders/{id} [delete]
func (h *ReorderController) DeleteReorder(c *gin.Context) {
	if err := h.reorderService.DeleteReorder(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "Failed to delete reorder request", err)
		return
	}
	h.ok(c, http.StatusOK, "Reorder request deleted successfully", nil)
}
