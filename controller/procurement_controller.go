package controller

import (
	"net/http"
	"strings"

	"firestation-backend/models"
	"firestation-backend/services"
	"firestation-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type ProcurementController struct {
	responder
	procurementService services.ProcurementServiceInterface
}

func NewProcurementController(procurementService services.ProcurementServiceInterface, log logger.Logger) *ProcurementController {
	return &ProcurementController{
		responder:          newResponder(log),
		procurementService: procurementService,
	}
}

// ListSupplyRequests handles GET /supply-requests
// @Summary List supply requests
// @Tags Procurement
// @Security BearerAuth
// @Produce json
// @Param status query string false "open, awarded or closed"
// @Success 200 {object} models.APIResponse{data=[]models.SupplyRequest}
// @Router /supply-requests [get]
func (h *ProcurementController) ListSupplyRequests(c *gin.Context) {
	status := models.SupplyRequestStatus(strings.TrimSpace(c.Query("status")))
	requests, err := h.procurementService.ListSupplyRequests(c.Request.Context(), status)
	if err != nil {
		h.fail(c, "Failed to list supply requests", err)
		return
	}
	h.ok(c, http.StatusOK, "Supply requests retrieved successfully", requests)
}

// GetSupplyRequest handles GET /supply-requests/:id
// @Summary Get a supply request
// @Tags Procurement
// @Security BearerAuth
// @Produce json
// @Param id path string true "Supply request ID"
// @Success 200 {object} models.APIResponse{data=models.SupplyRequest}
// @Failure 404 {object} models.APIResponse
// @Router /supply-requests/{id} [get]
func (h *ProcurementController) GetSupplyRequest(c *gin.Context) {
	request, err := h.procurementService.GetSupplyRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Failed to get supply request", err)
		return
	}
	h.ok(c, http.StatusOK, "Supply request retrieved successfully", request)
}

// CreateSupplyRequest handles POST /supply-requests
// @Summary Open a supply request for bids
// @Tags Procurement
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateSupplyRequest true "Supply request"
// @Success 201 {object} models.APIResponse{data=models.SupplyRequest}
// @Failure 400 {object} models.APIResponse
// @Router /supply-requests [post]
func (h *ProcurementController) CreateSupplyRequest(c *gin.Context) {
	var req models.CreateSupplyRequest
	if !h.bind(c, &req) {
		return
	}

	request, err := h.procurementService.CreateSupplyRequest(c.Request.Context(), &req, session(c).UserID)
	if err != nil {
		h.fail(c, "Failed to create supply request", err)
		return
	}
	h.ok(c, http.StatusCreated, "Supply request created successfully", request)
}

// SubmitBid handles POST /supply-requests/:id/bids
// @Summary Submit a supplier bid
// @Tags Procurement
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Supply request ID"
// @Param request body models.SubmitBidRequest true "Bid"
// @Success 201 {object} models.APIResponse{data=models.Bid}
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Request no longer open"
// @Router /supply-requests/{id}/bids [post]
func (h *ProcurementController) SubmitBid(c *gin.Context) {
	var req models.SubmitBidRequest
	if !h.bind(c, &req) {
		return
	}

	bid, err := h.procurementService.SubmitBid(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "Failed to submit bid", err)
		return
	}
	h.ok(c, http.StatusCreated, "Bid submitted successfully", bid)
}

// CompareBids handles GET /supply-requests/:id/bids/compare
// @Summary Compare bids
// @Description Bids ranked by amount, then delivery days, then submission time
// @Tags Procurement
// @Security BearerAuth
// @Produce json
// @Param id path string true "Supply request ID"
// @Success 200 {object} models.APIResponse{data=models.BidComparison}
// @Failure 404 {object} models.APIResponse
// @Router /supply-requests/{id}/bids/compare [get]
func (h *ProcurementController) CompareBids(c *gin.Context) {
	comparison, err := h.procurementService.CompareBids(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Failed to compare bids", err)
		return
	}
	h.ok(c, http.StatusOK, "Bids compared successfully", comparison)
}

// AssignBid handles POST /supply-requests/:id/assign
// @Summary Award a supply request to a bid
// @Description Officer or admin only. The chosen bid is accepted and every other bid rejected.
// @Tags Procurement
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Supply request ID"
// @Param request body models.AssignBidRequest true "Winning bid"
// @Success 200 {object} models.APIResponse{data=models.SupplyRequest}
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Already awarded"
// @Router /supply-requests/{id}/assign [post]
func (h *ProcurementController) AssignBid(c *gin.Context) {
	var req models.AssignBidRequest
	if !h.bind(c, &req) {
		return
	}

	request, err := h.procurementService.AssignBid(c.Request.Context(), c.Param("id"), req.BidID)
	if err != nil {
		h.fail(c, "Failed to assign bid", err)
		return
	}
	h.ok(c, http.StatusOK, "Bid assigned successfully", request)
}
