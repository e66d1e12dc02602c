package controller

import (
	"net/http"

	"firestation-backend/models"
	"firestation-backend/services"
	"firestation-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type VehicleController struct {
	responder
	vehicleService services.VehicleServiceInterface
}

func NewVehicleController(vehicleService services.VehicleServiceInterface, log logger.Logger) *VehicleController {
	return &VehicleController{
		responder:      newResponder(log),
		vehicleService: vehicleService,
	}
}

// ListVehicles handles GET /vehicles
// @Summary List vehicles
// @Tags Vehicles
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Vehicle}
// @Router /vehicles [get]
func (h *VehicleController) ListVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to list vehicles", err)
		return
	}
	h.ok(c, http.StatusOK, "Vehicles retrieved successfully", vehicles)
}

// GetVehicle handles GET /vehicles/:id
// @Summary Get a vehicle
// @Tags Vehicles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} models.APIResponse{data=models.Vehicle}
// @Failure 404 {object} models.APIResponse
// @Router /vehicles/{id} [get]
func (h *VehicleController) GetVehicle(c *gin.Context) {
	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Failed to get vehicle", err)
		return
	}
	h.ok(c, http.StatusOK, "Vehicle retrieved successfully", vehicle)
}

// CreateVehicle handles POST /vehicles
// @Summary Add a vehicle
// @Tags Vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateVehicleRequest true "Vehicle"
// @Success 201 {object} models.APIResponse{data=models.Vehicle}
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Name already used"
// @Router /vehicles [post]
func (h *VehicleController) CreateVehicle(c *gin.Context) {
	var req models.CreateVehicleRequest
	if !h.bind(c, &req) {
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "Failed to create vehicle", err)
		return
	}
	h.ok(c, http.StatusCreated, "Vehicle created successfully", vehicle)
}

// UpdateVehicle handles PUT /vehicles/:id
// @Summary Update a vehicle
// @Tags Vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param request body models.UpdateVehicleRequest true "Fields to change"
// @Success 200 {object} models.APIResponse{data=models.Vehicle}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /vehicles/{id} [put]
func (h *VehicleController) UpdateVehicle(c *gin.Context) {
	var req models.UpdateVehicleRequest
	if !h.bind(c, &req) {
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "Failed to update vehicle", err)
		return
	}
	h.ok(c, http.StatusOK, "Vehicle updated successfully", vehicle)
}

// DeleteVehicle handles DELETE /vehicles/:id
// @Summary Remove a vehicle
// @Tags Vehicles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} models.APIResponse
// @Router /vehicles/{id} [delete]
func (h *VehicleController) DeleteVehicle(c *gin.Context) {
	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "Failed to delete vehicle", err)
		return
	}
	h.ok(c, http.StatusOK, "Vehicle deleted successfully", nil)
}
