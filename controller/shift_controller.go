package controller

import (
	"net/http"
	"strings"

	"firestation-backend/models"
	"firestation-backend/services"
	"firestation-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type ShiftController struct {
	responder
	shiftService services.ShiftServiceInterface
}

func NewShiftController(shiftService services.ShiftServiceInterface, log logger.Logger) *ShiftController {
	return &ShiftController{
		responder:    newResponder(log),
		shiftService: shiftService,
	}
}

// shiftListResponse keeps the envelope fields and adds a top-level schedules list
type shiftListResponse struct {
	models.APIResponse
	Schedules []*models.ShiftSchedule `json:"schedules"`
}

// ListShifts handles GET /shift-schedules
// @Summary List shift schedules
// @Tags Shifts
// @Security BearerAuth
// @Produce json
// @Param date query string false "YYYY-MM-DD"
// @Param vehicle query string false "Vehicle name"
// @Param member_id query string false "Staff member ID"
// @Success 200 {object} shiftListResponse
// @Router /shift-schedules [get]
func (h *ShiftController) ListShifts(c *gin.Context) {
	filter := &models.ShiftFilter{
		Date:     strings.TrimSpace(c.Query("date")),
		Vehicle:  strings.TrimSpace(c.Query("vehicle")),
		MemberID: strings.TrimSpace(c.Query("member_id")),
	}

	schedules, err := h.shiftService.ListShifts(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, "Failed to list shift schedules", err)
		return
	}
	if schedules == nil {
		schedules = []*models.ShiftSchedule{}
	}

	c.JSON(http.StatusOK, shiftListResponse{
		APIResponse: models.APIResponse{
			Status:  "success",
			Success: true,
			Code:    http.StatusOK,
			Message: "Shift schedules retrieved successfully",
		},
		Schedules: schedules,
	})
}

// GetShift handles GET /shift-schedules/:id
// @Summary Get a shift schedule
// @Tags Shifts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} models.APIResponse{data=models.ShiftSchedule}
// @Failure 404 {object} models.APIResponse
// @Router /shift-schedules/{id} [get]
func (h *ShiftController) GetShift(c *gin.Context) {
	schedule, err := h.shiftService.GetShift(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Failed to get shift schedule", err)
		return
	}
	h.ok(c, http.StatusOK, "Shift schedule retrieved successfully", schedule)
}

// Validate handles POST /shift-schedules/validate
// @Summary Check a schedule without saving it
// @Description Runs the same date, vehicle, crew composition and member conflict checks as create and update. Pass id to validate an edit of an existing schedule.
// @Tags Shifts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id query string false "Schedule being edited"
// @Param request body models.ShiftScheduleRequest true "Proposed schedule"
// @Success 200 {object} models.APIResponse "data.valid reports the outcome and data.canAddMember whether the crew has room for one more; errors holds the field messages"
// @Router /shift-schedules/validate [post]
func (h *ShiftController) Validate(c *gin.Context) {
	var req models.ShiftScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalid(c, "Invalid request body", map[string]string{"request": err.Error()})
		return
	}

	fields, err := h.shiftService.Validate(c.Request.Context(), c.Query("id"), &req)
	if err != nil {
		h.fail(c, "Failed to validate shift schedule", err)
		return
	}

	message := "Shift schedule is valid"
	if len(fields) > 0 {
		message = "Shift schedule has errors"
	}
	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Success: true,
		Code:    http.StatusOK,
		Message: message,
		Data: gin.H{
			"valid":        len(fields) == 0,
			"canAddMember": services.CanAddMember(req.Members),
		},
		Errors:  fields,
	})
}

// CreateShift handles POST /shift-schedules
// @Summary Create a shift schedule
// @Description Officer or admin only. Rejected when the vehicle or any member is already scheduled that date, or the crew has no leader.
// @Tags Shifts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ShiftScheduleRequest true "Schedule"
// @Success 201 {object} models.APIResponse{data=models.ShiftSchedule}
// @Failure 400 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Router /shift-schedules [post]
func (h *ShiftController) CreateShift(c *gin.Context) {
	var req models.ShiftScheduleRequest
	if !h.bind(c, &req) {
		return
	}

	schedule, err := h.shiftService.CreateShift(c.Request.Context(), &req, session(c).UserID)
	if err != nil {
		h.fail(c, "Failed to create shift schedule", err)
		return
	}
	h.ok(c, http.StatusCreated, "Shift schedule created successfully", schedule)
}

// UpdateShift handles PUT /shift-schedules/:id
// @Summary Update a shift schedule
// @Tags Shifts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body models.ShiftScheduleRequest true "Schedule"
// @Success 200 {object} models.APIResponse{data=models.ShiftSchedule}
// @Failure 400 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /shift-schedules/{id} [put]
func (h *ShiftController) UpdateShift(c *gin.Context) {
	var req models.ShiftScheduleRequest
	if !h.bind(c, &req) {
		return
	}

	schedule, err := h.shiftService.UpdateShift(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "Failed to update shift schedule", err)
		return
	}
	h.ok(c, http.StatusOK, "Shift schedule updated successfully", schedule)
}

// DeleteShift handles DELETE /shift-schedules/:id
// @Summary Delete a shift schedule
// @Tags Shifts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Router /shift-schedules/{id} [delete]
func (h *ShiftController) DeleteShift(c *gin.Context) {
	if err := h.shiftService.DeleteShift(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "Failed to delete shift schedule", err)
		return
	}
	h.ok(c, http.StatusOK, "Shift schedule deleted successfully", nil)
}
