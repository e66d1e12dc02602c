package controller

import (
	"net/http"

	"firestation-backend/models"
	"firestation-backend/services"
	"firestation-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	responder
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface, log logger.Logger) *UserController {
	return &UserController{
		responder:   newResponder(log),
		userService: userService,
	}
}

// Register handles POST /auth/register
// @Summary Register a staff account
// @Description Self-registration always creates a staff-level account; admins can promote it afterwards
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterUser true "Registration request"
// @Success 201 {object} models.APIResponse "User registered successfully"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid registration data"
// @Failure 409 {object} models.APIResponse "Conflict - Email or username already taken"
// @Router /auth/register [post]
func (h *UserController) Register(c *gin.Context) {
	var req models.RegisterUser
	if !h.bind(c, &req) {
		return
	}
	req.Role = models.StaffRoleStaff

	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "Failed to register user", err)
		return
	}
	h.ok(c, http.StatusCreated, "User registered successfully", user)
}

// CreateStaff handles POST /staff
// @Summary Create a staff account with any role
// @Tags Staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.RegisterUser true "Staff account"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Router /staff [post]
func (h *UserController) CreateStaff(c *gin.Context) {
	var req models.RegisterUser
	if !h.bind(c, &req) {
		return
	}
	if req.Role == "" {
		req.Role = models.StaffRoleStaff
	}

	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "Failed to create staff member", err)
		return
	}
	h.ok(c, http.StatusCreated, "Staff member created successfully", user)
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Exchanges email and password for a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.APIResponse{data=models.LoginResponse}
// @Failure 401 {object} models.APIResponse "Invalid email or password"
// @Failure 403 {object} models.APIResponse "Account is not active"
// @Router /auth/login [post]
func (h *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "Login failed", err)
		return
	}
	h.ok(c, http.StatusOK, "Login successful", resp)
}

// Me handles GET /auth/me
// @Summary Current user
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.User}
// @Failure 401 {object} models.APIResponse
// @Router /auth/me [get]
func (h *UserController) Me(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), session(c).UserID)
	if err != nil {
		h.fail(c, "Failed to load current user", err)
		return
	}
	h.ok(c, http.StatusOK, "User details retrieved successfully", user)
}

// GetUser handles GET /staff/:id
// @Summary Get a staff member
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.APIResponse{data=models.User}
// @Failure 404 {object} models.APIResponse
// @Router /staff/{id} [get]
func (h *UserController) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Failed to get staff member", err)
		return
	}
	h.ok(c, http.StatusOK, "Staff member retrieved successfully", user)
}

// ListUsers handles GET /staff
// @Summary List staff
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.User}
// @Router /staff [get]
func (h *UserController) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to list staff", err)
		return
	}
	h.ok(c, http.StatusOK, "Staff retrieved successfully", users)
}

// UpdateUser handles PATCH /staff/:id
// @Summary Update a staff member
// @Description Changes name, title, phone, role or status. Admin only.
// @Tags Staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.APIResponse{data=models.User}
// @Failure 400 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /staff/{id} [patch]
func (h *UserController) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if !h.bind(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "Failed to update staff member", err)
		return
	}
	h.logger.Infof("Staff member %s updated by %s", user.ID, session(c).UserID)
	h.ok(c, http.StatusOK, "Staff member updated successfully", user)
}
