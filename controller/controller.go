package controller

import (
	"net/http"
	"time"

	_ "firestation-backend/docs"
	"firestation-backend/middelware"
	"firestation-backend/models"
	"firestation-backend/services"
	"firestation-backend/utils/logger"
	"firestation-backend/utils/metrics"
	"firestation-backend/utils/swagger"

	"github.com/gin-gonic/gin"
)

// WorkerMonitor is the view of the background worker the HTTP layer needs
type WorkerMonitor interface {
	StockReporter
	State() models.WorkerState
}

type Controller struct {
	User        *UserController
	Inventory   *InventoryController
	Reorder     *ReorderController
	Shift       *ShiftController
	Vehicle     *VehicleController
	Procurement *ProcurementController
	Budget      *BudgetController

	jwtManager *middelware.JWTManager
	worker     WorkerMonitor
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewController builds every resource controller. worker and m may be nil.
func NewController(svc services.ServiceContainerInterface, jwtManager *middelware.JWTManager, worker WorkerMonitor, log logger.Logger, m *metrics.Metrics) *Controller {
	var reports StockReporter
	if worker != nil {
		reports = worker
	}

	return &Controller{
		User:        NewUserController(svc.GetUserService(), log),
		Inventory:   NewInventoryController(svc.GetInventoryService(), reports, log),
		Reorder:     NewReorderController(svc.GetReorderService(), log),
		Shift:       NewShiftController(svc.GetShiftService(), log),
		Vehicle:     NewVehicleController(svc.GetVehicleService(), log),
		Procurement: NewProcurementController(svc.GetProcurementService(), log),
		Budget:      NewBudgetController(svc.GetBudgetService(), log),
		jwtManager:  jwtManager,
		worker:      worker,
		metrics:     m,
		logger:      log,
	}
}

// RegisterRoutes mounts middleware, the API under config.BasePath, health,
// metrics and swagger on r
func (c *Controller) RegisterRoutes(r *gin.Engine, config *models.Config) {
	logging := middelware.NewLoggingMiddleware(c.logger, c.metrics)
	r.Use(logging.Recovery(), logging.StructuredLogger(), middelware.NewCORSMiddleware(config.CORSOrigins).CORS())

	r.GET("/health", c.Health)
	if c.metrics != nil && config.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(c.metrics.Handler()))
	}

	swaggerConfig := swagger.SwaggerConfig{
		Title:         config.AppName + " API",
		SwaggerDocURL: "/swagger/doc.json",
		AuthURL:       config.BasePath + "/auth/login",
	}
	r.GET("/swagger", swagger.ServeSwaggerUI(swaggerConfig))
	r.GET("/swagger/index.html", swagger.ServeSwaggerUI(swaggerConfig))
	r.GET("/swagger/doc.json", swagger.ServeDoc())

	v1 := r.Group(config.BasePath)
	v1.GET("/health", c.Health)

	auth := v1.Group("/auth")
	auth.POST("/register", c.User.Register)
	auth.POST("/login", c.User.Login)

	api := v1.Group("", c.jwtManager.AuthMiddleware())
	officer := c.jwtManager.RequireOfficer()
	admin := c.jwtManager.RequireAdmin()

	api.GET("/auth/me", c.User.Me)

	api.GET("/staff", c.User.ListUsers)
	api.GET("/staff/:id", c.User.GetUser)
	api.POST("/staff", admin, c.User.CreateStaff)
	api.PATCH("/staff/:id", admin, c.User.UpdateUser)

	api.GET("/items", c.Inventory.ListItems)
	api.GET("/items/:id", c.Inventory.GetItem)
	api.POST("/items", c.Inventory.CreateItem)
	api.PUT("/items/:id", c.Inventory.UpdateItem)
	api.DELETE("/items/:id", officer, c.Inventory.DeleteItem)
	api.POST("/inventory/bulk-reorder", c.Inventory.BulkReorder)
	api.GET("/inventory/alerts", c.Inventory.Alerts)

	reorders := api.Group("/inventory-reorders")
	reorders.GET("", c.Reorder.ListReorders)
	reorders.GET("/:id", c.Reorder.GetReorder)
	reorders.POST("", c.Reorder.CreateReorder)
	reorders.PATCH("/:id/approve", officer, c.Reorder.Approve)
	reorders.PATCH("/:id/ship", officer, c.Reorder.Ship)
	reorders.PATCH("/:id/deliver", c.Reorder.Deliver)
	reorders.PATCH("/:id/cancel", officer, c.Reorder.Cancel)
	reorders.DELETE("/:id", c.Reorder.DeleteReorder)

	shifts := api.Group("/shift-schedules")
	shifts.GET("", c.Shift.ListShifts)
	shifts.POST("/validate", c.Shift.Validate)
	shifts.GET("/:id", c.Shift.GetShift)
	shifts.POST("", officer, c.Shift.CreateShift)
	shifts.PUT("/:id", officer, c.Shift.UpdateShift)
	shifts.DELETE("/:id", officer, c.Shift.DeleteShift)

	vehicles := api.Group("/vehicles")
	vehicles.GET("", c.Vehicle.ListVehicles)
	vehicles.GET("/:id", c.Vehicle.GetVehicle)
	vehicles.POST("", officer, c.Vehicle.CreateVehicle)
	vehicles.PUT("/:id", officer, c.Vehicle.UpdateVehicle)
	vehicles.DELETE("/:id", admin, c.Vehicle.DeleteVehicle)

	supply := api.Group("/supply-requests")
	supply.GET("", c.Procurement.ListSupplyRequests)
	supply.GET("/:id", c.Procurement.GetSupplyRequest)
	supply.POST("", officer, c.Procurement.CreateSupplyRequest)
	supply.POST("/:id/bids", c.Procurement.SubmitBid)
	supply.GET("/:id/bids/compare", c.Procurement.CompareBids)
	supply.POST("/:id/assign", officer, c.Procurement.AssignBid)

	budgets := api.Group("/budgets")
	budgets.GET("", c.Budget.ListBudgets)
	budgets.GET("/:id", c.Budget.GetBudget)
	budgets.POST("", admin, c.Budget.CreateBudget)
	budgets.GET("/:id/expenses", c.Budget.ListExpenses)
	budgets.POST("/:id/expenses", officer, c.Budget.RecordExpense)
}

// Health handles GET /health
// @Summary Service health
// @Tags System
// @Produce json
// @Success 200 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse "Worker failed"
// @Router /health [get]
func (c *Controller) Health(ctx *gin.Context) {
	data := gin.H{
		"status":  "healthy",
		"service": "firestation-backend",
		"time":    time.Now().UTC(),
	}
	code := http.StatusOK
	if c.worker != nil {
		state := c.worker.State()
		data["worker"] = state
		if state.Status == models.StatusFailed {
			data["status"] = "degraded"
			code = http.StatusServiceUnavailable
		}
	}

	ctx.JSON(code, models.APIResponse{
		Status:  "success",
		Success: code == http.StatusOK,
		Code:    code,
		Data:    data,
	})
}

// NewServer wraps handler in an http.Server listening on the configured address
func NewServer(config *models.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              config.AppHost + ":" + config.AppPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
