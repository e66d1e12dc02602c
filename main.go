package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"firestation-backend/controller"
	"firestation-backend/dal"
	"firestation-backend/middelware"
	"firestation-backend/models"
	"firestation-backend/repository"
	"firestation-backend/services"
	"firestation-backend/utils"
	"firestation-backend/utils/logger"
	"firestation-backend/utils/metrics"
	"firestation-backend/worker"

	"github.com/gin-gonic/gin"
)

var config *models.Config

func Init() {
	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

// @title Fire Station Administration API
// @version 1.0
// @description Back office for a fire station: inventory with low-stock and expiry alerts,
// @description reorder requests, shift schedules, vehicles, supply bids and budgets.
// @description
// @description ## Authentication
// @description 1. **POST /auth/login** with your email and password
// @description 2. Use the login bar at the top of this page, or click **Authorize** and paste `Bearer YOUR_TOKEN`
// @description
// @description Officer and admin roles are required for approvals, shift edits and budget changes.

// @contact.name Station Administration
// @contact.email admin@station12.org

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Enter 'Bearer' [space] and then your token in the text input below.
func main() {
	Init()

	appLogger := logger.NewLogger(config.LogLevel, config.LogFormat)
	appLogger.Infof("Starting %s %s (%s)", config.AppName, config.AppVersion, config.AppEnv)

	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := dal.NewDynamoDBClient(config, appLogger)
	if err != nil {
		appLogger.Fatalf("Failed to create DynamoDB client: %v", err)
	}

	m := metrics.New()
	repos := repository.NewRepository(db, config, appLogger)
	jwtManager := middelware.NewJWTManager(config, appLogger, repos.GetUserRepository())
	svc := services.NewService(repos, jwtManager, appLogger, m, config)

	stockWorker, err := worker.NewWorker(config, appLogger, db, svc.GetInventoryService())
	if err != nil {
		appLogger.Fatalf("Failed to create worker: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := stockWorker.Start(ctx); err != nil {
		appLogger.Fatalf("Failed to start worker: %v", err)
	}

	r := gin.New()
	controller.NewController(svc, jwtManager, stockWorker, appLogger, m).RegisterRoutes(r, config)
	server := controller.NewServer(config, r)

	go func() {
		appLogger.Infof("HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	stockWorker.Stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Graceful shutdown failed: %v", err)
	}
	appLogger.Info("Server stopped")
}
