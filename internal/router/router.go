package router

import (
	"parklot_backend/internal/config"
	"parklot_backend/internal/handlers"
	"parklot_backend/internal/repositories"
	"parklot_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application. Registries are
// constructed once here and handed to every service, so tests and the
// process share the same wiring path.
func Setup(engine *gin.Engine, cfg *config.Config) {
	// Initialize Repositories
	clientRepo := repositories.NewClientRepository()
	vehicleRepo := repositories.NewVehicleRepository()
	paymentRepo := repositories.NewPaymentRepository()

	// Initialize Services
	clientService := services.NewClientService(clientRepo, vehicleRepo)
	vehicleService := services.NewVehicleService(vehicleRepo, clientRepo)
	membershipService := services.NewMembershipService(vehicleRepo, nil)
	paymentService := services.NewPaymentService(paymentRepo, clientRepo, vehicleRepo, cfg.VisitorRate)

	// Initialize Handlers
	clientHandler := handlers.NewClientHandler(clientService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	apiV1 := engine.Group("/api/v1")
	{
		SetupClientRoutes(apiV1, clientHandler)
		SetupVehicleRoutes(apiV1, vehicleHandler, membershipHandler)
		SetupPaymentRoutes(apiV1, paymentHandler)
	}
}
