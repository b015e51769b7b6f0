package router

import (
	"parklot_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupClientRoutes sets up the client registry routes.
func SetupClientRoutes(apiGroup *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clientRoutes := apiGroup.Group("/clients")
	{
		clientRoutes.POST("", clientHandler.CreateClient)
		clientRoutes.GET("", clientHandler.GetClients)
		clientRoutes.GET("/:id", clientHandler.GetClientByID)
		clientRoutes.PUT("/:id", clientHandler.UpdateClient)
		clientRoutes.DELETE("/:id", clientHandler.DeleteClient)
		clientRoutes.GET("/:id/memberships", clientHandler.GetClientMemberships)
	}
}

// SetupVehicleRoutes sets up the vehicle registry and membership routes.
// Membership operations hang off the vehicle because a vehicle holds at
// most one membership at a time.
func SetupVehicleRoutes(apiGroup *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler, membershipHandler *handlers.MembershipHandler) {
	vehicleRoutes := apiGroup.Group("/vehicles")
	{
		vehicleRoutes.POST("", vehicleHandler.RegisterVehicle)
		vehicleRoutes.GET("", vehicleHandler.GetVehicles)
		vehicleRoutes.GET("/:plate", vehicleHandler.GetVehicleByPlate)
		vehicleRoutes.PUT("/:plate", vehicleHandler.UpdateVehicle)
		vehicleRoutes.DELETE("/:plate", vehicleHandler.DeleteVehicle)

		vehicleRoutes.POST("/:plate/membership", membershipHandler.RegisterMembership)
		vehicleRoutes.GET("/:plate/membership/validity", membershipHandler.CheckValidity)
		vehicleRoutes.POST("/:plate/membership/renew", membershipHandler.RenewMembership)
	}
}

// SetupPaymentRoutes sets up the payment manager routes.
func SetupPaymentRoutes(apiGroup *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	paymentRoutes := apiGroup.Group("/payments")
	{
		paymentRoutes.GET("/quote", paymentHandler.QuoteCharge)
		paymentRoutes.POST("", paymentHandler.RecordPayment)
		paymentRoutes.GET("", paymentHandler.GetPayments)
		paymentRoutes.GET("/:id", paymentHandler.GetPaymentByID)
	}
}
