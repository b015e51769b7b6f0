package handlers

import (
	"errors"
	"net/http"

	"parklot_backend/internal/models"
	"parklot_backend/internal/services"
	"parklot_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// VehicleHandler holds the vehicle service.
type VehicleHandler struct {
	vehicleService services.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(vs services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vs}
}

// RegisterVehicle handles registering a new vehicle for a client.
func (h *VehicleHandler) RegisterVehicle(c *gin.Context) {
	var req services.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "RegisterVehicle: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	vehicle, err := h.vehicleService.RegisterVehicle(req)
	if err != nil {
		utils.LogError(err, "RegisterVehicle: Error from vehicleService.RegisterVehicle")
		if errors.Is(err, services.ErrPlateExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "License plate already registered.", err.Error()))
		} else if errors.Is(err, services.ErrInvalidClientRef) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnprocessableEntity, utils.ErrCodeInvalidReference, "Vehicle owner does not exist.", err.Error()))
		} else if errors.Is(err, services.ErrVehicleValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to register vehicle.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// GetVehicles handles listing vehicles, optionally filtered by owner.
func (h *VehicleHandler) GetVehicles(c *gin.Context) {
	clientID := c.Query("client_id")
	if clientID == "" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Query parameter client_id is required.", ""))
		return
	}

	vehicles, err := h.vehicleService.GetVehiclesByClient(clientID)
	if err != nil {
		utils.LogError(err, "GetVehicles: Error from vehicleService.GetVehiclesByClient for client "+clientID)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch vehicles.", "Internal error"))
		return
	}

	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}

// GetVehicleByPlate handles fetching a single vehicle by license plate.
func (h *VehicleHandler) GetVehicleByPlate(c *gin.Context) {
	plate := c.Param("plate")

	vehicle, err := h.vehicleService.GetVehicleByPlate(plate)
	if err != nil {
		utils.LogError(err, "GetVehicleByPlate: Error from vehicleService.GetVehicleByPlate for plate "+plate)
		if errors.Is(err, services.ErrVehicleNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Vehicle not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch vehicle.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// UpdateVehicle handles updating a vehicle's mutable attributes.
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	plate := c.Param("plate")

	var req services.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateVehicle: Failed to bind JSON for plate "+plate)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(plate, req)
	if err != nil {
		utils.LogError(err, "UpdateVehicle: Error from vehicleService.UpdateVehicle for plate "+plate)
		if errors.Is(err, services.ErrVehicleNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Vehicle not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrVehicleValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update vehicle.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle handles removing a vehicle from the registry.
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	plate := c.Param("plate")

	err := h.vehicleService.DeleteVehicle(plate)
	if err != nil {
		utils.LogError(err, "DeleteVehicle: Error from vehicleService.DeleteVehicle for plate "+plate)
		if errors.Is(err, services.ErrVehicleNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Vehicle not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete vehicle.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}
