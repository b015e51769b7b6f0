package handlers

import (
	"errors"
	"net/http"
	"time"

	"parklot_backend/internal/services"
	"parklot_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MembershipHandler holds the membership service.
type MembershipHandler struct {
	membershipService services.MembershipService
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(ms services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: ms}
}

// RegisterMembership handles attaching a membership to a vehicle.
func (h *MembershipHandler) RegisterMembership(c *gin.Context) {
	plate := c.Param("plate")

	var req services.RegisterMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "RegisterMembership: Failed to bind JSON for plate "+plate)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	membership, err := h.membershipService.RegisterMembership(plate, req)
	if err != nil {
		utils.LogError(err, "RegisterMembership: Error from membershipService.RegisterMembership for plate "+plate)
		if errors.Is(err, services.ErrInvalidVehicleRef) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnprocessableEntity, utils.ErrCodeInvalidReference, "Vehicle does not exist.", err.Error()))
		} else if errors.Is(err, services.ErrMembershipValidation) || errors.Is(err, services.ErrDateFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to register membership.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, membership)
}

// CheckValidity handles checking whether a vehicle's membership covers a
// reference date. The date query parameter defaults to today.
func (h *MembershipHandler) CheckValidity(c *gin.Context) {
	plate := c.Param("plate")

	var referenceDate *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid date format, please use YYYY-MM-DD.", err.Error()))
			return
		}
		referenceDate = &parsed
	}

	result, err := h.membershipService.CheckValidity(plate, referenceDate)
	if err != nil {
		utils.LogError(err, "CheckValidity: Error from membershipService.CheckValidity for plate "+plate)
		if errors.Is(err, services.ErrInvalidVehicleRef) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Vehicle not found.", err.Error()))
		} else if errors.Is(err, services.ErrNoMembership) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Vehicle has no membership.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to check membership validity.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// RenewMembership handles extending a vehicle's membership.
func (h *MembershipHandler) RenewMembership(c *gin.Context) {
	plate := c.Param("plate")

	var req services.RenewMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "RenewMembership: Failed to bind JSON for plate "+plate)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	membership, err := h.membershipService.RenewMembership(plate, req)
	if err != nil {
		utils.LogError(err, "RenewMembership: Error from membershipService.RenewMembership for plate "+plate)
		if errors.Is(err, services.ErrInvalidVehicleRef) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Vehicle not found.", err.Error()))
		} else if errors.Is(err, services.ErrNoMembership) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Vehicle has no membership to renew.", err.Error()))
		} else if errors.Is(err, services.ErrMembershipValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to renew membership.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, membership)
}
