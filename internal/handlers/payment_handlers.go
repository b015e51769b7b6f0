package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"parklot_backend/internal/models"
	"parklot_backend/internal/services"
	"parklot_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler holds the payment service.
type PaymentHandler struct {
	paymentService services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ps services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: ps}
}

// QuoteCharge handles computing the amount owed by a client/vehicle pair.
func (h *PaymentHandler) QuoteCharge(c *gin.Context) {
	clientID := c.Query("client_id")
	plate := c.Query("plate")
	if clientID == "" || plate == "" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Query parameters client_id and plate are required.", ""))
		return
	}

	quote, err := h.paymentService.QuoteCharge(clientID, plate)
	if err != nil {
		utils.LogError(err, "QuoteCharge: Error from paymentService.QuoteCharge")
		if errors.Is(err, services.ErrInvalidPaymentRef) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnprocessableEntity, utils.ErrCodeInvalidReference, "Client or vehicle does not exist.", err.Error()))
		} else if errors.Is(err, services.ErrPaymentValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute quote.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, quote)
}

// RecordPayment handles recording a payment for a client/vehicle pair.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req services.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "RecordPayment: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	payment, err := h.paymentService.RecordPayment(req)
	if err != nil {
		utils.LogError(err, "RecordPayment: Error from paymentService.RecordPayment")
		if errors.Is(err, services.ErrInvalidPaymentRef) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnprocessableEntity, utils.ErrCodeInvalidReference, "Client or vehicle does not exist.", err.Error()))
		} else if errors.Is(err, services.ErrPaymentValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to record payment.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// GetPaymentByID handles fetching a single payment by its identifier.
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	id := c.Param("id")

	payment, err := h.paymentService.GetPaymentByID(id)
	if err != nil {
		utils.LogError(err, "GetPaymentByID: Error from paymentService.GetPaymentByID for ID "+id)
		if errors.Is(err, services.ErrPaymentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Payment not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch payment.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, payment)
}

// GetPayments handles listing a client's payment history.
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	clientID := c.Query("client_id")
	if clientID == "" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Query parameter client_id is required.", ""))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	payments, totalCount, err := h.paymentService.GetPaymentsByClient(clientID, page, pageSize)
	if err != nil {
		utils.LogError(err, "GetPayments: Error from paymentService.GetPaymentsByClient for client "+clientID)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch payments.", "Internal error"))
		return
	}

	if payments == nil {
		payments = []models.Payment{}
	}
	c.JSON(http.StatusOK, gin.H{
		"data":      payments,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}
