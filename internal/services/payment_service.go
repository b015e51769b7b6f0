package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parklot_backend/internal/models"
	"parklot_backend/internal/repositories"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Payment ---
var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentValidation = errors.New("payment data validation error")
	ErrInvalidPaymentRef = errors.New("payment requires an existing client and vehicle")
)

// --- Payment DTOs ---
type RecordPaymentRequest struct {
	ClientID    string  `json:"client_id" binding:"required"`
	Plate       string  `json:"plate" binding:"required"`
	Amount      int64   `json:"amount"`
	Method      string  `json:"method" binding:"required"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// Quote is the amount owed by a client/vehicle pair, in minor currency
// units, with the reason the amount was chosen.
type Quote struct {
	Amount     int64 `json:"amount"`
	Membership bool  `json:"membership"`
}

// --- PaymentService Interface ---
type PaymentService interface {
	QuoteCharge(clientID, plate string) (*Quote, error)
	RecordPayment(req RecordPaymentRequest) (*models.Payment, error)
	GetPaymentByID(id string) (*models.Payment, error)
	GetPaymentsByClient(clientID string, page, pageSize int) ([]models.Payment, int, error)
}

// --- paymentService Implementation ---
type paymentService struct {
	paymentRepo repositories.PaymentRepository
	clientRepo  repositories.ClientRepository
	vehicleRepo repositories.VehicleRepository
	visitorRate int64
	now         func() time.Time
}

// NewPaymentService creates a new instance of PaymentService. visitorRate is
// the flat charge, in minor currency units, applied to vehicles without an
// active membership.
func NewPaymentService(paymentRepo repositories.PaymentRepository, clientRepo repositories.ClientRepository, vehicleRepo repositories.VehicleRepository, visitorRate int64) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
		vehicleRepo: vehicleRepo,
		visitorRate: visitorRate,
		now:         time.Now,
	}
}

// resolvePair loads the client and vehicle for a charge, rejecting absent
// references and vehicles registered to a different client.
func (s *paymentService) resolvePair(clientID, plate string) (*models.Client, *models.Vehicle, error) {
	client, err := s.clientRepo.GetClientByID(strings.TrimSpace(clientID))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, ErrInvalidPaymentRef
		}
		return nil, nil, fmt.Errorf("failed to resolve payment client: %w", err)
	}

	vehicle, err := s.vehicleRepo.GetVehicleByPlate(strings.TrimSpace(plate))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, ErrInvalidPaymentRef
		}
		return nil, nil, fmt.Errorf("failed to resolve payment vehicle: %w", err)
	}

	if vehicle.ClientID != client.ID {
		return nil, nil, fmt.Errorf("%w: vehicle %s is not registered to client %s", ErrPaymentValidation, vehicle.Plate, client.ID)
	}
	return client, vehicle, nil
}

// QuoteCharge computes the amount owed by the client for the vehicle: the
// membership tariff while a membership is active, the configured visitor
// rate otherwise.
func (s *paymentService) QuoteCharge(clientID, plate string) (*Quote, error) {
	_, vehicle, err := s.resolvePair(clientID, plate)
	if err != nil {
		return nil, err
	}

	if vehicle.HasActiveMembership(s.now()) {
		return &Quote{Amount: vehicle.Membership.Tariff, Membership: true}, nil
	}
	return &Quote{Amount: s.visitorRate, Membership: false}, nil
}

func (s *paymentService) RecordPayment(req RecordPaymentRequest) (*models.Payment, error) {
	if req.Amount < 0 {
		return nil, fmt.Errorf("%w: amount cannot be negative", ErrPaymentValidation)
	}
	if !models.IsValidPaymentMethod(req.Method) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrPaymentValidation, req.Method)
	}

	client, vehicle, err := s.resolvePair(req.ClientID, req.Plate)
	if err != nil {
		return nil, err
	}

	status := models.PaymentStatusPending
	if req.Completed {
		status = models.PaymentStatusCompleted
	}

	payment := &models.Payment{
		ID:          uuid.NewString(),
		ClientID:    client.ID,
		Plate:       vehicle.Plate,
		Amount:      req.Amount,
		Method:      models.PaymentMethod(req.Method),
		Status:      status,
		Description: req.Description,
		PaymentDate: s.now(),
	}

	if err := s.paymentRepo.CreatePayment(payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) GetPaymentByID(id string) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetPaymentByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment by ID: %w", err)
	}
	return payment, nil
}

func (s *paymentService) GetPaymentsByClient(clientID string, page, pageSize int) ([]models.Payment, int, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	payments, totalCount, err := s.paymentRepo.GetPaymentsByClient(clientID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments by client: %w", err)
	}
	return payments, totalCount, nil
}
