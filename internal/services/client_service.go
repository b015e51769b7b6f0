package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"parklot_backend/internal/models"
	"parklot_backend/internal/repositories"
)

// --- Custom Service Errors for Client ---
var (
	ErrClientNotFound    = errors.New("client not found")
	ErrClientIDExists    = errors.New("client identity number already exists")
	ErrClientValidation  = errors.New("client data validation error")
	ErrClientHasVehicles = errors.New("client cannot be deleted while vehicles are registered to them")
)

// --- Client DTOs ---
type CreateClientRequest struct {
	ID       string  `json:"id" binding:"required"`
	FullName string  `json:"full_name" binding:"required"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
}

type UpdateClientRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
}

// --- ClientService Interface ---
type ClientService interface {
	CreateClient(req CreateClientRequest) (*models.Client, error)
	GetClientByID(id string) (*models.Client, error)
	GetClients(page, pageSize int, searchTerm *string) ([]models.Client, int, error)
	UpdateClient(id string, req UpdateClientRequest) (*models.Client, error)
	DeleteClient(id string) error
	GetClientMemberships(id string) ([]models.Membership, error)
}

// --- clientService Implementation ---
type clientService struct {
	clientRepo  repositories.ClientRepository
	vehicleRepo repositories.VehicleRepository
}

// NewClientService creates a new instance of ClientService.
func NewClientService(clientRepo repositories.ClientRepository, vehicleRepo repositories.VehicleRepository) ClientService {
	return &clientService{
		clientRepo:  clientRepo,
		vehicleRepo: vehicleRepo,
	}
}

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`)

func validateClientData(fullName string, email *string) error {
	if strings.TrimSpace(fullName) == "" {
		return fmt.Errorf("%w: full name cannot be empty", ErrClientValidation)
	}
	if email != nil && *email != "" {
		em := strings.ToLower(strings.TrimSpace(*email))
		if !emailRegex.MatchString(em) {
			return fmt.Errorf("%w: email format is invalid", ErrClientValidation)
		}
	}
	return nil
}

func (s *clientService) CreateClient(req CreateClientRequest) (*models.Client, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, fmt.Errorf("%w: identity number cannot be empty", ErrClientValidation)
	}
	if err := validateClientData(req.FullName, req.Email); err != nil {
		return nil, err
	}

	client := &models.Client{
		ID:       strings.TrimSpace(req.ID),
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
	}

	if err := s.clientRepo.CreateClient(client); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrClientIDExists
		}
		return nil, fmt.Errorf("failed to create client in repository: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClientByID(id string) (*models.Client, error) {
	client, err := s.clientRepo.GetClientByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClients(page, pageSize int, searchTerm *string) ([]models.Client, int, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	clients, totalCount, err := s.clientRepo.GetClients(page, pageSize, searchTerm)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get clients: %w", err)
	}
	return clients, totalCount, nil
}

func (s *clientService) UpdateClient(id string, req UpdateClientRequest) (*models.Client, error) {
	client, err := s.clientRepo.GetClientByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client for update: %w", err)
	}

	fullNameToValidate := client.FullName
	if req.FullName != nil {
		fullNameToValidate = *req.FullName
	}
	emailToValidate := client.Email
	if req.Email != nil {
		emailToValidate = req.Email
	}
	if err := validateClientData(fullNameToValidate, emailToValidate); err != nil {
		return nil, err
	}

	if req.FullName != nil {
		client.FullName = *req.FullName
	}
	if req.Phone != nil {
		client.Phone = req.Phone
	}
	if req.Email != nil {
		client.Email = req.Email
	}

	if err := s.clientRepo.UpdateClient(client); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client in repository: %w", err)
	}
	return client, nil
}

func (s *clientService) DeleteClient(id string) error {
	if _, err := s.clientRepo.GetClientByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to find client for deletion: %w", err)
	}

	vehicles, err := s.vehicleRepo.GetVehiclesByClient(id)
	if err != nil {
		return fmt.Errorf("failed to check client vehicles before deletion: %w", err)
	}
	if len(vehicles) > 0 {
		return ErrClientHasVehicles
	}

	if err := s.clientRepo.DeleteClient(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

// GetClientMemberships returns the memberships currently attached to the
// client's vehicles, in vehicle registration order. The view is
// informational; the memberships themselves live on the vehicles.
func (s *clientService) GetClientMemberships(id string) ([]models.Membership, error) {
	if _, err := s.clientRepo.GetClientByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	vehicles, err := s.vehicleRepo.GetVehiclesByClient(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list client vehicles: %w", err)
	}

	memberships := []models.Membership{}
	for _, vehicle := range vehicles {
		if vehicle.Membership != nil {
			memberships = append(memberships, *vehicle.Membership)
		}
	}
	return memberships, nil
}
