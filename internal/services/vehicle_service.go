package services

import (
	"errors"
	"fmt"
	"strings"

	"parklot_backend/internal/models"
	"parklot_backend/internal/repositories"
)

// --- Custom Service Errors for Vehicle ---
var (
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrPlateExists       = errors.New("license plate already registered")
	ErrVehicleValidation = errors.New("vehicle data validation error")
	ErrInvalidClientRef  = errors.New("vehicle must reference an existing client")
)

// --- Vehicle DTOs ---
type RegisterVehicleRequest struct {
	ClientID string  `json:"client_id" binding:"required"`
	Plate    string  `json:"plate" binding:"required"`
	Make     string  `json:"make"`
	Model    *string `json:"model"`
}

type UpdateVehicleRequest struct {
	Make  *string `json:"make"`
	Model *string `json:"model"`
}

// --- VehicleService Interface ---
type VehicleService interface {
	RegisterVehicle(req RegisterVehicleRequest) (*models.Vehicle, error)
	GetVehicleByPlate(plate string) (*models.Vehicle, error)
	GetVehiclesByClient(clientID string) ([]models.Vehicle, error)
	UpdateVehicle(plate string, req UpdateVehicleRequest) (*models.Vehicle, error)
	DeleteVehicle(plate string) error
}

// --- vehicleService Implementation ---
type vehicleService struct {
	vehicleRepo repositories.VehicleRepository
	clientRepo  repositories.ClientRepository
}

// NewVehicleService creates a new instance of VehicleService.
func NewVehicleService(vehicleRepo repositories.VehicleRepository, clientRepo repositories.ClientRepository) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		clientRepo:  clientRepo,
	}
}

func (s *vehicleService) RegisterVehicle(req RegisterVehicleRequest) (*models.Vehicle, error) {
	plate := strings.TrimSpace(req.Plate)
	if plate == "" {
		return nil, fmt.Errorf("%w: license plate cannot be empty", ErrVehicleValidation)
	}
	clientID := strings.TrimSpace(req.ClientID)
	if clientID == "" {
		return nil, ErrInvalidClientRef
	}

	// A vehicle cannot exist without an owner.
	if _, err := s.clientRepo.GetClientByID(clientID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidClientRef
		}
		return nil, fmt.Errorf("failed to check vehicle owner: %w", err)
	}

	vehicle := &models.Vehicle{
		Plate:    plate,
		ClientID: clientID,
		Make:     req.Make,
		Model:    req.Model,
	}

	if err := s.vehicleRepo.CreateVehicle(vehicle); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrPlateExists
		}
		return nil, fmt.Errorf("failed to register vehicle in repository: %w", err)
	}
	return vehicle, nil
}

func (s *vehicleService) GetVehicleByPlate(plate string) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetVehicleByPlate(plate)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle by plate: %w", err)
	}
	return vehicle, nil
}

func (s *vehicleService) GetVehiclesByClient(clientID string) ([]models.Vehicle, error) {
	vehicles, err := s.vehicleRepo.GetVehiclesByClient(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles by client: %w", err)
	}
	return vehicles, nil
}

func (s *vehicleService) UpdateVehicle(plate string, req UpdateVehicleRequest) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetVehicleByPlate(plate)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle for update: %w", err)
	}

	if req.Make != nil {
		if strings.TrimSpace(*req.Make) == "" {
			return nil, fmt.Errorf("%w: make cannot be empty if provided", ErrVehicleValidation)
		}
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		vehicle.Model = req.Model
	}

	if err := s.vehicleRepo.UpdateVehicle(vehicle); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to update vehicle in repository: %w", err)
	}
	return vehicle, nil
}

func (s *vehicleService) DeleteVehicle(plate string) error {
	if err := s.vehicleRepo.DeleteVehicle(plate); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}
