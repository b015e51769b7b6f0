package repositories

import (
	"fmt"
	"sync"
	"time"

	"parklot_backend/internal/models"
)

// VehicleRepository defines the interface for vehicle registry operations.
type VehicleRepository interface {
	CreateVehicle(vehicle *models.Vehicle) error
	GetVehicleByPlate(plate string) (*models.Vehicle, error)
	GetVehiclesByClient(clientID string) ([]models.Vehicle, error)
	UpdateVehicle(vehicle *models.Vehicle) error
	SetMembership(plate string, membership *models.Membership) (*models.Vehicle, error)
	DeleteVehicle(plate string) error
}

// vehicleRepository keeps all vehicles in memory, keyed by license plate.
// plateOrder preserves registration order for per-client listings.
type vehicleRepository struct {
	mu         sync.Mutex
	vehicles   map[string]models.Vehicle
	plateOrder []string
}

// NewVehicleRepository creates a new instance of VehicleRepository.
func NewVehicleRepository() VehicleRepository {
	return &vehicleRepository{vehicles: make(map[string]models.Vehicle)}
}

// CreateVehicle stores a new vehicle. The plate must be unused.
func (r *vehicleRepository) CreateVehicle(vehicle *models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vehicles[vehicle.Plate]; exists {
		return fmt.Errorf("%w: plate %s", ErrDuplicateKey, vehicle.Plate)
	}

	now := time.Now()
	if vehicle.CreatedAt.IsZero() {
		vehicle.CreatedAt = now
	}
	if vehicle.UpdatedAt.IsZero() {
		vehicle.UpdatedAt = now
	}

	r.vehicles[vehicle.Plate] = *vehicle
	r.plateOrder = append(r.plateOrder, vehicle.Plate)
	return nil
}

// GetVehicleByPlate retrieves a vehicle by its license plate.
func (r *vehicleRepository) GetVehicleByPlate(plate string) (*models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vehicle, ok := r.vehicles[plate]
	if !ok {
		return nil, ErrNotFound
	}
	return &vehicle, nil
}

// GetVehiclesByClient returns a snapshot of the client's vehicles in
// registration order.
func (r *vehicleRepository) GetVehiclesByClient(clientID string) ([]models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vehicles := []models.Vehicle{}
	for _, plate := range r.plateOrder {
		vehicle, ok := r.vehicles[plate]
		if !ok {
			continue
		}
		if vehicle.ClientID == clientID {
			vehicles = append(vehicles, vehicle)
		}
	}
	return vehicles, nil
}

// UpdateVehicle replaces the stored record for the vehicle's plate.
func (r *vehicleRepository) UpdateVehicle(vehicle *models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vehicles[vehicle.Plate]; !ok {
		return ErrNotFound
	}
	vehicle.UpdatedAt = time.Now()
	r.vehicles[vehicle.Plate] = *vehicle
	return nil
}

// SetMembership attaches membership as the vehicle's current membership,
// replacing any prior one, and returns the updated vehicle.
func (r *vehicleRepository) SetMembership(plate string, membership *models.Membership) (*models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vehicle, ok := r.vehicles[plate]
	if !ok {
		return nil, ErrNotFound
	}
	vehicle.Membership = membership
	vehicle.UpdatedAt = time.Now()
	r.vehicles[plate] = vehicle
	return &vehicle, nil
}

// DeleteVehicle removes a vehicle from the registry.
func (r *vehicleRepository) DeleteVehicle(plate string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vehicles[plate]; !ok {
		return ErrNotFound
	}
	delete(r.vehicles, plate)
	for i, p := range r.plateOrder {
		if p == plate {
			r.plateOrder = append(r.plateOrder[:i], r.plateOrder[i+1:]...)
			break
		}
	}
	return nil
}
