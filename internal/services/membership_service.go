package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parklot_backend/internal/models"
	"parklot_backend/internal/repositories"
)

// --- Custom Service Errors for Membership ---
var (
	ErrNoMembership         = errors.New("vehicle has no membership")
	ErrInvalidVehicleRef    = errors.New("membership operation requires an existing vehicle")
	ErrMembershipValidation = errors.New("membership data validation error")
	ErrDateFormat           = errors.New("invalid date format, please use YYYY-MM-DD")
)

// DefaultTierDurations maps each membership tier to its validity period in
// days. The table is passed to the service at construction so deployments
// can override it.
var DefaultTierDurations = map[models.MembershipTier]int{
	models.TierBasic:   30,
	models.TierPremium: 90,
	models.TierVIP:     365,
}

// --- Membership DTOs ---
type RegisterMembershipRequest struct {
	Tier      string `json:"tier" binding:"required"`
	StartDate string `json:"start_date"` // Format YYYY-MM-DD, defaults to today
	Tariff    int64  `json:"tariff"`
}

type RenewMembershipRequest struct {
	ExtensionDays int `json:"extension_days" binding:"required"`
}

// ValidityResult reports whether a vehicle's membership covers the reference
// date, alongside the membership itself.
type ValidityResult struct {
	Valid      bool               `json:"valid"`
	Membership *models.Membership `json:"membership"`
}

// --- MembershipService Interface ---
type MembershipService interface {
	RegisterMembership(plate string, req RegisterMembershipRequest) (*models.Membership, error)
	CheckValidity(plate string, referenceDate *time.Time) (*ValidityResult, error)
	RenewMembership(plate string, req RenewMembershipRequest) (*models.Membership, error)
}

// --- membershipService Implementation ---
type membershipService struct {
	vehicleRepo   repositories.VehicleRepository
	tierDurations map[models.MembershipTier]int
	now           func() time.Time
}

// NewMembershipService creates a new instance of MembershipService. A nil
// tierDurations falls back to DefaultTierDurations.
func NewMembershipService(vehicleRepo repositories.VehicleRepository, tierDurations map[models.MembershipTier]int) MembershipService {
	if tierDurations == nil {
		tierDurations = DefaultTierDurations
	}
	return &membershipService{
		vehicleRepo:   vehicleRepo,
		tierDurations: tierDurations,
		now:           time.Now,
	}
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrDateFormat
	}
	return date, nil
}

func (s *membershipService) RegisterMembership(plate string, req RegisterMembershipRequest) (*models.Membership, error) {
	if !models.IsValidMembershipTier(req.Tier) {
		return nil, fmt.Errorf("%w: unknown tier %q", ErrMembershipValidation, req.Tier)
	}
	if req.Tariff < 0 {
		return nil, fmt.Errorf("%w: tariff cannot be negative", ErrMembershipValidation)
	}

	startDate := models.Midnight(s.now())
	if strings.TrimSpace(req.StartDate) != "" {
		parsed, err := parseDate(req.StartDate)
		if err != nil {
			return nil, err
		}
		startDate = models.Midnight(parsed)
	}

	tier := models.MembershipTier(req.Tier)
	durationDays, ok := s.tierDurations[tier]
	if !ok {
		return nil, fmt.Errorf("%w: no validity period configured for tier %q", ErrMembershipValidation, req.Tier)
	}

	membership := &models.Membership{
		Tier:      tier,
		StartDate: startDate,
		EndDate:   startDate.AddDate(0, 0, durationDays),
		Tariff:    req.Tariff,
	}

	if _, err := s.vehicleRepo.SetMembership(plate, membership); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidVehicleRef
		}
		return nil, fmt.Errorf("failed to attach membership: %w", err)
	}
	return membership, nil
}

func (s *membershipService) CheckValidity(plate string, referenceDate *time.Time) (*ValidityResult, error) {
	vehicle, err := s.vehicleRepo.GetVehicleByPlate(plate)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidVehicleRef
		}
		return nil, fmt.Errorf("failed to get vehicle for validity check: %w", err)
	}
	if vehicle.Membership == nil {
		return nil, ErrNoMembership
	}

	ref := s.now()
	if referenceDate != nil {
		ref = *referenceDate
	}
	return &ValidityResult{
		Valid:      vehicle.Membership.Covers(ref),
		Membership: vehicle.Membership,
	}, nil
}

// RenewMembership extends the vehicle's membership. While the membership is
// still valid the extension stacks onto the current end date, so renewing
// early never wastes remaining paid time. Once expired, the membership
// restarts from today.
func (s *membershipService) RenewMembership(plate string, req RenewMembershipRequest) (*models.Membership, error) {
	if req.ExtensionDays <= 0 {
		return nil, fmt.Errorf("%w: extension period must be positive", ErrMembershipValidation)
	}

	vehicle, err := s.vehicleRepo.GetVehicleByPlate(plate)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidVehicleRef
		}
		return nil, fmt.Errorf("failed to get vehicle for renewal: %w", err)
	}
	if vehicle.Membership == nil {
		return nil, ErrNoMembership
	}

	today := models.Midnight(s.now())
	renewed := *vehicle.Membership
	if renewed.Covers(today) {
		renewed.EndDate = models.Midnight(renewed.EndDate).AddDate(0, 0, req.ExtensionDays)
	} else {
		renewed.StartDate = today
		renewed.EndDate = today.AddDate(0, 0, req.ExtensionDays)
	}

	if _, err := s.vehicleRepo.SetMembership(plate, &renewed); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidVehicleRef
		}
		return nil, fmt.Errorf("failed to store renewed membership: %w", err)
	}
	return &renewed, nil
}
