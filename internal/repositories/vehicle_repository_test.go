package repositories

import (
	"testing"
	"time"

	"parklot_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleRepositoryDuplicatePlate(t *testing.T) {
	repo := NewVehicleRepository()
	require.NoError(t, repo.CreateVehicle(&models.Vehicle{Plate: "ABC123", ClientID: "ID-001", Make: "Toyota"}))

	err := repo.CreateVehicle(&models.Vehicle{Plate: "ABC123", ClientID: "ID-002", Make: "Renault"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestVehicleRepositoryOrderSurvivesDeletion(t *testing.T) {
	repo := NewVehicleRepository()
	for _, plate := range []string{"AAA111", "BBB222", "CCC333"} {
		require.NoError(t, repo.CreateVehicle(&models.Vehicle{Plate: plate, ClientID: "ID-001", Make: "Toyota"}))
	}

	require.NoError(t, repo.DeleteVehicle("BBB222"))

	vehicles, err := repo.GetVehiclesByClient("ID-001")
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "AAA111", vehicles[0].Plate)
	assert.Equal(t, "CCC333", vehicles[1].Plate)
}

func TestVehicleRepositorySetMembershipReplaces(t *testing.T) {
	repo := NewVehicleRepository()
	require.NoError(t, repo.CreateVehicle(&models.Vehicle{Plate: "ABC123", ClientID: "ID-001", Make: "Toyota"}))

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	first := &models.Membership{Tier: models.TierBasic, StartDate: start, EndDate: start.AddDate(0, 0, 30), Tariff: 1000}
	vehicle, err := repo.SetMembership("ABC123", first)
	require.NoError(t, err)
	require.NotNil(t, vehicle.Membership)
	assert.Equal(t, models.TierBasic, vehicle.Membership.Tier)

	second := &models.Membership{Tier: models.TierVIP, StartDate: start, EndDate: start.AddDate(0, 0, 365), Tariff: 9000}
	vehicle, err = repo.SetMembership("ABC123", second)
	require.NoError(t, err)
	assert.Equal(t, models.TierVIP, vehicle.Membership.Tier)

	_, err = repo.SetMembership("ZZZ999", first)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVehicleRepositoryGetByClientFiltersOwner(t *testing.T) {
	repo := NewVehicleRepository()
	require.NoError(t, repo.CreateVehicle(&models.Vehicle{Plate: "AAA111", ClientID: "ID-001", Make: "Toyota"}))
	require.NoError(t, repo.CreateVehicle(&models.Vehicle{Plate: "BBB222", ClientID: "ID-002", Make: "Renault"}))

	vehicles, err := repo.GetVehiclesByClient("ID-001")
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "AAA111", vehicles[0].Plate)
}
