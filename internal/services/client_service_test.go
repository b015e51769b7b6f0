package services

import (
	"testing"
	"time"

	"parklot_backend/internal/models"
	"parklot_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientService(t *testing.T) (ClientService, repositories.VehicleRepository) {
	t.Helper()
	clientRepo := repositories.NewClientRepository()
	vehicleRepo := repositories.NewVehicleRepository()
	return NewClientService(clientRepo, vehicleRepo), vehicleRepo
}

func strptr(s string) *string { return &s }

func TestCreateClient(t *testing.T) {
	svc, _ := newClientService(t)

	client, err := svc.CreateClient(CreateClientRequest{
		ID:       "ID-001",
		FullName: "Ana Diaz",
		Phone:    strptr("555-0101"),
		Email:    strptr("ana@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ID-001", client.ID)
	assert.Equal(t, "Ana Diaz", client.FullName)
	assert.False(t, client.CreatedAt.IsZero())
}

func TestCreateClientDuplicateID(t *testing.T) {
	svc, _ := newClientService(t)

	_, err := svc.CreateClient(CreateClientRequest{ID: "ID-001", FullName: "Ana Diaz"})
	require.NoError(t, err)

	_, err = svc.CreateClient(CreateClientRequest{ID: "ID-001", FullName: "Someone Else"})
	assert.ErrorIs(t, err, ErrClientIDExists)
}

func TestCreateClientValidation(t *testing.T) {
	svc, _ := newClientService(t)

	_, err := svc.CreateClient(CreateClientRequest{ID: "  ", FullName: "Ana Diaz"})
	assert.ErrorIs(t, err, ErrClientValidation)

	_, err = svc.CreateClient(CreateClientRequest{ID: "ID-001", FullName: "  "})
	assert.ErrorIs(t, err, ErrClientValidation)

	_, err = svc.CreateClient(CreateClientRequest{ID: "ID-001", FullName: "Ana Diaz", Email: strptr("not-an-email")})
	assert.ErrorIs(t, err, ErrClientValidation)
}

func TestGetClientByIDAbsentIsStable(t *testing.T) {
	svc, _ := newClientService(t)

	for i := 0; i < 2; i++ {
		_, err := svc.GetClientByID("ID-404")
		assert.ErrorIs(t, err, ErrClientNotFound)
	}
}

func TestUpdateClientPartial(t *testing.T) {
	svc, _ := newClientService(t)
	_, err := svc.CreateClient(CreateClientRequest{ID: "ID-001", FullName: "Ana Diaz", Phone: strptr("555-0101")})
	require.NoError(t, err)

	updated, err := svc.UpdateClient("ID-001", UpdateClientRequest{Phone: strptr("555-0202")})
	require.NoError(t, err)

	// Only the supplied field changes.
	assert.Equal(t, "Ana Diaz", updated.FullName)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "555-0202", *updated.Phone)
	assert.Equal(t, "ID-001", updated.ID)
}

func TestUpdateClientAbsent(t *testing.T) {
	svc, _ := newClientService(t)

	_, err := svc.UpdateClient("ID-404", UpdateClientRequest{FullName: strptr("Nobody")})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDeleteClient(t *testing.T) {
	svc, _ := newClientService(t)
	_, err := svc.CreateClient(CreateClientRequest{ID: "ID-001", FullName: "Ana Diaz"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteClient("ID-001"))

	_, err = svc.GetClientByID("ID-001")
	assert.ErrorIs(t, err, ErrClientNotFound)

	assert.ErrorIs(t, svc.DeleteClient("ID-001"), ErrClientNotFound)
}

func TestDeleteClientWithVehiclesIsRefused(t *testing.T) {
	svc, vehicleRepo := newClientService(t)
	_, err := svc.CreateClient(CreateClientRequest{ID: "ID-001", FullName: "Ana Diaz"})
	require.NoError(t, err)
	require.NoError(t, vehicleRepo.CreateVehicle(&models.Vehicle{Plate: "ABC123", ClientID: "ID-001", Make: "Toyota"}))

	assert.ErrorIs(t, svc.DeleteClient("ID-001"), ErrClientHasVehicles)

	// The client is still there after the refused deletion.
	_, err = svc.GetClientByID("ID-001")
	require.NoError(t, err)
}

func TestGetClientMemberships(t *testing.T) {
	svc, vehicleRepo := newClientService(t)
	_, err := svc.CreateClient(CreateClientRequest{ID: "ID-001", FullName: "Ana Diaz"})
	require.NoError(t, err)

	require.NoError(t, vehicleRepo.CreateVehicle(&models.Vehicle{Plate: "ABC123", ClientID: "ID-001", Make: "Toyota"}))
	require.NoError(t, vehicleRepo.CreateVehicle(&models.Vehicle{Plate: "DEF456", ClientID: "ID-001", Make: "Renault"}))

	memberships := membershipServiceAt(vehicleRepo, date(2024, time.January, 1))
	_, err = memberships.RegisterMembership("DEF456", RegisterMembershipRequest{Tier: "vip", StartDate: "2024-01-01", Tariff: 90000})
	require.NoError(t, err)

	got, err := svc.GetClientMemberships("ID-001")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.TierVIP, got[0].Tier)

	_, err = svc.GetClientMemberships("ID-404")
	assert.ErrorIs(t, err, ErrClientNotFound)
}
