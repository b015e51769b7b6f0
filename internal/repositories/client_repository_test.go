package repositories

import (
	"testing"

	"parklot_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func seedClients(t *testing.T, repo ClientRepository) {
	t.Helper()
	clients := []models.Client{
		{ID: "ID-001", FullName: "Ana Diaz", Email: strptr("ana@example.com")},
		{ID: "ID-002", FullName: "Bruno Sala", Phone: strptr("555-0102")},
		{ID: "ID-003", FullName: "Carla Ruiz"},
	}
	for i := range clients {
		require.NoError(t, repo.CreateClient(&clients[i]))
	}
}

func TestClientRepositoryDuplicateKey(t *testing.T) {
	repo := NewClientRepository()
	require.NoError(t, repo.CreateClient(&models.Client{ID: "ID-001", FullName: "Ana Diaz"}))

	err := repo.CreateClient(&models.Client{ID: "ID-001", FullName: "Someone Else"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// The original record is untouched by the failed insert.
	stored, err := repo.GetClientByID("ID-001")
	require.NoError(t, err)
	assert.Equal(t, "Ana Diaz", stored.FullName)
}

func TestClientRepositoryGetClientsPagination(t *testing.T) {
	repo := NewClientRepository()
	seedClients(t, repo)

	page1, total, err := repo.GetClients(1, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page1, 2)
	assert.Equal(t, "Ana Diaz", page1[0].FullName)
	assert.Equal(t, "Bruno Sala", page1[1].FullName)

	page2, total, err := repo.GetClients(2, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page2, 1)
	assert.Equal(t, "Carla Ruiz", page2[0].FullName)

	empty, total, err := repo.GetClients(5, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, empty)
}

func TestClientRepositoryGetClientsSearch(t *testing.T) {
	repo := NewClientRepository()
	seedClients(t, repo)

	tests := []struct {
		term string
		want int
	}{
		{"ana", 1},
		{"555-0102", 1},
		{"ruiz", 1},
		{"a", 3},
		{"nobody", 0},
	}
	for _, tt := range tests {
		matched, total, err := repo.GetClients(1, 10, &tt.term)
		require.NoError(t, err)
		assert.Equal(t, tt.want, total, "term %q", tt.term)
		assert.Len(t, matched, tt.want, "term %q", tt.term)
	}
}

func TestClientRepositoryUpdateAndDelete(t *testing.T) {
	repo := NewClientRepository()
	seedClients(t, repo)

	client, err := repo.GetClientByID("ID-002")
	require.NoError(t, err)
	client.FullName = "Bruno Salas"
	require.NoError(t, repo.UpdateClient(client))

	stored, err := repo.GetClientByID("ID-002")
	require.NoError(t, err)
	assert.Equal(t, "Bruno Salas", stored.FullName)

	require.NoError(t, repo.DeleteClient("ID-002"))
	_, err = repo.GetClientByID("ID-002")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.UpdateClient(client), ErrNotFound)
	assert.ErrorIs(t, repo.DeleteClient("ID-002"), ErrNotFound)
}

func TestClientRepositoryReturnsCopies(t *testing.T) {
	repo := NewClientRepository()
	seedClients(t, repo)

	first, err := repo.GetClientByID("ID-001")
	require.NoError(t, err)
	first.FullName = "Mutated"

	second, err := repo.GetClientByID("ID-001")
	require.NoError(t, err)
	assert.Equal(t, "Ana Diaz", second.FullName)
}
