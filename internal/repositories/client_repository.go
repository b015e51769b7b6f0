package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"parklot_backend/internal/models"
)

// ClientRepository defines the interface for client registry operations.
type ClientRepository interface {
	CreateClient(client *models.Client) error
	GetClientByID(id string) (*models.Client, error)
	GetClients(page, pageSize int, searchTerm *string) ([]models.Client, int, error)
	UpdateClient(client *models.Client) error
	DeleteClient(id string) error
}

// clientRepository keeps all clients in memory, keyed by identity number.
// The mutex serializes access so the registry can sit behind a concurrent
// HTTP shell even though the domain logic itself is single-writer.
type clientRepository struct {
	mu      sync.Mutex
	clients map[string]models.Client
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository() ClientRepository {
	return &clientRepository{clients: make(map[string]models.Client)}
}

// CreateClient stores a new client. The identity number must be unused.
func (r *clientRepository) CreateClient(client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[client.ID]; exists {
		return fmt.Errorf("%w: client identity number %s", ErrDuplicateKey, client.ID)
	}

	now := time.Now()
	if client.CreatedAt.IsZero() {
		client.CreatedAt = now
	}
	if client.UpdatedAt.IsZero() {
		client.UpdatedAt = now
	}

	r.clients[client.ID] = *client
	return nil
}

// GetClientByID retrieves a client by identity number.
func (r *clientRepository) GetClientByID(id string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &client, nil
}

// GetClients retrieves a page of clients with an optional case-insensitive
// search over name, phone and email. Returns the page, the total match
// count, and an error.
func (r *clientRepository) GetClients(page, pageSize int, searchTerm *string) ([]models.Client, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]models.Client, 0, len(r.clients))
	for _, client := range r.clients {
		if searchTerm != nil && *searchTerm != "" && !clientMatches(&client, *searchTerm) {
			continue
		}
		matched = append(matched, client)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].FullName < matched[j].FullName
	})

	totalCount := len(matched)
	if pageSize > 0 {
		offset := 0
		if page > 0 {
			offset = (page - 1) * pageSize
		}
		if offset >= totalCount {
			return []models.Client{}, totalCount, nil
		}
		end := offset + pageSize
		if end > totalCount {
			end = totalCount
		}
		matched = matched[offset:end]
	}
	return matched, totalCount, nil
}

func clientMatches(client *models.Client, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(client.FullName), term) {
		return true
	}
	if client.Phone != nil && strings.Contains(strings.ToLower(*client.Phone), term) {
		return true
	}
	if client.Email != nil && strings.Contains(strings.ToLower(*client.Email), term) {
		return true
	}
	return false
}

// UpdateClient replaces the stored record for the client's identity number.
func (r *clientRepository) UpdateClient(client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[client.ID]; !ok {
		return ErrNotFound
	}
	client.UpdatedAt = time.Now()
	r.clients[client.ID] = *client
	return nil
}

// DeleteClient removes a client from the registry.
func (r *clientRepository) DeleteClient(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[id]; !ok {
		return ErrNotFound
	}
	delete(r.clients, id)
	return nil
}
