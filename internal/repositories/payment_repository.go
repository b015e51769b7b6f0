package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"parklot_backend/internal/models"
)

// PaymentRepository defines the interface for payment history operations.
// Payments are immutable once recorded, so there is no update or delete.
type PaymentRepository interface {
	CreatePayment(payment *models.Payment) error
	GetPaymentByID(id string) (*models.Payment, error)
	GetPaymentsByClient(clientID string, page, pageSize int) ([]models.Payment, int, error)
}

type paymentRepository struct {
	mu       sync.Mutex
	payments map[string]models.Payment
}

// NewPaymentRepository creates a new instance of PaymentRepository.
func NewPaymentRepository() PaymentRepository {
	return &paymentRepository{payments: make(map[string]models.Payment)}
}

// CreatePayment stores a new payment record. The identifier must be unused.
func (r *paymentRepository) CreatePayment(payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.payments[payment.ID]; exists {
		return fmt.Errorf("%w: payment id %s", ErrDuplicateKey, payment.ID)
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}
	r.payments[payment.ID] = *payment
	return nil
}

// GetPaymentByID retrieves a payment by its identifier.
func (r *paymentRepository) GetPaymentByID(id string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.payments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &payment, nil
}

// GetPaymentsByClient returns a page of the client's payments, newest first,
// along with the total match count.
func (r *paymentRepository) GetPaymentsByClient(clientID string, page, pageSize int) ([]models.Payment, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []models.Payment{}
	for _, payment := range r.payments {
		if payment.ClientID == clientID {
			matched = append(matched, payment)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].PaymentDate.After(matched[j].PaymentDate)
	})

	totalCount := len(matched)
	if pageSize > 0 {
		offset := 0
		if page > 0 {
			offset = (page - 1) * pageSize
		}
		if offset >= totalCount {
			return []models.Payment{}, totalCount, nil
		}
		end := offset + pageSize
		if end > totalCount {
			end = totalCount
		}
		matched = matched[offset:end]
	}
	return matched, totalCount, nil
}
