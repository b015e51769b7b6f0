package models

import "time"

// PaymentMethod defines the type for payment methods.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// IsValidPaymentMethod checks if the provided method string is a valid PaymentMethod.
func IsValidPaymentMethod(method string) bool {
	switch PaymentMethod(method) {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	default:
		return false
	}
}

// PaymentStatus defines the type for payment statuses.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// IsValidPaymentStatus checks if the provided status string is a valid PaymentStatus.
func IsValidPaymentStatus(status string) bool {
	switch PaymentStatus(status) {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusCancelled:
		return true
	default:
		return false
	}
}

// Payment is an immutable record of a monetary charge tied to a Client and a
// Vehicle. ID is a UUID assigned at recording time and never reused. Amount
// is in minor currency units and never negative.
type Payment struct {
	ID          string        `json:"id" db:"id"`
	ClientID    string        `json:"client_id" db:"client_id"`
	Plate       string        `json:"plate" db:"plate"`
	Amount      int64         `json:"amount" db:"amount"`
	Method      PaymentMethod `json:"method" db:"method"`
	Status      PaymentStatus `json:"status" db:"status"`
	Description *string       `json:"description,omitempty" db:"description"`
	PaymentDate time.Time     `json:"payment_date" db:"payment_date"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
}
