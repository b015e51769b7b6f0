package models

import "time"

// Vehicle represents a vehicle registered at the parking lot, keyed by its
// license plate. Every Vehicle belongs to exactly one Client; the owner
// reference is set at registration and never changes.
type Vehicle struct {
	Plate      string      `json:"plate" db:"plate" binding:"required"`
	ClientID   string      `json:"client_id" db:"client_id" binding:"required"`
	Make       string      `json:"make" db:"make"`
	Model      *string     `json:"model,omitempty" db:"model"`
	Membership *Membership `json:"membership,omitempty" db:"-"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at" db:"updated_at"`
}

// MembershipHolder is implemented by any entity that can answer whether it
// currently holds a valid membership.
type MembershipHolder interface {
	HasActiveMembership(ref time.Time) bool
}

// HasActiveMembership reports whether the vehicle holds a membership whose
// validity window contains ref (boundaries inclusive).
func (v *Vehicle) HasActiveMembership(ref time.Time) bool {
	return v.Membership != nil && v.Membership.Covers(ref)
}
