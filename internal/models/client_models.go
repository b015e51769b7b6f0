package models

import "time"

// Client represents a registered customer of the parking lot.
// ID is the client's identity number; it is the unique registry key and
// never changes after creation.
type Client struct {
	ID        string    `json:"id" db:"id" binding:"required"`
	FullName  string    `json:"full_name" db:"full_name" binding:"required"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Email     *string   `json:"email,omitempty" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
