package models

import "time"

// Customer is one row in the admin customer directory.
//
// Passwords are kept only as bcrypt hashes and never serialized; the upstream
// platform is the system of record for customer credentials.
type Customer struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DOB          string    `json:"DOB,omitempty"`
	Phone        string    `json:"phoneNumber"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
