package models

import "time"

// User represents an account entity used for authentication and as the
// owner of medication records. Sensitive fields must never be exposed
// outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user,
	// assigned by the persistence layer.
	ID int64 `json:"id"`

	// FirstName is the user's given name. Required, at most 50 characters.
	FirstName string `json:"firstName"`

	// LastName is the user's family name. Required, at most 50 characters.
	LastName string `json:"lastName"`

	// Address, City, Country and Postcode are optional postal details.
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Country  string `json:"country,omitempty"`
	Postcode string `json:"postcode,omitempty"`

	// PhoneNumber is an optional contact number. When present it must
	// look like a phone number (digits, spaces, +, -, parentheses).
	PhoneNumber string `json:"phoneNumber,omitempty"`

	// Email is the unique login identifier. Required, validated format.
	Email string `json:"email"`

	// Password carries the plaintext password of an inbound signup request.
	// It is consumed by the auth service and never persisted as-is.
	Password string `json:"password,omitempty"`

	// PasswordHash is the salted PBKDF2 derivation of Password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
