package models

import "time"

// Medication is a single prescription entry owned by exactly one user.
// Ownership never changes after creation: UserID is set by the server from
// the authenticated caller and is immutable through the API.
type Medication struct {
	// ID is the internal unique identifier of the record,
	// assigned by the persistence layer.
	ID int64 `json:"id"`

	// UserID is the identifier of the owning user. Every medication belongs
	// to exactly one user; all queries are scoped by this value.
	UserID int64 `json:"userId"`

	// Description names the prescribed medication. Required, ≤255 characters.
	Description string `json:"description"`

	// Dosage is the prescribed dose (e.g. "200mg"). Required, ≤100 characters.
	Dosage string `json:"dosage"`

	// Frequency is how often the medication is taken (e.g. "daily").
	// Required, ≤50 characters.
	Frequency string `json:"frequency"`

	// Duration is the treatment length in days. Required, 1–365.
	Duration int `json:"duration"`

	// Reason is an optional note on why the medication was prescribed.
	// ≤500 characters.
	Reason string `json:"reason,omitempty"`

	// DateOfIssue is the date the prescription was issued. Required.
	DateOfIssue time.Time `json:"dateOfIssue"`

	// Instructions are optional intake instructions. ≤500 characters.
	Instructions string `json:"instructions,omitempty"`

	// CreatedAt and UpdatedAt are maintained by the persistence layer.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Medication model.
func (m Medication) TableName() string {
	return "medications"
}

// MedicationFilter describes a scoped medication query. UserID is always
// applied; the remaining predicates are optional and combined with AND.
type MedicationFilter struct {
	// UserID scopes the query to a single owner. Mandatory.
	UserID int64

	// AfterDateOfIssue, when non-nil, keeps records whose DateOfIssue is on
	// or after the given date (inclusive lower bound).
	AfterDateOfIssue *time.Time

	// Description, when non-empty, keeps records whose description contains
	// the given substring.
	Description string

	// Frequency, when non-empty, keeps records with this exact frequency.
	Frequency string

	// Reason, when non-empty, keeps records with this exact reason.
	Reason string
}
