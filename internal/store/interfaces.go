package store

import (
	"context"

	"github.com/MKhiriev/med-cabinet/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// MedicationRepository persists medication records. Every read and mutation
// is scoped by the owning user's id so that cross-user access is impossible
// at the storage layer.
type MedicationRepository interface {
	// CreateMedication inserts a new record and returns it with
	// server-assigned fields populated.
	CreateMedication(ctx context.Context, medication models.Medication) (models.Medication, error)

	// GetMedications returns all records matching the filter. The filter's
	// UserID is always applied; optional predicates are combined with AND.
	GetMedications(ctx context.Context, filter models.MedicationFilter) ([]models.Medication, error)

	// GetMedication returns the record with the given id owned by userID,
	// or ErrMedicationNotFound.
	GetMedication(ctx context.Context, id, userID int64) (models.Medication, error)

	// UpdateMedication overwrites all mutable fields of the record identified
	// by medication.ID and medication.UserID and returns the updated row.
	// Returns ErrMedicationNotFound when no such record exists for that owner.
	UpdateMedication(ctx context.Context, medication models.Medication) (models.Medication, error)

	// DeleteMedication removes the record with the given id owned by userID.
	// Returns ErrMedicationNotFound when no such record exists for that owner.
	DeleteMedication(ctx context.Context, id, userID int64) error
}
