package service

import (
	"context"

	"github.com/MKhiriev/med-cabinet/internal/logger"
	"github.com/MKhiriev/med-cabinet/internal/store"
	"github.com/MKhiriev/med-cabinet/internal/validators"
	"github.com/MKhiriev/med-cabinet/models"
)

// medicationService implements MedicationService on top of a
// MedicationRepository. All operations are owner-scoped: the repository keeps
// user_id in every WHERE clause, so the service only has to make sure the
// owner id flowing in is the authenticated one.
type medicationService struct {
	medicationRepository store.MedicationRepository

	// validator checks medication payloads before create and update.
	validator validators.Validator

	logger *logger.Logger
}

func NewMedicationService(medicationRepository store.MedicationRepository, validator validators.Validator, logger *logger.Logger) MedicationService {
	return &medicationService{
		medicationRepository: medicationRepository,
		validator:            validator,
		logger:               logger,
	}
}

// Register validates and persists a new medication for the owner set in
// medication.UserID. Returns [validators.ValidationErrors] on invalid input.
func (m *medicationService) Register(ctx context.Context, medication models.Medication) (models.Medication, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(ctx, medication); err != nil {
		log.Error().Err(err).Int64("user_id", medication.UserID).Msg("medication validation failed")
		return models.Medication{}, err
	}

	return m.medicationRepository.CreateMedication(ctx, medication)
}

// List returns the owner's medications matching the filter. All filter
// predicates combine conjunctively; an empty result is an empty slice.
func (m *medicationService) List(ctx context.Context, filter models.MedicationFilter) ([]models.Medication, error) {
	return m.medicationRepository.GetMedications(ctx, filter)
}

// Update validates the payload and overwrites all mutable fields of the
// record identified by medication.ID and medication.UserID. A record owned by
// another user surfaces as [store.ErrMedicationNotFound].
func (m *medicationService) Update(ctx context.Context, medication models.Medication) (models.Medication, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(ctx, medication); err != nil {
		log.Error().Err(err).Int64("id", medication.ID).Int64("user_id", medication.UserID).Msg("medication validation failed")
		return models.Medication{}, err
	}

	return m.medicationRepository.UpdateMedication(ctx, medication)
}

// Delete removes the owner's record with the given id.
func (m *medicationService) Delete(ctx context.Context, id, userID int64) error {
	return m.medicationRepository.DeleteMedication(ctx, id, userID)
}
