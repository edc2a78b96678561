package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/med-cabinet/internal/logger"
	"github.com/MKhiriev/med-cabinet/internal/store"
	"github.com/MKhiriev/med-cabinet/internal/validators"
	"github.com/MKhiriev/med-cabinet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.MedicationRepository
// ─────────────────────────────────────────────

type mockMedicationRepository struct {
	createFn func(ctx context.Context, medication models.Medication) (models.Medication, error)
	listFn   func(ctx context.Context, filter models.MedicationFilter) ([]models.Medication, error)
	getFn    func(ctx context.Context, id, userID int64) (models.Medication, error)
	updateFn func(ctx context.Context, medication models.Medication) (models.Medication, error)
	deleteFn func(ctx context.Context, id, userID int64) error
}

func (m *mockMedicationRepository) CreateMedication(ctx context.Context, medication models.Medication) (models.Medication, error) {
	if m.createFn != nil {
		return m.createFn(ctx, medication)
	}
	return medication, nil
}

func (m *mockMedicationRepository) GetMedications(ctx context.Context, filter models.MedicationFilter) ([]models.Medication, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockMedicationRepository) GetMedication(ctx context.Context, id, userID int64) (models.Medication, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id, userID)
	}
	return models.Medication{}, nil
}

func (m *mockMedicationRepository) UpdateMedication(ctx context.Context, medication models.Medication) (models.Medication, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, medication)
	}
	return medication, nil
}

func (m *mockMedicationRepository) DeleteMedication(ctx context.Context, id, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestMedicationService(repo *mockMedicationRepository) MedicationService {
	return NewMedicationService(repo, validators.NewMedicationValidator(), logger.Nop())
}

func validMedication() models.Medication {
	return models.Medication{
		UserID:      42,
		Description: "Aspirin 100mg",
		Dosage:      "100mg",
		Frequency:   "daily",
		Duration:    30,
		Reason:      "headache",
		DateOfIssue: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestMedicationService_Register_Success(t *testing.T) {
	repo := &mockMedicationRepository{
		createFn: func(_ context.Context, medication models.Medication) (models.Medication, error) {
			medication.ID = 7
			return medication, nil
		},
	}
	svc := newTestMedicationService(repo)

	created, err := svc.Register(context.Background(), validMedication())

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, int64(42), created.UserID)
}

func TestMedicationService_Register_ValidationErrors(t *testing.T) {
	repoCalled := false
	repo := &mockMedicationRepository{
		createFn: func(_ context.Context, medication models.Medication) (models.Medication, error) {
			repoCalled = true
			return medication, nil
		},
	}
	svc := newTestMedicationService(repo)

	medication := validMedication()
	medication.Description = ""
	medication.Duration = 0

	_, err := svc.Register(context.Background(), medication)

	var validationErrs validators.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.Messages(), validators.MsgDescriptionRequired)
	assert.Contains(t, validationErrs.Messages(), validators.MsgDurationOutOfRange)
	assert.False(t, repoCalled, "invalid medications must never reach the repository")
}

func TestMedicationService_Register_RepositoryError(t *testing.T) {
	repo := &mockMedicationRepository{
		createFn: func(_ context.Context, _ models.Medication) (models.Medication, error) {
			return models.Medication{}, errors.New("db down")
		},
	}
	svc := newTestMedicationService(repo)

	_, err := svc.Register(context.Background(), validMedication())

	require.Error(t, err)
}

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestMedicationService_List_PassesFilterThrough(t *testing.T) {
	issueDate := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	want := models.MedicationFilter{
		UserID:           42,
		AfterDateOfIssue: &issueDate,
		Description:      "aspirin",
		Frequency:        "daily",
		Reason:           "headache",
	}

	repo := &mockMedicationRepository{
		listFn: func(_ context.Context, filter models.MedicationFilter) ([]models.Medication, error) {
			assert.Equal(t, want, filter)
			return []models.Medication{{ID: 7, UserID: 42}}, nil
		},
	}
	svc := newTestMedicationService(repo)

	medications, err := svc.List(context.Background(), want)

	require.NoError(t, err)
	require.Len(t, medications, 1)
	assert.Equal(t, int64(7), medications[0].ID)
}

func TestMedicationService_List_Empty(t *testing.T) {
	repo := &mockMedicationRepository{
		listFn: func(_ context.Context, _ models.MedicationFilter) ([]models.Medication, error) {
			return []models.Medication{}, nil
		},
	}
	svc := newTestMedicationService(repo)

	medications, err := svc.List(context.Background(), models.MedicationFilter{UserID: 42})

	require.NoError(t, err)
	assert.Empty(t, medications)
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestMedicationService_Update_Success(t *testing.T) {
	repo := &mockMedicationRepository{
		updateFn: func(_ context.Context, medication models.Medication) (models.Medication, error) {
			assert.Equal(t, int64(7), medication.ID)
			assert.Equal(t, int64(42), medication.UserID)
			return medication, nil
		},
	}
	svc := newTestMedicationService(repo)

	medication := validMedication()
	medication.ID = 7

	updated, err := svc.Update(context.Background(), medication)

	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.ID)
}

func TestMedicationService_Update_ValidationErrors(t *testing.T) {
	repoCalled := false
	repo := &mockMedicationRepository{
		updateFn: func(_ context.Context, medication models.Medication) (models.Medication, error) {
			repoCalled = true
			return medication, nil
		},
	}
	svc := newTestMedicationService(repo)

	medication := validMedication()
	medication.ID = 7
	medication.Dosage = ""

	_, err := svc.Update(context.Background(), medication)

	var validationErrs validators.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.Messages(), validators.MsgDosageRequired)
	assert.False(t, repoCalled)
}

func TestMedicationService_Update_NotFound(t *testing.T) {
	repo := &mockMedicationRepository{
		updateFn: func(_ context.Context, _ models.Medication) (models.Medication, error) {
			return models.Medication{}, store.ErrMedicationNotFound
		},
	}
	svc := newTestMedicationService(repo)

	medication := validMedication()
	medication.ID = 999

	_, err := svc.Update(context.Background(), medication)

	require.ErrorIs(t, err, store.ErrMedicationNotFound)
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestMedicationService_Delete_Success(t *testing.T) {
	repo := &mockMedicationRepository{
		deleteFn: func(_ context.Context, id, userID int64) error {
			assert.Equal(t, int64(7), id)
			assert.Equal(t, int64(42), userID)
			return nil
		},
	}
	svc := newTestMedicationService(repo)

	require.NoError(t, svc.Delete(context.Background(), 7, 42))
}

func TestMedicationService_Delete_NotFound(t *testing.T) {
	repo := &mockMedicationRepository{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrMedicationNotFound
		},
	}
	svc := newTestMedicationService(repo)

	err := svc.Delete(context.Background(), 999, 42)

	require.ErrorIs(t, err, store.ErrMedicationNotFound)
}
