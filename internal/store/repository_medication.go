package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/med-cabinet/internal/logger"
	"github.com/MKhiriev/med-cabinet/models"
)

// medicationRepository is the PostgreSQL-backed implementation of
// [MedicationRepository]. It executes all medication CRUD operations against
// the "medications" table using the embedded [*DB] connection.
//
// Every method keeps the owner scope in the SQL itself: id lookups and
// mutations always carry "AND user_id = $n", so a record owned by another
// user behaves exactly like a record that does not exist.
type medicationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMedicationRepository constructs a [MedicationRepository] backed by the
// provided database connection and logger.
func NewMedicationRepository(db *DB, logger *logger.Logger) MedicationRepository {
	logger.Debug().Msg("creating medication repository")
	return &medicationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMedication persists a new medication record and returns the fully
// populated [models.Medication] with server-assigned fields (ID, CreatedAt,
// UpdatedAt). The caller is responsible for setting UserID to the
// authenticated owner before calling.
func (r *medicationRepository) CreateMedication(ctx context.Context, medication models.Medication) (models.Medication, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMedication,
		medication.UserID, medication.Description, medication.Dosage, medication.Frequency,
		medication.Duration, medication.Reason, medication.DateOfIssue, medication.Instructions)

	created, err := scanMedication(row)
	if err != nil {
		log.Err(err).Str("func", "*medicationRepository.CreateMedication").Int64("user_id", medication.UserID).Msg("error creating medication")
		return models.Medication{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetMedications returns every record matching the filter, scoped to the
// filter's UserID with all optional predicates applied conjunctively.
// An empty result is returned as an empty slice, not an error; the service
// layer decides how to present it.
func (r *medicationRepository) GetMedications(ctx context.Context, filter models.MedicationFilter) ([]models.Medication, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMedicationsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*medicationRepository.GetMedications").Int64("user_id", filter.UserID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*medicationRepository.GetMedications").Int64("user_id", filter.UserID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	medications := make([]models.Medication, 0, 16)
	for rows.Next() {
		var m models.Medication
		if scanErr := rows.Scan(
			&m.ID, &m.UserID, &m.Description, &m.Dosage, &m.Frequency,
			&m.Duration, &m.Reason, &m.DateOfIssue, &m.Instructions,
			&m.CreatedAt, &m.UpdatedAt,
		); scanErr != nil {
			log.Err(scanErr).Str("func", "*medicationRepository.GetMedications").Msg("failed to scan medication row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		medications = append(medications, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return medications, nil
}

// GetMedication retrieves a single record by id, scoped to its owner.
// A record owned by a different user yields [ErrMedicationNotFound].
func (r *medicationRepository) GetMedication(ctx context.Context, id, userID int64) (models.Medication, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getMedication, id, userID)

	medication, err := scanMedication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Medication{}, ErrMedicationNotFound
		}

		log.Err(err).Str("func", "*medicationRepository.GetMedication").Int64("id", id).Int64("user_id", userID).Msg("error getting medication")
		return models.Medication{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return medication, nil
}

// UpdateMedication overwrites all mutable fields of the record identified by
// medication.ID and medication.UserID in a single UPDATE, and returns the
// updated row. ID and UserID are never modified.
func (r *medicationRepository) UpdateMedication(ctx context.Context, medication models.Medication) (models.Medication, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateMedication,
		medication.Description, medication.Dosage, medication.Frequency, medication.Duration,
		medication.Reason, medication.DateOfIssue, medication.Instructions,
		medication.ID, medication.UserID)

	updated, err := scanMedication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Medication{}, ErrMedicationNotFound
		}

		log.Err(err).Str("func", "*medicationRepository.UpdateMedication").Int64("id", medication.ID).Int64("user_id", medication.UserID).Msg("error updating medication")
		return models.Medication{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteMedication removes the record with the given id, scoped to its
// owner. Zero affected rows — the record does not exist or belongs to a
// different user — yields [ErrMedicationNotFound].
func (r *medicationRepository) DeleteMedication(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteMedication, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*medicationRepository.DeleteMedication").Int64("id", id).Int64("user_id", userID).Msg("error deleting medication")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if rowsAffected == 0 {
		return ErrMedicationNotFound
	}

	return nil
}

// scanMedication scans a single medication row in the canonical column order
// shared by all medication queries.
func scanMedication(row *sql.Row) (models.Medication, error) {
	var m models.Medication
	err := row.Scan(
		&m.ID, &m.UserID, &m.Description, &m.Dosage, &m.Frequency,
		&m.Duration, &m.Reason, &m.DateOfIssue, &m.Instructions,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}
