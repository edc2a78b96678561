// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/med-cabinet/models"
	"github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (first_name, last_name, address, city, country, postcode, phone_number, email, password_hash)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id, first_name, last_name, address, city, country, postcode, phone_number, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, first_name, last_name, address, city, country, postcode, phone_number, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createMedication = `INSERT INTO medications (user_id, description, dosage, frequency, duration, reason, date_of_issue, instructions)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, user_id, description, dosage, frequency, duration, reason, date_of_issue, instructions, created_at, updated_at;`

	getMedication = `SELECT id, user_id, description, dosage, frequency, duration, reason, date_of_issue, instructions, created_at, updated_at
    FROM medications
    WHERE id = $1 AND user_id = $2;`

	updateMedication = `UPDATE medications
    SET description = $1, dosage = $2, frequency = $3, duration = $4, reason = $5, date_of_issue = $6, instructions = $7, updated_at = NOW()
    WHERE id = $8 AND user_id = $9
    RETURNING id, user_id, description, dosage, frequency, duration, reason, date_of_issue, instructions, created_at, updated_at;`

	deleteMedication = `DELETE FROM medications
    WHERE id = $1 AND user_id = $2;`
)

// medicationColumns is the canonical column order shared by the medication
// queries above and the filtered SELECT built below. Scan destinations must
// follow this order.
var medicationColumns = []string{
	"id",
	"user_id",
	"description",
	"dosage",
	"frequency",
	"duration",
	"reason",
	"date_of_issue",
	"instructions",
	"created_at",
	"updated_at",
}

// buildSelectMedicationsQuery builds the filtered medication list query.
//
// The owner scope (user_id) is always present; the optional predicates of
// the filter are appended as conjunctive WHERE clauses:
//   - AfterDateOfIssue — date_of_issue >= bound (inclusive)
//   - Description      — substring match via LIKE
//   - Frequency        — exact match
//   - Reason           — exact match
//
// Results are ordered by id so repeated calls return a stable listing.
func buildSelectMedicationsQuery(filter models.MedicationFilter) (string, []any, error) {
	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query := builder.
		Select(medicationColumns...).
		From("medications").
		Where(squirrel.Eq{"user_id": filter.UserID})

	if filter.AfterDateOfIssue != nil {
		query = query.Where(squirrel.GtOrEq{"date_of_issue": *filter.AfterDateOfIssue})
	}

	if filter.Description != "" {
		query = query.Where(squirrel.Like{"description": "%" + filter.Description + "%"})
	}

	if filter.Frequency != "" {
		query = query.Where(squirrel.Eq{"frequency": filter.Frequency})
	}

	if filter.Reason != "" {
		query = query.Where(squirrel.Eq{"reason": filter.Reason})
	}

	return query.OrderBy("id").ToSql()
}
