package validators

import (
	"context"

	"github.com/MKhiriev/med-cabinet/models"
)

// Validation messages for Medication fields. Returned verbatim in 400
// responses of the register and update endpoints.
const (
	MsgDescriptionRequired = "Description is required."
	MsgDescriptionTooLong  = "Description must be less than 255 characters."
	MsgDosageRequired      = "Dosage is required."
	MsgDosageTooLong       = "Dosage must be less than 100 characters."
	MsgFrequencyRequired   = "Frequency is required."
	MsgFrequencyTooLong    = "Frequency must be less than 50 characters."
	MsgDurationOutOfRange  = "Duration must be between 1 and 365 days."
	MsgReasonTooLong       = "Reason must be less than 500 characters."
	MsgDateOfIssueRequired = "Date of Issue is required."
	MsgInstructionsTooLong = "Instructions must be less than 500 characters."
)

const (
	maxDescriptionLength  = 255
	maxDosageLength       = 100
	maxFrequencyLength    = 50
	maxReasonLength       = 500
	maxInstructionsLength = 500
	minDurationDays       = 1
	maxDurationDays       = 365
)

// MedicationValidator implements [Validator] for the Medication model,
// enforcing the field constraints of the register and update endpoints.
// Ownership (UserID) is deliberately not validated here: the server always
// overwrites it with the authenticated caller's id.
type MedicationValidator struct {
}

// NewMedicationValidator constructs a new MedicationValidator
// and returns it as the Validator interface.
func NewMedicationValidator() Validator {
	return &MedicationValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
// Both value and pointer forms of models.Medication are accepted.
// Returns ErrUnsupportedType for anything else.
func (v *MedicationValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.Medication:
		return v.validateMedication(ctx, value)
	case *models.Medication:
		return v.validateMedication(ctx, *value)
	default:
		return ErrUnsupportedType
	}
}

func (v *MedicationValidator) validateMedication(_ context.Context, m models.Medication) error {
	var errs ValidationErrors

	switch {
	case m.Description == "":
		errs = append(errs, MsgDescriptionRequired)
	case len(m.Description) > maxDescriptionLength:
		errs = append(errs, MsgDescriptionTooLong)
	}

	switch {
	case m.Dosage == "":
		errs = append(errs, MsgDosageRequired)
	case len(m.Dosage) > maxDosageLength:
		errs = append(errs, MsgDosageTooLong)
	}

	switch {
	case m.Frequency == "":
		errs = append(errs, MsgFrequencyRequired)
	case len(m.Frequency) > maxFrequencyLength:
		errs = append(errs, MsgFrequencyTooLong)
	}

	if m.Duration < minDurationDays || m.Duration > maxDurationDays {
		errs = append(errs, MsgDurationOutOfRange)
	}

	if len(m.Reason) > maxReasonLength {
		errs = append(errs, MsgReasonTooLong)
	}

	if m.DateOfIssue.IsZero() {
		errs = append(errs, MsgDateOfIssueRequired)
	}

	if len(m.Instructions) > maxInstructionsLength {
		errs = append(errs, MsgInstructionsTooLong)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
