package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/MKhiriev/med-cabinet/models"
)

// Validation messages for User fields. The exact wording is part of the API
// contract: signup responses return these strings verbatim.
const (
	MsgFirstNameRequired = "First name is required."
	MsgFirstNameTooLong  = "First name must be less than 50 characters."
	MsgLastNameRequired  = "Last name is required."
	MsgLastNameTooLong   = "Last name must be less than 50 characters."
	MsgInvalidPhone      = "Invalid phone number format."
	MsgEmailRequired     = "Email is required."
	MsgInvalidEmail      = "Invalid email format."
	MsgPasswordRequired  = "Password is required."
	MsgPasswordTooShort  = "Password must be at least 8 characters long."
	MsgPasswordTooWeak   = "Password must contain at least one uppercase, one lowercase, one number, and one special character."
)

const (
	maxNameLength      = 50
	minPasswordLength  = 8
	passwordSpecialSet = "@$!%*?&"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{5,19}$`)
)

// UserValidator implements [Validator] for the User model. It enforces the
// signup field constraints: required names within length limits, a
// well-formed email, an optional phone number, and password complexity.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
// Both value and pointer forms of models.User are accepted.
// Returns ErrUnsupportedType for anything else.
func (v *UserValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value)
	case *models.User:
		return v.validateUser(ctx, *value)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User) error {
	var errs ValidationErrors

	switch {
	case user.FirstName == "":
		errs = append(errs, MsgFirstNameRequired)
	case len(user.FirstName) > maxNameLength:
		errs = append(errs, MsgFirstNameTooLong)
	}

	switch {
	case user.LastName == "":
		errs = append(errs, MsgLastNameRequired)
	case len(user.LastName) > maxNameLength:
		errs = append(errs, MsgLastNameTooLong)
	}

	if user.PhoneNumber != "" && !phonePattern.MatchString(user.PhoneNumber) {
		errs = append(errs, MsgInvalidPhone)
	}

	switch {
	case user.Email == "":
		errs = append(errs, MsgEmailRequired)
	case !emailPattern.MatchString(user.Email):
		errs = append(errs, MsgInvalidEmail)
	}

	errs = append(errs, validatePassword(user.Password)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validatePassword enforces the password complexity policy: at least eight
// characters with one lowercase letter, one uppercase letter, one digit, and
// one special character from the allowed set.
//
// Go's regexp package (RE2) has no lookahead assertions, so the policy is
// expressed as per-class scans instead of a single pattern.
func validatePassword(password string) ValidationErrors {
	if password == "" {
		return ValidationErrors{MsgPasswordRequired}
	}

	var errs ValidationErrors
	if len(password) < minPasswordLength {
		errs = append(errs, MsgPasswordTooShort)
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	hasSpecial := strings.ContainsAny(password, passwordSpecialSet)

	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		errs = append(errs, MsgPasswordTooWeak)
	}

	return errs
}
