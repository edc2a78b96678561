package validators

import "context"

// Validator validates inbound domain models before they reach the service
// layer. Implementations collect every violated constraint into a
// [ValidationErrors] value so that callers can surface field-level messages
// in a single response.
type Validator interface {
	// Validate checks obj against its field constraints. Returns nil when the
	// object is valid, a ValidationErrors listing every violation otherwise,
	// or ErrUnsupportedType when obj is not a model the validator knows.
	Validate(ctx context.Context, obj any) error
}
