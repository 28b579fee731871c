package validation

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/numkit/errors"
)

// FieldError is a problem with a single field or argument.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator collects argument errors.
type Validator struct {
	errors []FieldError
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{}
}

// AddError records a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any check failed.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns the collected errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Err returns an INVALID_ARGUMENT error describing every failed check, or nil.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	messages := make([]string, len(v.errors))
	for i, e := range v.errors {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return errors.New(errors.ErrCodeInvalidArgument, strings.Join(messages, "; ")).
		WithDetail("fields", v.errors)
}

// Finite checks that value is neither NaN nor infinite.
func (v *Validator) Finite(field string, value float64) *Validator {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		v.AddError(field, "must be a finite number")
	}
	return v
}

// NonNegative checks that value is not below zero.
func (v *Validator) NonNegative(field string, value float64) *Validator {
	if value < 0 {
		v.AddError(field, "must not be negative")
	}
	return v
}

// Positive checks that value is above zero.
func (v *Validator) Positive(field string, value float64) *Validator {
	if !(value > 0) {
		v.AddError(field, "must be greater than 0")
	}
	return v
}

// OneOf checks that value is one of allowed.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if !slices.Contains(allowed, value) {
		v.AddError(field, "must be one of: "+strings.Join(allowed, ", "))
	}
	return v
}

// OptionalUUID checks that a non-empty value is a valid, non-nil UUID.
func (v *Validator) OptionalUUID(field, value string) *Validator {
	if value == "" {
		return v
	}
	id, err := uuid.Parse(value)
	if err != nil {
		v.AddError(field, "must be a valid UUID")
		return v
	}
	if id == uuid.Nil {
		v.AddError(field, "must not be the nil UUID")
	}
	return v
}

// RunID parses value as a run identifier, generating a fresh one when it
// is empty.
func RunID(value string) (uuid.UUID, error) {
	if err := New().OptionalUUID("run_id", value).Err(); err != nil {
		return uuid.Nil, err
	}
	if value == "" {
		return uuid.New(), nil
	}
	return uuid.MustParse(value), nil
}
