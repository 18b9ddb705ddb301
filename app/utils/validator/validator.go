package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance
func New() *Validator {
	validate := validator.New()

	// Use JSON field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct. On failure it returns a *ValidationError
// aggregating every failed field, not just the first one.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		return NewValidationError(errs)
	}
	return nil
}

// CheckVar validates a single named value against a tag and returns the
// user-facing messages for every failed rule
func (v *Validator) CheckVar(value interface{}, name, tag string) []string {
	err := v.validator.Var(value, tag)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{fmt.Sprintf("%s is invalid", name)}
	}
	var messages []string
	for _, fe := range errs {
		messages = append(messages, messageFor(name, fe.Tag(), fe.Param()))
	}
	return messages
}

// ValidationError represents a validation failure with per-field messages
type ValidationError struct {
	Errors map[string][]string `json:"errors"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var messages []string
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, strings.Join(e.Errors[field], "; ")))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

// Merge folds another error map into this one
func (e *ValidationError) Merge(field string, messages []string) {
	if len(messages) == 0 {
		return
	}
	e.Errors[field] = append(e.Errors[field], messages...)
}

// Empty reports whether no field failed
func (e *ValidationError) Empty() bool {
	return len(e.Errors) == 0
}

// NewValidationError creates a ValidationError from validator.ValidationErrors
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	errors := make(map[string][]string)
	for _, err := range errs {
		field := err.Field()
		errors[field] = append(errors[field], messageFor(field, err.Tag(), err.Param()))
	}
	return &ValidationError{Errors: errors}
}

// EmptyValidationError creates an empty error map to aggregate into
func EmptyValidationError() *ValidationError {
	return &ValidationError{Errors: make(map[string][]string)}
}

// messageFor translates a failed rule into a user-facing message
func messageFor(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, param)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
