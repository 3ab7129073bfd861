package domain

import (
	"fmt"
)

type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

func NewNotFoundError(entity, id string) error {
	return NotFoundError{Entity: entity, ID: id}
}

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return ValidationError{Field: field, Message: message}
}

// ExternalServiceError wraps a failure from the broker or a market data API.
// Details holds whatever the upstream returned, if anything.
type ExternalServiceError struct {
	Service string
	Err     error
	Details any
}

func (e ExternalServiceError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e ExternalServiceError) Unwrap() error {
	return e.Err
}

func NewExternalServiceError(service string, err error, details any) error {
	return ExternalServiceError{
		Service: service,
		Err:     err,
		Details: details,
	}
}
