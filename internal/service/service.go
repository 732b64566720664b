// Package service holds use-case orchestration between handlers and the table registry.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/fundtable/internal/table"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// NewInvalidInputError is the exported constructor handlers use for transport-level validation.
func NewInvalidInputError(fe []FieldError) error { return newInvalidInput(fe) }

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var v interface{ Fields() []FieldError }
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// TableService defines the table use cases: mount, navigate, resize, unmount.
// Every navigation call returns the freshly rendered view.
type TableService interface {
	Mount(ctx context.Context) (table.View, error)
	View(ctx context.Context, id string) (table.View, error)
	// Await blocks until the table's load has finished (or ctx ends) and returns the view.
	Await(ctx context.Context, id string) (table.View, error)
	GoToPage(ctx context.Context, id string, page int) (table.View, error)
	Next(ctx context.Context, id string) (table.View, error)
	Prev(ctx context.Context, id string) (table.View, error)
	SetPageSize(ctx context.Context, id string, size int) (table.View, error)
	Unmount(ctx context.Context, id string) error
}
