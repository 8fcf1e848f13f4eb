package entity

import (
	"errors"
	"fmt"
)

// ErrTareaNoEncontrada marks a well-formed id with no matching record.
var ErrTareaNoEncontrada = errors.New("tarea no encontrada")

// ValidationError carries the user-facing reason for rejecting caller input.
// The message is safe to surface in a 400 response body.
type ValidationError struct {
	Mensaje string
}

func (e *ValidationError) Error() string {
	return e.Mensaje
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Mensaje: fmt.Sprintf(format, args...)}
}

// StoreError wraps any backing-store failure. Callers treat it as a 500-class
// condition; the wrapped detail is for logs only, never for response bodies.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err as a StoreError for operation op.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
