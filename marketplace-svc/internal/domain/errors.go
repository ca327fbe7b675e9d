package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrStateConflict = errors.New("state conflict")
	ErrNotFound      = errors.New("not found")
	ErrDependency    = errors.New("dependency failed")
	ErrForbidden     = errors.New("forbidden")

	// ErrStatusMismatch is returned by the order store when a conditional write
	// finds the order in a different status than expected.
	ErrStatusMismatch = errors.New("order status mismatch")
)

const (
	MsgCannotChangeAccepted  = "cannot change order: already accepted"
	MsgCannotChangeCancelled = "cannot change order: already cancelled"
	MsgAlreadyCancelled      = "order has already been cancelled"
	MsgCancelledByCustomer   = "Order was cancelled by customer"
	MsgAlreadyAccepted       = "Order has already been accepted by merchant"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error { return ErrValidation }

type StateConflictError struct {
	Reason string
}

func (e StateConflictError) Error() string { return e.Reason }

func (e StateConflictError) Unwrap() error { return ErrStateConflict }

type DependencyError struct {
	Dependency string
	Err        error
}

func (e DependencyError) Error() string {
	if e.Err == nil {
		return e.Dependency + " failed"
	}
	return fmt.Sprintf("%s failed: %v", e.Dependency, e.Err)
}

func (e DependencyError) Is(target error) bool { return target == ErrDependency }

func (e DependencyError) Unwrap() error { return e.Err }

func NotFound(entity string, id any) error {
	return fmt.Errorf("%s %v: %w", entity, id, ErrNotFound)
}
