package models

import (
	"errors"
	"fmt"
)

var (
	ErrRateUnavailable  = errors.New("rate unavailable")
	ErrRateUnset        = errors.New("rate unset")
	ErrConcurrentUpdate = errors.New("order was modified concurrently")
	ErrUnauthorized     = errors.New("unauthorized")

	ErrAmbiguousInput = &ValidationError{
		Field:  "amount,total_fiat",
		Reason: "exactly one of amount or total_fiat must be set",
	}
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

type PricingError struct {
	Currency string
	FiatCode string
	Err      error
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("pricing %s/%s: %v", e.Currency, e.FiatCode, e.Err)
}

func (e *PricingError) Unwrap() error {
	return e.Err
}

type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

type CancelNotAllowedError struct {
	OrderID string
	Status  Status
}

func (e *CancelNotAllowedError) Error() string {
	return fmt.Sprintf("order %s cannot be canceled in status %s", e.OrderID, e.Status)
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
