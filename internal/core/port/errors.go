package port

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist or is
	// not visible to the caller.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the caller is not allowed to act on the
	// entity (e.g. managing another owner's campaign).
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition is returned when a state-machine operation is
	// applied to a campaign in the wrong state. It is logged and never
	// retried.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCheckoutUnavailable wraps failures of the external checkout
	// provider. The pledge is retryable; no state has been mutated.
	ErrCheckoutUnavailable = errors.New("checkout provider unavailable")

	// ErrPaymentNotCompleted is returned when a confirm callback arrives for
	// a session the provider does not report as paid.
	ErrPaymentNotCompleted = errors.New("payment not completed")

	// ErrCompanyExists is returned when an owner already holds a company.
	ErrCompanyExists = errors.New("owner already has a company")

	// ErrCompanyHasFunds blocks deleting a company whose campaigns hold
	// invested funds.
	ErrCompanyHasFunds = errors.New("company has campaigns with active investments")
)

// ValidationError reports malformed input (bad shape, not policy). It is
// surfaced to the caller and causes no state change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
