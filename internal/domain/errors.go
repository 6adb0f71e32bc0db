package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrListingNotFound     = errors.New("listing not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotNotFound        = errors.New("slot not found")
	ErrServiceNotFound     = errors.New("service not found")
)

var (
	ErrValidation         = errors.New("validation error")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrConflict           = errors.New("conflict")
	ErrListingNotBookable = errors.New("listing is not bookable")
	ErrAlreadyReserved    = errors.New("school already has an active reservation for this resource")
)

// ValidationError collects field-level problems so the caller can fix all of
// them in one resubmission.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = msg
}

// Err returns the error, or nil when no field was flagged.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation error: ")
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s %s", f, e.Fields[f])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// InvalidTransitionError names both the state the resource is actually in
// and the transition that was attempted, so the caller can surface "already
// handled" instead of retrying.
type InvalidTransitionError struct {
	Resource   string
	ResourceID string
	Current    string
	Attempted  string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s %s is %s, cannot move to %s",
		e.Resource, e.ResourceID, e.Current, e.Attempted)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// CapacityExceededError is returned by the authoritative check at approval
// time. The reservation stays pending.
type CapacityExceededError struct {
	Requested int
	Remaining int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded: requested %d, remaining %d", e.Requested, e.Remaining)
}

func (e *CapacityExceededError) Unwrap() error { return ErrCapacityExceeded }

type AuthorizationError struct {
	ActorID string
	Action  string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("actor %s is not allowed to %s", e.ActorID, e.Action)
}

func (e *AuthorizationError) Unwrap() error { return ErrForbidden }
