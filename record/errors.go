/*
errors.go - Centralized error taxonomy for the record engine

PURPOSE:
  All error conditions of the core in one place. Domain packages and the API
  layer wrap these with additional context; none of them are swallowed, and
  every core operation reports its failure synchronously to the caller.

ERROR CATEGORIES:
  1. Submission gate errors - user-facing, recoverable (edit and resubmit)
  2. Lifecycle errors - authorization and state violations
  3. Store errors - persistence failures surfaced from the adapter

USAGE:
  if errors.Is(err, record.ErrDuplicateSubmission) {
      // tell the user today's identical report already exists
  }

SEE ALSO:
  - lifecycle.go: Uses Unauthorized/NotFound
  - complaint/guard.go: Uses the submission gate errors
*/
package record

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInappropriateContent is returned when submitted free text matches the
	// profanity denylist.
	ErrInappropriateContent = errors.New("submission contains inappropriate language")

	// ErrDuplicateSubmission is returned when an identical complaint was
	// already filed on the same calendar day.
	ErrDuplicateSubmission = errors.New("identical report already submitted today")

	// ErrMissingSubcategory is returned when a repair complaint omits the
	// required repair class.
	ErrMissingSubcategory = errors.New("repair reports require a sub-category")

	// ErrUnknownLocation is returned when a referenced room or area is absent
	// from the assignment table. The operation is rejected rather than
	// guessing an owner.
	ErrUnknownLocation = errors.New("location is not in the assignment table")

	// ErrValidationRequired is returned when a follow-up status change is
	// attempted before the record has been validated.
	ErrValidationRequired = errors.New("record must be validated before follow-up status can change")

	// ErrImmutableAfterValidation is returned when a field that is only
	// editable pre-validation (the maintenance cost) is patched afterwards.
	ErrImmutableAfterValidation = errors.New("field can no longer change after validation")

	// ErrUnauthorized is returned when an actor without the required
	// capability attempts validate or delete. No mutation occurs.
	ErrUnauthorized = errors.New("actor is not permitted to perform this operation")

	// ErrNotFound is returned by patch/delete referencing a missing record,
	// typically one already deleted by another session.
	ErrNotFound = errors.New("record not found")

	// ErrStoreUnavailable is returned on transport or persistence failure.
	// The core never retries; retry policy belongs to the store adapter.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// NotFoundError identifies which record was missing.
type NotFoundError struct {
	Collection Collection
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record %s/%s not found", e.Collection, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// StoreError wraps an adapter-level failure with the attempted operation.
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error { return ErrStoreUnavailable }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsSubmissionError reports whether the error is a user-facing submission gate
// failure the submitter can fix by editing and resubmitting.
func IsSubmissionError(err error) bool {
	return errors.Is(err, ErrInappropriateContent) ||
		errors.Is(err, ErrDuplicateSubmission) ||
		errors.Is(err, ErrMissingSubcategory)
}

// IsClientError reports whether the error is due to invalid client input or
// state, as opposed to an infrastructure failure.
func IsClientError(err error) bool {
	return IsSubmissionError(err) ||
		errors.Is(err, ErrValidationRequired) ||
		errors.Is(err, ErrImmutableAfterValidation) ||
		errors.Is(err, ErrUnknownLocation) ||
		errors.Is(err, ErrNotFound)
}
