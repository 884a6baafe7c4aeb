/*
lifecycle.go - Validation state machine and privileged mutations

PURPOSE:
  Governs the lifecycle every record kind shares: created pending
  (validated=false), validated exactly once by the privileged validator,
  optionally deleted outright. There is no reverse transition; validation is
  monotonic and idempotent.

AUTHORIZATION:
  The engine only needs two booleans, "can validate" and "can delete",
  resolved externally from the actor's role before calling in. Everything
  else about roles lives in the auth package.

IDEMPOTENCY:
  Validate on an already-validated record is a no-op: a validator
  double-clicking must not error or duplicate state.

SEE ALSO:
  - errors.go: ErrUnauthorized, ErrNotFound
  - auth/roles.go: Role to capability resolution
*/
package record

import "context"

// =============================================================================
// ACTOR - Caller identity with resolved capabilities
// =============================================================================

// Capabilities are the two privileged rights the engine checks. They are
// resolved from the actor's role by the auth layer.
type Capabilities struct {
	Validate bool
	Delete   bool
}

type Actor struct {
	Name string
	Capabilities
}

// =============================================================================
// SERVICE - Privileged lifecycle operations
// =============================================================================

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Validate marks the record validated. Idempotent: validating an
// already-validated record succeeds without changing anything else.
// Fails with ErrUnauthorized before touching the store when the actor lacks
// the validator capability, and with ErrNotFound when the id is absent.
func (s *Service) Validate(ctx context.Context, actor Actor, c Collection, id string) error {
	if !actor.Capabilities.Validate {
		return ErrUnauthorized
	}
	return s.store.Patch(ctx, c, id, Fields{FieldValidated: true})
}

// Delete removes the record entirely. No soft delete: staff must resubmit if
// a deleted report is still needed.
func (s *Service) Delete(ctx context.Context, actor Actor, c Collection, id string) error {
	if !actor.Capabilities.Delete {
		return ErrUnauthorized
	}
	return s.store.Delete(ctx, c, id)
}
