/*
store.go - Persistence contract consumed by the record engine

PURPOSE:
  Defines the interface between the engine and whatever holds the records.
  The contract is deliberately a thin document-collection abstraction: list,
  append, patch by id, delete by id, plus an optional change-subscription
  capability for push-based backends.

ORDERING:
  List returns records in descending timestamp order (most recent first),
  which is what the dashboards expect. The recap aggregator itself is
  order-independent except for the same-entity/same-day anomaly tie-break,
  which takes the first match in store iteration order.

CONSISTENCY:
  Writes are atomic single-document operations. Concurrent writers racing on
  the same record resolve as last-write-wins at the store layer; the engine
  does not detect lost updates. This is a known limitation, acceptable for a
  single-building deployment with one validator.

IMPLEMENTATIONS:
  - store/sqlite: production store, one flat records table
  - store/memory: in-memory store for tests and local runs

SEE ALSO:
  - lifecycle.go: Mutations built on Patch/Delete
  - watch.go: Fan-out decorator adding Subscribe to any Store
*/
package record

import "context"

// =============================================================================
// STORE - Document collection contract
// =============================================================================

type Store interface {
	// List returns every record in the collection, most recent first.
	List(ctx context.Context, c Collection) ([]Envelope, error)

	// Append persists a new record, assigning its identity, and returns the
	// stored envelope.
	Append(ctx context.Context, c Collection, env Envelope) (Envelope, error)

	// Patch merges the given subject fields into an existing record.
	// The reserved key FieldValidated updates the envelope's validation flag.
	// Fails with ErrNotFound if the id is absent.
	Patch(ctx context.Context, c Collection, id string, fields Fields) error

	// Delete removes the record entirely. There is no tombstone; once deleted
	// a record is unrecoverable. Fails with ErrNotFound if the id is absent.
	Delete(ctx context.Context, c Collection, id string) error
}

// FieldValidated is the reserved patch key that flips the validation flag.
const FieldValidated = "validated"

// =============================================================================
// CHANGE EVENTS - Optional push capability
// =============================================================================

type EventKind string

const (
	EventAppended EventKind = "appended"
	EventPatched  EventKind = "patched"
	EventDeleted  EventKind = "deleted"
)

// Event describes a single store mutation. For deletions only the ID of the
// removed record is carried.
type Event struct {
	Collection Collection `json:"collection"`
	Kind       EventKind  `json:"kind"`
	Record     Envelope   `json:"record"`
}

// Watcher is the optional push capability. Backends that cannot push changes
// simply do not implement it; callers feature-detect with a type assertion.
type Watcher interface {
	// Subscribe registers a callback for every mutation on the collection and
	// returns a cancel function. Callbacks run synchronously after the write
	// commits; they must not block.
	Subscribe(c Collection, fn func(Event)) (cancel func())
}

// =============================================================================
// HELPERS
// =============================================================================

// Find locates a single record by id within a collection. The store contract
// has no point lookup, so this scans List; collections are small (one
// building's worth of daily logs).
func Find(ctx context.Context, s Store, c Collection, id string) (Envelope, error) {
	envs, err := s.List(ctx, c)
	if err != nil {
		return Envelope{}, err
	}
	for _, env := range envs {
		if env.ID == id {
			return env, nil
		}
	}
	return Envelope{}, &NotFoundError{Collection: c, ID: id}
}
