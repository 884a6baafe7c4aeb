// Package memory provides the in-memory Store used by tests and local runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/digimons/facility-engine/record"
)

// =============================================================================
// MEMORY STORE
// =============================================================================

type Store struct {
	mu      sync.RWMutex
	records map[record.Collection][]record.Envelope
}

func New() *Store {
	return &Store{records: make(map[record.Collection][]record.Envelope)}
}

// List returns clones in descending timestamp order. Records sharing a
// timestamp list most recent append first, matching the sqlite store's
// created_at ordering.
func (s *Store) List(_ context.Context, c record.Collection) ([]record.Envelope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	envs := s.records[c]
	out := make([]record.Envelope, len(envs))
	for i, env := range envs {
		out[len(envs)-1-i] = clone(env)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out, nil
}

// Append assigns a fresh id and stores a clone.
func (s *Store) Append(_ context.Context, c record.Collection, env record.Envelope) (record.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	env.ID = uuid.NewString()
	s.records[c] = append(s.records[c], clone(env))
	return env, nil
}

// Patch merges fields into the stored record. Last write wins.
func (s *Store) Patch(_ context.Context, c record.Collection, id string, fields record.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	envs := s.records[c]
	for i, env := range envs {
		if env.ID != id {
			continue
		}
		merged := clone(env)
		if merged.Fields == nil {
			merged.Fields = make(record.Fields, len(fields))
		}
		for k, v := range fields {
			if k == record.FieldValidated {
				if b, ok := v.(bool); ok {
					merged.Validated = b
				}
				continue
			}
			merged.Fields[k] = v
		}
		envs[i] = merged
		return nil
	}
	return &record.NotFoundError{Collection: c, ID: id}
}

// Delete removes the record. No tombstone.
func (s *Store) Delete(_ context.Context, c record.Collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	envs := s.records[c]
	for i, env := range envs {
		if env.ID == id {
			s.records[c] = append(envs[:i], envs[i+1:]...)
			return nil
		}
	}
	return &record.NotFoundError{Collection: c, ID: id}
}

// clone guards against callers mutating shared field maps.
func clone(env record.Envelope) record.Envelope {
	out := env
	out.Fields = env.Fields.Clone()
	return out
}
