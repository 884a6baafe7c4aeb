/*
Package record provides the core record lifecycle engine.

PURPOSE:
  This package contains the kind-agnostic types and algorithms shared by all
  four record collections (complaints, cleaning checklists, maintenance logs,
  security patrols): the storage envelope, the validation lifecycle, and the
  monthly recap aggregation. Domain packages (complaint, cleaning, maintenance,
  security) layer kind-specific rules on top.

KEY CONCEPTS IN THIS FILE (record.go):
  - Collection: One of the four named record collections
  - Envelope: The flat storage shape every record kind shares
  - Fields: The kind-specific payload, a flat field-name to value map

DESIGN PRINCIPLES:
  1. Immutability: identity, timestamp, and subject fields never change after
     creation; the only legal mutations are validation (false to true), the
     complaint follow-up status, the pre-validation maintenance cost, and
     whole-record deletion.
  2. Snapshot inputs: aggregation and guards operate on explicit record lists
     passed in by the caller, never on hidden shared state.
  3. Storage agnosticism: the engine only sees the Store contract; whether the
     backing is SQLite or memory is the adapter's concern.

USAGE:
  env, err := record.NewEnvelope(record.Cleaning, log)
  stored, err := store.Append(ctx, record.Cleaning, env)

SEE ALSO:
  - lifecycle.go: Validation state machine and deletion
  - recap.go: Monthly day-by-entity matrix aggregation
  - store.go: Persistence contract and change events
*/
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// =============================================================================
// COLLECTIONS - The four named record collections
// =============================================================================

type Collection string

const (
	Complaints  Collection = "complaints"
	Cleaning    Collection = "cleaning"
	Maintenance Collection = "maintenance"
	Security    Collection = "security"
)

// Collections returns all known collections in a stable order.
func Collections() []Collection {
	return []Collection{Complaints, Cleaning, Maintenance, Security}
}

// Valid reports whether c names a known collection.
func (c Collection) Valid() bool {
	switch c {
	case Complaints, Cleaning, Maintenance, Security:
		return true
	}
	return false
}

// =============================================================================
// ENVELOPE - Flat storage shape shared by all record kinds
// =============================================================================

// Envelope is the wire/storage representation of a single record: an opaque
// identity, a creation timestamp, the validation flag, and a flat map of
// kind-specific subject fields. Identity and timestamp are assigned at
// creation and immutable afterwards.
type Envelope struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"` // YYYY-MM-DD; complaints carry full RFC3339
	Validated bool   `json:"validated"`
	Fields    Fields `json:"fields"`
}

// Day returns the calendar date the record was created on.
func (e Envelope) Day() Date {
	return DayOf(e.Timestamp)
}

// Fields is the kind-specific payload: scalar values keyed by field name.
// Numeric values are carried as json.Number so that decimal cost fields
// survive round trips without float truncation.
type Fields map[string]any

// FieldsOf flattens a typed record into Fields via its JSON representation.
func FieldsOf(v any) (Fields, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var f Fields
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return f, nil
}

// DecodeInto rehydrates a typed record from Fields.
func (f Fields) DecodeInto(v any) error {
	raw, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode fields: %w", err)
	}
	return nil
}

// Clone returns a shallow copy. Fields values are scalars, so a shallow copy
// is enough to protect callers from aliasing.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// String returns the string value of a field, or "" when absent.
func (f Fields) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// Bool returns the boolean value of a field, or false when absent.
func (f Fields) Bool(key string) bool {
	b, _ := f[key].(bool)
	return b
}

// Percent returns done out of total as a whole percentage, rounded to the
// nearest integer. A zero total yields 0 rather than a division error.
func Percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
