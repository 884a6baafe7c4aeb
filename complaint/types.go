/*
Package complaint implements visitor and staff complaint intake.

PURPOSE:
  Complaints are the one publicly submitted record kind: anyone in the
  building can file one without logging in. Because of that, submission runs
  through a content and duplicate guard before anything is persisted, and a
  follow-up status workflow (gated on validation) tracks resolution.

KEY CONCEPTS:
  - Category: Kebersihan (cleanliness) or Perbaikan (repair); repairs require
    a sub-category naming the repair class
  - Status: tri-state follow-up (Menunggu/Proses/Selesai), mutable only after
    the record has been validated
  - Guard: profanity denylist plus same-day duplicate detection

SEE ALSO:
  - guard.go: Submission gate
  - status.go: Validation-gated follow-up workflow
*/
package complaint

import (
	"github.com/digimons/facility-engine/record"
)

// =============================================================================
// VOCABULARY - Product terms are Indonesian, kept verbatim
// =============================================================================

type Category string

const (
	CategoryCleanliness Category = "Kebersihan"
	CategoryRepair      Category = "Perbaikan"
)

func (c Category) Valid() bool {
	return c == CategoryCleanliness || c == CategoryRepair
}

// SubCategory is the repair class, required for CategoryRepair.
type SubCategory string

const (
	SubBuilding SubCategory = "Gedung"
	SubNonIT    SubCategory = "Peralatan Non TIK"
	SubIT       SubCategory = "Peralatan TIK"
)

func SubCategories() []SubCategory {
	return []SubCategory{SubBuilding, SubNonIT, SubIT}
}

type ReporterKind string

const (
	ReporterStaff   ReporterKind = "Pegawai"
	ReporterVisitor ReporterKind = "Pihak"
)

// Status is the follow-up state: Menunggu (pending) may move to Proses
// (in progress) or directly to Selesai (done).
type Status string

const (
	StatusPending    Status = "Menunggu"
	StatusInProgress Status = "Proses"
	StatusDone       Status = "Selesai"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusDone
}

// =============================================================================
// COMPLAINT RECORD
// =============================================================================

type Complaint struct {
	ID        string `json:"-"`
	Timestamp string `json:"-"` // full RFC3339, unlike the date-only kinds
	Validated bool   `json:"-"`

	Category     Category     `json:"category"`
	SubCategory  SubCategory  `json:"subCategory,omitempty"`
	ReporterKind ReporterKind `json:"reporterKind"`
	Reporter     string       `json:"reporter"`
	Location     string       `json:"location"` // free text, not checked against the room table
	Description  string       `json:"description"`
	Status       Status       `json:"status"`
}

// Day returns the calendar date the complaint was filed on.
func (c Complaint) Day() record.Date {
	return record.DayOf(c.Timestamp)
}

// Encode flattens the complaint into a storage envelope. Identity is left to
// the store to assign.
func Encode(c Complaint) (record.Envelope, error) {
	fields, err := record.FieldsOf(c)
	if err != nil {
		return record.Envelope{}, err
	}
	return record.Envelope{
		Timestamp: c.Timestamp,
		Validated: c.Validated,
		Fields:    fields,
	}, nil
}

// Decode rehydrates a complaint from its storage envelope.
func Decode(env record.Envelope) (Complaint, error) {
	var c Complaint
	if err := env.Fields.DecodeInto(&c); err != nil {
		return Complaint{}, err
	}
	c.ID = env.ID
	c.Timestamp = env.Timestamp
	c.Validated = env.Validated
	return c, nil
}

// DecodeAll rehydrates a listed collection, skipping nothing: a decode
// failure is a data error worth surfacing, not papering over.
func DecodeAll(envs []record.Envelope) ([]Complaint, error) {
	out := make([]Complaint, 0, len(envs))
	for _, env := range envs {
		c, err := Decode(env)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
