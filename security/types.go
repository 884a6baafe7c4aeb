/*
Package security implements the security-patrol checklist.

PURPOSE:
  Officers log one patrol per area per shift per day. Each area has its own
  checklist item set (front post, courtroom waiting area, PTSP service desk,
  and the whole-building night round), and the night shift only patrols the
  building round while day shifts cover everything else.

SEE ALSO:
  - checklist.go: Per-area item sets and shift/area applicability
  - tracker.go: Same-day (area, shift) completion tracking
*/
package security

import (
	"context"

	"github.com/digimons/facility-engine/record"
)

// =============================================================================
// VOCABULARY
// =============================================================================

type Shift string

const (
	ShiftMorning Shift = "Pagi"
	ShiftDay     Shift = "Siang"
	ShiftNight   Shift = "Malam"
)

func Shifts() []Shift { return []Shift{ShiftMorning, ShiftDay, ShiftNight} }

func (s Shift) Valid() bool {
	return s == ShiftMorning || s == ShiftDay || s == ShiftNight
}

type Area string

const (
	AreaFrontPost  Area = "Pos Depan"
	AreaCourtWait  Area = "Tunggu Sidang"
	AreaPTSP       Area = "PTSP"
	AreaBuilding   Area = "Gedung"
)

func Areas() []Area { return []Area{AreaFrontPost, AreaCourtWait, AreaPTSP, AreaBuilding} }

func (a Area) Valid() bool {
	switch a {
	case AreaFrontPost, AreaCourtWait, AreaPTSP, AreaBuilding:
		return true
	}
	return false
}

// Officers is the static security staff roster.
func Officers() []string { return []string{"Mirza", "Irfan", "Eka", "Inten"} }

// =============================================================================
// SECURITY LOG
// =============================================================================

// Log is one patrol report. The checklist booleans are optional per-area
// fields, absent (false) for areas they do not apply to.
type Log struct {
	ID        string `json:"-"`
	Timestamp string `json:"-"` // YYYY-MM-DD
	Validated bool   `json:"-"`

	Officer    string `json:"officer"`
	Shift      Shift  `json:"shift"`
	Area       Area   `json:"area"`
	Safe       bool   `json:"safe"`
	UnsafeNote string `json:"unsafeNote,omitempty"`

	// Building night round
	LightsOut      bool `json:"lightsOut,omitempty"`
	ElectronicsOff bool `json:"electronicsOff,omitempty"`
	GatePadlocked  bool `json:"gatePadlocked,omitempty"`
	DoorsLocked    bool `json:"doorsLocked,omitempty"`
	FloodlightsOn  bool `json:"floodlightsOn,omitempty"`

	// Courtroom waiting area
	CourtroomSterile bool `json:"courtroomSterile,omitempty"`
	VisitorOrder     bool `json:"visitorOrder,omitempty"`
	PartyScreening   bool `json:"partyScreening,omitempty"`
	RestrictedAccess bool `json:"restrictedAccess,omitempty"`

	// Front post
	VisitorIdentification bool `json:"visitorIdentification,omitempty"`
	BaggageCheck          bool `json:"baggageCheck,omitempty"`
	VehicleCheck          bool `json:"vehicleCheck,omitempty"`

	// PTSP service desk
	PTSPVisitorCheck bool `json:"ptspVisitorCheck,omitempty"`
	PTSPAccessWatch  bool `json:"ptspAccessWatch,omitempty"`
	PTSPVisitorOrder bool `json:"ptspVisitorOrder,omitempty"`
}

func (l Log) Day() record.Date { return record.DayOf(l.Timestamp) }

func Encode(l Log) (record.Envelope, error) {
	fields, err := record.FieldsOf(l)
	if err != nil {
		return record.Envelope{}, err
	}
	return record.Envelope{Timestamp: l.Timestamp, Validated: l.Validated, Fields: fields}, nil
}

func Decode(env record.Envelope) (Log, error) {
	var l Log
	if err := env.Fields.DecodeInto(&l); err != nil {
		return Log{}, err
	}
	l.ID = env.ID
	l.Timestamp = env.Timestamp
	l.Validated = env.Validated
	return l, nil
}

func DecodeAll(envs []record.Envelope) ([]Log, error) {
	out := make([]Log, 0, len(envs))
	for _, env := range envs {
		l, err := Decode(env)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Submit appends a pending patrol log after the gates: the area must exist,
// the area must be patrollable on the shift, and no log for the same
// (area, shift) may already exist today.
func Submit(ctx context.Context, store record.Store, l Log) (Log, error) {
	if !l.Area.Valid() {
		return Log{}, record.ErrUnknownLocation
	}
	if !areaOnShift(l.Area, l.Shift) {
		return Log{}, record.ErrUnknownLocation
	}

	envs, err := store.List(ctx, record.Security)
	if err != nil {
		return Log{}, err
	}
	logs, err := DecodeAll(envs)
	if err != nil {
		return Log{}, err
	}
	if LoggedOn(logs, l.Day())[Slot{Area: l.Area, Shift: l.Shift}] {
		return Log{}, record.ErrDuplicateSubmission
	}

	l.Validated = false
	env, err := Encode(l)
	if err != nil {
		return Log{}, err
	}
	stored, err := store.Append(ctx, record.Security, env)
	if err != nil {
		return Log{}, err
	}
	return Decode(stored)
}
