package cleaning

import (
	"context"

	"github.com/digimons/facility-engine/record"
)

// Default notes recorded when the checker leaves the note field empty. The
// monthly recap treats these as boilerplate and drops them from the compiled
// notes column.
const (
	NoteClean    = "Kondisi Bersih"
	NoteNotClean = "Kurang Bersih"
)

// Log is one room's daily cleaning check.
type Log struct {
	ID        string `json:"-"`
	Timestamp string `json:"-"` // YYYY-MM-DD
	Validated bool   `json:"-"`

	Room    string `json:"room"`
	Floor   int    `json:"floor"`
	PIC     string `json:"pic"`     // responsible cleaning staff, from the room table
	Checker string `json:"checker"` // staff member who performed the check
	Clean   bool   `json:"clean"`   // every checklist task ticked
	Notes   string `json:"notes,omitempty"`
}

func (l Log) Day() record.Date { return record.DayOf(l.Timestamp) }

// NewLog builds a pending log from a submitted checklist. Clean is derived:
// the room counts as clean only when every task of its checklist shape was
// ticked. An empty note defaults to the boilerplate for the derived state.
func NewLog(room, checker string, completedTaskIDs []string, notes string, date record.Date) (Log, error) {
	a, err := Lookup(room)
	if err != nil {
		return Log{}, err
	}
	tasks, err := ChecklistFor(room)
	if err != nil {
		return Log{}, err
	}

	done := make(map[string]bool, len(completedTaskIDs))
	for _, id := range completedTaskIDs {
		done[id] = true
	}
	clean := true
	for _, t := range tasks {
		if !done[t.ID] {
			clean = false
			break
		}
	}

	if notes == "" {
		if clean {
			notes = NoteClean
		} else {
			notes = NoteNotClean
		}
	}

	return Log{
		Timestamp: string(date),
		Room:      room,
		Floor:     a.Floor,
		PIC:       a.PIC,
		Checker:   checker,
		Clean:     clean,
		Notes:     notes,
	}, nil
}

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

// Submit appends a pending log after the same-day gate: a room that already
// has a log dated today is rejected so staff cannot double-report it.
func Submit(ctx context.Context, store record.Store, l Log) (Log, error) {
	envs, err := store.List(ctx, record.Cleaning)
	if err != nil {
		return Log{}, err
	}
	logs, err := DecodeAll(envs)
	if err != nil {
		return Log{}, err
	}
	if CompletedOn(logs, l.Day())[l.Room] {
		return Log{}, record.ErrDuplicateSubmission
	}

	l.Validated = false
	env, err := Encode(l)
	if err != nil {
		return Log{}, err
	}
	stored, err := store.Append(ctx, record.Cleaning, env)
	if err != nil {
		return Log{}, err
	}
	return Decode(stored)
}
