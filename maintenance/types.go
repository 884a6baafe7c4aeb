/*
Package maintenance implements repair and upkeep logging with cost tracking.

PURPOSE:
  Technicians log damage and the repair performed against a maintenance item
  class (building, grounds, vehicle, PC, laptop, printer, AC). The realized
  cost in rupiah is attached afterwards but only while the record is still
  pending; validation freezes it. Monthly recaps sum validated costs for the
  budget realization report.

MONEY:
  Costs use decimal arithmetic. Rupiah amounts are whole numbers in
  practice, but the sum of a month of repairs must never pick up binary
  float noise on a financial report.

SEE ALSO:
  - cost.go: Pre-validation cost updates and month totals
*/
package maintenance

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/digimons/facility-engine/record"
)

// =============================================================================
// VOCABULARY
// =============================================================================

type Item string

const (
	ItemBuilding Item = "Gedung"
	ItemGrounds  Item = "Halaman"
	ItemVehicle  Item = "Kendaraan"
	ItemPC       Item = "PC"
	ItemLaptop   Item = "Laptop"
	ItemPrinter  Item = "Printer"
	ItemAC       Item = "AC"
)

func Items() []Item {
	return []Item{ItemBuilding, ItemGrounds, ItemVehicle, ItemPC, ItemLaptop, ItemPrinter, ItemAC}
}

func (i Item) Valid() bool {
	switch i {
	case ItemBuilding, ItemGrounds, ItemVehicle, ItemPC, ItemLaptop, ItemPrinter, ItemAC:
		return true
	}
	return false
}

// ITItems groups the computer equipment classes for dashboard counting.
func ITItems() []Item { return []Item{ItemPC, ItemLaptop, ItemPrinter} }

// =============================================================================
// MAINTENANCE LOG
// =============================================================================

type Log struct {
	ID        string `json:"-"`
	Timestamp string `json:"-"` // YYYY-MM-DD
	Validated bool   `json:"-"`

	Item      Item            `json:"item"`
	BrandArea string          `json:"brandArea"` // brand for equipment, location detail for building/grounds
	Damage    string          `json:"damage"`
	Repair    string          `json:"repair"`
	Officer   string          `json:"officer"`
	Photo     string          `json:"photo,omitempty"` // opaque encoded image, carried not interpreted
	Cost      decimal.Decimal `json:"cost"`
}

func (l Log) Day() record.Date { return record.DayOf(l.Timestamp) }

// Entity is the recap grouping key: the item class plus its brand/area
// detail, so two ACs in different rooms stay separate rows.
func (l Log) Entity() string {
	if l.BrandArea == "" {
		return string(l.Item)
	}
	return string(l.Item) + " - " + l.BrandArea
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

// Submit appends a pending log. Maintenance has no same-day uniqueness: the
// same AC can legitimately break twice in a day.
func Submit(ctx context.Context, store record.Store, l Log) (Log, error) {
	if !l.Item.Valid() {
		return Log{}, record.ErrUnknownLocation
	}
	if l.Timestamp == "" {
		l.Timestamp = string(record.Today())
	}
	l.Validated = false

	env, err := Encode(l)
	if err != nil {
		return Log{}, err
	}
	stored, err := store.Append(ctx, record.Maintenance, env)
	if err != nil {
		return Log{}, err
	}
	return Decode(stored)
}
