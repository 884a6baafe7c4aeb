/*
recap.go - Monthly recap matrix aggregation

PURPOSE:
  Builds the printable monthly recap: a dense day-by-entity matrix over the
  validated records of one calendar month. Each cell is one of exactly three
  symbols (present-ok, present-flagged, absent) so the printed reports keep
  their established legend.

INPUTS:
  The aggregator takes an explicit snapshot of entries, already projected from
  their typed record kinds by the domain packages (room name for cleaning,
  item+area for maintenance, area name for security). It never mutates input
  and never touches the store.

ANOMALY POLICY:
  Exactly one entry per entity per day is expected. If more than one exists
  the first match in store iteration order wins; the aggregator never fails
  on duplicate days.

SEE ALSO:
  - cleaning/recap.go, maintenance/recap.go, security/recap.go: projections
  - time.go: YearMonth day arithmetic including leap February
*/
package record

import "strings"

// =============================================================================
// CELL ALPHABET - Preserved exactly for report compatibility
// =============================================================================

type Cell string

const (
	CellOK      Cell = "V" // entry present, pass flag set
	CellFlagged Cell = "X" // entry present, pass flag unset
	CellAbsent  Cell = "-" // no entry that day
)

// =============================================================================
// ENTRY / ROW - Aggregation input and output
// =============================================================================

// Entry is one record projected into recap terms by its domain package.
// Notes already filtered of boilerplate arrive here; boilerplate is projected
// as an empty string.
type Entry struct {
	Entity    string
	Date      Date
	Flagged   bool
	Note      string
	Validated bool
}

// Row is one entity's month: one cell per calendar day plus the compiled
// free-text notes.
type Row struct {
	Entity string
	Cells  []Cell // index 0 is day 1
	Notes  string
}

// CellOn returns the cell for a 1-based day of month.
func (r Row) CellOn(day int) Cell {
	if day < 1 || day > len(r.Cells) {
		return CellAbsent
	}
	return r.Cells[day-1]
}

// =============================================================================
// MATRIX BUILDER
// =============================================================================

// BuildMatrix produces one row per entity for the given month. Only validated
// entries dated inside the month participate; an unvalidated entry reads as
// if no submission occurred. When entities is nil the row set is derived from
// the participating entries in first-appearance order; passing the full
// known-entity list yields rows even for entities with no activity.
func BuildMatrix(entries []Entry, ym YearMonth, entities []string) []Row {
	days := ym.Days()
	if days == 0 {
		return nil
	}

	inMonth := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Validated && ym.Contains(e.Date) {
			inMonth = append(inMonth, e)
		}
	}

	if entities == nil {
		seen := make(map[string]bool)
		for _, e := range inMonth {
			if !seen[e.Entity] {
				seen[e.Entity] = true
				entities = append(entities, e.Entity)
			}
		}
	}

	rows := make([]Row, 0, len(entities))
	for _, entity := range entities {
		row := Row{Entity: entity, Cells: make([]Cell, days)}
		var notes []string
		noteSeen := make(map[string]bool)

		for day := 1; day <= days; day++ {
			row.Cells[day-1] = CellAbsent
			want := ym.DateOf(day)
			for _, e := range inMonth {
				if e.Entity != entity || e.Date != want {
					continue
				}
				if e.Flagged {
					row.Cells[day-1] = CellFlagged
				} else {
					row.Cells[day-1] = CellOK
				}
				break // first match in store iteration order wins
			}
		}

		// Notes compile across the whole month in entry order, deduplicated
		// with first-occurrence order preserved.
		for _, e := range inMonth {
			if e.Entity != entity || e.Note == "" || noteSeen[e.Note] {
				continue
			}
			noteSeen[e.Note] = true
			notes = append(notes, e.Note)
		}
		row.Notes = strings.Join(notes, "; ")

		rows = append(rows, row)
	}
	return rows
}
