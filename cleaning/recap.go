package cleaning

import "github.com/digimons/facility-engine/record"

// =============================================================================
// MONTHLY RECAP - Day-by-room matrix over validated logs
// =============================================================================

// RecapRow is one room's month with the responsible staff member attached,
// the shape the printed recap sheet expects.
type RecapRow struct {
	record.Row
	PIC string
}

// Recap builds the monthly matrix for every room in the canonical room
// order, validated logs only. Boilerplate notes are dropped before
// compilation so the notes column holds genuine findings.
func Recap(logs []Log, ym record.YearMonth) []RecapRow {
	entries := make([]record.Entry, 0, len(logs))
	for _, l := range logs {
		note := l.Notes
		if note == NoteClean || note == NoteNotClean {
			note = ""
		}
		entries = append(entries, record.Entry{
			Entity:    l.Room,
			Date:      l.Day(),
			Flagged:   !l.Clean,
			Note:      note,
			Validated: l.Validated,
		})
	}

	rows := record.BuildMatrix(entries, ym, Rooms())
	out := make([]RecapRow, len(rows))
	for i, row := range rows {
		out[i] = RecapRow{Row: row, PIC: roomIndex[row.Entity].PIC}
	}
	return out
}
