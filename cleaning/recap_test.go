package cleaning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimons/facility-engine/cleaning"
	"github.com/digimons/facility-engine/record"
)

func checkedLog(room string, date record.Date, clean bool, notes string) cleaning.Log {
	return cleaning.Log{
		Timestamp: string(date),
		Room:      room,
		Checker:   "Admin1",
		Clean:     clean,
		Notes:     notes,
		Validated: true,
	}
}

func TestRecap_EveryRoomGetsARow(t *testing.T) {
	rows := cleaning.Recap(nil, "2025-03")

	require.Len(t, rows, 39)
	assert.Equal(t, "Ruang Sidang 1", rows[0].Entity)
	assert.Equal(t, "Yudo", rows[0].PIC)
	assert.Equal(t, record.CellAbsent, rows[0].CellOn(1))
	assert.Len(t, rows[0].Cells, 31)
}

func TestRecap_CleanAndDirtyDays(t *testing.T) {
	// GIVEN one clean and one dirty validated check on the same room
	logs := []cleaning.Log{
		checkedLog("Ruang PTSP", "2025-03-05", true, cleaning.NoteClean),
		checkedLog("Ruang PTSP", "2025-03-06", false, cleaning.NoteNotClean),
	}

	// WHEN the matrix is built
	rows := cleaning.Recap(logs, "2025-03")

	// THEN the room's row marks the clean day V and the dirty day X
	var row cleaning.RecapRow
	for _, r := range rows {
		if r.Entity == "Ruang PTSP" {
			row = r
		}
	}
	assert.Equal(t, record.CellOK, row.CellOn(5))
	assert.Equal(t, record.CellFlagged, row.CellOn(6))
	assert.Equal(t, "Rafli", row.PIC)
}

func TestRecap_BoilerplateNotesDropped(t *testing.T) {
	// GIVEN boilerplate notes alongside a genuine finding
	logs := []cleaning.Log{
		checkedLog("Mediasi", "2025-03-05", true, cleaning.NoteClean),
		checkedLog("Mediasi", "2025-03-06", false, "Plafon rembes"),
		checkedLog("Mediasi", "2025-03-07", false, cleaning.NoteNotClean),
	}

	rows := cleaning.Recap(logs, "2025-03")

	var row cleaning.RecapRow
	for _, r := range rows {
		if r.Entity == "Mediasi" {
			row = r
		}
	}
	assert.Equal(t, "Plafon rembes", row.Notes)
}

func TestRecap_UnvalidatedLogsExcluded(t *testing.T) {
	pending := checkedLog("Mediasi", "2025-03-05", true, "")
	pending.Validated = false

	rows := cleaning.Recap([]cleaning.Log{pending}, "2025-03")

	for _, r := range rows {
		if r.Entity == "Mediasi" {
			assert.Equal(t, record.CellAbsent, r.CellOn(5))
		}
	}
}
