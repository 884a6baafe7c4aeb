package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimons/facility-engine/record"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func entry(entity string, date record.Date, flagged bool, note string) record.Entry {
	return record.Entry{Entity: entity, Date: date, Flagged: flagged, Note: note, Validated: true}
}

var march = record.YearMonth("2025-03")

// =============================================================================
// MATRIX SHAPE
// =============================================================================

func TestBuildMatrix_DenseCells(t *testing.T) {
	// GIVEN: One entity with a single entry in March
	// WHEN: Building the matrix
	// THEN: The row carries one cell per calendar day, absent everywhere else

	rows := record.BuildMatrix([]record.Entry{
		entry("Ruang Mediasi", "2025-03-05", false, ""),
	}, march, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, "Ruang Mediasi", rows[0].Entity)
	assert.Len(t, rows[0].Cells, 31)

	assert.Equal(t, record.CellOK, rows[0].CellOn(5))
	for day := 1; day <= 31; day++ {
		if day == 5 {
			continue
		}
		assert.Equal(t, record.CellAbsent, rows[0].CellOn(day), "day %d", day)
	}
}

func TestBuildMatrix_LeapFebruary(t *testing.T) {
	rows := record.BuildMatrix([]record.Entry{
		entry("Pos Depan", "2024-02-29", true, ""),
	}, "2024-02", nil)

	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Cells, 29)
	assert.Equal(t, record.CellFlagged, rows[0].CellOn(29))
}

func TestBuildMatrix_UnvalidatedExcluded(t *testing.T) {
	// GIVEN: A validated and an unvalidated entry for the same entity
	// WHEN: Building the matrix
	// THEN: The unvalidated one reads as if nothing was submitted

	entries := []record.Entry{
		entry("Ruang PTSP", "2025-03-10", false, ""),
		{Entity: "Ruang PTSP", Date: "2025-03-11", Flagged: true, Validated: false},
	}
	rows := record.BuildMatrix(entries, march, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, record.CellOK, rows[0].CellOn(10))
	assert.Equal(t, record.CellAbsent, rows[0].CellOn(11))
}

func TestBuildMatrix_OutOfMonthExcluded(t *testing.T) {
	entries := []record.Entry{
		entry("Gedung", "2025-02-28", false, ""),
		entry("Gedung", "2025-04-01", false, ""),
	}
	rows := record.BuildMatrix(entries, march, nil)
	assert.Empty(t, rows, "no in-month activity, no derived entities")
}

// =============================================================================
// ENTITY SETS
// =============================================================================

func TestBuildMatrix_ExplicitEntities_KeepEmptyRows(t *testing.T) {
	// GIVEN: A fixed entity list where one entity has no activity
	// WHEN: Building with the explicit list
	// THEN: The idle entity still gets an all-absent row in list order

	rows := record.BuildMatrix([]record.Entry{
		entry("Ruang Sidang 1", "2025-03-03", false, ""),
	}, march, []string{"Ruang Sidang 1", "Ruang Sidang 2"})

	require.Len(t, rows, 2)
	assert.Equal(t, "Ruang Sidang 1", rows[0].Entity)
	assert.Equal(t, "Ruang Sidang 2", rows[1].Entity)
	for day := 1; day <= 31; day++ {
		assert.Equal(t, record.CellAbsent, rows[1].CellOn(day))
	}
}

func TestBuildMatrix_DerivedEntities_FirstAppearanceOrder(t *testing.T) {
	entries := []record.Entry{
		entry("B", "2025-03-02", false, ""),
		entry("A", "2025-03-01", false, ""),
		entry("B", "2025-03-03", false, ""),
	}
	rows := record.BuildMatrix(entries, march, nil)

	require.Len(t, rows, 2)
	assert.Equal(t, "B", rows[0].Entity, "derived order follows first appearance, not date")
	assert.Equal(t, "A", rows[1].Entity)
}

// =============================================================================
// ANOMALY TIE-BREAK
// =============================================================================

func TestBuildMatrix_DuplicateDay_FirstEntryWins(t *testing.T) {
	// GIVEN: Two validated entries for the same entity and day
	// WHEN: Building the matrix
	// THEN: The first in iteration order decides the cell, without error

	entries := []record.Entry{
		entry("Pos Depan", "2025-03-07", true, ""),
		entry("Pos Depan", "2025-03-07", false, ""),
	}
	rows := record.BuildMatrix(entries, march, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, record.CellFlagged, rows[0].CellOn(7))
}

// =============================================================================
// NOTES COMPILATION
// =============================================================================

func TestBuildMatrix_Notes_DedupedFirstOccurrence(t *testing.T) {
	entries := []record.Entry{
		entry("Ruang PTSP", "2025-03-01", true, "Keran bocor"),
		entry("Ruang PTSP", "2025-03-02", true, "Lampu mati"),
		entry("Ruang PTSP", "2025-03-03", true, "Keran bocor"),
		entry("Ruang PTSP", "2025-03-04", false, ""),
	}
	rows := record.BuildMatrix(entries, march, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, "Keran bocor; Lampu mati", rows[0].Notes)
}

func TestBuildMatrix_Notes_PerEntity(t *testing.T) {
	entries := []record.Entry{
		entry("A", "2025-03-01", true, "catatan A"),
		entry("B", "2025-03-01", true, "catatan B"),
	}
	rows := record.BuildMatrix(entries, march, nil)

	require.Len(t, rows, 2)
	assert.Equal(t, "catatan A", rows[0].Notes)
	assert.Equal(t, "catatan B", rows[1].Notes)
}
