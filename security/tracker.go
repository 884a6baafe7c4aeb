package security

import "github.com/digimons/facility-engine/record"

// =============================================================================
// DAILY COMPLETION TRACKER - Keyed by (area, shift)
// =============================================================================

// Slot is the completion key: two shifts may each patrol the same area once
// per day, so area alone is not unique.
type Slot struct {
	Area  Area
	Shift Shift
}

// LoggedOn returns the (area, shift) slots already reported on the date.
func LoggedOn(logs []Log, date record.Date) map[Slot]bool {
	done := make(map[Slot]bool)
	for _, l := range logs {
		if l.Day() == date {
			done[Slot{Area: l.Area, Shift: l.Shift}] = true
		}
	}
	return done
}

// CompletionPercent is the share of patrollable slots reported on the date.
// The slot universe is every (area, shift) pair the shift rules allow.
func CompletionPercent(logs []Log, date record.Date) int {
	total := 0
	for _, s := range Shifts() {
		total += len(AreasForShift(s))
	}
	return record.Percent(len(LoggedOn(logs, date)), total)
}

// =============================================================================
// MONTHLY RECAP
// =============================================================================

// Recap builds the day-by-area matrix over validated logs. Two shifts on the
// same area and day collapse to one cell; the first log in store order wins,
// and the cell flags when that patrol reported an unsafe condition.
func Recap(logs []Log, ym record.YearMonth) []record.Row {
	entries := make([]record.Entry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, record.Entry{
			Entity:    string(l.Area),
			Date:      l.Day(),
			Flagged:   !l.Safe,
			Note:      l.UnsafeNote,
			Validated: l.Validated,
		})
	}
	entities := make([]string, 0, len(Areas()))
	for _, a := range Areas() {
		entities = append(entities, string(a))
	}
	return record.BuildMatrix(entries, ym, entities)
}

// MonthLogs returns the validated logs of one month, the listing the printed
// per-area recap tables are built from.
func MonthLogs(logs []Log, ym record.YearMonth) []Log {
	var out []Log
	for _, l := range logs {
		if l.Validated && ym.Contains(l.Day()) {
			out = append(out, l)
		}
	}
	return out
}

// ByArea partitions a month's validated logs per area in canonical area
// order, empty areas included so the report prints every section.
func ByArea(logs []Log) map[Area][]Log {
	out := make(map[Area][]Log, len(Areas()))
	for _, a := range Areas() {
		out[a] = nil
	}
	for _, l := range logs {
		out[l.Area] = append(out[l.Area], l)
	}
	return out
}
