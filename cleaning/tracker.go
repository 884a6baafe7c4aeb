package cleaning

import "github.com/digimons/facility-engine/record"

// =============================================================================
// DAILY COMPLETION TRACKER
// =============================================================================

// CompletedOn returns the set of rooms that already have a log on the given
// date. The form uses this to gray out finished rooms and the submission gate
// uses it to reject double entries.
func CompletedOn(logs []Log, date record.Date) map[string]bool {
	done := make(map[string]bool)
	for _, l := range logs {
		if l.Day() == date {
			done[l.Room] = true
		}
	}
	return done
}

// CompletionPercent is the share of known rooms checked on the given date,
// rounded to the nearest integer. Zero known rooms yields 0, not an error.
func CompletionPercent(logs []Log, date record.Date) int {
	return record.Percent(len(CompletedOn(logs, date)), len(roomTable))
}
