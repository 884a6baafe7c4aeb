package maintenance

import (
	"github.com/shopspring/decimal"

	"github.com/digimons/facility-engine/record"
)

// =============================================================================
// MONTHLY RECAP
// =============================================================================

// RecapRow is one entity row of the maintenance matrix. A flagged day means
// a repair was logged for that item on that date.
type RecapRow struct {
	record.Row
}

// Recap builds the day-by-item matrix for the month. Rows appear in the
// order their entity first occurs in the log stream, which follows store
// iteration order.
func Recap(logs []Log, ym record.YearMonth) []RecapRow {
	entries := make([]record.Entry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, record.Entry{
			Entity:    l.Entity(),
			Date:      l.Day(),
			Flagged:   true, // every log marks an incident day
			Note:      l.Damage,
			Validated: l.Validated,
		})
	}
	rows := record.BuildMatrix(entries, ym, nil)
	out := make([]RecapRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, RecapRow{Row: row})
	}
	return out
}

// Summary is the month listing plus its cost total, as rendered on the
// budget realization page.
type Summary struct {
	Logs  []Log
	Total decimal.Decimal
}

func Summarize(logs []Log, ym record.YearMonth) Summary {
	month := MonthLogs(logs, ym)
	return Summary{Logs: month, Total: MonthTotal(logs, ym)}
}
