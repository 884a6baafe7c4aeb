package maintenance

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/digimons/facility-engine/record"
)

const fieldCost = "cost"

// =============================================================================
// COST UPDATES
// =============================================================================

// UpdateCost sets the realized repair cost on a pending log. Validated logs
// are frozen: the cost printed on the recap must match what the validator
// approved.
func UpdateCost(ctx context.Context, store record.Store, id string, cost decimal.Decimal) error {
	env, err := record.Find(ctx, store, record.Maintenance, id)
	if err != nil {
		return err
	}
	if env.Validated {
		return record.ErrImmutableAfterValidation
	}
	return store.Patch(ctx, record.Maintenance, id, record.Fields{fieldCost: cost.String()})
}

// =============================================================================
// MONTH AGGREGATION
// =============================================================================

// MonthLogs returns the validated logs falling inside the month.
func MonthLogs(logs []Log, ym record.YearMonth) []Log {
	out := make([]Log, 0, len(logs))
	for _, l := range logs {
		if l.Validated && ym.Contains(l.Day()) {
			out = append(out, l)
		}
	}
	return out
}

// MonthTotal sums validated costs for the month with exact decimal addition.
func MonthTotal(logs []Log, ym record.YearMonth) decimal.Decimal {
	total := decimal.Zero
	for _, l := range MonthLogs(logs, ym) {
		total = total.Add(l.Cost)
	}
	return total
}
