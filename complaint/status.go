package complaint

import (
	"context"
	"fmt"

	"github.com/digimons/facility-engine/record"
)

// fieldStatus is the patch key for the follow-up status.
const fieldStatus = "status"

// SetStatus advances the follow-up status of a complaint. The record must be
// validated first; an unvalidated complaint fails with ErrValidationRequired
// and its status is left unchanged. Setting the current status again is a
// no-op that succeeds.
func SetStatus(ctx context.Context, store record.Store, id string, target Status) error {
	if !target.Valid() {
		return fmt.Errorf("unknown follow-up status %q", target)
	}

	env, err := record.Find(ctx, store, record.Complaints, id)
	if err != nil {
		return err
	}
	if !env.Validated {
		return record.ErrValidationRequired
	}
	if env.Fields.String(fieldStatus) == string(target) {
		return nil
	}
	return store.Patch(ctx, record.Complaints, id, record.Fields{fieldStatus: string(target)})
}
