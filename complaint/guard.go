/*
guard.go - Duplicate and content gate for public submissions

PURPOSE:
  The complaint form faces the public, so every candidate passes three checks
  before anything is written: the repair sub-category precondition, the
  profanity denylist, and the same-day duplicate check. The guard is a pure
  validation gate: on success it returns nil and the caller proceeds to
  append; it has no side effects.

MATCHING SEMANTICS:
  The denylist check is a case-insensitive SUBSTRING match, not a tokenized
  word match. That is intentional: it catches slurs embedded inside longer
  words. It also produces false positives on innocent substrings; the
  matching semantics are product behavior and must not be "fixed" to
  word-boundary matching.

SEE ALSO:
  - types.go: Complaint shape and vocabulary
  - record/errors.go: The gate's error taxonomy
*/
package complaint

import (
	"context"
	"strings"

	"github.com/digimons/facility-engine/record"
)

// denylist holds the profane tokens rejected from any free-text field.
var denylist = []string{
	"bodoh", "tolol", "goblok", "anjing", "babi", "bangsat", "asu", "kontol", "memek",
	"jembut", "ngentot", "itil", "perek", "lonte", "bajingan", "peju", "bencong",
	"banci", "setan", "iblis", "kampret", "brengsek", "tai", "bego",
}

// CheckSubmission gates a candidate against the records already filed. The
// checks run in a fixed order: sub-category precondition, content, duplicate.
// existing is a snapshot of the full complaint collection; today anchors the
// same-day duplicate window.
func CheckSubmission(candidate Complaint, existing []Complaint, today record.Date) error {
	if candidate.Category == CategoryRepair && candidate.SubCategory == "" {
		return record.ErrMissingSubcategory
	}

	if containsBanned(candidate.Description) ||
		containsBanned(candidate.Reporter) ||
		containsBanned(candidate.Location) {
		return record.ErrInappropriateContent
	}

	for _, k := range existing {
		if k.Category == candidate.Category &&
			normalize(k.Location) == normalize(candidate.Location) &&
			normalize(k.Description) == normalize(candidate.Description) &&
			k.Day() == today {
			return record.ErrDuplicateSubmission
		}
	}
	return nil
}

// Submit runs the guard against the current collection snapshot and appends
// the candidate as a fresh pending record. The stored complaint (with its
// assigned identity) is returned.
func Submit(ctx context.Context, store record.Store, candidate Complaint) (Complaint, error) {
	envs, err := store.List(ctx, record.Complaints)
	if err != nil {
		return Complaint{}, err
	}
	existing, err := DecodeAll(envs)
	if err != nil {
		return Complaint{}, err
	}

	if candidate.Timestamp == "" {
		candidate.Timestamp = record.Now()
	}
	if candidate.Status == "" {
		candidate.Status = StatusPending
	}
	candidate.Validated = false

	if err := CheckSubmission(candidate, existing, candidate.Day()); err != nil {
		return Complaint{}, err
	}

	env, err := Encode(candidate)
	if err != nil {
		return Complaint{}, err
	}
	stored, err := store.Append(ctx, record.Complaints, env)
	if err != nil {
		return Complaint{}, err
	}
	return Decode(stored)
}

func containsBanned(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range denylist {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
