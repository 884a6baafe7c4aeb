package complaint_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimons/facility-engine/complaint"
	"github.com/digimons/facility-engine/record"
	"github.com/digimons/facility-engine/store/memory"
)

// =============================================================================
// HELPERS
// =============================================================================

var today = record.Today()

func filed(cat complaint.Category, location, description string, ts string) complaint.Complaint {
	return complaint.Complaint{
		Timestamp:    ts,
		Category:     cat,
		ReporterKind: complaint.ReporterStaff,
		Reporter:     "Budi",
		Location:     location,
		Description:  description,
		Status:       complaint.StatusPending,
	}
}

func candidate(cat complaint.Category, location, description string) complaint.Complaint {
	return filed(cat, location, description, record.Now())
}

// =============================================================================
// SUB-CATEGORY PRECONDITION
// =============================================================================

func TestCheckSubmission_RepairWithoutSubCategory(t *testing.T) {
	// GIVEN a repair complaint with no repair class
	c := candidate(complaint.CategoryRepair, "Ruang PTSP", "AC mati")

	// WHEN the guard runs
	err := complaint.CheckSubmission(c, nil, today)

	// THEN the sub-category precondition fires
	assert.ErrorIs(t, err, record.ErrMissingSubcategory)
}

func TestCheckSubmission_SubCategoryCheckedBeforeContent(t *testing.T) {
	// GIVEN a repair complaint missing its sub-category AND carrying a
	// denylisted word
	c := candidate(complaint.CategoryRepair, "Ruang PTSP", "printer tolol rusak")

	// WHEN the guard runs
	err := complaint.CheckSubmission(c, nil, today)

	// THEN the sub-category error wins: the checks run in a fixed order
	assert.ErrorIs(t, err, record.ErrMissingSubcategory)
}

func TestCheckSubmission_CleanlinessNeedsNoSubCategory(t *testing.T) {
	c := candidate(complaint.CategoryCleanliness, "Ruang Sidang 2", "Sampah menumpuk")

	err := complaint.CheckSubmission(c, nil, today)

	assert.NoError(t, err)
}

// =============================================================================
// CONTENT GUARD - case-insensitive substring match over every free-text field
// =============================================================================

func TestCheckSubmission_ProfanityInDescription(t *testing.T) {
	c := candidate(complaint.CategoryCleanliness, "Lobi", "dasar BODOH semua")

	err := complaint.CheckSubmission(c, nil, today)

	assert.ErrorIs(t, err, record.ErrInappropriateContent)
}

func TestCheckSubmission_ProfanityAsSubstring(t *testing.T) {
	// GIVEN a denylisted token embedded inside a longer word
	c := candidate(complaint.CategoryCleanliness, "Lobi", "gerakan tololisme merajalela")

	// WHEN the guard runs
	err := complaint.CheckSubmission(c, nil, today)

	// THEN the substring still matches
	assert.ErrorIs(t, err, record.ErrInappropriateContent)
}

func TestCheckSubmission_ProfanityInReporterAndLocation(t *testing.T) {
	byReporter := candidate(complaint.CategoryCleanliness, "Lobi", "Sampah menumpuk")
	byReporter.Reporter = "si Goblok"
	assert.ErrorIs(t, complaint.CheckSubmission(byReporter, nil, today), record.ErrInappropriateContent)

	byLocation := candidate(complaint.CategoryCleanliness, "ruang Anjing", "Sampah menumpuk")
	assert.ErrorIs(t, complaint.CheckSubmission(byLocation, nil, today), record.ErrInappropriateContent)
}

func TestCheckSubmission_EverydayWordEmbeddingToken(t *testing.T) {
	// GIVEN an innocuous sentence whose words happen to contain a
	// denylisted token ("Lantai" contains "tai")
	c := candidate(complaint.CategoryCleanliness, "Lobi", "Lantai licin")

	// WHEN the guard runs
	err := complaint.CheckSubmission(c, nil, today)

	// THEN the substring match still rejects it, false positive included
	assert.ErrorIs(t, err, record.ErrInappropriateContent)
}

// =============================================================================
// DUPLICATE GUARD - same category, location, description, calendar day
// =============================================================================

func TestCheckSubmission_SameDayDuplicate(t *testing.T) {
	// GIVEN an identical complaint already filed today
	existing := []complaint.Complaint{
		filed(complaint.CategoryCleanliness, "Ruang Sidang 2", "Keran bocor", record.Now()),
	}
	c := candidate(complaint.CategoryCleanliness, "Ruang Sidang 2", "Keran bocor")

	// WHEN the guard runs
	err := complaint.CheckSubmission(c, existing, today)

	// THEN the duplicate is rejected
	assert.ErrorIs(t, err, record.ErrDuplicateSubmission)
}

func TestCheckSubmission_DuplicateMatchingIsNormalized(t *testing.T) {
	// GIVEN the same complaint differing only in casing and padding
	existing := []complaint.Complaint{
		filed(complaint.CategoryCleanliness, "Ruang Sidang 2", "Keran bocor", record.Now()),
	}
	c := candidate(complaint.CategoryCleanliness, "  ruang sidang 2 ", "KERAN BOCOR")

	err := complaint.CheckSubmission(c, existing, today)

	assert.ErrorIs(t, err, record.ErrDuplicateSubmission)
}

func TestCheckSubmission_YesterdaysTwinIsAllowed(t *testing.T) {
	// GIVEN the identical complaint filed yesterday
	yesterday := time.Now().AddDate(0, 0, -1).Format(time.RFC3339)
	existing := []complaint.Complaint{
		filed(complaint.CategoryCleanliness, "Ruang Sidang 2", "Keran bocor", yesterday),
	}
	c := candidate(complaint.CategoryCleanliness, "Ruang Sidang 2", "Keran bocor")

	// WHEN the guard runs against today's window
	err := complaint.CheckSubmission(c, existing, today)

	// THEN the day boundary resets the duplicate window
	assert.NoError(t, err)
}

func TestCheckSubmission_DifferentCategoryIsNotADuplicate(t *testing.T) {
	existing := []complaint.Complaint{
		filed(complaint.CategoryCleanliness, "Ruang Sidang 1", "AC bocor", record.Now()),
	}
	c := candidate(complaint.CategoryRepair, "Ruang Sidang 1", "AC bocor")
	c.SubCategory = complaint.SubBuilding

	assert.NoError(t, complaint.CheckSubmission(c, existing, today))
}

// =============================================================================
// SUBMIT
// =============================================================================

func TestSubmit_AppendsPendingRecord(t *testing.T) {
	// GIVEN an empty store and a clean candidate
	ctx := context.Background()
	store := memory.New()
	c := complaint.Complaint{
		Category:     complaint.CategoryRepair,
		SubCategory:  complaint.SubIT,
		ReporterKind: complaint.ReporterVisitor,
		Reporter:     "Siti",
		Location:     "Ruang PTSP",
		Description:  "Monitor antrian mati",
	}

	// WHEN it is submitted
	stored, err := complaint.Submit(ctx, store, c)

	// THEN it comes back with identity and pending defaults
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.NotEmpty(t, stored.Timestamp)
	assert.Equal(t, complaint.StatusPending, stored.Status)
	assert.False(t, stored.Validated)

	envs, err := store.List(ctx, record.Complaints)
	require.NoError(t, err)
	assert.Len(t, envs, 1)
}

func TestSubmit_RejectedCandidateLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	_, err := complaint.Submit(ctx, store, complaint.Complaint{
		Category:     complaint.CategoryCleanliness,
		ReporterKind: complaint.ReporterStaff,
		Reporter:     "Budi",
		Location:     "Lobi",
		Description:  "dasar goblok",
	})
	require.ErrorIs(t, err, record.ErrInappropriateContent)

	envs, err := store.List(ctx, record.Complaints)
	require.NoError(t, err)
	assert.Empty(t, envs)
}

func TestSubmit_SecondIdenticalSubmissionSameDay(t *testing.T) {
	// GIVEN a complaint already stored today
	ctx := context.Background()
	store := memory.New()
	c := complaint.Complaint{
		Category:     complaint.CategoryCleanliness,
		ReporterKind: complaint.ReporterStaff,
		Reporter:     "Budi",
		Location:     "Musholla",
		Description:  "Karpet kotor",
	}
	_, err := complaint.Submit(ctx, store, c)
	require.NoError(t, err)

	// WHEN the same person files it again
	_, err = complaint.Submit(ctx, store, c)

	// THEN the duplicate guard reads the stored snapshot and rejects it
	assert.ErrorIs(t, err, record.ErrDuplicateSubmission)
}
