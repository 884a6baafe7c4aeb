package record_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimons/facility-engine/record"
)

// =============================================================================
// CALENDAR ARITHMETIC
// =============================================================================

func TestYearMonth_Days_LeapYear(t *testing.T) {
	// GIVEN: February of a leap year and of a common year
	// WHEN: Counting the days of each month
	// THEN: 29 and 28 respectively

	leap, err := record.ParseYearMonth("2024-02")
	require.NoError(t, err)
	common, err := record.ParseYearMonth("2025-02")
	require.NoError(t, err)

	assert.Equal(t, 29, leap.Days())
	assert.Equal(t, 28, common.Days())
}

func TestYearMonth_Days_AllMonthLengths(t *testing.T) {
	months := map[string]int{
		"2025-01": 31,
		"2025-04": 30,
		"2025-06": 30,
		"2025-12": 31,
	}
	for s, want := range months {
		ym, err := record.ParseYearMonth(s)
		require.NoError(t, err)
		assert.Equal(t, want, ym.Days(), "month %s", s)
	}
}

func TestYearMonth_Contains(t *testing.T) {
	ym, err := record.ParseYearMonth("2025-03")
	require.NoError(t, err)

	assert.True(t, ym.Contains(record.Date("2025-03-01")))
	assert.True(t, ym.Contains(record.Date("2025-03-31")))
	assert.False(t, ym.Contains(record.Date("2025-02-28")))
	assert.False(t, ym.Contains(record.Date("2025-04-01")))
}

func TestYearMonth_DateOf_ZeroPadsDay(t *testing.T) {
	ym, err := record.ParseYearMonth("2025-03")
	require.NoError(t, err)

	assert.Equal(t, record.Date("2025-03-05"), ym.DateOf(5))
	assert.Equal(t, record.Date("2025-03-31"), ym.DateOf(31))
}

func TestDayOf_StripsTimeComponent(t *testing.T) {
	// GIVEN: A full RFC3339 complaint timestamp
	// WHEN: Extracting the calendar day
	// THEN: Only the date part remains

	assert.Equal(t, record.Date("2025-03-10"), record.DayOf("2025-03-10T14:32:05Z"))
	assert.Equal(t, record.Date("2025-03-10"), record.DayOf("2025-03-10"))
}

func TestDate_AddDays_CrossesMonthBoundary(t *testing.T) {
	d := record.NewDate(2024, time.February, 28)
	assert.Equal(t, record.Date("2024-02-29"), d.AddDays(1))
	assert.Equal(t, record.Date("2024-03-01"), d.AddDays(2))
}

func TestParseDate_RejectsGarbage(t *testing.T) {
	_, err := record.ParseDate("10-03-2025")
	assert.Error(t, err)

	_, err = record.ParseDate("")
	assert.Error(t, err)
}

// =============================================================================
// PERCENT
// =============================================================================

func TestPercent_RoundsNearest(t *testing.T) {
	assert.Equal(t, 50, record.Percent(11, 22))
	assert.Equal(t, 33, record.Percent(1, 3))
	assert.Equal(t, 67, record.Percent(2, 3))
	assert.Equal(t, 100, record.Percent(22, 22))
}

func TestPercent_ZeroTotal(t *testing.T) {
	// GIVEN: An empty universe
	// THEN: 0, not a division error
	assert.Equal(t, 0, record.Percent(0, 0))
	assert.Equal(t, 0, record.Percent(5, 0))
}
