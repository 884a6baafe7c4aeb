package record

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// DATE - Calendar date as stored on records ("2006-01-02")
// =============================================================================

type Date string

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(dateLayout))
}

func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// Now returns the full RFC3339 timestamp used for complaint records.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// DayOf extracts the calendar date from a stored timestamp. Complaint
// timestamps carry a time component; the other kinds are already plain dates.
func DayOf(timestamp string) Date {
	if i := strings.IndexByte(timestamp, 'T'); i >= 0 {
		return Date(timestamp[:i])
	}
	return Date(timestamp)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", s, err)
	}
	return Date(t.Format(dateLayout)), nil
}

func (d Date) Time() time.Time {
	t, _ := time.Parse(dateLayout, string(d))
	return t
}

// DayOfMonth returns the day number 1..31, or 0 for malformed dates.
func (d Date) DayOfMonth() int {
	if len(d) != len(dateLayout) {
		return 0
	}
	return d.Time().Day()
}

func (d Date) YearMonth() YearMonth {
	if len(d) < 7 {
		return ""
	}
	return YearMonth(d[:7])
}

func (d Date) AddDays(n int) Date {
	t := d.Time().AddDate(0, 0, n)
	return Date(t.Format(dateLayout))
}

// =============================================================================
// YEARMONTH - Month bucket for recap aggregation ("2006-01")
// =============================================================================

type YearMonth string

const yearMonthLayout = "2006-01"

func CurrentYearMonth() YearMonth {
	return YearMonth(time.Now().Format(yearMonthLayout))
}

func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(yearMonthLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid month %q (use YYYY-MM): %w", s, err)
	}
	return YearMonth(t.Format(yearMonthLayout)), nil
}

// Days returns the number of calendar days in the month, handling leap-year
// February via the standard library calendar rules.
func (ym YearMonth) Days() int {
	t, err := time.Parse(yearMonthLayout, string(ym))
	if err != nil {
		return 0
	}
	// Day 0 of the following month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Contains reports whether the date falls inside this month.
func (ym YearMonth) Contains(d Date) bool {
	return d.YearMonth() == ym
}

// DateOf returns the date of the given day number within the month.
func (ym YearMonth) DateOf(day int) Date {
	return Date(fmt.Sprintf("%s-%02d", ym, day))
}
