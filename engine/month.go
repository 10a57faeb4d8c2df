package engine

import (
	"fmt"
	"time"
)

// ============================================================================
// YEAR-MONTH — Calendar month arithmetic
// ============================================================================
// Month bucketing and window arithmetic work on calendar months, never on
// fixed day counts, so windows do not drift across months of differing
// length.
// ============================================================================

// YearMonth is a calendar year and month pair, ignoring day-of-month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// YearMonthOf truncates a date to its calendar year and month.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Index maps the year-month onto a continuous month counter, so that two
// buckets are adjacent calendar months exactly when their indices differ
// by one.
func (ym YearMonth) Index() int {
	return ym.Year*12 + int(ym.Month) - 1
}

// Before reports whether ym is chronologically earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	return ym.Index() < other.Index()
}

// String formats the bucket as "YYYY-MM".
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// MarshalJSON renders the bucket as its "YYYY-MM" string form.
func (ym YearMonth) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ym.String() + `"`), nil
}

// UnmarshalJSON parses the "YYYY-MM" string form.
func (ym *YearMonth) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := time.ParseInLocation("2006-01", s, time.UTC)
	if err != nil {
		return fmt.Errorf("parse year-month %q: %w", s, err)
	}
	*ym = YearMonthOf(t)
	return nil
}

// AddMonths shifts a date by n calendar months, clamping the day-of-month to
// the length of the target month: 2023-03-31 minus one month is 2023-02-28.
// Plain AddDate would normalize the overflow and spill back into March.
func AddMonths(t time.Time, n int) time.Time {
	idx := t.Year()*12 + int(t.Month()) - 1 + n
	year := idx / 12
	month := time.Month(idx%12 + 1)

	day := t.Day()
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
