package contract

import (
	"fmt"
	"time"
)

// DateFormat is the accepted CLI date representation.
const DateFormat = "2006-01-02"

// YearRange is one calendar-year sub-range of the requested window.
type YearRange struct {
	Year int
	From time.Time
	To   time.Time
}

// YearRanges partitions [start, end] into disjoint calendar-year sub-ranges.
// A window that stays inside one calendar year yields a single range; a
// window crossing N year boundaries yields N+1 ranges. The first and last
// ranges are clamped to the window edges, interior ranges span full years.
func YearRanges(start, end time.Time) []YearRange {
	if end.Before(start) {
		return nil
	}
	start = start.UTC()
	end = end.UTC()

	var ranges []YearRange
	cur := start
	for !cur.After(end) {
		yearEnd := time.Date(cur.Year(), time.December, 31, 23, 59, 59, 0, time.UTC)
		slice := YearRange{Year: cur.Year(), From: cur, To: yearEnd}
		if end.Before(yearEnd) {
			slice.To = end
		}
		ranges = append(ranges, slice)
		cur = time.Date(cur.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return ranges
}

// ParseStartDate parses a YYYY-MM-DD start date at midnight UTC.
func ParseStartDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t.UTC(), nil
}

// ParseEndDate parses a YYYY-MM-DD end date at the end of the day UTC.
func ParseEndDate(s string) (time.Time, error) {
	t, err := ParseStartDate(s)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(24*time.Hour - time.Second), nil
}
