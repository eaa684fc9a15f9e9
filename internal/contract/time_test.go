package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearRanges(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantYears []int
	}{
		{
			name:      "single year window",
			start:     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC),
			wantYears: []int{2024},
		},
		{
			name:      "three year window",
			start:     time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantYears: []int{2022, 2023, 2024},
		},
		{
			name:      "inverted window yields nothing",
			start:     time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantYears: nil,
		},
		{
			name:      "window edges on year boundary",
			start:     time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
			wantYears: []int{2023, 2024},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YearRanges(tt.start, tt.end)
			require.Len(t, got, len(tt.wantYears))
			for i, yr := range got {
				assert.Equal(t, tt.wantYears[i], yr.Year)
			}
		})
	}
}

// TestYearRangesClamping verifies the first and last slices stop at the
// window edges while interior slices cover their whole year.
func TestYearRangesClamping(t *testing.T) {
	start := time.Date(2022, time.June, 15, 12, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 1, 6, 0, 0, 0, time.UTC)

	got := YearRanges(start, end)
	require.Len(t, got, 3)

	assert.Equal(t, start, got[0].From)
	assert.Equal(t, time.Date(2022, time.December, 31, 23, 59, 59, 0, time.UTC), got[0].To)

	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), got[1].From)
	assert.Equal(t, time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC), got[1].To)

	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), got[2].From)
	assert.Equal(t, end, got[2].To)
}

func TestParseStartDate(t *testing.T) {
	got, err := ParseStartDate("2024-05-20")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseStartDate("20-05-2024")
	require.Error(t, err)

	_, err = ParseStartDate("not a date")
	require.Error(t, err)
}

func TestParseEndDate(t *testing.T) {
	got, err := ParseEndDate("2024-05-20")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 20, 23, 59, 59, 0, time.UTC), got)

	_, err = ParseEndDate("2024-13-40")
	require.Error(t, err)
}
