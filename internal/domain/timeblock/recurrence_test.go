package timeblock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sgt(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Singapore")
	require.NoError(t, err)
	return loc
}

func TestRecurrenceValidate(t *testing.T) {
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rec     Recurrence
		wantErr bool
	}{
		{"valid", Recurrence{Frequency: FrequencyWeekly, DaysOfWeek: []int{1, 3}, EndDate: end}, false},
		{"bad frequency", Recurrence{Frequency: "daily", DaysOfWeek: []int{1}, EndDate: end}, true},
		{"no days", Recurrence{Frequency: FrequencyWeekly, EndDate: end}, true},
		{"day out of range", Recurrence{Frequency: FrequencyWeekly, DaysOfWeek: []int{7}, EndDate: end}, true},
		{"negative day", Recurrence{Frequency: FrequencyWeekly, DaysOfWeek: []int{-1}, EndDate: end}, true},
		{"no end date", Recurrence{Frequency: FrequencyWeekly, DaysOfWeek: []int{1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpandWeekly(t *testing.T) {
	loc := sgt(t)

	// base block Monday 2024-01-01 12:00-13:00, repeating Mon/Wed through
	// 2024-01-15 inclusive
	baseStart := time.Date(2024, 1, 1, 12, 0, 0, 0, loc)
	baseEnd := time.Date(2024, 1, 1, 13, 0, 0, 0, loc)
	rec := Recurrence{
		Frequency:  FrequencyWeekly,
		DaysOfWeek: []int{1, 3},
		EndDate:    time.Date(2024, 1, 15, 0, 0, 0, 0, loc),
	}

	occ := Expand(baseStart, baseEnd, rec, loc)

	// Jan 3 (Wed), Jan 8 (Mon), Jan 10 (Wed), Jan 15 (Mon); the base Monday
	// itself is not repeated
	require.Len(t, occ, 4)

	wantDays := []int{3, 8, 10, 15}
	for i, o := range occ {
		local := o.Start.In(loc)
		assert.Equal(t, wantDays[i], local.Day())
		assert.Equal(t, 12, local.Hour())
		assert.Equal(t, time.Hour, o.End.Sub(o.Start))
	}
}

func TestExpandEndDateInclusive(t *testing.T) {
	loc := sgt(t)

	// base Friday, repeat Fridays, end exactly on the next Friday
	baseStart := time.Date(2026, 1, 2, 9, 0, 0, 0, loc)
	baseEnd := time.Date(2026, 1, 2, 10, 0, 0, 0, loc)
	rec := Recurrence{
		Frequency:  FrequencyWeekly,
		DaysOfWeek: []int{5},
		EndDate:    time.Date(2026, 1, 9, 0, 0, 0, 0, loc),
	}

	occ := Expand(baseStart, baseEnd, rec, loc)
	require.Len(t, occ, 1)
	assert.Equal(t, 9, occ[0].Start.In(loc).Day())
}

func TestExpandNoMatchingDays(t *testing.T) {
	loc := sgt(t)

	baseStart := time.Date(2026, 1, 5, 12, 0, 0, 0, loc)
	baseEnd := time.Date(2026, 1, 5, 13, 0, 0, 0, loc)
	rec := Recurrence{
		Frequency:  FrequencyWeekly,
		DaysOfWeek: []int{3},
		EndDate:    time.Date(2026, 1, 6, 0, 0, 0, 0, loc), // before the first Wednesday
	}

	occ := Expand(baseStart, baseEnd, rec, loc)
	assert.Empty(t, occ)
}

func TestExpandReturnsUTC(t *testing.T) {
	loc := sgt(t)

	baseStart := time.Date(2026, 1, 5, 12, 0, 0, 0, loc)
	baseEnd := time.Date(2026, 1, 5, 13, 0, 0, 0, loc)
	rec := Recurrence{
		Frequency:  FrequencyWeekly,
		DaysOfWeek: []int{1},
		EndDate:    time.Date(2026, 1, 12, 0, 0, 0, 0, loc),
	}

	occ := Expand(baseStart, baseEnd, rec, loc)
	require.Len(t, occ, 1)
	assert.Equal(t, time.UTC, occ[0].Start.Location())
	// 12:00 SGT is 04:00 UTC
	assert.Equal(t, 4, occ[0].Start.Hour())
}
