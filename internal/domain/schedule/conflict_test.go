package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func iv(startHour, endHour int) Interval {
	base := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	return Interval{
		Start: base.Add(time.Duration(startHour) * time.Hour),
		End:   base.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"partial overlap left edge", iv(10, 12), iv(11, 13), true},
		{"partial overlap right edge", iv(11, 13), iv(10, 12), true},
		{"a contains b", iv(10, 14), iv(11, 12), true},
		{"b contains a", iv(11, 12), iv(10, 14), true},
		{"identical", iv(10, 12), iv(10, 12), true},
		{"back to back", iv(10, 11), iv(11, 12), false},
		{"back to back reversed", iv(11, 12), iv(10, 11), false},
		{"disjoint", iv(9, 10), iv(12, 13), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
		})
	}
}

func TestHasConflict(t *testing.T) {
	records := []Record{
		{ID: 1, Interval: iv(10, 11)},
		{ID: 2, Interval: iv(14, 16)},
	}

	assert.True(t, HasConflict(iv(15, 16), records, 0))
	assert.False(t, HasConflict(iv(11, 12), records, 0))
}

func TestHasConflictExcludesOwnRow(t *testing.T) {
	records := []Record{
		{ID: 7, Interval: iv(14, 15)},
	}

	// a reschedule touching only its own slot is not a conflict
	assert.False(t, HasConflict(iv(14, 15), records, 7))
	assert.True(t, HasConflict(iv(14, 15), records, 0))
}
