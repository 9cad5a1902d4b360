package schedule

import "time"

// Interval is half-open: [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Record is an occupying entry on a groomer's calendar, either an
// appointment in a blocking status or a time block.
type Record struct {
	ID uint
	Interval
}

// Overlaps covers partial overlap on either edge and total containment in
// either direction.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// HasConflict reports whether candidate overlaps any record. excludeID lets
// an update skip its own prior row; pass 0 for creates.
func HasConflict(candidate Interval, records []Record, excludeID uint) bool {
	for _, r := range records {
		if excludeID != 0 && r.ID == excludeID {
			continue
		}
		if Overlaps(candidate, r.Interval) {
			return true
		}
	}
	return false
}
