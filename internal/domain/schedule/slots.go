package schedule

import (
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/httperr"
)

type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Candidate starts are on the hour only. Fractional-hour alignment is
// intentionally not generated.
const slotStepMinutes = 60

var supportedDurations = map[int]bool{60: true, 120: true}

func IsSupportedDuration(durationMin int) bool {
	return supportedDurations[durationMin]
}

// AvailableSlots enumerates bookable slots for one calendar date.
//
// Closed days yield an empty list, not an error. An unsupported duration is
// a caller error. The whole service must fit before closing, and a slot must
// be free of both appointment and time-block conflicts and start strictly in
// the future. Returned instants are UTC; enumeration order is chronological.
func AvailableSlots(
	date time.Time,
	loc *time.Location,
	durationMin int,
	appointments []Record,
	blocks []Record,
	now time.Time,
) ([]Slot, error) {

	if !IsSupportedDuration(durationMin) {
		return nil, httperr.ErrValidation("unsupported_duration")
	}

	open, closing, ok := DayWindow(date, loc)
	if !ok {
		return []Slot{}, nil
	}

	dur := time.Duration(durationMin) * time.Minute
	step := slotStepMinutes * time.Minute

	slots := []Slot{}
	for cur := open; !cur.Add(dur).After(closing); cur = cur.Add(step) {
		candidate := Interval{Start: cur.UTC(), End: cur.Add(dur).UTC()}

		if HasConflict(candidate, appointments, 0) {
			continue
		}
		if HasConflict(candidate, blocks, 0) {
			continue
		}
		if !candidate.Start.After(now) {
			continue
		}

		slots = append(slots, Slot{Start: candidate.Start, End: candidate.End})
	}

	return slots, nil
}
