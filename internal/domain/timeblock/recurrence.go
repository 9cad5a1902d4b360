package timeblock

import (
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/httperr"
)

const FrequencyWeekly = "weekly"

type Recurrence struct {
	Frequency  string    `json:"frequency"`
	DaysOfWeek []int     `json:"days_of_week"` // 0=Sunday .. 6=Saturday
	EndDate    time.Time `json:"end_date"`
}

func (r Recurrence) Validate() error {
	if r.Frequency != FrequencyWeekly {
		return httperr.ErrValidation("invalid_recurrence_frequency")
	}
	if len(r.DaysOfWeek) == 0 {
		return httperr.ErrValidation("missing_recurrence_days")
	}
	for _, d := range r.DaysOfWeek {
		if d < 0 || d > 6 {
			return httperr.ErrValidation("invalid_recurrence_day")
		}
	}
	if r.EndDate.IsZero() {
		return httperr.ErrValidation("missing_recurrence_end")
	}
	return nil
}

type Occurrence struct {
	Start time.Time
	End   time.Time
}

// Expand materializes one occurrence per matching weekday between the day
// after the base block and the recurrence end date (inclusive), preserving
// the base block's local wall-clock time. The base block itself is not
// included.
func Expand(baseStart, baseEnd time.Time, rec Recurrence, loc *time.Location) []Occurrence {
	days := map[time.Weekday]bool{}
	for _, d := range rec.DaysOfWeek {
		days[time.Weekday(d)] = true
	}

	localStart := baseStart.In(loc)
	localEnd := baseEnd.In(loc)
	endDay := rec.EndDate.In(loc)

	var out []Occurrence
	for d := localStart.AddDate(0, 0, 1); !afterDay(d, endDay); d = d.AddDate(0, 0, 1) {
		if !days[d.Weekday()] {
			continue
		}

		s := time.Date(d.Year(), d.Month(), d.Day(),
			localStart.Hour(), localStart.Minute(), 0, 0, loc)
		e := time.Date(d.Year(), d.Month(), d.Day(),
			localEnd.Hour(), localEnd.Minute(), 0, 0, loc)

		out = append(out, Occurrence{Start: s.UTC(), End: e.UTC()})
	}

	return out
}

// afterDay compares calendar dates, ignoring time of day.
func afterDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad > bd
}
