package schedule

import "time"

// Fixed weekly operating template, in the shop's local timezone.
// Wednesday is closed.
type DayHours struct {
	StartHour int
	EndHour   int
}

var weeklyHours = map[time.Weekday]DayHours{
	time.Sunday:   {StartHour: 10, EndHour: 19},
	time.Monday:   {StartHour: 11, EndHour: 20},
	time.Tuesday:  {StartHour: 11, EndHour: 20},
	time.Thursday: {StartHour: 11, EndHour: 20},
	time.Friday:   {StartHour: 11, EndHour: 20},
	time.Saturday: {StartHour: 10, EndHour: 19},
}

func IsBusinessDay(date time.Time) bool {
	_, ok := weeklyHours[date.Weekday()]
	return ok
}

func BusinessHours(date time.Time) (DayHours, bool) {
	h, ok := weeklyHours[date.Weekday()]
	return h, ok
}

// DayWindow resolves the concrete open/close instants for a calendar date in
// the business timezone. ok is false on closed days.
func DayWindow(date time.Time, loc *time.Location) (open, closing time.Time, ok bool) {
	h, found := BusinessHours(date)
	if !found {
		return time.Time{}, time.Time{}, false
	}

	y, m, d := date.In(loc).Date()
	open = time.Date(y, m, d, h.StartHour, 0, 0, 0, loc)
	closing = time.Date(y, m, d, h.EndHour, 0, 0, 0, loc)
	return open, closing, true
}
