package handlers

import (
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/config"
	"github.com/kenzychew/pet-app-sub000/internal/timezone"
)

// Requests carry wall-clock times in the shop's timezone; everything past
// the handlers is UTC.

func businessLocation(cfg *config.Config) *time.Location {
	return timezone.Location(cfg.BusinessTZ)
}

func parseDateIn(loc *time.Location, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

func parseDateTimeIn(loc *time.Location, dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, loc)
}
