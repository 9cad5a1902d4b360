package appointment

import (
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/httperr"
)

type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

const (
	PricingPending = "pending"
	PricingFinal   = "final"
)

// ModificationCutoff is the owner-side reschedule/cancel boundary.
const ModificationCutoff = 24 * time.Hour

func InitialStatus() Status {
	return StatusConfirmed
}

// Occupying statuses block the groomer's calendar. Cancelled, completed and
// no-show never conflict with new bookings.
func Occupying(s Status) bool {
	return s == StatusConfirmed || s == StatusInProgress
}

func OccupyingStatuses() []string {
	return []string{string(StatusConfirmed), string(StatusInProgress)}
}

// CanModify is true strictly beyond the cutoff; exactly 24h out is false.
func CanModify(startTime, now time.Time) bool {
	return startTime.Sub(now) > ModificationCutoff
}

func CanCancel(current Status) error {
	if current != StatusConfirmed && current != StatusInProgress {
		return httperr.ErrPolicy("invalid_state")
	}
	return nil
}

func CanMarkNoShow(current Status) error {
	if current != StatusConfirmed && current != StatusInProgress {
		return httperr.ErrPolicy("invalid_state")
	}
	return nil
}

func CanStart(current Status, acknowledged bool) error {
	if current != StatusConfirmed {
		return httperr.ErrPolicy("invalid_state")
	}
	if !acknowledged {
		return httperr.ErrPolicy("not_acknowledged")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusInProgress {
		return httperr.ErrPolicy("invalid_state")
	}
	return nil
}
