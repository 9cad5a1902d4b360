package appointment

import (
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/models"
)

// Acknowledge is idempotent and changes no status.
func Acknowledge(ap *models.Appointment) {
	ap.GroomerAcknowledged = true
}

func StartService(ap *models.Appointment, now time.Time) error {
	if err := CanStart(Status(ap.Status), ap.GroomerAcknowledged); err != nil {
		return err
	}

	ap.Status = string(StatusInProgress)
	ap.ActualStartTime = &now
	return nil
}

func CompleteService(ap *models.Appointment, now time.Time, notes string) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.ActualEndTime = &now
	if ap.ActualStartTime != nil {
		mins := int(now.Sub(*ap.ActualStartTime).Round(time.Minute) / time.Minute)
		ap.ActualDurationMin = &mins
	}
	if notes != "" {
		ap.Notes = notes
	}
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	return nil
}

// Reschedule moves the appointment and recomputes the end from the new
// start. A previously swept-to-completed appointment moved to the future
// becomes confirmed again. Actuals are cleared since the service has not
// happened at the new time.
func Reschedule(ap *models.Appointment, newStart time.Time, durationMin int) {
	ap.StartTime = newStart
	ap.EndTime = newStart.Add(time.Duration(durationMin) * time.Minute)
	ap.DurationMin = durationMin
	ap.Status = string(StatusConfirmed)
	ap.ActualStartTime = nil
	ap.ActualEndTime = nil
	ap.ActualDurationMin = nil
}

// Sweep lazily completes a past-due confirmed/in-progress appointment.
// Cancelled and no-show are manual terminals and are never overridden.
// Reports whether the record changed; a second sweep of the same row is a
// content no-op, so concurrent sweeps are safe.
func Sweep(ap *models.Appointment, now time.Time) bool {
	if !Occupying(Status(ap.Status)) {
		return false
	}
	if !ap.EndTime.Before(now) {
		return false
	}

	if ap.Status == string(StatusInProgress) {
		// mid-service: backfill actuals from the scheduled end
		end := ap.EndTime
		ap.ActualEndTime = &end
		if ap.ActualStartTime != nil {
			mins := int(end.Sub(*ap.ActualStartTime).Round(time.Minute) / time.Minute)
			ap.ActualDurationMin = &mins
		}
	}

	ap.Status = string(StatusCompleted)
	return true
}
