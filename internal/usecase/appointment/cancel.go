package appointment

import (
	"context"
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/audit"
	"github.com/kenzychew/pet-app-sub000/internal/cache"
	domain "github.com/kenzychew/pet-app-sub000/internal/domain/appointment"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/models"
	"github.com/kenzychew/pet-app-sub000/internal/notify"
)

type CancelAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
	cache  *cache.SlotCache
	loc    *time.Location
}

func NewCancelAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	notifyD *notify.Dispatcher,
	slotCache *cache.SlotCache,
	loc *time.Location,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		audit:  auditD,
		notify: notifyD,
		cache:  slotCache,
		loc:    loc,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap.OwnerID != ownerID {
		return nil, httperr.ErrAuthorization("not_appointment_owner")
	}

	now := time.Now().UTC()
	if !domain.CanModify(ap.StartTime, now) {
		return nil, httperr.ErrPolicy("modification_cutoff")
	}

	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDays(ctx, ap.GroomerID, dayKey(ap.StartTime, uc.loc))

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})
	uc.notify.Dispatch(notify.EventBookingCancelled, ap.ID, ap.OwnerID, ap.GroomerID)

	return ap, nil
}
