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

// Zero-valued fields keep the appointment's current value.
type RescheduleAppointmentInput struct {
	OwnerID       uint
	AppointmentID uint

	PetID       uint
	GroomerID   uint
	ServiceType string
	Start       time.Time
}

type RescheduleAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
	cache  *cache.SlotCache
	loc    *time.Location
}

func NewRescheduleAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	notifyD *notify.Dispatcher,
	slotCache *cache.SlotCache,
	loc *time.Location,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:   repo,
		audit:  auditD,
		notify: notifyD,
		cache:  slotCache,
		loc:    loc,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if ap.OwnerID != in.OwnerID {
		return nil, httperr.ErrAuthorization("not_appointment_owner")
	}

	now := time.Now().UTC()
	if !domain.CanModify(ap.StartTime, now) {
		return nil, httperr.ErrPolicy("modification_cutoff")
	}

	oldGroomerID := ap.GroomerID
	oldDay := dayKey(ap.StartTime, uc.loc)

	if in.PetID != 0 && in.PetID != ap.PetID {
		pet, err := uc.repo.GetPetByID(ctx, in.PetID)
		if err != nil {
			return nil, err
		}
		if pet.OwnerID != in.OwnerID {
			return nil, httperr.ErrAuthorization("not_pet_owner")
		}
		ap.PetID = pet.ID
	}

	if in.GroomerID != 0 && in.GroomerID != ap.GroomerID {
		groomer, err := uc.repo.GetUserByID(ctx, in.GroomerID)
		if err != nil || groomer.Role != models.RoleGroomer {
			return nil, httperr.ErrNotFound("groomer_not_found")
		}
		ap.GroomerID = groomer.ID
	}

	serviceType := ap.ServiceType
	if in.ServiceType != "" {
		serviceType = in.ServiceType
	}
	durationMin, err := domain.Duration(serviceType)
	if err != nil {
		return nil, err
	}
	ap.ServiceType = serviceType

	start := ap.StartTime
	if !in.Start.IsZero() {
		start = in.Start.UTC()
	}
	end := start.Add(time.Duration(durationMin) * time.Minute)

	if err := validateWindow(start, end, now, uc.loc); err != nil {
		return nil, err
	}

	domain.Reschedule(ap, start, durationMin)

	// conflict re-check excludes the appointment's own row
	if err := uc.repo.RescheduleAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDays(ctx, oldGroomerID, oldDay)
	uc.cache.InvalidateDays(ctx, ap.GroomerID, dayKey(ap.StartTime, uc.loc))

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})
	uc.notify.Dispatch(notify.EventBookingRescheduled, ap.ID, ap.OwnerID, ap.GroomerID)

	return ap, nil
}
