package appointment

import (
	"context"
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/audit"
	"github.com/kenzychew/pet-app-sub000/internal/cache"
	domain "github.com/kenzychew/pet-app-sub000/internal/domain/appointment"
	"github.com/kenzychew/pet-app-sub000/internal/domain/schedule"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/models"
	"github.com/kenzychew/pet-app-sub000/internal/notify"
)

type CreateAppointmentInput struct {
	OwnerID     uint
	PetID       uint
	GroomerID   uint
	ServiceType string
	Start       time.Time
}

type CreateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
	cache  *cache.SlotCache
	loc    *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	notifyD *notify.Dispatcher,
	slotCache *cache.SlotCache,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		audit:  auditD,
		notify: notifyD,
		cache:  slotCache,
		loc:    loc,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	caller, err := uc.repo.GetUserByID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != models.RoleOwner {
		return nil, httperr.ErrAuthorization("owner_role_required")
	}

	pet, err := uc.repo.GetPetByID(ctx, in.PetID)
	if err != nil {
		return nil, err
	}
	if pet.OwnerID != caller.ID {
		return nil, httperr.ErrAuthorization("not_pet_owner")
	}

	groomer, err := uc.repo.GetUserByID(ctx, in.GroomerID)
	if err != nil {
		return nil, httperr.ErrNotFound("groomer_not_found")
	}
	if groomer.Role != models.RoleGroomer {
		return nil, httperr.ErrNotFound("groomer_not_found")
	}

	durationMin, err := domain.Duration(in.ServiceType)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	start := in.Start.UTC()
	end := start.Add(time.Duration(durationMin) * time.Minute)

	if err := validateWindow(start, end, now, uc.loc); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		PetID:       pet.ID,
		OwnerID:     caller.ID,
		GroomerID:   groomer.ID,
		ServiceType: in.ServiceType,
		DurationMin: durationMin,
		StartTime:   start,
		EndTime:     end,
		Status:      string(domain.InitialStatus()),
	}
	domain.SeedBasePrice(ap, caller.ID, now)

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDays(ctx, groomer.ID, dayKey(start, uc.loc))

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})
	uc.notify.Dispatch(notify.EventBookingCreated, ap.ID, ap.OwnerID, ap.GroomerID)

	return ap, nil
}

// validateWindow enforces the future-start rule and the business calendar:
// the whole service must sit inside the day's operating hours.
func validateWindow(start, end, now time.Time, loc *time.Location) error {
	if !start.Before(end) {
		return httperr.ErrValidation("start_not_before_end")
	}
	if !start.After(now) {
		return httperr.ErrPolicy("start_in_past")
	}

	open, closing, ok := schedule.DayWindow(start.In(loc), loc)
	if !ok {
		return httperr.ErrPolicy("business_closed")
	}
	if start.Before(open) || end.After(closing) {
		return httperr.ErrPolicy("outside_business_hours")
	}
	return nil
}

func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
