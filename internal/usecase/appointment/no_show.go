package appointment

import (
	"context"
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/audit"
	"github.com/kenzychew/pet-app-sub000/internal/cache"
	domain "github.com/kenzychew/pet-app-sub000/internal/domain/appointment"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/models"
)

type MarkNoShow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.SlotCache
	loc   *time.Location
}

func NewMarkNoShow(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	slotCache *cache.SlotCache,
	loc *time.Location,
) *MarkNoShow {
	return &MarkNoShow{
		repo:  repo,
		audit: auditD,
		cache: slotCache,
		loc:   loc,
	}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	groomerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap.GroomerID != groomerID {
		return nil, httperr.ErrAuthorization("not_assigned_groomer")
	}

	if err := domain.MarkNoShow(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDays(ctx, ap.GroomerID, dayKey(ap.StartTime, uc.loc))

	uc.audit.Dispatch(audit.Event{
		UserID:   &groomerID,
		Action:   "appointment_no_show",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
