package appointment

import (
	"context"
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/audit"
	domain "github.com/kenzychew/pet-app-sub000/internal/domain/appointment"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/models"
)

type StartService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewStartService(
	repo domain.Repository,
	auditD *audit.Dispatcher,
) *StartService {
	return &StartService{
		repo:  repo,
		audit: auditD,
	}
}

func (uc *StartService) Execute(
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

	now := time.Now().UTC()
	if err := domain.StartService(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &groomerID,
		Action:   "service_started",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
