package appointment

import (
	"context"

	"github.com/kenzychew/pet-app-sub000/internal/audit"
	domain "github.com/kenzychew/pet-app-sub000/internal/domain/appointment"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/models"
)

type AcknowledgeAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAcknowledgeAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
) *AcknowledgeAppointment {
	return &AcknowledgeAppointment{
		repo:  repo,
		audit: auditD,
	}
}

func (uc *AcknowledgeAppointment) Execute(
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

	if ap.GroomerAcknowledged {
		// idempotent: acknowledging twice is fine
		return ap, nil
	}

	domain.Acknowledge(ap)

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &groomerID,
		Action:   "appointment_acknowledged",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
