package appointment

import (
	"context"
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/audit"
	domain "github.com/kenzychew/pet-app-sub000/internal/domain/appointment"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/models"
)

type CompleteServiceInput struct {
	GroomerID     uint
	AppointmentID uint

	Notes      string
	FinalPrice *float64

	// Photos are already uploaded by the handler; attachment here is
	// metadata only, so a failed upload never blocks completion.
	Photos []models.GroomingPhoto
}

type CompleteService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteService(
	repo domain.Repository,
	auditD *audit.Dispatcher,
) *CompleteService {
	return &CompleteService{
		repo:  repo,
		audit: auditD,
	}
}

func (uc *CompleteService) Execute(
	ctx context.Context,
	in CompleteServiceInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if ap.GroomerID != in.GroomerID {
		return nil, httperr.ErrAuthorization("not_assigned_groomer")
	}

	now := time.Now().UTC()
	if err := domain.CompleteService(ap, now, in.Notes); err != nil {
		return nil, err
	}

	domain.FinalizePrice(ap, in.FinalPrice, in.GroomerID, now)
	ap.Photos = append(ap.Photos, in.Photos...)

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.GroomerID,
		Action:   "service_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
