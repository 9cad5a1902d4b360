package appointment

import (
	"context"

	domain "github.com/kenzychew/pet-app-sub000/internal/domain/appointment"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/models"
)

// ListAppointments returns the caller's view: owners see their bookings,
// groomers their assignments. The read path applies the auto-complete
// sweep, so statuses may change between calls.
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	callerID uint,
	callerRole string,
) ([]models.Appointment, error) {

	switch callerRole {
	case models.RoleOwner:
		return uc.repo.ListAppointmentsForOwner(ctx, callerID)
	case models.RoleGroomer:
		return uc.repo.ListAppointmentsForGroomer(ctx, callerID)
	default:
		return nil, httperr.ErrAuthorization("unknown_role")
	}
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	callerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if ap.OwnerID != callerID && ap.GroomerID != callerID {
		return nil, httperr.ErrAuthorization("not_involved")
	}

	return ap, nil
}
