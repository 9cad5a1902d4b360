package appointment

import (
	"context"
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/models"
)

type Repository interface {
	// -------- Collaborator lookups --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetPetByID(
		ctx context.Context,
		id uint,
	) (*models.Pet, error)

	// -------- Appointment (create / reschedule) --------
	// Both run the conflict check and the write in one transaction; the
	// storage-level exclusion constraint backstops the check.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	RescheduleAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Reads (auto-complete sweep applied) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointmentsForOwner(
		ctx context.Context,
		ownerID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForGroomer(
		ctx context.Context,
		groomerID uint,
	) ([]models.Appointment, error)

	// -------- Conflict inputs for slot generation --------
	ListOccupyingForRange(
		ctx context.Context,
		groomerID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	HasFutureOccupyingForPet(
		ctx context.Context,
		petID uint,
		now time.Time,
	) (bool, error)
}
