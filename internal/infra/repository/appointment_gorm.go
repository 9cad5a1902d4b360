package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/kenzychew/pet-app-sub000/internal/domain/appointment"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Collaborator lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user_not_found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *AppointmentGormRepository) GetPetByID(
	ctx context.Context,
	id uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("pet_not_found")
		}
		return nil, err
	}
	return &pet, nil
}

// --------------------------------------------------
// Conflict check (both record sets, under lock)
// --------------------------------------------------

func assertNoConflicts(
	tx *gorm.DB,
	groomerID uint,
	start time.Time,
	end time.Time,
	excludeAppointmentID uint,
) error {

	q := tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"groomer_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			groomerID,
			domain.OccupyingStatuses(),
			end,
			start,
		)
	if excludeAppointmentID != 0 {
		q = q.Where("id <> ?", excludeAppointmentID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrConflict("time_conflict")
	}

	if err := tx.
		Model(&models.TimeBlock{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"groomer_id = ? AND start_time < ? AND end_time > ?",
			groomerID,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrConflict("time_blocked")
	}

	return nil
}

// --------------------------------------------------
// Appointment (create / reschedule)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoConflicts(tx, ap.GroomerID, ap.StartTime, ap.EndTime, 0); err != nil {
			return err
		}
		return tx.Create(ap).Error
	})

	// the exclusion constraint catches what two racing checks both missed
	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrConflict("time_conflict")
	}
	return err
}

func (r *AppointmentGormRepository) RescheduleAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoConflicts(tx, ap.GroomerID, ap.StartTime, ap.EndTime, ap.ID); err != nil {
			return err
		}
		return tx.Save(ap).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrConflict("time_conflict")
	}
	return err
}

func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Reads (auto-complete sweep applied at the boundary)
// --------------------------------------------------

// sweep transitions past-due confirmed/in-progress rows to completed on the
// way out. The write is idempotent; losing a race to another reader just
// makes this save a content no-op.
func (r *AppointmentGormRepository) sweep(ctx context.Context, aps []*models.Appointment) {
	now := time.Now().UTC()
	for _, ap := range aps {
		if !domain.Sweep(ap, now) {
			continue
		}
		if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
			log.Println("auto-complete sweep failed:", err)
		}
	}
}

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Owner").
		Preload("Groomer").
		Preload("PriceHistory").
		Preload("Photos").
		First(&ap, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found")
		}
		return nil, err
	}

	r.sweep(ctx, []*models.Appointment{&ap})
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.Appointment, error) {
	return r.listAppointments(ctx, "owner_id = ?", ownerID)
}

func (r *AppointmentGormRepository) ListAppointmentsForGroomer(
	ctx context.Context,
	groomerID uint,
) ([]models.Appointment, error) {
	return r.listAppointments(ctx, "groomer_id = ?", groomerID)
}

func (r *AppointmentGormRepository) listAppointments(
	ctx context.Context,
	cond string,
	id uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Groomer").
		Preload("PriceHistory").
		Where(cond, id).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	refs := make([]*models.Appointment, len(aps))
	for i := range aps {
		refs[i] = &aps[i]
	}
	r.sweep(ctx, refs)

	return aps, nil
}

// --------------------------------------------------
// Slot generation inputs
// --------------------------------------------------

func (r *AppointmentGormRepository) ListOccupyingForRange(
	ctx context.Context,
	groomerID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time").
		Where(
			"groomer_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			groomerID, domain.OccupyingStatuses(), end, start,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) HasFutureOccupyingForPet(
	ctx context.Context,
	petID uint,
	now time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"pet_id = ? AND status IN ? AND start_time > ?",
			petID, domain.OccupyingStatuses(), now,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
