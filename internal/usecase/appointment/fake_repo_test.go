package appointment

import (
	"context"
	"time"

	domain "github.com/kenzychew/pet-app-sub000/internal/domain/appointment"
	"github.com/kenzychew/pet-app-sub000/internal/domain/schedule"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/models"
)

// fakeRepo is an in-memory stand-in mirroring the transactional conflict
// behavior of the gorm repository.
type fakeRepo struct {
	users        map[uint]*models.User
	pets         map[uint]*models.Pet
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        map[uint]*models.User{},
		pets:         map[uint]*models.Pet{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (f *fakeRepo) addUser(id uint, role string) *models.User {
	u := &models.User{ID: id, Name: "u", Email: "u@example.com", Role: role}
	f.users[id] = u
	return u
}

func (f *fakeRepo) addPet(id, ownerID uint) *models.Pet {
	p := &models.Pet{ID: id, OwnerID: ownerID, Name: "Biscuit"}
	f.pets[id] = p
	return p
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, httperr.ErrNotFound("user_not_found")
	}
	return u, nil
}

func (f *fakeRepo) GetPetByID(_ context.Context, id uint) (*models.Pet, error) {
	p, ok := f.pets[id]
	if !ok {
		return nil, httperr.ErrNotFound("pet_not_found")
	}
	return p, nil
}

func (f *fakeRepo) hasConflict(ap *models.Appointment, excludeID uint) bool {
	candidate := schedule.Interval{Start: ap.StartTime, End: ap.EndTime}
	var records []schedule.Record
	for _, other := range f.appointments {
		if other.GroomerID != ap.GroomerID {
			continue
		}
		if !domain.Occupying(domain.Status(other.Status)) {
			continue
		}
		records = append(records, schedule.Record{
			ID:       other.ID,
			Interval: schedule.Interval{Start: other.StartTime, End: other.EndTime},
		})
	}
	return schedule.HasConflict(candidate, records, excludeID)
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.hasConflict(ap, 0) {
		return httperr.ErrConflict("time_conflict")
	}
	ap.ID = f.nextID
	f.nextID++
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) RescheduleAppointment(_ context.Context, ap *models.Appointment) error {
	if f.hasConflict(ap, ap.ID) {
		return httperr.ErrConflict("time_conflict")
	}
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) ListAppointmentsForOwner(_ context.Context, ownerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.OwnerID == ownerID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForGroomer(_ context.Context, groomerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.GroomerID == groomerID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListOccupyingForRange(_ context.Context, groomerID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.GroomerID != groomerID {
			continue
		}
		if !domain.Occupying(domain.Status(ap.Status)) {
			continue
		}
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) HasFutureOccupyingForPet(_ context.Context, petID uint, now time.Time) (bool, error) {
	for _, ap := range f.appointments {
		if ap.PetID == petID && domain.Occupying(domain.Status(ap.Status)) && ap.StartTime.After(now) {
			return true, nil
		}
	}
	return false, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
