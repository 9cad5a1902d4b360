package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/models"
)

type fakeAppointmentRepo struct {
	users     map[uint]*models.User
	occupying []models.Appointment
}

func (f *fakeAppointmentRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, httperr.ErrNotFound("user_not_found")
	}
	return u, nil
}

func (f *fakeAppointmentRepo) GetPetByID(context.Context, uint) (*models.Pet, error) {
	return nil, httperr.ErrNotFound("pet_not_found")
}

func (f *fakeAppointmentRepo) CreateAppointment(context.Context, *models.Appointment) error {
	return nil
}

func (f *fakeAppointmentRepo) RescheduleAppointment(context.Context, *models.Appointment) error {
	return nil
}

func (f *fakeAppointmentRepo) SaveAppointment(context.Context, *models.Appointment) error {
	return nil
}

func (f *fakeAppointmentRepo) GetAppointmentByID(context.Context, uint) (*models.Appointment, error) {
	return nil, httperr.ErrNotFound("appointment_not_found")
}

func (f *fakeAppointmentRepo) ListAppointmentsForOwner(context.Context, uint) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) ListAppointmentsForGroomer(context.Context, uint) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) ListOccupyingForRange(_ context.Context, groomerID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.occupying {
		if ap.GroomerID == groomerID && ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) HasFutureOccupyingForPet(context.Context, uint, time.Time) (bool, error) {
	return false, nil
}

type fakeBlockRepo struct {
	blocks []models.TimeBlock
}

func (f *fakeBlockRepo) CreateTimeBlock(context.Context, *models.TimeBlock) error { return nil }
func (f *fakeBlockRepo) UpdateTimeBlock(context.Context, *models.TimeBlock) error { return nil }
func (f *fakeBlockRepo) DeleteTimeBlock(context.Context, uint) error              { return nil }

func (f *fakeBlockRepo) GetTimeBlockByID(context.Context, uint) (*models.TimeBlock, error) {
	return nil, httperr.ErrNotFound("time_block_not_found")
}

func (f *fakeBlockRepo) ListTimeBlocksForGroomer(context.Context, uint) ([]models.TimeBlock, error) {
	return nil, nil
}

func (f *fakeBlockRepo) ListTimeBlocksForRange(_ context.Context, groomerID uint, start, end time.Time) ([]models.TimeBlock, error) {
	var out []models.TimeBlock
	for _, tb := range f.blocks {
		if tb.GroomerID == groomerID && tb.StartTime.Before(end) && tb.EndTime.After(start) {
			out = append(out, tb)
		}
	}
	return out, nil
}

func sgt(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Singapore")
	require.NoError(t, err)
	return loc
}

// futureOpenDay returns an open-day date at least two days out.
func futureOpenDay(loc *time.Location) time.Time {
	d := time.Now().In(loc).AddDate(0, 0, 2)
	for d.Weekday() == time.Wednesday {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

func newFixture() (*fakeAppointmentRepo, *fakeBlockRepo) {
	return &fakeAppointmentRepo{
		users: map[uint]*models.User{
			2: {ID: 2, Role: models.RoleGroomer},
			1: {ID: 1, Role: models.RoleOwner},
		},
	}, &fakeBlockRepo{}
}

func TestGetAvailabilityOpenDay(t *testing.T) {
	loc := sgt(t)
	apRepo, tbRepo := newFixture()
	uc := NewGetAvailability(apRepo, tbRepo, nil, loc)

	date := futureOpenDay(loc)
	slots, err := uc.Execute(context.Background(), 2, date, 60)
	require.NoError(t, err)

	// 9 hourly slots on weekdays (11-20), 9 on weekends (10-19)
	assert.Len(t, slots, 9)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start))
	}
}

func TestGetAvailabilityExcludesBookingsAndBlocks(t *testing.T) {
	loc := sgt(t)
	apRepo, tbRepo := newFixture()

	date := futureOpenDay(loc)
	y, m, d := date.Date()
	booked := time.Date(y, m, d, 14, 0, 0, 0, loc).UTC()
	blocked := time.Date(y, m, d, 16, 0, 0, 0, loc).UTC()

	apRepo.occupying = []models.Appointment{{
		ID: 1, GroomerID: 2, Status: "confirmed",
		StartTime: booked, EndTime: booked.Add(time.Hour),
	}}
	tbRepo.blocks = []models.TimeBlock{{
		ID: 1, GroomerID: 2,
		StartTime: blocked, EndTime: blocked.Add(time.Hour),
	}}

	uc := NewGetAvailability(apRepo, tbRepo, nil, loc)
	slots, err := uc.Execute(context.Background(), 2, date, 60)
	require.NoError(t, err)

	assert.Len(t, slots, 7)
	for _, s := range slots {
		assert.NotEqual(t, booked, s.Start)
		assert.NotEqual(t, blocked, s.Start)
	}
}

func TestGetAvailabilityClosedDay(t *testing.T) {
	loc := sgt(t)
	apRepo, tbRepo := newFixture()
	uc := NewGetAvailability(apRepo, tbRepo, nil, loc)

	d := time.Now().In(loc).AddDate(0, 0, 1)
	for d.Weekday() != time.Wednesday {
		d = d.AddDate(0, 0, 1)
	}
	date := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)

	slots, err := uc.Execute(context.Background(), 2, date, 60)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailabilityUnsupportedDuration(t *testing.T) {
	loc := sgt(t)
	apRepo, tbRepo := newFixture()
	uc := NewGetAvailability(apRepo, tbRepo, nil, loc)

	_, err := uc.Execute(context.Background(), 2, futureOpenDay(loc), 45)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}

func TestGetAvailabilityGroomerValidation(t *testing.T) {
	loc := sgt(t)
	apRepo, tbRepo := newFixture()
	uc := NewGetAvailability(apRepo, tbRepo, nil, loc)
	date := futureOpenDay(loc)

	_, err := uc.Execute(context.Background(), 99, date, 60)
	require.Error(t, err)
	assert.Equal(t, "groomer_not_found", httperr.CodeOf(err))

	// an owner id is not a groomer
	_, err = uc.Execute(context.Background(), 1, date, 60)
	require.Error(t, err)
	assert.Equal(t, "groomer_not_found", httperr.CodeOf(err))
}
