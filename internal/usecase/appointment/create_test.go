package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/kenzychew/pet-app-sub000/internal/domain/appointment"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
)

func businessLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Singapore")
	require.NoError(t, err)
	return loc
}

// futureBusinessStart picks an open-day 14:00 local at least two days out, so
// it clears both the future-start rule and the modification cutoff.
func futureBusinessStart(loc *time.Location) time.Time {
	d := time.Now().In(loc).AddDate(0, 0, 2)
	for d.Weekday() == time.Wednesday {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 14, 0, 0, 0, loc).UTC()
}

func seededRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.addUser(1, "owner")
	repo.addUser(2, "groomer")
	repo.addPet(10, 1)
	return repo
}

func TestCreateAppointmentBasic(t *testing.T) {
	loc := businessLoc(t)
	repo := seededRepo()
	uc := NewCreateAppointment(repo, nil, nil, nil, loc)

	start := futureBusinessStart(loc)
	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID:     1,
		PetID:       10,
		GroomerID:   2,
		ServiceType: domain.ServiceBasic,
		Start:       start,
	})
	require.NoError(t, err)

	assert.Equal(t, start, ap.StartTime)
	assert.Equal(t, start.Add(time.Hour), ap.EndTime)
	assert.Equal(t, 60, ap.DurationMin)
	assert.Equal(t, "confirmed", ap.Status)
	assert.Equal(t, 60.0, ap.TotalCost)
	assert.Equal(t, domain.PricingPending, ap.PricingStatus)
	require.Len(t, ap.PriceHistory, 1)
	assert.NotZero(t, ap.ID)
}

func TestCreateAppointmentFullDuration(t *testing.T) {
	loc := businessLoc(t)
	repo := seededRepo()
	uc := NewCreateAppointment(repo, nil, nil, nil, loc)

	start := futureBusinessStart(loc)
	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID:     1,
		PetID:       10,
		GroomerID:   2,
		ServiceType: domain.ServiceFull,
		Start:       start,
	})
	require.NoError(t, err)

	assert.Equal(t, start.Add(2*time.Hour), ap.EndTime)
	assert.Equal(t, 120, ap.DurationMin)
	assert.Equal(t, 120.0, ap.TotalCost)
}

func TestCreateAppointmentConflictRejected(t *testing.T) {
	loc := businessLoc(t)
	repo := seededRepo()
	uc := NewCreateAppointment(repo, nil, nil, nil, loc)

	start := futureBusinessStart(loc)
	in := CreateAppointmentInput{
		OwnerID:     1,
		PetID:       10,
		GroomerID:   2,
		ServiceType: domain.ServiceBasic,
		Start:       start,
	}

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// same groomer, overlapping window
	in.Start = start.Add(30 * time.Minute)
	_, err = uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
}

func TestCreateAppointmentBackToBackAllowed(t *testing.T) {
	loc := businessLoc(t)
	repo := seededRepo()
	uc := NewCreateAppointment(repo, nil, nil, nil, loc)

	start := futureBusinessStart(loc)
	in := CreateAppointmentInput{
		OwnerID:     1,
		PetID:       10,
		GroomerID:   2,
		ServiceType: domain.ServiceBasic,
		Start:       start,
	}

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	in.Start = start.Add(time.Hour)
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateAppointmentInvalidService(t *testing.T) {
	loc := businessLoc(t)
	uc := NewCreateAppointment(seededRepo(), nil, nil, nil, loc)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID:     1,
		PetID:       10,
		GroomerID:   2,
		ServiceType: "deluxe",
		Start:       futureBusinessStart(loc),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}

func TestCreateAppointmentNotPetOwner(t *testing.T) {
	loc := businessLoc(t)
	repo := seededRepo()
	repo.addUser(3, "owner")
	uc := NewCreateAppointment(repo, nil, nil, nil, loc)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID:     3, // pet 10 belongs to owner 1
		PetID:       10,
		GroomerID:   2,
		ServiceType: domain.ServiceBasic,
		Start:       futureBusinessStart(loc),
	})
	require.Error(t, err)
	assert.Equal(t, "not_pet_owner", httperr.CodeOf(err))
}

func TestCreateAppointmentGroomerRoleRequired(t *testing.T) {
	loc := businessLoc(t)
	repo := seededRepo()
	repo.addUser(4, "owner") // not a groomer
	uc := NewCreateAppointment(repo, nil, nil, nil, loc)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID:     1,
		PetID:       10,
		GroomerID:   4,
		ServiceType: domain.ServiceBasic,
		Start:       futureBusinessStart(loc),
	})
	require.Error(t, err)
	assert.Equal(t, "groomer_not_found", httperr.CodeOf(err))
}

func TestCreateAppointmentPastStartRejected(t *testing.T) {
	loc := businessLoc(t)
	uc := NewCreateAppointment(seededRepo(), nil, nil, nil, loc)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID:     1,
		PetID:       10,
		GroomerID:   2,
		ServiceType: domain.ServiceBasic,
		Start:       time.Now().UTC().Add(-time.Hour),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindPolicy))
}

func TestCreateAppointmentClosedDayRejected(t *testing.T) {
	loc := businessLoc(t)
	uc := NewCreateAppointment(seededRepo(), nil, nil, nil, loc)

	d := time.Now().In(loc).AddDate(0, 0, 2)
	for d.Weekday() != time.Wednesday {
		d = d.AddDate(0, 0, 1)
	}
	start := time.Date(d.Year(), d.Month(), d.Day(), 14, 0, 0, 0, loc)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID:     1,
		PetID:       10,
		GroomerID:   2,
		ServiceType: domain.ServiceBasic,
		Start:       start,
	})
	require.Error(t, err)
	assert.Equal(t, "business_closed", httperr.CodeOf(err))
}

func TestCreateAppointmentMustEndBeforeClosing(t *testing.T) {
	loc := businessLoc(t)
	uc := NewCreateAppointment(seededRepo(), nil, nil, nil, loc)

	// 19:00 start for a 2h service overruns every closing time
	d := time.Now().In(loc).AddDate(0, 0, 2)
	for d.Weekday() == time.Wednesday {
		d = d.AddDate(0, 0, 1)
	}
	start := time.Date(d.Year(), d.Month(), d.Day(), 19, 0, 0, 0, loc)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID:     1,
		PetID:       10,
		GroomerID:   2,
		ServiceType: domain.ServiceFull,
		Start:       start,
	})
	require.Error(t, err)
	assert.Equal(t, "outside_business_hours", httperr.CodeOf(err))
}
