package availability

import (
	"context"
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/cache"
	apdomain "github.com/kenzychew/pet-app-sub000/internal/domain/appointment"
	"github.com/kenzychew/pet-app-sub000/internal/domain/schedule"
	tbdomain "github.com/kenzychew/pet-app-sub000/internal/domain/timeblock"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/models"
)

type GetAvailability struct {
	appointments apdomain.Repository
	blocks       tbdomain.Repository
	cache        *cache.SlotCache
	loc          *time.Location
}

func NewGetAvailability(
	appointments apdomain.Repository,
	blocks tbdomain.Repository,
	slotCache *cache.SlotCache,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{
		appointments: appointments,
		blocks:       blocks,
		cache:        slotCache,
		loc:          loc,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	groomerID uint,
	date time.Time,
	durationMin int,
) ([]schedule.Slot, error) {

	if !schedule.IsSupportedDuration(durationMin) {
		return nil, httperr.ErrValidation("unsupported_duration")
	}

	groomer, err := uc.appointments.GetUserByID(ctx, groomerID)
	if err != nil || groomer.Role != models.RoleGroomer {
		return nil, httperr.ErrNotFound("groomer_not_found")
	}

	day := date.In(uc.loc).Format("2006-01-02")
	if cached, ok := uc.cache.Get(ctx, groomerID, day, durationMin); ok {
		return cached, nil
	}

	y, m, d := date.In(uc.loc).Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, uc.loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	aps, err := uc.appointments.ListOccupyingForRange(ctx, groomerID, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		return nil, err
	}
	tbs, err := uc.blocks.ListTimeBlocksForRange(ctx, groomerID, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		return nil, err
	}

	slots, err := schedule.AvailableSlots(
		date,
		uc.loc,
		durationMin,
		appointmentRecords(aps),
		blockRecords(tbs),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, groomerID, day, durationMin, slots)
	return slots, nil
}

func appointmentRecords(aps []models.Appointment) []schedule.Record {
	out := make([]schedule.Record, 0, len(aps))
	for _, ap := range aps {
		out = append(out, schedule.Record{
			ID:       ap.ID,
			Interval: schedule.Interval{Start: ap.StartTime, End: ap.EndTime},
		})
	}
	return out
}

func blockRecords(tbs []models.TimeBlock) []schedule.Record {
	out := make([]schedule.Record, 0, len(tbs))
	for _, tb := range tbs {
		out = append(out, schedule.Record{
			ID:       tb.ID,
			Interval: schedule.Interval{Start: tb.StartTime, End: tb.EndTime},
		})
	}
	return out
}
