package timeblock

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/audit"
	"github.com/kenzychew/pet-app-sub000/internal/cache"
	domain "github.com/kenzychew/pet-app-sub000/internal/domain/timeblock"
	"github.com/kenzychew/pet-app-sub000/internal/models"
)

type CreateTimeBlockInput struct {
	GroomerID uint
	Start     time.Time
	End       time.Time
	BlockType string
	Reason    string

	Recurrence *domain.Recurrence
}

type CreateTimeBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.SlotCache
	loc   *time.Location
}

func NewCreateTimeBlock(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	slotCache *cache.SlotCache,
	loc *time.Location,
) *CreateTimeBlock {
	return &CreateTimeBlock{
		repo:  repo,
		audit: auditD,
		cache: slotCache,
		loc:   loc,
	}
}

// Execute persists the base block and, for recurring requests, one
// independent row per matching weekday through the end date. Each occurrence
// is conflict-checked on its own; a failure mid-expansion returns the rows
// already created together with the error, never silently swallowed.
func (uc *CreateTimeBlock) Execute(
	ctx context.Context,
	in CreateTimeBlockInput,
) ([]models.TimeBlock, error) {

	if err := domain.Validate(in.Start, in.End, in.BlockType); err != nil {
		return nil, err
	}
	if in.Recurrence != nil {
		if err := in.Recurrence.Validate(); err != nil {
			return nil, err
		}
	}

	base := uc.newBlock(in, in.Start.UTC(), in.End.UTC())
	if err := uc.repo.CreateTimeBlock(ctx, base); err != nil {
		return nil, err
	}

	created := []models.TimeBlock{*base}

	if in.Recurrence != nil {
		for _, occ := range domain.Expand(in.Start, in.End, *in.Recurrence, uc.loc) {
			tb := uc.newBlock(in, occ.Start, occ.End)
			if err := uc.repo.CreateTimeBlock(ctx, tb); err != nil {
				uc.finish(ctx, in.GroomerID, created)
				return created, err
			}
			created = append(created, *tb)
		}
	}

	uc.finish(ctx, in.GroomerID, created)
	return created, nil
}

func (uc *CreateTimeBlock) newBlock(in CreateTimeBlockInput, start, end time.Time) *models.TimeBlock {
	tb := &models.TimeBlock{
		GroomerID: in.GroomerID,
		StartTime: start,
		EndTime:   end,
		BlockType: in.BlockType,
		Reason:    in.Reason,
	}

	// the stored pattern is informational; each occurrence is its own row
	if in.Recurrence != nil {
		tb.IsRecurring = true
		tb.RecurFrequency = in.Recurrence.Frequency
		tb.RecurDaysOfWeek = joinDays(in.Recurrence.DaysOfWeek)
		end := in.Recurrence.EndDate
		tb.RecurEndDate = &end
	}
	return tb
}

func (uc *CreateTimeBlock) finish(ctx context.Context, groomerID uint, created []models.TimeBlock) {
	days := make([]string, 0, len(created))
	for _, tb := range created {
		days = append(days, tb.StartTime.In(uc.loc).Format("2006-01-02"))

		id := tb.ID
		uc.audit.Dispatch(audit.Event{
			UserID:   &groomerID,
			Action:   "time_block_created",
			Entity:   "time_block",
			EntityID: &id,
		})
	}
	uc.cache.InvalidateDays(ctx, groomerID, days...)
}

func joinDays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}
