package timeblock

import (
	"context"
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/audit"
	"github.com/kenzychew/pet-app-sub000/internal/cache"
	domain "github.com/kenzychew/pet-app-sub000/internal/domain/timeblock"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/models"
)

type UpdateTimeBlockInput struct {
	GroomerID   uint
	TimeBlockID uint

	Start     time.Time
	End       time.Time
	BlockType string
	Reason    string
}

type UpdateTimeBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.SlotCache
	loc   *time.Location
}

func NewUpdateTimeBlock(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	slotCache *cache.SlotCache,
	loc *time.Location,
) *UpdateTimeBlock {
	return &UpdateTimeBlock{
		repo:  repo,
		audit: auditD,
		cache: slotCache,
		loc:   loc,
	}
}

func (uc *UpdateTimeBlock) Execute(
	ctx context.Context,
	in UpdateTimeBlockInput,
) (*models.TimeBlock, error) {

	tb, err := uc.repo.GetTimeBlockByID(ctx, in.TimeBlockID)
	if err != nil {
		return nil, err
	}
	if tb.GroomerID != in.GroomerID {
		return nil, httperr.ErrAuthorization("not_block_owner")
	}

	start := tb.StartTime
	if !in.Start.IsZero() {
		start = in.Start.UTC()
	}
	end := tb.EndTime
	if !in.End.IsZero() {
		end = in.End.UTC()
	}
	blockType := tb.BlockType
	if in.BlockType != "" {
		blockType = in.BlockType
	}

	if err := domain.Validate(start, end, blockType); err != nil {
		return nil, err
	}

	oldDay := tb.StartTime.In(uc.loc).Format("2006-01-02")

	tb.StartTime = start
	tb.EndTime = end
	tb.BlockType = blockType
	if in.Reason != "" {
		tb.Reason = in.Reason
	}

	// same conflict re-validation as create, excluding the block's own row
	if err := uc.repo.UpdateTimeBlock(ctx, tb); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDays(ctx, tb.GroomerID, oldDay, tb.StartTime.In(uc.loc).Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.GroomerID,
		Action:   "time_block_updated",
		Entity:   "time_block",
		EntityID: &tb.ID,
	})

	return tb, nil
}
