package timeblock

import (
	"context"
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/audit"
	"github.com/kenzychew/pet-app-sub000/internal/cache"
	domain "github.com/kenzychew/pet-app-sub000/internal/domain/timeblock"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
)

type DeleteTimeBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.SlotCache
	loc   *time.Location
}

func NewDeleteTimeBlock(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	slotCache *cache.SlotCache,
	loc *time.Location,
) *DeleteTimeBlock {
	return &DeleteTimeBlock{
		repo:  repo,
		audit: auditD,
		cache: slotCache,
		loc:   loc,
	}
}

func (uc *DeleteTimeBlock) Execute(
	ctx context.Context,
	groomerID uint,
	timeBlockID uint,
) error {

	tb, err := uc.repo.GetTimeBlockByID(ctx, timeBlockID)
	if err != nil {
		return err
	}
	if tb.GroomerID != groomerID {
		return httperr.ErrAuthorization("not_block_owner")
	}

	if err := uc.repo.DeleteTimeBlock(ctx, tb.ID); err != nil {
		return err
	}

	uc.cache.InvalidateDays(ctx, groomerID, tb.StartTime.In(uc.loc).Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &groomerID,
		Action:   "time_block_deleted",
		Entity:   "time_block",
		EntityID: &tb.ID,
	})

	return nil
}
