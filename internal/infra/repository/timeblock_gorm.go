package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apdomain "github.com/kenzychew/pet-app-sub000/internal/domain/appointment"
	domain "github.com/kenzychew/pet-app-sub000/internal/domain/timeblock"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/models"
)

type TimeBlockGormRepository struct {
	db *gorm.DB
}

func NewTimeBlockGormRepository(db *gorm.DB) *TimeBlockGormRepository {
	return &TimeBlockGormRepository{db: db}
}

// A block may not cover booked time, and may not double-block existing
// blocks.
func assertBlockFree(
	tx *gorm.DB,
	groomerID uint,
	start time.Time,
	end time.Time,
	excludeBlockID uint,
) error {

	var count int64
	if err := tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"groomer_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			groomerID, apdomain.OccupyingStatuses(), end, start,
		).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrConflict("appointment_conflict")
	}

	q := tx.
		Model(&models.TimeBlock{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"groomer_id = ? AND start_time < ? AND end_time > ?",
			groomerID, end, start,
		)
	if excludeBlockID != 0 {
		q = q.Where("id <> ?", excludeBlockID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrConflict("block_overlap")
	}

	return nil
}

func (r *TimeBlockGormRepository) CreateTimeBlock(
	ctx context.Context,
	tb *models.TimeBlock,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertBlockFree(tx, tb.GroomerID, tb.StartTime, tb.EndTime, 0); err != nil {
			return err
		}
		return tx.Create(tb).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrConflict("block_overlap")
	}
	return err
}

func (r *TimeBlockGormRepository) UpdateTimeBlock(
	ctx context.Context,
	tb *models.TimeBlock,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertBlockFree(tx, tb.GroomerID, tb.StartTime, tb.EndTime, tb.ID); err != nil {
			return err
		}
		return tx.Save(tb).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrConflict("block_overlap")
	}
	return err
}

// Hard delete: blocks carry no audit requirement, unlike appointments.
func (r *TimeBlockGormRepository) DeleteTimeBlock(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.TimeBlock{}, id).Error
}

func (r *TimeBlockGormRepository) GetTimeBlockByID(
	ctx context.Context,
	id uint,
) (*models.TimeBlock, error) {

	var tb models.TimeBlock
	if err := r.db.WithContext(ctx).First(&tb, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("time_block_not_found")
		}
		return nil, err
	}
	return &tb, nil
}

func (r *TimeBlockGormRepository) ListTimeBlocksForGroomer(
	ctx context.Context,
	groomerID uint,
) ([]models.TimeBlock, error) {

	var blocks []models.TimeBlock
	if err := r.db.WithContext(ctx).
		Where("groomer_id = ?", groomerID).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *TimeBlockGormRepository) ListTimeBlocksForRange(
	ctx context.Context,
	groomerID uint,
	start time.Time,
	end time.Time,
) ([]models.TimeBlock, error) {

	var blocks []models.TimeBlock
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time").
		Where(
			"groomer_id = ? AND start_time < ? AND end_time > ?",
			groomerID, end, start,
		).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// Compile-time check
var _ domain.Repository = (*TimeBlockGormRepository)(nil)
