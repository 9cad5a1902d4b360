package timeblock

import (
	"context"
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/models"
)

type Repository interface {
	// CreateTimeBlock and UpdateTimeBlock run the conflict check (against
	// occupying appointments and other blocks) and the write in one
	// transaction.
	CreateTimeBlock(
		ctx context.Context,
		tb *models.TimeBlock,
	) error

	UpdateTimeBlock(
		ctx context.Context,
		tb *models.TimeBlock,
	) error

	DeleteTimeBlock(
		ctx context.Context,
		id uint,
	) error

	GetTimeBlockByID(
		ctx context.Context,
		id uint,
	) (*models.TimeBlock, error)

	ListTimeBlocksForGroomer(
		ctx context.Context,
		groomerID uint,
	) ([]models.TimeBlock, error)

	ListTimeBlocksForRange(
		ctx context.Context,
		groomerID uint,
		start time.Time,
		end time.Time,
	) ([]models.TimeBlock, error)
}
