package timeblock

import (
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/httperr"
)

const (
	TypeUnavailable = "unavailable"
	TypeBreak       = "break"
	TypeLunch       = "lunch"
	TypePersonal    = "personal"
	TypeMaintenance = "maintenance"
)

var validTypes = map[string]bool{
	TypeUnavailable: true,
	TypeBreak:       true,
	TypeLunch:       true,
	TypePersonal:    true,
	TypeMaintenance: true,
}

func IsValidType(blockType string) bool {
	return validTypes[blockType]
}

// Validate covers the creation/update invariants. Blocks on business-closed
// days are allowed: they are groomer-availability records independent of the
// shop calendar and simply have no effect on slot generation there.
func Validate(start, end time.Time, blockType string) error {
	if !IsValidType(blockType) {
		return httperr.ErrValidation("invalid_block_type")
	}
	if !start.Before(end) {
		return httperr.ErrValidation("start_not_before_end")
	}
	return nil
}
