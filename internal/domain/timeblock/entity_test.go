package timeblock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kenzychew/pet-app-sub000/internal/httperr"
)

func TestIsValidType(t *testing.T) {
	for _, bt := range []string{TypeUnavailable, TypeBreak, TypeLunch, TypePersonal, TypeMaintenance} {
		assert.True(t, IsValidType(bt))
	}
	assert.False(t, IsValidType("vacation"))
	assert.False(t, IsValidType(""))
}

func TestValidate(t *testing.T) {
	start := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, Validate(start, start.Add(time.Hour), TypeLunch))

	err := Validate(start, start.Add(time.Hour), "vacation")
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	// zero-length and inverted ranges are rejected
	assert.Error(t, Validate(start, start, TypeLunch))
	assert.Error(t, Validate(start, start.Add(-time.Hour), TypeLunch))
}

func TestValidateAllowsClosedDays(t *testing.T) {
	// Wednesday: the shop is closed but a groomer may still block the day
	wednesday := time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC)
	assert.NoError(t, Validate(wednesday, wednesday.Add(8*time.Hour), TypeUnavailable))
}
