package repositories

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChipUniqueConflictMapsColumn(t *testing.T) {
	iccidErr := errors.New("UNIQUE constraint failed: chips.iccid")
	assert.ErrorIs(t, chipUniqueConflict(iccidErr), ErrIccidConflict)

	numberErr := errors.New("UNIQUE constraint failed: chips.number")
	assert.ErrorIs(t, chipUniqueConflict(numberErr), ErrChipNumberConflict)

	// Unrecognized violations fall back to the number sentinel.
	otherErr := errors.New("UNIQUE constraint failed")
	assert.ErrorIs(t, chipUniqueConflict(otherErr), ErrChipNumberConflict)
}
