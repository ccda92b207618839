package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet_inventory/internal/models"
	"github.com/fleet_inventory/internal/repositories"
)

func TestRecordStateChangeUpdatesMirror(t *testing.T) {
	f := newTestFixture(t)
	chip := f.createChip(t, "593990000001", "8959300000000000001")
	assert.Equal(t, models.ChipStateActive, chip.CurrentState)

	note := "reported by carrier"
	entry, err := f.states.RecordStateChange(chip.ID, models.ChipStateSuspended, &note)
	require.NoError(t, err)
	require.NotNil(t, entry.Note)
	assert.Equal(t, note, *entry.Note)

	// The denormalized current state follows the newest ledger entry.
	updated, err := f.chips.GetChipByID(chip.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ChipStateSuspended, updated.CurrentState)
}

func TestRecordStateChangeRejectsSameState(t *testing.T) {
	f := newTestFixture(t)
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	_, err := f.states.RecordStateChange(chip.ID, models.ChipStateActive, nil)
	assert.ErrorIs(t, err, repositories.ErrSameState)

	// Case and whitespace are normalized before the comparison.
	_, err = f.states.RecordStateChange(chip.ID, " active ", nil)
	assert.ErrorIs(t, err, repositories.ErrSameState)
}

func TestRecordStateChangeUnknownState(t *testing.T) {
	f := newTestFixture(t)
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	_, err := f.states.RecordStateChange(chip.ID, "VAPORIZED", nil)
	assert.ErrorIs(t, err, repositories.ErrStateNotFound)
}

func TestRecordStateChangeUnknownChip(t *testing.T) {
	f := newTestFixture(t)

	_, err := f.states.RecordStateChange(9999, models.ChipStateSuspended, nil)
	assert.ErrorIs(t, err, ErrChipNotFound)
}

func TestLostEntryCarriesLossTimestamp(t *testing.T) {
	f := newTestFixture(t)
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	entry, err := f.states.RecordStateChange(chip.ID, models.ChipStateLost, nil)
	require.NoError(t, err)
	assert.NotNil(t, entry.LostAt)

	back, err := f.states.RecordStateChange(chip.ID, models.ChipStateActive, nil)
	require.NoError(t, err)
	assert.Nil(t, back.LostAt)
}

func TestHistoryNewestFirst(t *testing.T) {
	f := newTestFixture(t)
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	_, err := f.states.RecordStateChange(chip.ID, models.ChipStateSuspended, nil)
	require.NoError(t, err)
	_, err = f.states.RecordStateChange(chip.ID, models.ChipStateActive, nil)
	require.NoError(t, err)

	history, err := f.states.History(chip.ID)
	require.NoError(t, err)
	require.Len(t, history, 3) // registration entry plus two changes
	assert.Equal(t, models.ChipStateActive, history[0].StateName)
	assert.Equal(t, models.ChipStateSuspended, history[1].StateName)
	assert.Equal(t, models.ChipStateActive, history[2].StateName)
}

func TestStateCatalogLifecycle(t *testing.T) {
	f := newTestFixture(t)

	states, err := f.states.GetStates()
	require.NoError(t, err)
	require.Len(t, states, 4) // the seeded catalog

	created, err := f.states.CreateState(" quarantined ")
	require.NoError(t, err)
	assert.Equal(t, "QUARANTINED", created.Name)

	_, err = f.states.CreateState("quarantined")
	assert.ErrorIs(t, err, repositories.ErrStateNameConflict)

	_, err = f.states.CreateState("   ")
	assert.ErrorIs(t, err, ErrEmptyStateName)

	// An unreferenced state can be removed again.
	require.NoError(t, f.states.DeleteState(created.ID))
	err = f.states.DeleteState(created.ID)
	assert.ErrorIs(t, err, repositories.ErrStateNotFound)
}

func TestRenameStatePropagatesToMirror(t *testing.T) {
	f := newTestFixture(t)
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	var suspended models.ChipState
	require.NoError(t, f.db.Where("name = ?", models.ChipStateSuspended).First(&suspended).Error)

	_, err := f.states.RecordStateChange(chip.ID, models.ChipStateSuspended, nil)
	require.NoError(t, err)

	renamed, err := f.states.UpdateState(suspended.ID, "on hold")
	require.NoError(t, err)
	assert.Equal(t, "ON HOLD", renamed.Name)

	// Chips mirroring the old name follow the rename.
	updated, err := f.chips.GetChipByID(chip.ID)
	require.NoError(t, err)
	assert.Equal(t, "ON HOLD", updated.CurrentState)
}

func TestDeleteStateBlockedWhileReferenced(t *testing.T) {
	f := newTestFixture(t)
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	var lost models.ChipState
	require.NoError(t, f.db.Where("name = ?", models.ChipStateLost).First(&lost).Error)

	_, err := f.states.RecordStateChange(chip.ID, models.ChipStateLost, nil)
	require.NoError(t, err)

	err = f.states.DeleteState(lost.ID)
	assert.ErrorIs(t, err, repositories.ErrStateInUse)
}
