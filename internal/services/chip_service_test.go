package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet_inventory/internal/models"
	"github.com/fleet_inventory/internal/repositories"
	"github.com/fleet_inventory/pkg/utils"
)

func TestRegisterChipWritesInitialLedgerEntry(t *testing.T) {
	f := newTestFixture(t)

	note := "purchased batch 7"
	chip, err := f.chips.RegisterChip(&models.Chip{
		Number:   "593990000001",
		Iccid:    "8959300000000000001",
		Carrier:  "Claro",
		LineType: models.LineTypePrepaid,
	}, models.ChipStateActive, &note)
	require.NoError(t, err)
	assert.Equal(t, models.ChipStateActive, chip.CurrentState)

	history, err := f.states.History(chip.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.ChipStateActive, history[0].StateName)
	require.NotNil(t, history[0].Note)
	assert.Equal(t, note, *history[0].Note)
}

func TestRegisterChipValidation(t *testing.T) {
	f := newTestFixture(t)

	tests := []struct {
		name    string
		number  string
		iccid   string
		wantErr error
	}{
		{"short number", "59399000", "8959300000000000001", utils.ErrInvalidChipNumberFormat},
		{"wrong prefix", "099990000001", "8959300000000000001", utils.ErrInvalidChipNumberPrefix},
		{"short iccid", "593990000001", "895930000001", utils.ErrInvalidIccidFormat},
		{"iccid without 89 prefix", "593990000001", "1059300000000000001", utils.ErrInvalidIccidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.chips.RegisterChip(&models.Chip{
				Number:   tt.number,
				Iccid:    tt.iccid,
				Carrier:  "Claro",
				LineType: models.LineTypePrepaid,
			}, models.ChipStateActive, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterChipNormalizesInitialState(t *testing.T) {
	f := newTestFixture(t)

	// The initial state goes through the same normalization as later
	// state changes, so casing and padding are accepted.
	chip, err := f.chips.RegisterChip(&models.Chip{
		Number:   "593990000001",
		Iccid:    "8959300000000000001",
		Carrier:  "Claro",
		LineType: models.LineTypePrepaid,
	}, " active ", nil)
	require.NoError(t, err)
	assert.Equal(t, models.ChipStateActive, chip.CurrentState)
}

func TestRegisterChipUnknownInitialState(t *testing.T) {
	f := newTestFixture(t)

	_, err := f.chips.RegisterChip(&models.Chip{
		Number:   "593990000001",
		Iccid:    "8959300000000000001",
		Carrier:  "Claro",
		LineType: models.LineTypePrepaid,
	}, "VAPORIZED", nil)
	assert.ErrorIs(t, err, ErrUnknownInitialState)
}

func TestRegisterChipDuplicates(t *testing.T) {
	f := newTestFixture(t)
	f.createChip(t, "593990000001", "8959300000000000001")

	_, err := f.chips.RegisterChip(&models.Chip{
		Number:   "593990000001",
		Iccid:    "8959300000000000002",
		Carrier:  "Claro",
		LineType: models.LineTypePrepaid,
	}, models.ChipStateActive, nil)
	assert.ErrorIs(t, err, repositories.ErrChipNumberConflict)

	_, err = f.chips.RegisterChip(&models.Chip{
		Number:   "593990000002",
		Iccid:    "8959300000000000001",
		Carrier:  "Claro",
		LineType: models.LineTypePrepaid,
	}, models.ChipStateActive, nil)
	assert.ErrorIs(t, err, repositories.ErrIccidConflict)
}

func TestUpdateChipDateOrdering(t *testing.T) {
	f := newTestFixture(t)
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	activation := "2025-03-10"
	registration := "2025-03-15"
	updated, err := f.chips.UpdateChip(chip.ID, models.ChipUpdatePayload{
		ActivationDate:   &activation,
		RegistrationDate: &registration,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ActivationDate)
	require.NotNil(t, updated.RegistrationDate)

	// The stored registration date constrains a later activation update.
	badActivation := "2025-04-01"
	_, err = f.chips.UpdateChip(chip.ID, models.ChipUpdatePayload{ActivationDate: &badActivation})
	assert.ErrorIs(t, err, utils.ErrActivationAfterRegister)
}

func TestDeleteChipCascadesLedgerWhenUnassigned(t *testing.T) {
	f := newTestFixture(t)
	phone := f.createPhone(t, "356938035643809")
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	_, err := f.states.RecordStateChange(chip.ID, models.ChipStateSuspended, nil)
	require.NoError(t, err)

	_, err = f.assignments.Assign(phone.ID, chip.ID, adminUserID)
	require.NoError(t, err)

	// Deletion is blocked while the chip is seated in a phone.
	err = f.chips.DeleteChip(chip.ID)
	assert.ErrorIs(t, err, repositories.ErrChipCurrentlyAssigned)

	_, err = f.assignments.Unassign(phone.ID, chip.ID, adminUserID)
	require.NoError(t, err)
	require.NoError(t, f.chips.DeleteChip(chip.ID))

	_, err = f.chips.GetChipByID(chip.ID)
	assert.ErrorIs(t, err, ErrChipNotFound)

	// The state ledger goes with the chip.
	var logCount int64
	require.NoError(t, f.db.Model(&models.ChipStateLog{}).Where("chip_id = ?", chip.ID).Count(&logCount).Error)
	assert.EqualValues(t, 0, logCount)
}
