package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet_inventory/internal/models"
	"github.com/fleet_inventory/internal/repositories"
)

func TestAssignAndUnassignLifecycle(t *testing.T) {
	f := newTestFixture(t)
	phone := f.createPhone(t, "356938035643809")
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	assignment, err := f.assignments.Assign(phone.ID, chip.ID, adminUserID)
	require.NoError(t, err)
	assert.True(t, assignment.IsActive())
	assert.Equal(t, adminUserID, assignment.AssignedByID)

	// The phone flips to ASSIGNED when its first chip is seated.
	updated, err := f.phones.GetPhoneByID(phone.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PhoneStatusAssigned, updated.Status)

	removed, err := f.assignments.Unassign(phone.ID, chip.ID, adminUserID)
	require.NoError(t, err)
	assert.False(t, removed.IsActive())
	require.NotNil(t, removed.RemovedByID)
	assert.Equal(t, adminUserID, *removed.RemovedByID)

	// Last chip out flips the phone back to AVAILABLE.
	updated, err = f.phones.GetPhoneByID(phone.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PhoneStatusAvailable, updated.Status)
}

func TestAssignRejectsChipActiveElsewhere(t *testing.T) {
	f := newTestFixture(t)
	phoneA := f.createPhone(t, "356938035643809")
	phoneB := f.createPhone(t, "490154203237518")
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	_, err := f.assignments.Assign(phoneA.ID, chip.ID, adminUserID)
	require.NoError(t, err)

	_, err = f.assignments.Assign(phoneB.ID, chip.ID, adminUserID)
	assert.ErrorIs(t, err, repositories.ErrChipAlreadyAssigned)
}

func TestAssignEnforcesPhoneCapacity(t *testing.T) {
	f := newTestFixture(t)
	phone := f.createPhone(t, "356938035643809")
	chipA := f.createChip(t, "593990000001", "8959300000000000001")
	chipB := f.createChip(t, "593990000002", "8959300000000000002")
	chipC := f.createChip(t, "593990000003", "8959300000000000003")

	_, err := f.assignments.Assign(phone.ID, chipA.ID, adminUserID)
	require.NoError(t, err)
	_, err = f.assignments.Assign(phone.ID, chipB.ID, adminUserID)
	require.NoError(t, err)

	_, err = f.assignments.Assign(phone.ID, chipC.ID, adminUserID)
	assert.ErrorIs(t, err, repositories.ErrPhoneCapacityExceeded)
}

func TestAssignUnknownEndpoints(t *testing.T) {
	f := newTestFixture(t)
	phone := f.createPhone(t, "356938035643809")
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	_, err := f.assignments.Assign(9999, chip.ID, adminUserID)
	assert.ErrorIs(t, err, repositories.ErrPhoneNotFound)

	_, err = f.assignments.Assign(phone.ID, 9999, adminUserID)
	assert.ErrorIs(t, err, repositories.ErrChipNotFound)
}

func TestUnassignWithoutActiveAssignment(t *testing.T) {
	f := newTestFixture(t)
	phone := f.createPhone(t, "356938035643809")
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	_, err := f.assignments.Unassign(phone.ID, chip.ID, adminUserID)
	assert.ErrorIs(t, err, repositories.ErrNoActiveAssignmentFound)
}

func TestReassignAfterRemovalKeepsHistory(t *testing.T) {
	f := newTestFixture(t)
	phone := f.createPhone(t, "356938035643809")
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	_, err := f.assignments.Assign(phone.ID, chip.ID, adminUserID)
	require.NoError(t, err)
	_, err = f.assignments.Unassign(phone.ID, chip.ID, adminUserID)
	require.NoError(t, err)

	// The same pair may be assigned again; a fresh row is appended.
	_, err = f.assignments.Assign(phone.ID, chip.ID, adminUserID)
	require.NoError(t, err)

	history, err := f.assignments.AssignmentsForPhone(phone.ID, true)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Active row first, the closed one keeps its removal stamp.
	assert.Nil(t, history[0].RemovedAt)
	assert.NotNil(t, history[1].RemovedAt)
	assert.Equal(t, chip.Number, history[0].ChipNumber)
	assert.Equal(t, phone.Imei, history[0].PhoneImei)

	active, err := f.assignments.AssignmentsForPhone(phone.ID, false)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestAvailableChipsExcludesSeatedAndInactive(t *testing.T) {
	f := newTestFixture(t)
	phone := f.createPhone(t, "356938035643809")
	seated := f.createChip(t, "593990000001", "8959300000000000001")
	free := f.createChip(t, "593990000002", "8959300000000000002")
	suspended := f.createChip(t, "593990000003", "8959300000000000003")

	_, err := f.assignments.Assign(phone.ID, seated.ID, adminUserID)
	require.NoError(t, err)
	_, err = f.states.RecordStateChange(suspended.ID, models.ChipStateSuspended, nil)
	require.NoError(t, err)

	chips, err := f.assignments.AvailableChips(false)
	require.NoError(t, err)
	require.Len(t, chips, 2)
	assert.Equal(t, free.Number, chips[0].Number)
	assert.Equal(t, suspended.Number, chips[1].Number)

	activeOnly, err := f.assignments.AvailableChips(true)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, free.Number, activeOnly[0].Number)
}
