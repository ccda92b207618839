package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet_inventory/internal/models"
	"github.com/fleet_inventory/internal/repositories"
	"github.com/fleet_inventory/pkg/utils"
)

func TestRegisterPhoneDefaultsAndValidation(t *testing.T) {
	f := newTestFixture(t)

	phone, err := f.phones.RegisterPhone(&models.Phone{Imei: "356938035643809", Brand: "Samsung"})
	require.NoError(t, err)
	assert.Equal(t, models.PhoneStatusAvailable, phone.Status)

	_, err = f.phones.RegisterPhone(&models.Phone{Imei: "12345"})
	assert.ErrorIs(t, err, utils.ErrInvalidImeiFormat)

	_, err = f.phones.RegisterPhone(&models.Phone{Imei: "35693803564380a"})
	assert.ErrorIs(t, err, utils.ErrInvalidImeiFormat)

	_, err = f.phones.RegisterPhone(&models.Phone{Imei: "490154203237518", Status: "BROKEN"})
	assert.ErrorIs(t, err, ErrInvalidPhoneStatus)
}

func TestRegisterPhoneRejectsDuplicateImei(t *testing.T) {
	f := newTestFixture(t)
	f.createPhone(t, "356938035643809")

	_, err := f.phones.RegisterPhone(&models.Phone{Imei: "356938035643809"})
	assert.ErrorIs(t, err, repositories.ErrImeiConflict)
}

func TestUpdatePhonePartial(t *testing.T) {
	f := newTestFixture(t)
	phone := f.createPhone(t, "356938035643809")

	newBrand := "Xiaomi"
	updated, err := f.phones.UpdatePhone(phone.ID, models.PhoneUpdatePayload{Brand: &newBrand})
	require.NoError(t, err)
	assert.Equal(t, "Xiaomi", updated.Brand)
	// Untouched fields keep their values.
	assert.Equal(t, phone.Imei, updated.Imei)
	assert.Equal(t, "A14", updated.Model)

	_, err = f.phones.UpdatePhone(9999, models.PhoneUpdatePayload{Brand: &newBrand})
	assert.ErrorIs(t, err, ErrPhoneNotFound)
}

func TestUpdatePhoneImeiConflict(t *testing.T) {
	f := newTestFixture(t)
	f.createPhone(t, "356938035643809")
	other := f.createPhone(t, "490154203237518")

	taken := "356938035643809"
	_, err := f.phones.UpdatePhone(other.ID, models.PhoneUpdatePayload{Imei: &taken})
	assert.ErrorIs(t, err, repositories.ErrImeiConflict)

	// Re-submitting a phone's own IMEI is not a conflict.
	own := other.Imei
	_, err = f.phones.UpdatePhone(other.ID, models.PhoneUpdatePayload{Imei: &own})
	require.NoError(t, err)
}

func TestDeletePhoneBlockedByActiveAssignment(t *testing.T) {
	f := newTestFixture(t)
	phone := f.createPhone(t, "356938035643809")
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	_, err := f.assignments.Assign(phone.ID, chip.ID, adminUserID)
	require.NoError(t, err)

	err = f.phones.DeletePhone(phone.ID)
	assert.ErrorIs(t, err, repositories.ErrPhoneHasActiveAssignments)

	// Once the chip is removed the phone can be deleted.
	_, err = f.assignments.Unassign(phone.ID, chip.ID, adminUserID)
	require.NoError(t, err)
	require.NoError(t, f.phones.DeletePhone(phone.ID))

	_, err = f.phones.GetPhoneByID(phone.ID)
	assert.ErrorIs(t, err, ErrPhoneNotFound)
}

func TestGetPhonesPaginationAndFilter(t *testing.T) {
	f := newTestFixture(t)
	f.createPhone(t, "356938035643809")
	f.createPhone(t, "490154203237518")
	phone := f.createPhone(t, "352099001761481")
	chip := f.createChip(t, "593990000001", "8959300000000000001")
	_, err := f.assignments.Assign(phone.ID, chip.ID, adminUserID)
	require.NoError(t, err)

	phones, total, err := f.phones.GetPhones(1, 2, "id", "asc", "", "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, phones, 2)

	assigned, total, err := f.phones.GetPhones(1, 10, "id", "asc", "", models.PhoneStatusAssigned)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, assigned, 1)
	assert.Equal(t, phone.Imei, assigned[0].Imei)

	bySearch, total, err := f.phones.GetPhones(1, 10, "id", "asc", "352099", "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, bySearch, 1)
	assert.Equal(t, phone.Imei, bySearch[0].Imei)
}
