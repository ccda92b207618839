package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGetDashboardCounts(t *testing.T) {
	f := newTestFixture(t)
	phone := f.createPhone(t, "356938035643809")
	f.createPhone(t, "490154203237518")
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	_, err := f.assignments.Assign(phone.ID, chip.ID, adminUserID)
	require.NoError(t, err)

	counts, err := f.reports.GetDashboardCounts()
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts.TotalPhones)
	assert.EqualValues(t, 1, counts.TotalChips)
	assert.EqualValues(t, 1, counts.ActiveAssignments)

	// Closing the assignment drops it from the active count.
	_, err = f.assignments.Unassign(phone.ID, chip.ID, adminUserID)
	require.NoError(t, err)

	counts, err = f.reports.GetDashboardCounts()
	require.NoError(t, err)
	assert.EqualValues(t, 0, counts.ActiveAssignments)
}

func TestExportInventoryWorkbook(t *testing.T) {
	f := newTestFixture(t)
	phone := f.createPhone(t, "356938035643809")
	chip := f.createChip(t, "593990000001", "8959300000000000001")

	data, err := f.reports.ExportInventory()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	phoneRows, err := workbook.GetRows("Phones")
	require.NoError(t, err)
	require.Len(t, phoneRows, 2) // header plus one data row
	assert.Equal(t, "IMEI", phoneRows[0][1])
	assert.Equal(t, phone.Imei, phoneRows[1][1])

	chipRows, err := workbook.GetRows("Chips")
	require.NoError(t, err)
	require.Len(t, chipRows, 2)
	assert.Equal(t, chip.Number, chipRows[1][1])
}
