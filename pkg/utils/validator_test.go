package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImei(t *testing.T) {
	assert.NoError(t, ValidateImei("356938035643809"))
	assert.NoError(t, ValidateImei(" 356938035643809 ")) // surrounding spaces tolerated

	assert.ErrorIs(t, ValidateImei("35693803564380"), ErrInvalidImeiFormat)   // 14 digits
	assert.ErrorIs(t, ValidateImei("3569380356438090"), ErrInvalidImeiFormat) // 16 digits
	assert.ErrorIs(t, ValidateImei("35693803564380a"), ErrInvalidImeiFormat)
	assert.ErrorIs(t, ValidateImei(""), ErrInvalidImeiFormat)
}

func TestValidateChipNumber(t *testing.T) {
	assert.NoError(t, ValidateChipNumber("593990000001"))

	assert.ErrorIs(t, ValidateChipNumber("59399000000"), ErrInvalidChipNumberFormat)   // 11 digits
	assert.ErrorIs(t, ValidateChipNumber("5939900000012"), ErrInvalidChipNumberFormat) // 13 digits
	assert.ErrorIs(t, ValidateChipNumber("59399000000x"), ErrInvalidChipNumberFormat)
	assert.ErrorIs(t, ValidateChipNumber("099990000001"), ErrInvalidChipNumberPrefix)
}

func TestValidateIccid(t *testing.T) {
	assert.NoError(t, ValidateIccid("8959300000000000001"))  // 19 digits
	assert.NoError(t, ValidateIccid("89593000000000000012")) // 20 digits

	assert.ErrorIs(t, ValidateIccid("895930000000000001"), ErrInvalidIccidFormat)    // 18 digits
	assert.ErrorIs(t, ValidateIccid("895930000000000000123"), ErrInvalidIccidFormat) // 21 digits
	assert.ErrorIs(t, ValidateIccid("1059300000000000001"), ErrInvalidIccidFormat)   // wrong prefix
	assert.ErrorIs(t, ValidateIccid("89593000000000000ab"), ErrInvalidIccidFormat)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{"2025-03-09", "2025-3-9", "2025/03/09", "2025/3/9", " 2025-03-09 "} {
		parsed, err := ParseDate(input)
		require.NoError(t, err, "input %q", input)
		assert.True(t, parsed.Equal(want), "input %q parsed to %v", input, parsed)
	}

	for _, input := range []string{"", "not-a-date", "09-03-2025", "2025-13-01"} {
		_, err := ParseDate(input)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, "input %q", input)
	}
}

func TestValidateChipDates(t *testing.T) {
	early := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateChipDates(&early, &late))
	assert.NoError(t, ValidateChipDates(&early, &early)) // same day is fine
	assert.NoError(t, ValidateChipDates(nil, &late))
	assert.NoError(t, ValidateChipDates(&early, nil))
	assert.NoError(t, ValidateChipDates(nil, nil))

	assert.ErrorIs(t, ValidateChipDates(&late, &early), ErrActivationAfterRegister)
}
