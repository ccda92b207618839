package utils

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

const (
	// ImeiLength is the exact digit count of a valid IMEI.
	ImeiLength = 15
	// ChipNumberLength is the total digit count of a valid line number,
	// country code included.
	ChipNumberLength = 12
	// ChipNumberPrefix is the mandatory country-code prefix of a line number.
	ChipNumberPrefix = "593"
	// IccidPrefix is the industry identifier every ICCID starts with.
	IccidPrefix = "89"
)

var (
	ErrInvalidImeiFormat       = errors.New("invalid IMEI, must be exactly 15 digits")
	ErrInvalidChipNumberFormat = errors.New("invalid line number, must be 12 digits")
	ErrInvalidChipNumberPrefix = errors.New("invalid line number prefix, must start with 593")
	ErrInvalidIccidFormat      = errors.New("invalid ICCID, must be 19 or 20 digits starting with 89")
	ErrInvalidDateFormat       = errors.New("invalid date, use the YYYY-MM-DD format")
	ErrActivationAfterRegister = errors.New("activation date cannot be later than registration date")
	ErrLossBeforeAcquisition   = errors.New("loss date cannot be earlier than the acquisition date")
)

// IsNumeric checks whether the string contains digits only.
func IsNumeric(s string) bool {
	if s == "" {
		return false // an empty string is not treated as numeric
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ValidateImei checks the IMEI format: exactly 15 numeric digits.
func ValidateImei(imei string) error {
	trimmed := strings.TrimSpace(imei)
	if len(trimmed) != ImeiLength || !IsNumeric(trimmed) {
		return ErrInvalidImeiFormat
	}
	return nil
}

// ValidateChipNumber checks the line number format: 12 numeric digits with
// the 593 country-code prefix.
func ValidateChipNumber(number string) error {
	trimmed := strings.TrimSpace(number)
	if len(trimmed) != ChipNumberLength || !IsNumeric(trimmed) {
		return ErrInvalidChipNumberFormat
	}
	if !strings.HasPrefix(trimmed, ChipNumberPrefix) {
		return ErrInvalidChipNumberPrefix
	}
	return nil
}

// ValidateIccid checks the ICCID format: 19 or 20 numeric digits starting
// with the 89 telecom identifier.
func ValidateIccid(iccid string) error {
	trimmed := strings.TrimSpace(iccid)
	if len(trimmed) != 19 && len(trimmed) != 20 {
		return ErrInvalidIccidFormat
	}
	if !IsNumeric(trimmed) || !strings.HasPrefix(trimmed, IccidPrefix) {
		return ErrInvalidIccidFormat
	}
	return nil
}

// ParseDate parses a date string, accepting the common YYYY-MM-DD family of
// layouts with or without zero padding, slashes tolerated.
func ParseDate(dateStr string) (time.Time, error) {
	trimmed := strings.TrimSpace(dateStr)
	if trimmed == "" {
		return time.Time{}, ErrInvalidDateFormat
	}

	normalized := strings.ReplaceAll(trimmed, "/", "-")

	dateLayouts := []string{
		"2006-01-02",
		"2006-1-2",
		"2006-01-2",
		"2006-1-02",
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, normalized); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, ErrInvalidDateFormat
}

// ValidateChipDates enforces the date ordering rule between a chip's
// activation and registration dates. Either side may be absent.
func ValidateChipDates(activation, registration *time.Time) error {
	if activation == nil || registration == nil {
		return nil
	}
	if activation.After(*registration) {
		return ErrActivationAfterRegister
	}
	return nil
}
