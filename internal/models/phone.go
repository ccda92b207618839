package models

import (
	"time"
)

// Phone lifecycle statuses.
const (
	PhoneStatusAvailable = "AVAILABLE"
	PhoneStatusAssigned  = "ASSIGNED"
	PhoneStatusLost      = "LOST"
	PhoneStatusRetired   = "RETIRED"
)

// IsValidPhoneStatus reports whether s is one of the known phone statuses.
func IsValidPhoneStatus(s string) bool {
	switch s {
	case PhoneStatusAvailable, PhoneStatusAssigned, PhoneStatusLost, PhoneStatusRetired:
		return true
	}
	return false
}

// Phone maps to the phones table. A handset is identified by its IMEI
// (exactly 15 digits, unique across the fleet).
type Phone struct {
	ID              int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Imei            string     `json:"imei" gorm:"column:imei;unique;not null;size:20"`
	Brand           string     `json:"brand" gorm:"column:brand;size:50"`
	Model           string     `json:"model" gorm:"column:model;size:50"`
	AcquisitionDate *time.Time `json:"acquisitionDate,omitempty" gorm:"column:acquisition_date;type:date"`
	Status          string     `json:"status" gorm:"column:status;not null;default:'AVAILABLE';size:20"`
	CreatedAt       time.Time  `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt       time.Time  `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName sets the table name for Phone.
func (Phone) TableName() string {
	return "phones"
}

// PhoneUpdatePayload carries the optional fields accepted when editing a
// phone. Nil means "leave unchanged".
type PhoneUpdatePayload struct {
	Imei            *string `json:"imei,omitempty" binding:"omitempty,max=20"`
	Brand           *string `json:"brand,omitempty" binding:"omitempty,max=50"`
	Model           *string `json:"model,omitempty" binding:"omitempty,max=50"`
	AcquisitionDate *string `json:"acquisitionDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Status          *string `json:"status,omitempty" binding:"omitempty,oneof=AVAILABLE ASSIGNED LOST RETIRED"`
}
