package models

import (
	"time"
)

// Chip line types.
const (
	LineTypePrepaid  = "PREPAID"
	LineTypePostpaid = "POSTPAID"
)

// Chip maps to the chips table. A SIM card is tracked as inventory in its
// own right, independent of whatever handset it is currently seated in.
// CurrentState mirrors the newest chip_state_logs row for the chip; it is
// written exclusively by the state-ledger repository, never by callers.
type Chip struct {
	ID               int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Number           string     `json:"number" gorm:"column:number;unique;not null;size:20"`
	Iccid            string     `json:"iccid" gorm:"column:iccid;unique;not null;size:22"`
	Carrier          string     `json:"carrier" gorm:"column:carrier;not null;size:50"`
	LineType         string     `json:"lineType" gorm:"column:line_type;not null;size:20"`
	ActivationDate   *time.Time `json:"activationDate,omitempty" gorm:"column:activation_date;type:date"`
	RegistrationDate *time.Time `json:"registrationDate,omitempty" gorm:"column:registration_date;type:date"`
	CurrentState     string     `json:"currentState" gorm:"column:current_state;not null;default:'ACTIVE';size:20"`
	CreatedAt        time.Time  `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt        time.Time  `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName sets the table name for Chip.
func (Chip) TableName() string {
	return "chips"
}

// ChipUpdatePayload carries the optional fields accepted when editing a
// chip. A state change is not accepted here; it goes through the state
// ledger so the history stays consistent.
type ChipUpdatePayload struct {
	Number           *string `json:"number,omitempty" binding:"omitempty,max=20"`
	Iccid            *string `json:"iccid,omitempty" binding:"omitempty,max=22"`
	Carrier          *string `json:"carrier,omitempty" binding:"omitempty,max=50"`
	LineType         *string `json:"lineType,omitempty" binding:"omitempty,oneof=PREPAID POSTPAID"`
	ActivationDate   *string `json:"activationDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	RegistrationDate *string `json:"registrationDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}
