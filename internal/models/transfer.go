package models

import (
	"time"
)

// Transfer maps to the transfers table: the record of a handset being
// handed over from an inventory supervisor to a campaign operator.
type Transfer struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	PhoneID       int64     `json:"phoneId" gorm:"column:phone_id;not null;index"`
	TransferredAt time.Time `json:"transferredAt" gorm:"column:transferred_at;not null;autoCreateTime"`
	SupervisorID  int64     `json:"supervisorId" gorm:"column:supervisor_id;not null"`
	OperatorID    int64     `json:"operatorId" gorm:"column:operator_id;not null"`
}

// TableName sets the table name for Transfer.
func (Transfer) TableName() string {
	return "transfers"
}
