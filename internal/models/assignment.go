package models

import (
	"time"
)

// MaxChipsPerPhone is the capacity limit of concurrently seated chips per
// handset (dual-SIM fleet).
const MaxChipsPerPhone = 2

// Assignment maps to the assignments table, the time-boxed link between a
// phone and a chip. A row with a NULL removed_at is an active assignment;
// removal only ever sets removed_at, the row itself is the audit trail and
// is never deleted. The surrogate key allows the same (phone, chip) pair to
// be assigned again later as a new row.
type Assignment struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	PhoneID      int64      `json:"phoneId" gorm:"column:phone_id;not null;index"`
	ChipID       int64      `json:"chipId" gorm:"column:chip_id;not null;index"`
	AssignedAt   time.Time  `json:"assignedAt" gorm:"column:assigned_at;not null"`
	AssignedByID int64      `json:"assignedById" gorm:"column:assigned_by_id;not null"`
	RemovedAt    *time.Time `json:"removedAt,omitempty" gorm:"column:removed_at"`
	RemovedByID  *int64     `json:"removedById,omitempty" gorm:"column:removed_by_id"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time  `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName sets the table name for Assignment.
func (Assignment) TableName() string {
	return "assignments"
}

// IsActive reports whether the assignment is still in force.
func (a *Assignment) IsActive() bool {
	return a.RemovedAt == nil
}

// AssignmentResponse is the read shape for assignment listings: the row
// joined with the chip number and phone IMEI.
type AssignmentResponse struct {
	ID           int64      `json:"id"`
	PhoneID      int64      `json:"phoneId"`
	PhoneImei    string     `json:"phoneImei"`
	ChipID       int64      `json:"chipId"`
	ChipNumber   string     `json:"chipNumber"`
	AssignedAt   time.Time  `json:"assignedAt"`
	AssignedByID int64      `json:"assignedById"`
	RemovedAt    *time.Time `json:"removedAt,omitempty"`
	RemovedByID  *int64     `json:"removedById,omitempty"`
}
