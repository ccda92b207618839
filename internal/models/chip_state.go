package models

import (
	"time"
)

// Chip state names seeded into the chip_states catalog.
const (
	ChipStateActive    = "ACTIVE"
	ChipStateInactive  = "INACTIVE"
	ChipStateSuspended = "SUSPENDED"
	ChipStateLost      = "LOST"
)

// ChipState maps to the chip_states table, the admin-managed catalog of
// states a chip may be in. The four seeded states form a complete graph:
// any state may transition to any other, as long as the transition is an
// actual change.
type ChipState struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"column:name;unique;not null;size:50"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName sets the table name for ChipState.
func (ChipState) TableName() string {
	return "chip_states"
}

// ChipStateLog maps to the chip_state_logs table, the append-only ledger of
// state transitions for a chip. Rows are immutable once written: they are
// only ever removed as part of deleting an unassigned chip.
type ChipStateLog struct {
	ID         int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	ChipID     int64      `json:"chipId" gorm:"column:chip_id;not null;index"`
	StateID    int64      `json:"stateId" gorm:"column:state_id;not null"`
	AcquiredAt time.Time  `json:"acquiredAt" gorm:"column:acquired_at;not null"`
	LostAt     *time.Time `json:"lostAt,omitempty" gorm:"column:lost_at"` // set only on LOST entries
	Note       *string    `json:"note,omitempty" gorm:"column:note;type:text"`
	CreatedAt  time.Time  `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName sets the table name for ChipStateLog.
func (ChipStateLog) TableName() string {
	return "chip_state_logs"
}

// ChipStateLogResponse is the read shape for history listings: the log row
// joined with its state name.
type ChipStateLogResponse struct {
	ID         int64      `json:"id"`
	ChipID     int64      `json:"chipId"`
	StateID    int64      `json:"stateId"`
	StateName  string     `json:"stateName"`
	AcquiredAt time.Time  `json:"acquiredAt"`
	LostAt     *time.Time `json:"lostAt,omitempty"`
	Note       *string    `json:"note,omitempty"`
}
