package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fleet_inventory/internal/models"
)

// ErrStateNameConflict means a state with that name already exists in the
// catalog.
var ErrStateNameConflict = errors.New("a chip state with this name already exists")

// ErrStateNotFound means the referenced catalog state does not exist.
var ErrStateNotFound = errors.New("chip state not found")

// ErrStateInUse blocks deleting a catalog state that history entries still
// reference.
var ErrStateInUse = errors.New("chip state is referenced by history entries and cannot be deleted")

// ErrSameState rejects a state change that would not change anything.
var ErrSameState = errors.New("chip is already in the requested state")

// ChipStateRepository owns the state catalog and the append-only state
// ledger. It is the only writer of the chips.current_state mirror, so the
// invariant "current state equals the newest log entry" lives in one place.
type ChipStateRepository interface {
	GetStates() ([]models.ChipState, error)
	GetStateByID(id int64) (*models.ChipState, error)
	GetStateByName(name string) (*models.ChipState, error)
	CreateState(state *models.ChipState) (*models.ChipState, error)
	UpdateState(id int64, name string) (*models.ChipState, error)
	DeleteState(id int64) error

	// RecordStateChange appends a ledger entry and updates the chip's
	// denormalized current state in one transaction. Returns ErrSameState
	// when the new state equals the chip's current one.
	RecordStateChange(chipID int64, stateID int64, note *string) (*models.ChipStateLog, error)
	// GetHistoryByChipID returns the chip's ledger, most recent first.
	GetHistoryByChipID(chipID int64) ([]models.ChipStateLogResponse, error)
}

// gormChipStateRepository is the GORM implementation of ChipStateRepository.
type gormChipStateRepository struct {
	db *gorm.DB
}

// NewGormChipStateRepository creates a new gormChipStateRepository instance.
func NewGormChipStateRepository(db *gorm.DB) ChipStateRepository {
	return &gormChipStateRepository{db: db}
}

// GetStates returns the full state catalog.
func (r *gormChipStateRepository) GetStates() ([]models.ChipState, error) {
	var states []models.ChipState
	if err := r.db.Order("id asc").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

// GetStateByID fetches one catalog state by id.
func (r *gormChipStateRepository) GetStateByID(id int64) (*models.ChipState, error) {
	var state models.ChipState
	if err := r.db.First(&state, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}
	return &state, nil
}

// GetStateByName fetches one catalog state by its unique name.
func (r *gormChipStateRepository) GetStateByName(name string) (*models.ChipState, error) {
	var state models.ChipState
	if err := r.db.Where("name = ?", name).First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}
	return &state, nil
}

// CreateState inserts a new catalog state, enforcing name uniqueness.
func (r *gormChipStateRepository) CreateState(state *models.ChipState) (*models.ChipState, error) {
	var count int64
	if err := r.db.Model(&models.ChipState{}).Where("name = ?", state.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrStateNameConflict
	}
	if err := r.db.Create(state).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrStateNameConflict
		}
		return nil, err
	}
	return state, nil
}

// UpdateState renames a catalog state, re-checking name uniqueness against
// every other state.
func (r *gormChipStateRepository) UpdateState(id int64, name string) (*models.ChipState, error) {
	var state models.ChipState
	if err := r.db.First(&state, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}

	var count int64
	if err := r.db.Model(&models.ChipState{}).Where("name = ? AND id <> ?", name, id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrStateNameConflict
	}

	// Renaming must follow through to the denormalized mirror, or chips in
	// this state would point at a name that no longer exists.
	err := r.db.Transaction(func(tx *gorm.DB) error {
		oldName := state.Name
		if err := tx.Model(&models.ChipState{}).Where("id = ?", id).Update("name", name).Error; err != nil {
			return err
		}
		return tx.Model(&models.Chip{}).Where("current_state = ?", oldName).Update("current_state", name).Error
	})
	if err != nil {
		return nil, err
	}

	state.Name = name
	return &state, nil
}

// DeleteState removes a catalog state unless any ledger entry references it.
func (r *gormChipStateRepository) DeleteState(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var state models.ChipState
		if err := tx.First(&state, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStateNotFound
			}
			return err
		}

		var refCount int64
		if err := tx.Model(&models.ChipStateLog{}).Where("state_id = ?", id).Count(&refCount).Error; err != nil {
			return err
		}
		if refCount > 0 {
			return ErrStateInUse
		}

		return tx.Delete(&models.ChipState{}, id).Error
	})
}

// RecordStateChange appends an immutable ledger entry and mirrors it to the
// chip's current_state column. Both writes commit or roll back together.
func (r *gormChipStateRepository) RecordStateChange(chipID int64, stateID int64, note *string) (*models.ChipStateLog, error) {
	var stateLog models.ChipStateLog

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var chip models.Chip
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&chip, chipID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return err
		}

		var state models.ChipState
		if err := tx.First(&state, stateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStateNotFound
			}
			return err
		}

		// A transition must be an actual change.
		if chip.CurrentState == state.Name {
			return ErrSameState
		}

		now := time.Now()
		stateLog = models.ChipStateLog{
			ChipID:     chipID,
			StateID:    state.ID,
			AcquiredAt: now,
			Note:       note,
		}
		if state.Name == models.ChipStateLost {
			stateLog.LostAt = &now
		}
		if err := tx.Create(&stateLog).Error; err != nil {
			return err
		}

		return tx.Model(&models.Chip{}).Where("id = ?", chipID).Update("current_state", state.Name).Error
	})

	if err != nil {
		return nil, err
	}
	return &stateLog, nil
}

// GetHistoryByChipID returns the chip's state ledger joined with state
// names, newest first. Pure query; callers may re-run it at any time.
func (r *gormChipStateRepository) GetHistoryByChipID(chipID int64) ([]models.ChipStateLogResponse, error) {
	var history []models.ChipStateLogResponse
	err := r.db.Model(&models.ChipStateLog{}).
		Select(
			"chip_state_logs.id AS id",
			"chip_state_logs.chip_id AS chip_id",
			"chip_state_logs.state_id AS state_id",
			"chip_states.name AS state_name",
			"chip_state_logs.acquired_at AS acquired_at",
			"chip_state_logs.lost_at AS lost_at",
			"chip_state_logs.note AS note",
		).
		Joins("JOIN chip_states ON chip_states.id = chip_state_logs.state_id").
		Where("chip_state_logs.chip_id = ?", chipID).
		Order("chip_state_logs.acquired_at desc, chip_state_logs.id desc").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}
