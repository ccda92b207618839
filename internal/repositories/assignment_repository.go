package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fleet_inventory/internal/models"
)

// ErrPhoneNotFound means the target phone does not exist.
var ErrPhoneNotFound = errors.New("phone not found")

// ErrChipNotFound means the target chip does not exist.
var ErrChipNotFound = errors.New("chip not found")

// ErrChipAlreadyAssigned means the chip is already seated in some phone.
var ErrChipAlreadyAssigned = errors.New("chip is already assigned to a phone")

// ErrPhoneCapacityExceeded means the phone already holds the maximum number
// of active chips.
var ErrPhoneCapacityExceeded = errors.New("phone already holds the maximum of 2 active chips")

// ErrNoActiveAssignmentFound means no active assignment exists for the
// requested phone/chip pair.
var ErrNoActiveAssignmentFound = errors.New("no active assignment found for this phone and chip")

// AssignmentRepository owns the time-boxed phone↔chip relation.
type AssignmentRepository interface {
	// Assign seats a chip in a phone. Existence, exclusivity and capacity
	// checks run inside the same transaction as the insert.
	Assign(phoneID, chipID, actorID int64) (*models.Assignment, error)
	// Unassign closes the active assignment for the pair by stamping its
	// removal time. The row is never deleted.
	Unassign(phoneID, chipID, actorID int64) (*models.Assignment, error)
	// GetAvailableChips returns chips with no active assignment,
	// optionally restricted to ACTIVE state.
	GetAvailableChips(onlyActiveState bool) ([]models.Chip, error)
	// GetAssignmentsByPhoneID lists a phone's assignments, active first.
	GetAssignmentsByPhoneID(phoneID int64, includeRemoved bool) ([]models.AssignmentResponse, error)
	// GetActiveAssignmentByChipID returns the chip's active assignment, if any.
	GetActiveAssignmentByChipID(chipID int64) (*models.Assignment, error)
	CountActiveAssignments() (int64, error)
}

// gormAssignmentRepository is the GORM implementation of AssignmentRepository.
type gormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new gormAssignmentRepository instance.
func NewGormAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &gormAssignmentRepository{db: db}
}

// Assign inserts an active assignment row after verifying, inside one
// transaction, that both endpoints exist, the chip is free and the phone is
// under capacity. The partial unique index on (chip_id) WHERE removed_at IS
// NULL backstops the exclusivity check against concurrent assigns.
func (r *gormAssignmentRepository) Assign(phoneID, chipID, actorID int64) (*models.Assignment, error) {
	var assignment models.Assignment

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var phone models.Phone
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&phone, phoneID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPhoneNotFound
			}
			return err
		}

		var chip models.Chip
		if err := tx.First(&chip, chipID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrChipNotFound
			}
			return err
		}

		var chipActive int64
		if err := tx.Model(&models.Assignment{}).
			Where("chip_id = ? AND removed_at IS NULL", chipID).
			Count(&chipActive).Error; err != nil {
			return err
		}
		if chipActive > 0 {
			return ErrChipAlreadyAssigned
		}

		var phoneActive int64
		if err := tx.Model(&models.Assignment{}).
			Where("phone_id = ? AND removed_at IS NULL", phoneID).
			Count(&phoneActive).Error; err != nil {
			return err
		}
		if phoneActive >= models.MaxChipsPerPhone {
			return ErrPhoneCapacityExceeded
		}

		assignment = models.Assignment{
			PhoneID:      phoneID,
			ChipID:       chipID,
			AssignedAt:   time.Now(),
			AssignedByID: actorID,
		}
		if err := tx.Create(&assignment).Error; err != nil {
			if isUniqueViolation(err) {
				// Lost the race against a concurrent assign of the same chip.
				return ErrChipAlreadyAssigned
			}
			return err
		}

		// First seated chip flips the phone into ASSIGNED.
		if phone.Status == models.PhoneStatusAvailable {
			if err := tx.Model(&models.Phone{}).Where("id = ?", phoneID).
				Update("status", models.PhoneStatusAssigned).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Unassign stamps removed_at on the unique active row for the pair and
// flips the phone back to AVAILABLE when its last chip leaves.
func (r *gormAssignmentRepository) Unassign(phoneID, chipID, actorID int64) (*models.Assignment, error) {
	var assignment models.Assignment

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Set("gorm:query_option", "FOR UPDATE").
			Where("phone_id = ? AND chip_id = ? AND removed_at IS NULL", phoneID, chipID).
			First(&assignment)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrNoActiveAssignmentFound
			}
			return result.Error
		}

		now := time.Now()
		assignment.RemovedAt = &now
		assignment.RemovedByID = &actorID
		if err := tx.Save(&assignment).Error; err != nil {
			return err
		}

		var phoneActive int64
		if err := tx.Model(&models.Assignment{}).
			Where("phone_id = ? AND removed_at IS NULL", phoneID).
			Count(&phoneActive).Error; err != nil {
			return err
		}
		if phoneActive == 0 {
			if err := tx.Model(&models.Phone{}).
				Where("id = ? AND status = ?", phoneID, models.PhoneStatusAssigned).
				Update("status", models.PhoneStatusAvailable).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetAvailableChips returns every chip not seated in any phone, optionally
// restricted to chips whose current state is ACTIVE.
func (r *gormAssignmentRepository) GetAvailableChips(onlyActiveState bool) ([]models.Chip, error) {
	var chips []models.Chip

	queryBuilder := r.db.Model(&models.Chip{}).
		Where("id NOT IN (?)",
			r.db.Model(&models.Assignment{}).Select("chip_id").Where("removed_at IS NULL"))
	if onlyActiveState {
		queryBuilder = queryBuilder.Where("current_state = ?", models.ChipStateActive)
	}

	if err := queryBuilder.Order("number asc").Find(&chips).Error; err != nil {
		return nil, err
	}
	return chips, nil
}

// GetAssignmentsByPhoneID lists a phone's assignment rows joined with chip
// numbers and the phone IMEI, active rows first, then most recent.
func (r *gormAssignmentRepository) GetAssignmentsByPhoneID(phoneID int64, includeRemoved bool) ([]models.AssignmentResponse, error) {
	var assignments []models.AssignmentResponse

	queryBuilder := r.db.Model(&models.Assignment{}).
		Select(
			"assignments.id AS id",
			"assignments.phone_id AS phone_id",
			"phones.imei AS phone_imei",
			"assignments.chip_id AS chip_id",
			"chips.number AS chip_number",
			"assignments.assigned_at AS assigned_at",
			"assignments.assigned_by_id AS assigned_by_id",
			"assignments.removed_at AS removed_at",
			"assignments.removed_by_id AS removed_by_id",
		).
		Joins("JOIN phones ON phones.id = assignments.phone_id").
		Joins("JOIN chips ON chips.id = assignments.chip_id").
		Where("assignments.phone_id = ?", phoneID)

	if !includeRemoved {
		queryBuilder = queryBuilder.Where("assignments.removed_at IS NULL")
	}

	err := queryBuilder.
		Order("assignments.removed_at IS NOT NULL, assignments.assigned_at desc").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// GetActiveAssignmentByChipID returns the active assignment holding the
// chip, or ErrNoActiveAssignmentFound.
func (r *gormAssignmentRepository) GetActiveAssignmentByChipID(chipID int64) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.Where("chip_id = ? AND removed_at IS NULL", chipID).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveAssignmentFound
		}
		return nil, err
	}
	return &assignment, nil
}

// CountActiveAssignments returns the active assignment count for the
// dashboard.
func (r *gormAssignmentRepository) CountActiveAssignments() (int64, error) {
	var count int64
	err := r.db.Model(&models.Assignment{}).Where("removed_at IS NULL").Count(&count).Error
	return count, err
}
