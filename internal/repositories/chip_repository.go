package repositories

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/fleet_inventory/internal/models"
)

// ErrChipNumberConflict means a chip with that line number already exists.
var ErrChipNumberConflict = errors.New("a chip with this line number is already registered")

// ErrIccidConflict means a chip with that ICCID already exists.
var ErrIccidConflict = errors.New("a chip with this ICCID is already registered")

// ErrChipCurrentlyAssigned blocks deleting a chip that is seated in a phone.
var ErrChipCurrentlyAssigned = errors.New("chip is currently assigned to a phone and cannot be deleted")

// ChipRepository defines the chip data access interface.
type ChipRepository interface {
	// CreateChip writes the chip together with its mandatory initial state
	// log entry in a single transaction.
	CreateChip(chip *models.Chip, initialState *models.ChipState, note *string) (*models.Chip, error)
	GetChips(page, limit int, sortBy, sortOrder, search, state string) ([]models.Chip, int64, error)
	GetAllChips() ([]models.Chip, error)
	GetChipByID(id int64) (*models.Chip, error)
	UpdateChip(id int64, updates map[string]interface{}) (*models.Chip, error)
	// DeleteChip removes an unassigned chip and cascades its state logs.
	DeleteChip(id int64) error
	CountChips() (int64, error)
}

// gormChipRepository is the GORM implementation of ChipRepository.
type gormChipRepository struct {
	db *gorm.DB
}

// chipUniqueConflict maps a unique-constraint violation to the chip
// sentinel for the column that actually collided. The driver names the
// column in the violation message ("UNIQUE constraint failed: chips.iccid").
func chipUniqueConflict(err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "iccid") {
		return ErrIccidConflict
	}
	return ErrChipNumberConflict
}

// NewGormChipRepository creates a new gormChipRepository instance.
func NewGormChipRepository(db *gorm.DB) ChipRepository {
	return &gormChipRepository{db: db}
}

// CreateChip inserts the chip and its initial state log atomically. The
// denormalized current_state field starts out as the initial state's name,
// so the mirror invariant holds from the first row.
func (r *gormChipRepository) CreateChip(chip *models.Chip, initialState *models.ChipState, note *string) (*models.Chip, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Chip{}).Where("number = ?", chip.Number).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrChipNumberConflict
		}
		if err := tx.Model(&models.Chip{}).Where("iccid = ?", chip.Iccid).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrIccidConflict
		}

		chip.CurrentState = initialState.Name
		if err := tx.Create(chip).Error; err != nil {
			if isUniqueViolation(err) {
				return chipUniqueConflict(err)
			}
			return err
		}

		now := time.Now()
		stateLog := models.ChipStateLog{
			ChipID:     chip.ID,
			StateID:    initialState.ID,
			AcquiredAt: now,
			Note:       note,
		}
		if initialState.Name == models.ChipStateLost {
			stateLog.LostAt = &now
		}
		return tx.Create(&stateLog).Error
	})

	if err != nil {
		return nil, err
	}
	return chip, nil
}

// GetChips lists chips with pagination, sorting, search and an optional
// current-state filter.
func (r *gormChipRepository) GetChips(page, limit int, sortBy, sortOrder, search, state string) ([]models.Chip, int64, error) {
	var chips []models.Chip
	var totalItems int64

	queryBuilder := r.db.Model(&models.Chip{})

	if search != "" {
		searchTerm := "%" + search + "%"
		queryBuilder = queryBuilder.Where("number LIKE ? OR iccid LIKE ? OR carrier LIKE ?", searchTerm, searchTerm, searchTerm)
	}
	if state != "" {
		queryBuilder = queryBuilder.Where("current_state = ?", state)
	}

	if err := queryBuilder.Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	if sortBy != "" {
		allowedSortByFields := map[string]string{
			"id":             "id",
			"number":         "number",
			"carrier":        "carrier",
			"lineType":       "line_type",
			"activationDate": "activation_date",
			"currentState":   "current_state",
			"createdAt":      "created_at",
		}
		dbSortBy, isValidField := allowedSortByFields[sortBy]
		if !isValidField {
			dbSortBy = "activation_date"
		}
		if strings.ToLower(sortOrder) != "asc" {
			sortOrder = "desc"
		}
		queryBuilder = queryBuilder.Order(dbSortBy + " " + sortOrder)
	} else {
		queryBuilder = queryBuilder.Order("activation_date desc")
	}

	offset := (page - 1) * limit
	if err := queryBuilder.Offset(offset).Limit(limit).Find(&chips).Error; err != nil {
		return nil, 0, err
	}

	return chips, totalItems, nil
}

// GetAllChips returns every chip, for report exports.
func (r *gormChipRepository) GetAllChips() ([]models.Chip, error) {
	var chips []models.Chip
	if err := r.db.Order("id asc").Find(&chips).Error; err != nil {
		return nil, err
	}
	return chips, nil
}

// GetChipByID fetches one chip by its database id.
func (r *gormChipRepository) GetChipByID(id int64) (*models.Chip, error) {
	var chip models.Chip
	if err := r.db.First(&chip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &chip, nil
}

// UpdateChip applies the given column updates. When the number or ICCID
// changes, uniqueness is re-checked excluding the chip itself.
func (r *gormChipRepository) UpdateChip(id int64, updates map[string]interface{}) (*models.Chip, error) {
	var chip models.Chip
	if err := r.db.First(&chip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if newNumber, ok := updates["number"].(string); ok && newNumber != chip.Number {
		var count int64
		if err := r.db.Model(&models.Chip{}).Where("number = ? AND id <> ?", newNumber, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrChipNumberConflict
		}
	}
	if newIccid, ok := updates["iccid"].(string); ok && newIccid != chip.Iccid {
		var count int64
		if err := r.db.Model(&models.Chip{}).Where("iccid = ? AND id <> ?", newIccid, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrIccidConflict
		}
	}

	if err := r.db.Model(&models.Chip{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, chipUniqueConflict(err)
		}
		return nil, err
	}

	if err := r.db.First(&chip, id).Error; err != nil {
		return nil, err
	}
	return &chip, nil
}

// DeleteChip removes a chip unless it is actively assigned. The state logs
// belong exclusively to the chip, so they are deleted in the same
// transaction when the chip goes.
func (r *gormChipRepository) DeleteChip(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var chip models.Chip
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&chip, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return err
		}

		var activeCount int64
		if err := tx.Model(&models.Assignment{}).
			Where("chip_id = ? AND removed_at IS NULL", id).
			Count(&activeCount).Error; err != nil {
			return err
		}
		if activeCount > 0 {
			return ErrChipCurrentlyAssigned
		}

		if err := tx.Where("chip_id = ?", id).Delete(&models.ChipStateLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Chip{}, id).Error
	})
}

// CountChips returns the total chip count for the dashboard.
func (r *gormChipRepository) CountChips() (int64, error) {
	var count int64
	err := r.db.Model(&models.Chip{}).Count(&count).Error
	return count, err
}
