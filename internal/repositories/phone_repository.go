package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/fleet_inventory/internal/models"
)

// ErrRecordNotFound reuses the gorm sentinel so callers can errors.Is
// against a single value.
var ErrRecordNotFound = gorm.ErrRecordNotFound

// ErrImeiConflict means a phone with that IMEI is already registered.
var ErrImeiConflict = errors.New("a phone with this IMEI is already registered")

// ErrPhoneHasActiveAssignments blocks deleting a phone that still has
// chips seated in it.
var ErrPhoneHasActiveAssignments = errors.New("phone has active chip assignments and cannot be deleted")

// PhoneRepository defines the phone data access interface.
type PhoneRepository interface {
	CreatePhone(phone *models.Phone) (*models.Phone, error)
	GetPhones(page, limit int, sortBy, sortOrder, search, status string) ([]models.Phone, int64, error)
	GetAllPhones() ([]models.Phone, error)
	GetPhoneByID(id int64) (*models.Phone, error)
	UpdatePhone(id int64, updates map[string]interface{}) (*models.Phone, error)
	DeletePhone(id int64) error
	CountPhones() (int64, error)
}

// gormPhoneRepository is the GORM implementation of PhoneRepository.
type gormPhoneRepository struct {
	db *gorm.DB
}

// NewGormPhoneRepository creates a new gormPhoneRepository instance.
func NewGormPhoneRepository(db *gorm.DB) PhoneRepository {
	return &gormPhoneRepository{db: db}
}

// CreatePhone inserts a new phone record, enforcing IMEI uniqueness.
func (r *gormPhoneRepository) CreatePhone(phone *models.Phone) (*models.Phone, error) {
	var existing models.Phone
	if err := r.db.Where("imei = ?", phone.Imei).First(&existing).Error; err == nil {
		return nil, ErrImeiConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.Create(phone).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrImeiConflict
		}
		return nil, err
	}
	return phone, nil
}

// GetPhones lists phones with pagination, sorting, search and an optional
// status filter.
func (r *gormPhoneRepository) GetPhones(page, limit int, sortBy, sortOrder, search, status string) ([]models.Phone, int64, error) {
	var phones []models.Phone
	var totalItems int64

	queryBuilder := r.db.Model(&models.Phone{})

	if search != "" {
		searchTerm := "%" + search + "%"
		queryBuilder = queryBuilder.Where("imei LIKE ? OR brand LIKE ? OR model LIKE ?", searchTerm, searchTerm, searchTerm)
	}
	if status != "" {
		queryBuilder = queryBuilder.Where("status = ?", status)
	}

	if err := queryBuilder.Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	if sortBy != "" {
		// Whitelist sortBy fields to keep raw ORDER BY safe.
		allowedSortByFields := map[string]string{
			"id":              "id",
			"imei":            "imei",
			"brand":           "brand",
			"model":           "model",
			"acquisitionDate": "acquisition_date",
			"status":          "status",
			"createdAt":       "created_at",
		}
		dbSortBy, isValidField := allowedSortByFields[sortBy]
		if !isValidField {
			dbSortBy = "acquisition_date"
		}
		if strings.ToLower(sortOrder) != "asc" {
			sortOrder = "desc"
		}
		queryBuilder = queryBuilder.Order(dbSortBy + " " + sortOrder)
	} else {
		// Newest acquisitions first, matching the inventory listing.
		queryBuilder = queryBuilder.Order("acquisition_date desc")
	}

	offset := (page - 1) * limit
	if err := queryBuilder.Offset(offset).Limit(limit).Find(&phones).Error; err != nil {
		return nil, 0, err
	}

	return phones, totalItems, nil
}

// GetAllPhones returns every phone, for report exports.
func (r *gormPhoneRepository) GetAllPhones() ([]models.Phone, error) {
	var phones []models.Phone
	if err := r.db.Order("id asc").Find(&phones).Error; err != nil {
		return nil, err
	}
	return phones, nil
}

// GetPhoneByID fetches one phone by its database id.
func (r *gormPhoneRepository) GetPhoneByID(id int64) (*models.Phone, error) {
	var phone models.Phone
	if err := r.db.First(&phone, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &phone, nil
}

// UpdatePhone applies the given column updates to a phone. When the IMEI is
// part of the updates, uniqueness is re-checked against all other phones.
func (r *gormPhoneRepository) UpdatePhone(id int64, updates map[string]interface{}) (*models.Phone, error) {
	var phone models.Phone
	if err := r.db.First(&phone, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if newImei, ok := updates["imei"].(string); ok && newImei != phone.Imei {
		var count int64
		if err := r.db.Model(&models.Phone{}).Where("imei = ? AND id <> ?", newImei, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrImeiConflict
		}
	}

	if err := r.db.Model(&models.Phone{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrImeiConflict
		}
		return nil, err
	}

	if err := r.db.First(&phone, id).Error; err != nil {
		return nil, err
	}
	return &phone, nil
}

// DeletePhone removes a phone unless it still has active assignments. The
// existence check, the reference check and the delete run in one
// transaction. Historical assignment rows stay behind as the audit trail.
func (r *gormPhoneRepository) DeletePhone(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var phone models.Phone
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&phone, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return err
		}

		var activeCount int64
		if err := tx.Model(&models.Assignment{}).
			Where("phone_id = ? AND removed_at IS NULL", id).
			Count(&activeCount).Error; err != nil {
			return err
		}
		if activeCount > 0 {
			return ErrPhoneHasActiveAssignments
		}

		return tx.Delete(&models.Phone{}, id).Error
	})
}

// CountPhones returns the total phone count for the dashboard.
func (r *gormPhoneRepository) CountPhones() (int64, error) {
	var count int64
	err := r.db.Model(&models.Phone{}).Count(&count).Error
	return count, err
}

// isUniqueViolation sniffs driver errors for unique-constraint failures.
// SQLite reports them as "UNIQUE constraint failed", other engines as
// "duplicate key".
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
