package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fleet_inventory/internal/models"
)

// ErrUserNotFound means no user matches the requested username or id.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the identity lookups the access gate needs.
type UserRepository interface {
	// GetByUsername fetches a user with their role rows preloaded.
	GetByUsername(username string) (*models.User, error)
	// GetByID fetches a user with their role rows preloaded.
	GetByID(id int64) (*models.User, error)
}

// gormUserRepository is the GORM implementation of UserRepository.
type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new gormUserRepository instance.
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

// GetByUsername fetches a user and their resolved roles.
func (r *gormUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles.Role").Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByID fetches a user and their resolved roles.
func (r *gormUserRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles.Role").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
