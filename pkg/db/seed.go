package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fleet_inventory/internal/models"
)

// defaultAdminPassword is only used when seeding an empty database; the
// operator is expected to change it after first login.
const defaultAdminPassword = "admin123"

func strPtr(s string) *string {
	return &s
}

// Seed inserts the base roles, chip states and the initial admin account.
// It only writes into empty tables, so repeated startups are no-ops.
func Seed(db *gorm.DB) error {
	// Roles.
	var roleCount int64
	if err := db.Model(&models.Role{}).Count(&roleCount).Error; err != nil {
		return err
	}
	if roleCount == 0 {
		roles := []models.Role{
			{Name: models.RoleAdmin, Description: strPtr("Full access to the system")},
			{Name: models.RoleOpsSupervisor, Description: strPtr("Supervises messaging operations")},
			{Name: models.RoleCampaignOperator, Description: strPtr("Runs messaging campaigns")},
			{Name: models.RoleInventorySupervisor, Description: strPtr("Supervises the equipment inventory")},
			{Name: models.RoleInventoryOperator, Description: strPtr("Manages the equipment inventory")},
		}
		if err := db.Create(&roles).Error; err != nil {
			return err
		}
		log.Println("Seeded base roles.")
	}

	// Chip state catalog.
	var stateCount int64
	if err := db.Model(&models.ChipState{}).Count(&stateCount).Error; err != nil {
		return err
	}
	if stateCount == 0 {
		states := []models.ChipState{
			{Name: models.ChipStateActive},
			{Name: models.ChipStateInactive},
			{Name: models.ChipStateSuspended},
			{Name: models.ChipStateLost},
		}
		if err := db.Create(&states).Error; err != nil {
			return err
		}
		log.Println("Seeded chip state catalog.")
	}

	// Admin user with the administrator role.
	var adminCount int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			FullName:     "Administrator",
			Username:     "admin",
			PasswordHash: string(hash),
			Active:       true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}

		var adminRole models.Role
		if err := db.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
			return err
		}
		if err := db.Create(&models.UserRole{UserID: admin.ID, RoleID: adminRole.ID}).Error; err != nil {
			return err
		}
		log.Println("Seeded admin user. Change the default password after first login.")
	}

	return nil
}
