package db

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fleet_inventory/internal/config"
	"github.com/fleet_inventory/internal/models"
)

var gormDB *gorm.DB

// InitDB initializes the GORM database connection using the configured
// SQLite path, migrates the schema and seeds the base data.
func InitDB() {
	dbPath := config.AppConfig.DBPath

	// Make sure the directory holding the database file exists.
	dbDir := filepath.Dir(dbPath)
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		log.Printf("Database directory %s does not exist, creating it...", dbDir)
		if mkErr := os.MkdirAll(dbDir, 0755); mkErr != nil {
			log.Fatalf("Failed to create database directory %s: %v", dbDir, mkErr)
		}
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var err error
	gormDB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database %s: %v", dbPath, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB from GORM: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Printf("Successfully connected to database using GORM: %s", dbPath)

	if err := Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database tables: %v", err)
	}
	log.Println("Database tables migrated successfully.")

	if err := Seed(gormDB); err != nil {
		log.Fatalf("Failed to seed base data: %v", err)
	}
}

// Migrate runs the schema migration and creates the constraint indexes the
// assignment invariants rely on. Shared with the test setup so tests run
// against the production schema.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.UserRole{},
		&models.Phone{},
		&models.Chip{},
		&models.ChipState{},
		&models.ChipStateLog{},
		&models.Assignment{},
		&models.Transfer{},
	)
	if err != nil {
		return err
	}

	// Partial unique index: at most one active assignment per chip. The
	// assign transaction re-checks this, the index closes the race between
	// two concurrent assigns of the same chip.
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_assignments_active_chip ON assignments(chip_id) WHERE removed_at IS NULL",
	).Error
}

// GetDB returns the GORM database instance.
func GetDB() *gorm.DB {
	if gormDB == nil {
		log.Fatal("Database not initialized. Call InitDB first.")
	}
	return gormDB
}

// CloseDB closes the GORM database connection, normally on shutdown.
func CloseDB() {
	if gormDB != nil {
		sqlDB, err := gormDB.DB()
		if err != nil {
			log.Printf("Error getting underlying sql.DB for closing: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
		log.Println("Database connection closed.")
	}
}
