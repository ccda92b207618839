package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fleet_inventory/internal/models"
	"github.com/fleet_inventory/internal/repositories"
	"github.com/fleet_inventory/pkg/db"
)

// newTestDB opens a throwaway SQLite database, runs the migrations and the
// base seed (roles, chip states, admin user).
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	gormDB, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Migrate(gormDB))
	require.NoError(t, db.Seed(gormDB))
	return gormDB
}

// testFixture bundles the services under test, wired against one database.
type testFixture struct {
	db          *gorm.DB
	phones      PhoneService
	chips       ChipService
	states      ChipStateService
	assignments AssignmentService
	transfers   TransferService
	reports     ReportService
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	gormDB := newTestDB(t)
	phoneRepo := repositories.NewGormPhoneRepository(gormDB)
	chipRepo := repositories.NewGormChipRepository(gormDB)
	stateRepo := repositories.NewGormChipStateRepository(gormDB)
	assignmentRepo := repositories.NewGormAssignmentRepository(gormDB)
	transferRepo := repositories.NewGormTransferRepository(gormDB)
	userRepo := repositories.NewGormUserRepository(gormDB)

	return &testFixture{
		db:          gormDB,
		phones:      NewPhoneService(phoneRepo),
		chips:       NewChipService(chipRepo, stateRepo),
		states:      NewChipStateService(stateRepo, chipRepo),
		assignments: NewAssignmentService(assignmentRepo, phoneRepo),
		transfers:   NewTransferService(transferRepo, phoneRepo, userRepo),
		reports:     NewReportService(phoneRepo, chipRepo, assignmentRepo),
	}
}

// adminUserID is the id of the seeded admin account, used as the acting
// user in tests.
const adminUserID int64 = 1

func (f *testFixture) createPhone(t *testing.T, imei string) *models.Phone {
	t.Helper()
	phone, err := f.phones.RegisterPhone(&models.Phone{Imei: imei, Brand: "Samsung", Model: "A14"})
	require.NoError(t, err)
	return phone
}

func (f *testFixture) createChip(t *testing.T, number, iccid string) *models.Chip {
	t.Helper()
	chip, err := f.chips.RegisterChip(&models.Chip{
		Number:   number,
		Iccid:    iccid,
		Carrier:  "Claro",
		LineType: models.LineTypePrepaid,
	}, models.ChipStateActive, nil)
	require.NoError(t, err)
	return chip
}
