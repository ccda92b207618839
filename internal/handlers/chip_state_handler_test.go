package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fleet_inventory/internal/logger"
	"github.com/fleet_inventory/internal/models"
	"github.com/fleet_inventory/internal/repositories"
	"github.com/fleet_inventory/internal/services"
	"github.com/fleet_inventory/pkg/db"
)

// newStateRouter wires the chip-state endpoints against a seeded throwaway
// database, without the auth middleware.
func newStateRouter(t *testing.T) (*gin.Engine, services.ChipService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, logger.Init("test"))

	dbPath := filepath.Join(t.TempDir(), "test.db")
	gormDB, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	require.NoError(t, db.Seed(gormDB))

	chipRepo := repositories.NewGormChipRepository(gormDB)
	stateRepo := repositories.NewGormChipStateRepository(gormDB)
	chipService := services.NewChipService(chipRepo, stateRepo)
	handler := NewChipStateHandler(services.NewChipStateService(stateRepo, chipRepo))

	router := gin.New()
	router.GET("/chip-states", handler.GetStates)
	router.POST("/chips/:id/state-changes", handler.RecordStateChange)
	router.GET("/chips/:id/state-changes", handler.GetHistory)
	return router, chipService
}

func postStateChange(t *testing.T, router *gin.Engine, chipID int64, body StateChangePayload) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/chips/%d/state-changes", chipID), bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRecordStateChangeEndpoint(t *testing.T) {
	router, chips := newStateRouter(t)

	chip, err := chips.RegisterChip(&models.Chip{
		Number:   "593990000001",
		Iccid:    "8959300000000000001",
		Carrier:  "Claro",
		LineType: models.LineTypePrepaid,
	}, models.ChipStateActive, nil)
	require.NoError(t, err)

	rec := postStateChange(t, router, chip.ID, StateChangePayload{State: models.ChipStateSuspended})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Repeating the same target state is a conflict.
	rec = postStateChange(t, router, chip.ID, StateChangePayload{State: models.ChipStateSuspended})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Unknown states are rejected before touching the ledger.
	rec = postStateChange(t, router, chip.ID, StateChangePayload{State: "VAPORIZED"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postStateChange(t, router, chip.ID+100, StateChangePayload{State: models.ChipStateLost})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetHistoryEndpoint(t *testing.T) {
	router, chips := newStateRouter(t)

	chip, err := chips.RegisterChip(&models.Chip{
		Number:   "593990000002",
		Iccid:    "8959300000000000002",
		Carrier:  "Movistar",
		LineType: models.LineTypePostpaid,
	}, models.ChipStateActive, nil)
	require.NoError(t, err)

	rec := postStateChange(t, router, chip.ID, StateChangePayload{State: models.ChipStateInactive})
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/chips/%d/state-changes", chip.ID), nil)
	histRec := httptest.NewRecorder()
	router.ServeHTTP(histRec, req)
	require.Equal(t, http.StatusOK, histRec.Code)

	var envelope struct {
		Data []models.ChipStateLogResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(histRec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, models.ChipStateInactive, envelope.Data[0].StateName)
	assert.Equal(t, models.ChipStateActive, envelope.Data[1].StateName)
}
