package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleet_inventory/internal/logger"
	"github.com/fleet_inventory/internal/repositories"
	"github.com/fleet_inventory/internal/services"
	"github.com/fleet_inventory/pkg/utils"
)

// ChipStateHandler wraps the state-catalog and state-ledger HTTP endpoints.
type ChipStateHandler struct {
	service services.ChipStateService
}

// NewChipStateHandler creates a new ChipStateHandler instance.
func NewChipStateHandler(service services.ChipStateService) *ChipStateHandler {
	return &ChipStateHandler{service: service}
}

// StatePayload is the request body for catalog writes.
type StatePayload struct {
	Name string `json:"name" binding:"required,max=50"`
}

// StateChangePayload is the request body for recording a chip state change.
type StateChangePayload struct {
	State string  `json:"state" binding:"required,max=50"`
	Note  *string `json:"note,omitempty" binding:"omitempty,max=500"`
}

// GetStates godoc
// @Summary List chip states
// @Description Lists the catalog of states a chip may be in.
// @Tags chip-states
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} utils.SuccessResponse{data=[]models.ChipState}
// @Failure 500 {object} utils.APIErrorResponse "Storage failure"
// @Router /chip-states [get]
func (h *ChipStateHandler) GetStates(c *gin.Context) {
	states, err := h.service.GetStates()
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to list chip states", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, states, "")
}

// CreateState godoc
// @Summary Create a chip state
// @Description Adds a state to the catalog. Names are normalized to upper case.
// @Tags chip-states
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param state body StatePayload true "State name"
// @Success 201 {object} utils.SuccessResponse{data=models.ChipState}
// @Failure 400 {object} utils.APIErrorResponse "Empty or invalid name"
// @Failure 409 {object} utils.APIErrorResponse "Duplicate state name"
// @Router /chip-states [post]
func (h *ChipStateHandler) CreateState(c *gin.Context) {
	var payload StatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	state, err := h.service.CreateState(payload.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyStateName):
			utils.RespondValidationError(c, err.Error())
		case errors.Is(err, repositories.ErrStateNameConflict):
			utils.RespondConflictError(c, err.Error())
		default:
			utils.RespondInternalServerError(c, "Failed to create chip state", err.Error())
		}
		return
	}

	logger.Info("chip state created", zap.String("name", state.Name))
	utils.RespondSuccess(c, http.StatusCreated, state, "Chip state created")
}

// UpdateState godoc
// @Summary Rename a chip state
// @Description Renames a catalog state. Chips mirroring the old name are updated in the same transaction.
// @Tags chip-states
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path int true "State ID"
// @Param state body StatePayload true "New state name"
// @Success 200 {object} utils.SuccessResponse{data=models.ChipState}
// @Failure 400 {object} utils.APIErrorResponse "Empty or invalid name"
// @Failure 404 {object} utils.APIErrorResponse "State not found"
// @Failure 409 {object} utils.APIErrorResponse "Duplicate state name"
// @Router /chip-states/{id} [put]
func (h *ChipStateHandler) UpdateState(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "Invalid state id")
		return
	}

	var payload StatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	state, err := h.service.UpdateState(id, payload.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyStateName):
			utils.RespondValidationError(c, err.Error())
		case errors.Is(err, repositories.ErrStateNotFound):
			utils.RespondNotFoundError(c, "Chip state")
		case errors.Is(err, repositories.ErrStateNameConflict):
			utils.RespondConflictError(c, err.Error())
		default:
			utils.RespondInternalServerError(c, "Failed to update chip state", err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, state, "Chip state updated")
}

// DeleteState godoc
// @Summary Delete a chip state
// @Description Removes a catalog state. Rejected while any ledger entry references it.
// @Tags chip-states
// @Security BearerAuth
// @Produce  json
// @Param id path int true "State ID"
// @Success 200 {object} utils.SuccessResponse "Chip state deleted"
// @Failure 400 {object} utils.APIErrorResponse "Invalid id"
// @Failure 404 {object} utils.APIErrorResponse "State not found"
// @Failure 409 {object} utils.APIErrorResponse "State is referenced by history entries"
// @Router /chip-states/{id} [delete]
func (h *ChipStateHandler) DeleteState(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "Invalid state id")
		return
	}

	if err := h.service.DeleteState(id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrStateNotFound):
			utils.RespondNotFoundError(c, "Chip state")
		case errors.Is(err, repositories.ErrStateInUse):
			utils.RespondConflictError(c, err.Error())
		default:
			utils.RespondInternalServerError(c, "Failed to delete chip state", err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "Chip state deleted")
}

// RecordStateChange godoc
// @Summary Record a chip state change
// @Description Appends a ledger entry for the chip and updates its mirrored current state. A change to the state the chip is already in is rejected.
// @Tags chips
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path int true "Chip ID"
// @Param change body StateChangePayload true "Target state and optional note"
// @Success 201 {object} utils.SuccessResponse{data=models.ChipStateLog}
// @Failure 400 {object} utils.APIErrorResponse "Unknown state or invalid request"
// @Failure 404 {object} utils.APIErrorResponse "Chip not found"
// @Failure 409 {object} utils.APIErrorResponse "Chip is already in the requested state"
// @Router /chips/{id}/state-changes [post]
func (h *ChipStateHandler) RecordStateChange(c *gin.Context) {
	chipID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "Invalid chip id")
		return
	}

	var payload StateChangePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	entry, err := h.service.RecordStateChange(chipID, payload.State, payload.Note)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChipNotFound):
			utils.RespondNotFoundError(c, "Chip")
		case errors.Is(err, repositories.ErrStateNotFound):
			utils.RespondValidationError(c, err.Error())
		case errors.Is(err, repositories.ErrSameState):
			utils.RespondConflictError(c, err.Error())
		default:
			utils.RespondInternalServerError(c, "Failed to record state change", err.Error())
		}
		return
	}

	logger.Info("chip state changed",
		zap.Int64("chipID", chipID),
		zap.Int64("stateID", entry.StateID),
	)
	utils.RespondSuccess(c, http.StatusCreated, entry, "State change recorded")
}

// GetHistory godoc
// @Summary Chip state history
// @Description Lists the chip's state ledger, newest entry first.
// @Tags chips
// @Security BearerAuth
// @Produce  json
// @Param id path int true "Chip ID"
// @Success 200 {object} utils.SuccessResponse{data=[]models.ChipStateLogResponse}
// @Failure 400 {object} utils.APIErrorResponse "Invalid id"
// @Failure 404 {object} utils.APIErrorResponse "Chip not found"
// @Router /chips/{id}/state-changes [get]
func (h *ChipStateHandler) GetHistory(c *gin.Context) {
	chipID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "Invalid chip id")
		return
	}

	history, err := h.service.History(chipID)
	if err != nil {
		if errors.Is(err, services.ErrChipNotFound) {
			utils.RespondNotFoundError(c, "Chip")
			return
		}
		utils.RespondInternalServerError(c, "Failed to fetch state history", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, history, "")
}
