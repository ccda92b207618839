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

// AssignmentHandler wraps the assignment HTTP endpoints.
type AssignmentHandler struct {
	service services.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler instance.
func NewAssignmentHandler(service services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// AssignChipPayload is the request body for seating or removing a chip.
type AssignChipPayload struct {
	ChipID int64 `json:"chipId" binding:"required"`
}

// AssignChip godoc
// @Summary Assign a chip to a phone
// @Description Seats a chip in a handset. A chip may be active in at most one phone and a phone holds at most 2 active chips; both checks run inside the insert transaction.
// @Tags assignments
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path int true "Phone ID"
// @Param assignment body AssignChipPayload true "Chip to assign"
// @Success 201 {object} utils.SuccessResponse{data=models.Assignment}
// @Failure 400 {object} utils.APIErrorResponse "Invalid request parameters"
// @Failure 404 {object} utils.APIErrorResponse "Phone or chip not found"
// @Failure 409 {object} utils.APIErrorResponse "Chip already assigned or phone at capacity"
// @Router /phones/{id}/assignments [post]
func (h *AssignmentHandler) AssignChip(c *gin.Context) {
	phoneID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "Invalid phone id")
		return
	}

	var payload AssignChipPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	actor, ok := actorID(c)
	if !ok {
		utils.RespondUnauthorizedError(c)
		return
	}

	assignment, err := h.service.Assign(phoneID, payload.ChipID, actor)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPhoneNotFound):
			utils.RespondNotFoundError(c, "Phone")
		case errors.Is(err, repositories.ErrChipNotFound):
			utils.RespondNotFoundError(c, "Chip")
		case errors.Is(err, repositories.ErrChipAlreadyAssigned),
			errors.Is(err, repositories.ErrPhoneCapacityExceeded):
			utils.RespondConflictError(c, err.Error())
		default:
			utils.RespondInternalServerError(c, "Failed to assign chip", err.Error())
		}
		return
	}

	logger.Info("chip assigned",
		zap.Int64("phoneID", phoneID),
		zap.Int64("chipID", payload.ChipID),
		zap.Int64("actorID", actor),
	)
	utils.RespondSuccess(c, http.StatusCreated, assignment, "Chip assigned")
}

// UnassignChip godoc
// @Summary Remove a chip from a phone
// @Description Closes the active assignment by stamping its removal time. The row stays as the audit trail.
// @Tags assignments
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path int true "Phone ID"
// @Param assignment body AssignChipPayload true "Chip to remove"
// @Success 200 {object} utils.SuccessResponse{data=models.Assignment}
// @Failure 400 {object} utils.APIErrorResponse "Invalid request parameters"
// @Failure 404 {object} utils.APIErrorResponse "No active assignment for this pair"
// @Router /phones/{id}/assignments [delete]
func (h *AssignmentHandler) UnassignChip(c *gin.Context) {
	phoneID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "Invalid phone id")
		return
	}

	var payload AssignChipPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	actor, ok := actorID(c)
	if !ok {
		utils.RespondUnauthorizedError(c)
		return
	}

	assignment, err := h.service.Unassign(phoneID, payload.ChipID, actor)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNoActiveAssignmentFound):
			utils.RespondNotFoundError(c, "Active assignment")
		default:
			utils.RespondInternalServerError(c, "Failed to unassign chip", err.Error())
		}
		return
	}

	logger.Info("chip unassigned",
		zap.Int64("phoneID", phoneID),
		zap.Int64("chipID", payload.ChipID),
		zap.Int64("actorID", actor),
	)
	utils.RespondSuccess(c, http.StatusOK, assignment, "Chip unassigned")
}

// GetPhoneAssignments godoc
// @Summary List a phone's assignments
// @Description Lists the phone's assignment rows, active ones first. Pass includeRemoved=false to keep only the active rows.
// @Tags assignments
// @Security BearerAuth
// @Produce  json
// @Param id path int true "Phone ID"
// @Param includeRemoved query bool false "Include closed assignments" default(true)
// @Success 200 {object} utils.SuccessResponse{data=[]models.AssignmentResponse}
// @Failure 400 {object} utils.APIErrorResponse "Invalid id"
// @Failure 404 {object} utils.APIErrorResponse "Phone not found"
// @Router /phones/{id}/assignments [get]
func (h *AssignmentHandler) GetPhoneAssignments(c *gin.Context) {
	phoneID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "Invalid phone id")
		return
	}
	includeRemoved := c.DefaultQuery("includeRemoved", "true") == "true"

	assignments, err := h.service.AssignmentsForPhone(phoneID, includeRemoved)
	if err != nil {
		if errors.Is(err, services.ErrPhoneNotFound) {
			utils.RespondNotFoundError(c, "Phone")
			return
		}
		utils.RespondInternalServerError(c, "Failed to list assignments", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, assignments, "")
}

// GetAvailableChips godoc
// @Summary List assignable chips
// @Description Lists chips with no active assignment. Pass activeOnly=true to keep only chips currently in ACTIVE state.
// @Tags assignments
// @Security BearerAuth
// @Produce  json
// @Param activeOnly query bool false "Only chips in ACTIVE state" default(false)
// @Success 200 {object} utils.SuccessResponse{data=[]models.Chip}
// @Failure 500 {object} utils.APIErrorResponse "Storage failure"
// @Router /chips/available [get]
func (h *AssignmentHandler) GetAvailableChips(c *gin.Context) {
	activeOnly := c.Query("activeOnly") == "true"

	chips, err := h.service.AvailableChips(activeOnly)
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to list available chips", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, chips, "")
}
