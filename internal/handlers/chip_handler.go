package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleet_inventory/internal/logger"
	"github.com/fleet_inventory/internal/models"
	"github.com/fleet_inventory/internal/repositories"
	"github.com/fleet_inventory/internal/services"
	"github.com/fleet_inventory/pkg/utils"
)

// ChipHandler wraps the chip HTTP endpoints.
type ChipHandler struct {
	service services.ChipService
}

// NewChipHandler creates a new ChipHandler instance.
func NewChipHandler(service services.ChipService) *ChipHandler {
	return &ChipHandler{service: service}
}

// CreateChipPayload is the request body for registering a chip. The
// initial state defaults to ACTIVE and seeds the first ledger entry.
type CreateChipPayload struct {
	Number           string  `json:"number" binding:"required,max=20"`
	Iccid            string  `json:"iccid" binding:"required,max=22"`
	Carrier          string  `json:"carrier" binding:"required,max=50"`
	LineType         string  `json:"lineType" binding:"required,oneof=PREPAID POSTPAID"`
	ActivationDate   *string `json:"activationDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	RegistrationDate *string `json:"registrationDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	InitialState     *string `json:"initialState,omitempty" binding:"omitempty,max=50"`
	Note             *string `json:"note,omitempty" binding:"omitempty,max=500"`
}

// ChipListData is the payload shape for chip listings.
type ChipListData struct {
	Chips      []models.Chip  `json:"chips"`
	Pagination PaginationInfo `json:"pagination"`
}

// CreateChip godoc
// @Summary Register a chip
// @Description Registers a new SIM card and writes its first state-ledger entry.
// @Tags chips
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param chip body CreateChipPayload true "Chip data"
// @Success 201 {object} utils.SuccessResponse{data=models.Chip}
// @Failure 400 {object} utils.APIErrorResponse "Invalid number, ICCID, dates or state"
// @Failure 409 {object} utils.APIErrorResponse "Duplicate number or ICCID"
// @Failure 500 {object} utils.APIErrorResponse "Storage failure"
// @Router /chips [post]
func (h *ChipHandler) CreateChip(c *gin.Context) {
	var payload CreateChipPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	chip := models.Chip{
		Number:   payload.Number,
		Iccid:    payload.Iccid,
		Carrier:  payload.Carrier,
		LineType: payload.LineType,
	}
	if payload.ActivationDate != nil {
		parsed, err := utils.ParseDate(*payload.ActivationDate)
		if err != nil {
			utils.RespondValidationError(c, err.Error())
			return
		}
		chip.ActivationDate = &parsed
	}
	if payload.RegistrationDate != nil {
		parsed, err := utils.ParseDate(*payload.RegistrationDate)
		if err != nil {
			utils.RespondValidationError(c, err.Error())
			return
		}
		chip.RegistrationDate = &parsed
	}

	initialState := models.ChipStateActive
	if payload.InitialState != nil {
		initialState = *payload.InitialState
	}

	created, err := h.service.RegisterChip(&chip, initialState, payload.Note)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidChipNumberFormat),
			errors.Is(err, utils.ErrInvalidChipNumberPrefix),
			errors.Is(err, utils.ErrInvalidIccidFormat),
			errors.Is(err, utils.ErrActivationAfterRegister),
			errors.Is(err, services.ErrUnknownInitialState):
			utils.RespondValidationError(c, err.Error())
		case errors.Is(err, repositories.ErrChipNumberConflict), errors.Is(err, repositories.ErrIccidConflict):
			utils.RespondConflictError(c, err.Error())
		default:
			utils.RespondInternalServerError(c, "Failed to register chip", err.Error())
		}
		return
	}

	logger.Info("chip registered", zap.Int64("chipID", created.ID), zap.String("number", created.Number))
	utils.RespondSuccess(c, http.StatusCreated, created, "Chip registered")
}

// GetChips godoc
// @Summary List chips
// @Description Paginated chip listing with optional state filter and number/ICCID/carrier search.
// @Tags chips
// @Security BearerAuth
// @Produce  json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param sortBy query string false "Sort field" Enums(id, number, carrier, lineType, activationDate, currentState, createdAt)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc)
// @Param search query string false "Match against number, ICCID or carrier"
// @Param state query string false "Filter by current state"
// @Success 200 {object} utils.SuccessResponse{data=ChipListData}
// @Failure 500 {object} utils.APIErrorResponse "Storage failure"
// @Router /chips [get]
func (h *ChipHandler) GetChips(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	sortBy := c.DefaultQuery("sortBy", "createdAt")
	sortOrder := c.DefaultQuery("sortOrder", "desc")
	search := c.Query("search")
	state := c.Query("state")

	chips, total, err := h.service.GetChips(page, limit, sortBy, sortOrder, search, state)
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to list chips", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusOK, ChipListData{
		Chips: chips,
		Pagination: PaginationInfo{
			TotalItems:  total,
			TotalPages:  totalPages(total, limit),
			CurrentPage: page,
			PageSize:    limit,
		},
	}, "")
}

// GetChipByID godoc
// @Summary Get a chip
// @Tags chips
// @Security BearerAuth
// @Produce  json
// @Param id path int true "Chip ID"
// @Success 200 {object} utils.SuccessResponse{data=models.Chip}
// @Failure 400 {object} utils.APIErrorResponse "Invalid id"
// @Failure 404 {object} utils.APIErrorResponse "Chip not found"
// @Router /chips/{id} [get]
func (h *ChipHandler) GetChipByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "Invalid chip id")
		return
	}

	chip, err := h.service.GetChipByID(id)
	if err != nil {
		if errors.Is(err, services.ErrChipNotFound) {
			utils.RespondNotFoundError(c, "Chip")
			return
		}
		utils.RespondInternalServerError(c, "Failed to fetch chip", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, chip, "")
}

// UpdateChip godoc
// @Summary Update a chip
// @Description Partial update of identifying fields. State changes are not accepted here; use the state-change endpoint.
// @Tags chips
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path int true "Chip ID"
// @Param chip body models.ChipUpdatePayload true "Fields to update"
// @Success 200 {object} utils.SuccessResponse{data=models.Chip}
// @Failure 400 {object} utils.APIErrorResponse "Invalid request parameters"
// @Failure 404 {object} utils.APIErrorResponse "Chip not found"
// @Failure 409 {object} utils.APIErrorResponse "Duplicate number or ICCID"
// @Router /chips/{id} [patch]
func (h *ChipHandler) UpdateChip(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "Invalid chip id")
		return
	}

	var payload models.ChipUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	chip, err := h.service.UpdateChip(id, payload)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChipNotFound):
			utils.RespondNotFoundError(c, "Chip")
		case errors.Is(err, repositories.ErrChipNumberConflict), errors.Is(err, repositories.ErrIccidConflict):
			utils.RespondConflictError(c, err.Error())
		default:
			utils.RespondValidationError(c, err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, chip, "Chip updated")
}

// DeleteChip godoc
// @Summary Delete a chip
// @Description Permanently removes an unassigned chip together with its state history.
// @Tags chips
// @Security BearerAuth
// @Produce  json
// @Param id path int true "Chip ID"
// @Success 200 {object} utils.SuccessResponse "Chip deleted"
// @Failure 400 {object} utils.APIErrorResponse "Invalid id"
// @Failure 404 {object} utils.APIErrorResponse "Chip not found"
// @Failure 409 {object} utils.APIErrorResponse "Chip is currently assigned"
// @Router /chips/{id} [delete]
func (h *ChipHandler) DeleteChip(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "Invalid chip id")
		return
	}

	if err := h.service.DeleteChip(id); err != nil {
		switch {
		case errors.Is(err, services.ErrChipNotFound):
			utils.RespondNotFoundError(c, "Chip")
		case errors.Is(err, repositories.ErrChipCurrentlyAssigned):
			utils.RespondConflictError(c, err.Error())
		default:
			utils.RespondInternalServerError(c, "Failed to delete chip", err.Error())
		}
		return
	}

	logger.Info("chip deleted", zap.Int64("chipID", id))
	utils.RespondSuccess(c, http.StatusOK, nil, "Chip deleted")
}
