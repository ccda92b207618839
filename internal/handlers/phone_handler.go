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

// PhoneHandler wraps the phone HTTP endpoints.
type PhoneHandler struct {
	service services.PhoneService
}

// NewPhoneHandler creates a new PhoneHandler instance.
func NewPhoneHandler(service services.PhoneService) *PhoneHandler {
	return &PhoneHandler{service: service}
}

// CreatePhonePayload is the request body for registering a phone.
type CreatePhonePayload struct {
	Imei            string  `json:"imei" binding:"required,max=20"`
	Brand           string  `json:"brand" binding:"omitempty,max=50"`
	Model           string  `json:"model" binding:"omitempty,max=50"`
	AcquisitionDate *string `json:"acquisitionDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Status          *string `json:"status,omitempty" binding:"omitempty,oneof=AVAILABLE ASSIGNED LOST RETIRED"`
}

// PhoneListData is the payload shape for phone listings.
type PhoneListData struct {
	Phones     []models.Phone `json:"phones"`
	Pagination PaginationInfo `json:"pagination"`
}

// CreatePhone godoc
// @Summary Register a phone
// @Description Registers a new handset. IMEI must be exactly 15 digits and unique.
// @Tags phones
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param phone body CreatePhonePayload true "Phone data"
// @Success 201 {object} utils.SuccessResponse{data=models.Phone}
// @Failure 400 {object} utils.APIErrorResponse "Invalid request parameters or IMEI format"
// @Failure 409 {object} utils.APIErrorResponse "Duplicate IMEI"
// @Failure 500 {object} utils.APIErrorResponse "Storage failure"
// @Router /phones [post]
func (h *PhoneHandler) CreatePhone(c *gin.Context) {
	var payload CreatePhonePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	phone := models.Phone{
		Imei:  payload.Imei,
		Brand: payload.Brand,
		Model: payload.Model,
	}
	if payload.Status != nil {
		phone.Status = *payload.Status
	}
	if payload.AcquisitionDate != nil {
		parsed, err := utils.ParseDate(*payload.AcquisitionDate)
		if err != nil {
			utils.RespondValidationError(c, err.Error())
			return
		}
		phone.AcquisitionDate = &parsed
	}

	created, err := h.service.RegisterPhone(&phone)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidImeiFormat), errors.Is(err, services.ErrInvalidPhoneStatus):
			utils.RespondValidationError(c, err.Error())
		case errors.Is(err, repositories.ErrImeiConflict):
			utils.RespondConflictError(c, err.Error())
		default:
			utils.RespondInternalServerError(c, "Failed to register phone", err.Error())
		}
		return
	}

	logger.Info("phone registered", zap.Int64("phoneID", created.ID), zap.String("imei", created.Imei))
	utils.RespondSuccess(c, http.StatusCreated, created, "Phone registered")
}

// GetPhones godoc
// @Summary List phones
// @Description Paginated phone listing with optional status filter and IMEI/brand/model search.
// @Tags phones
// @Security BearerAuth
// @Produce  json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param sortBy query string false "Sort field" Enums(id, imei, brand, model, status, acquisitionDate, createdAt)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc)
// @Param search query string false "Match against IMEI, brand or model"
// @Param status query string false "Filter by status" Enums(AVAILABLE, ASSIGNED, LOST, RETIRED)
// @Success 200 {object} utils.SuccessResponse{data=PhoneListData}
// @Failure 500 {object} utils.APIErrorResponse "Storage failure"
// @Router /phones [get]
func (h *PhoneHandler) GetPhones(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	sortBy := c.DefaultQuery("sortBy", "createdAt")
	sortOrder := c.DefaultQuery("sortOrder", "desc")
	search := c.Query("search")
	status := c.Query("status")

	phones, total, err := h.service.GetPhones(page, limit, sortBy, sortOrder, search, status)
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to list phones", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusOK, PhoneListData{
		Phones: phones,
		Pagination: PaginationInfo{
			TotalItems:  total,
			TotalPages:  totalPages(total, limit),
			CurrentPage: page,
			PageSize:    limit,
		},
	}, "")
}

// GetPhoneByID godoc
// @Summary Get a phone
// @Tags phones
// @Security BearerAuth
// @Produce  json
// @Param id path int true "Phone ID"
// @Success 200 {object} utils.SuccessResponse{data=models.Phone}
// @Failure 400 {object} utils.APIErrorResponse "Invalid id"
// @Failure 404 {object} utils.APIErrorResponse "Phone not found"
// @Router /phones/{id} [get]
func (h *PhoneHandler) GetPhoneByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "Invalid phone id")
		return
	}

	phone, err := h.service.GetPhoneByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPhoneNotFound) {
			utils.RespondNotFoundError(c, "Phone")
			return
		}
		utils.RespondInternalServerError(c, "Failed to fetch phone", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, phone, "")
}

// UpdatePhone godoc
// @Summary Update a phone
// @Description Partial update; only the provided fields change.
// @Tags phones
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path int true "Phone ID"
// @Param phone body models.PhoneUpdatePayload true "Fields to update"
// @Success 200 {object} utils.SuccessResponse{data=models.Phone}
// @Failure 400 {object} utils.APIErrorResponse "Invalid request parameters"
// @Failure 404 {object} utils.APIErrorResponse "Phone not found"
// @Failure 409 {object} utils.APIErrorResponse "Duplicate IMEI"
// @Router /phones/{id} [patch]
func (h *PhoneHandler) UpdatePhone(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "Invalid phone id")
		return
	}

	var payload models.PhoneUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	phone, err := h.service.UpdatePhone(id, payload)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPhoneNotFound):
			utils.RespondNotFoundError(c, "Phone")
		case errors.Is(err, repositories.ErrImeiConflict):
			utils.RespondConflictError(c, err.Error())
		case errors.Is(err, utils.ErrInvalidImeiFormat), errors.Is(err, services.ErrInvalidPhoneStatus):
			utils.RespondValidationError(c, err.Error())
		default:
			utils.RespondValidationError(c, err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, phone, "Phone updated")
}

// DeletePhone godoc
// @Summary Delete a phone
// @Description Permanently removes a handset. Rejected while the phone still holds active chip assignments.
// @Tags phones
// @Security BearerAuth
// @Produce  json
// @Param id path int true "Phone ID"
// @Success 200 {object} utils.SuccessResponse "Phone deleted"
// @Failure 400 {object} utils.APIErrorResponse "Invalid id"
// @Failure 404 {object} utils.APIErrorResponse "Phone not found"
// @Failure 409 {object} utils.APIErrorResponse "Phone has active assignments"
// @Router /phones/{id} [delete]
func (h *PhoneHandler) DeletePhone(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "Invalid phone id")
		return
	}

	if err := h.service.DeletePhone(id); err != nil {
		switch {
		case errors.Is(err, services.ErrPhoneNotFound):
			utils.RespondNotFoundError(c, "Phone")
		case errors.Is(err, repositories.ErrPhoneHasActiveAssignments):
			utils.RespondConflictError(c, err.Error())
		default:
			utils.RespondInternalServerError(c, "Failed to delete phone", err.Error())
		}
		return
	}

	logger.Info("phone deleted", zap.Int64("phoneID", id))
	utils.RespondSuccess(c, http.StatusOK, nil, "Phone deleted")
}
