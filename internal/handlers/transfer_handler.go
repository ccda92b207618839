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

// TransferHandler wraps the phone-handover HTTP endpoints.
type TransferHandler struct {
	service services.TransferService
}

// NewTransferHandler creates a new TransferHandler instance.
func NewTransferHandler(service services.TransferService) *TransferHandler {
	return &TransferHandler{service: service}
}

// CreateTransferPayload is the request body for recording a handover. The
// supervisor is the authenticated caller; only the receiving operator is
// named in the body.
type CreateTransferPayload struct {
	OperatorID int64 `json:"operatorId" binding:"required"`
}

// CreateTransfer godoc
// @Summary Record a phone handover
// @Description Records the handset being handed from the calling supervisor to a campaign operator.
// @Tags transfers
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path int true "Phone ID"
// @Param transfer body CreateTransferPayload true "Receiving operator"
// @Success 201 {object} utils.SuccessResponse{data=models.Transfer}
// @Failure 400 {object} utils.APIErrorResponse "Invalid request parameters"
// @Failure 404 {object} utils.APIErrorResponse "Phone or operator not found"
// @Router /phones/{id}/transfers [post]
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	phoneID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "Invalid phone id")
		return
	}

	var payload CreateTransferPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	supervisorID, ok := actorID(c)
	if !ok {
		utils.RespondUnauthorizedError(c)
		return
	}

	transfer, err := h.service.CreateTransfer(c.Request.Context(), phoneID, supervisorID, payload.OperatorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPhoneNotFound):
			utils.RespondNotFoundError(c, "Phone")
		case errors.Is(err, repositories.ErrUserNotFound):
			utils.RespondNotFoundError(c, "Operator")
		default:
			utils.RespondInternalServerError(c, "Failed to record transfer", err.Error())
		}
		return
	}

	logger.Info("phone transferred",
		zap.Int64("phoneID", phoneID),
		zap.Int64("supervisorID", supervisorID),
		zap.Int64("operatorID", payload.OperatorID),
	)
	utils.RespondSuccess(c, http.StatusCreated, transfer, "Transfer recorded")
}

// GetPhoneTransfers godoc
// @Summary List a phone's handovers
// @Description Lists the phone's handover records, newest first.
// @Tags transfers
// @Security BearerAuth
// @Produce  json
// @Param id path int true "Phone ID"
// @Success 200 {object} utils.SuccessResponse{data=[]models.Transfer}
// @Failure 400 {object} utils.APIErrorResponse "Invalid id"
// @Failure 404 {object} utils.APIErrorResponse "Phone not found"
// @Router /phones/{id}/transfers [get]
func (h *TransferHandler) GetPhoneTransfers(c *gin.Context) {
	phoneID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "Invalid phone id")
		return
	}

	transfers, err := h.service.TransfersForPhone(c.Request.Context(), phoneID)
	if err != nil {
		if errors.Is(err, services.ErrPhoneNotFound) {
			utils.RespondNotFoundError(c, "Phone")
			return
		}
		utils.RespondInternalServerError(c, "Failed to list transfers", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, transfers, "")
}
