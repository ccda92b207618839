package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fleet_inventory/internal/services"
	"github.com/fleet_inventory/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler wraps the dashboard and export HTTP endpoints.
type ReportHandler struct {
	service services.ReportService
}

// NewReportHandler creates a new ReportHandler instance.
func NewReportHandler(service services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GetDashboard godoc
// @Summary Inventory dashboard counts
// @Description Returns the fleet totals shown on the landing page.
// @Tags reports
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} utils.SuccessResponse{data=services.DashboardCounts}
// @Failure 500 {object} utils.APIErrorResponse "Storage failure"
// @Router /reports/dashboard [get]
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	counts, err := h.service.GetDashboardCounts()
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to compute dashboard counts", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, counts, "")
}

// ExportInventory godoc
// @Summary Export inventory workbook
// @Description Streams an xlsx workbook with one sheet of phones and one of chips.
// @Tags reports
// @Security BearerAuth
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Inventory workbook"
// @Failure 500 {object} utils.APIErrorResponse "Export failure"
// @Router /reports/export [get]
func (h *ReportHandler) ExportInventory(c *gin.Context) {
	data, err := h.service.ExportInventory()
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to export inventory", err.Error())
		return
	}

	filename := fmt.Sprintf("inventory_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
