package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fleet_inventory/internal/auth"
	"github.com/fleet_inventory/internal/handlers"
	"github.com/fleet_inventory/internal/models"
)

// Role sets reused across the asset routes. Reads are open to the whole
// inventory team, writes to supervisors and up, deletes to the admin only.
var (
	inventoryReadRoles = []string{
		models.RoleAdmin,
		models.RoleInventorySupervisor,
		models.RoleInventoryOperator,
	}
	inventoryWriteRoles = []string{
		models.RoleAdmin,
		models.RoleInventorySupervisor,
	}
	reportRoles = []string{
		models.RoleAdmin,
		models.RoleOpsSupervisor,
		models.RoleCampaignOperator,
		models.RoleInventorySupervisor,
		models.RoleInventoryOperator,
	}
)

// SetupAssetRoutes registers the phone, chip, state, assignment, transfer
// and report routes under /api/v1. Every route requires a valid token; the
// role guard varies per operation.
func SetupAssetRoutes(
	router *gin.RouterGroup,
	phoneHandler *handlers.PhoneHandler,
	chipHandler *handlers.ChipHandler,
	stateHandler *handlers.ChipStateHandler,
	assignmentHandler *handlers.AssignmentHandler,
	transferHandler *handlers.TransferHandler,
	reportHandler *handlers.ReportHandler,
) {
	apiV1 := router.Group("/v1")
	apiV1.Use(auth.JWTMiddleware())

	phones := apiV1.Group("/phones")
	{
		phones.GET("", auth.RequireRoles(inventoryReadRoles...), phoneHandler.GetPhones)
		phones.GET("/:id", auth.RequireRoles(inventoryReadRoles...), phoneHandler.GetPhoneByID)
		phones.POST("", auth.RequireRoles(inventoryWriteRoles...), phoneHandler.CreatePhone)
		phones.PATCH("/:id", auth.RequireRoles(inventoryWriteRoles...), phoneHandler.UpdatePhone)
		phones.DELETE("/:id", auth.RequireRoles(models.RoleAdmin), phoneHandler.DeletePhone)

		phones.GET("/:id/assignments", auth.RequireRoles(inventoryReadRoles...), assignmentHandler.GetPhoneAssignments)
		phones.POST("/:id/assignments", auth.RequireRoles(inventoryReadRoles...), assignmentHandler.AssignChip)
		phones.DELETE("/:id/assignments", auth.RequireRoles(inventoryWriteRoles...), assignmentHandler.UnassignChip)

		phones.GET("/:id/transfers", auth.RequireRoles(inventoryWriteRoles...), transferHandler.GetPhoneTransfers)
		phones.POST("/:id/transfers", auth.RequireRoles(inventoryWriteRoles...), transferHandler.CreateTransfer)
	}

	chips := apiV1.Group("/chips")
	{
		chips.GET("", auth.RequireRoles(inventoryReadRoles...), chipHandler.GetChips)
		chips.GET("/available", auth.RequireRoles(inventoryReadRoles...), assignmentHandler.GetAvailableChips)
		chips.GET("/:id", auth.RequireRoles(inventoryReadRoles...), chipHandler.GetChipByID)
		chips.POST("", auth.RequireRoles(inventoryWriteRoles...), chipHandler.CreateChip)
		chips.PATCH("/:id", auth.RequireRoles(inventoryWriteRoles...), chipHandler.UpdateChip)
		chips.DELETE("/:id", auth.RequireRoles(models.RoleAdmin), chipHandler.DeleteChip)

		chips.GET("/:id/state-changes", auth.RequireRoles(inventoryReadRoles...), stateHandler.GetHistory)
		chips.POST("/:id/state-changes", auth.RequireRoles(inventoryWriteRoles...), stateHandler.RecordStateChange)
	}

	states := apiV1.Group("/chip-states")
	{
		states.GET("", auth.RequireRoles(inventoryWriteRoles...), stateHandler.GetStates)
		states.POST("", auth.RequireRoles(models.RoleAdmin), stateHandler.CreateState)
		states.PUT("/:id", auth.RequireRoles(models.RoleAdmin), stateHandler.UpdateState)
		states.DELETE("/:id", auth.RequireRoles(models.RoleAdmin), stateHandler.DeleteState)
	}

	reports := apiV1.Group("/reports")
	{
		reports.GET("/dashboard", auth.RequireRoles(reportRoles...), reportHandler.GetDashboard)
		reports.GET("/export", auth.RequireRoles(reportRoles...), reportHandler.ExportInventory)
	}
}
