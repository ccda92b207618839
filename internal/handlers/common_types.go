package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fleet_inventory/internal/auth"
)

// PaginationInfo is the shared pagination block in list responses.
type PaginationInfo struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

// totalPages computes the page count for a listing.
func totalPages(totalItems int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	pages := totalItems / int64(limit)
	if totalItems%int64(limit) != 0 {
		pages++
	}
	return pages
}

// actorID pulls the authenticated user's id out of the request context set
// by the JWT middleware.
func actorID(c *gin.Context) (int64, bool) {
	val, exists := c.Get(auth.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := val.(int64)
	return id, ok
}
