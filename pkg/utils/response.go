package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Status  string      `json:"status"`            // always "success"
	Message string      `json:"message,omitempty"` // optional human-readable message
	Data    interface{} `json:"data,omitempty"`    // response payload
}

// RespondJSON is the common helper every other responder funnels through.
func RespondJSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// RespondSuccess sends a standard success JSON response.
func RespondSuccess(c *gin.Context, status int, data interface{}, message string) {
	response := SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
	if message == "" && data == nil {
		response.Message = "Operation successful"
	}
	RespondJSON(c, status, response)
}

// APIErrorResponse is the error envelope: { "error": "...", "details": ... }.
// Details may be a string or a structured map.
type APIErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondAPIError sends an error response and aborts the request chain.
func RespondAPIError(c *gin.Context, status int, errorMessage string, details interface{}) {
	response := APIErrorResponse{
		Error: errorMessage,
	}
	if details != nil {
		response.Details = details
	}
	c.AbortWithStatusJSON(status, response)
}

// RespondValidationError reports malformed or rejected request parameters.
func RespondValidationError(c *gin.Context, details interface{}) {
	RespondAPIError(c, http.StatusBadRequest, "Invalid request parameters", details)
}

// RespondUnauthorizedError reports a missing, invalid or expired credential.
func RespondUnauthorizedError(c *gin.Context, message ...string) {
	errMsg := "Not authenticated or token invalid/expired"
	if len(message) > 0 && message[0] != "" {
		errMsg = message[0]
	}
	RespondAPIError(c, http.StatusUnauthorized, errMsg, nil)
}

// RespondForbiddenError reports an authenticated actor lacking the required
// role set.
func RespondForbiddenError(c *gin.Context, message ...string) {
	errMsg := "Insufficient permissions for this action"
	if len(message) > 0 && message[0] != "" {
		errMsg = message[0]
	}
	RespondAPIError(c, http.StatusForbidden, errMsg, nil)
}

// RespondNotFoundError reports a missing resource by name.
func RespondNotFoundError(c *gin.Context, resourceName string) {
	RespondAPIError(c, http.StatusNotFound, resourceName+" not found", nil)
}

// RespondConflictError reports a user-correctable conflict: duplicate keys,
// capacity exceeded, already-assigned, delete blocked by active references.
func RespondConflictError(c *gin.Context, message string, details ...string) {
	var detailContent interface{}
	if len(details) > 0 {
		detailContent = details[0]
	}
	RespondAPIError(c, http.StatusConflict, message, detailContent)
}

// RespondInternalServerError reports an unexpected storage or server failure.
func RespondInternalServerError(c *gin.Context, message string, errDetails ...string) {
	var details interface{}
	if len(errDetails) > 0 {
		details = errDetails[0]
	}
	RespondAPIError(c, http.StatusInternalServerError, message, details)
}
