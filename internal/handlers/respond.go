package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/rental-desk/internal/middleware"
	"github.com/sjperalta/rental-desk/internal/rentalapi"
	"github.com/sjperalta/rental-desk/internal/services"
)

// actorFrom builds the service actor from the authenticated request
func actorFrom(c *gin.Context) services.Actor {
	return services.Actor{
		UserID:    middleware.GetUserID(c),
		Role:      middleware.GetUserRole(c),
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// respondError writes the status and body for a service error
func respondError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, body)
}

func errorResponse(err error) (int, gin.H) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		body := gin.H{"error": verr.Message}
		if len(verr.Details) > 0 {
			body["details"] = verr.Details
		}
		return http.StatusUnprocessableEntity, body
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, gin.H{"error": "Not found"}
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, gin.H{"error": "You do not have access to this draft"}
	case errors.Is(err, services.ErrSuperseded):
		return http.StatusConflict, gin.H{"error": "Superseded by a newer request"}
	case errors.Is(err, services.ErrInvalidState):
		return http.StatusConflict, gin.H{"error": "The draft cannot be changed right now"}
	}

	var apiErr *rentalapi.APIError
	if errors.As(err, &apiErr) {
		return upstreamStatus(apiErr), gin.H{"error": upstreamMessage(apiErr, "Rental backend request failed")}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, gin.H{"error": "Rental backend timed out"}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return http.StatusBadGateway, gin.H{"error": "Rental backend is unavailable"}
	}

	return http.StatusInternalServerError, gin.H{"error": "Internal server error"}
}

// upstreamStatus passes backend client errors through and reports
// everything else as a bad gateway
func upstreamStatus(apiErr *rentalapi.APIError) int {
	if apiErr.Status >= 400 && apiErr.Status < 500 {
		return apiErr.Status
	}
	return http.StatusBadGateway
}

func upstreamMessage(apiErr *rentalapi.APIError, fallback string) string {
	if detail := apiErr.Detail(); detail != "" {
		return detail
	}
	return fallback
}

func paramInt64(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}

func attachment(c *gin.Context, contentType, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
