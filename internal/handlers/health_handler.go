package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "rental-desk"
	serviceVersion = "1.0.0"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// @Summary Health Check
// @Description Checks if the API is running
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
		"version": serviceVersion,
	})
}
