package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/rental-desk/internal/services"
)

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditSvc *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditSvc}
}

// @Summary List Audit Logs
// @Description Paginated desk audit trail, newest first (admin only)
// @Tags Audits
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param action query string false "SUBMIT, SUBMIT_FAILED, ABANDON, PAYMENT, ARCHIVE or EXPIRE"
// @Param entity query string false "Contract or Session"
// @Param user_id query int false "Staff user"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /audits [get]
func (h *AuditHandler) Index(c *gin.Context) {
	query := listQueryFrom(c, "action", "entity", "user_id")

	logs, total, err := h.auditService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audits": logs, "pagination": pagination(query, total)})
}
