package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/rental-desk/internal/rentalapi"
	"github.com/sjperalta/rental-desk/internal/repository"
	"github.com/sjperalta/rental-desk/internal/services"
)

type ContractHandler struct {
	contractService *services.ContractService
}

func NewContractHandler(contractService *services.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// @Summary Submit Contract
// @Description Validate the draft and create the contract on the rental backend. On failure the draft is kept; on success it is reset.
// @Tags Contracts
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 201 {object} services.SubmitResult
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Failure 502 {object} map[string]string
// @Security BearerAuth
// @Router /sessions/{session_id}/submit [post]
func (h *ContractHandler) Submit(c *gin.Context) {
	result, err := h.contractService.Submit(c.Request.Context(), c.Param("session_id"), actorFrom(c))
	if err != nil {
		respondSubmitError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// respondSubmitError shows the backend detail, or a generic creation
// failure, for errors raised by the rental backend call
func respondSubmitError(c *gin.Context, err error) {
	var apiErr *rentalapi.APIError
	var urlErr *url.Error
	if errors.As(err, &apiErr) || errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
		status, _ := errorResponse(err)
		c.AbortWithStatusJSON(status, gin.H{"error": services.SubmitErrorMessage(err)})
		return
	}
	respondError(c, err)
}

// @Summary List Submissions
// @Description Paginated contract submission history (admin only)
// @Tags Contracts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param status query string false "created or failed"
// @Param user_id query int false "Staff user"
// @Param customer_id query int false "Customer"
// @Param session_id query string false "Draft session"
// @Param sort_by query string false "created_at, grand_total, status or customer_id"
// @Param sort_dir query string false "asc or desc"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /submissions [get]
func (h *ContractHandler) Index(c *gin.Context) {
	query := listQueryFrom(c, "status", "user_id", "customer_id", "session_id")

	submissions, total, err := h.contractService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissions,
		"pagination":  pagination(query, total),
	})
}

// listQueryFrom reads paging, sorting and the named filters from the query string
func listQueryFrom(c *gin.Context, filters ...string) *repository.ListQuery {
	query := repository.NewListQuery()
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		query.Page = page
	}
	if perPage, err := strconv.Atoi(c.Query("per_page")); err == nil && perPage > 0 {
		query.PerPage = min(perPage, 100)
	}
	query.SortBy = c.Query("sort_by")
	query.SortDir = c.Query("sort_dir")
	for _, f := range filters {
		if v := c.Query(f); v != "" {
			query.Filters[f] = v
		}
	}
	return query
}

func pagination(query *repository.ListQuery, total int64) gin.H {
	return gin.H{
		"page":        query.Page,
		"per_page":    query.PerPage,
		"total":       total,
		"total_pages": (total + int64(query.PerPage) - 1) / int64(query.PerPage),
	}
}
