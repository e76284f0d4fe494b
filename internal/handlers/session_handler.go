package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/rental-desk/internal/rentalapi"
	"github.com/sjperalta/rental-desk/internal/services"
	"github.com/sjperalta/rental-desk/internal/session"
)

type SessionHandler struct {
	sessionService *services.SessionService
	catalogService *services.CatalogService
}

func NewSessionHandler(sessionSvc *services.SessionService, catalogSvc *services.CatalogService) *SessionHandler {
	return &SessionHandler{sessionService: sessionSvc, catalogService: catalogSvc}
}

// VehicleSelection is the body of PUT /sessions/{session_id}/vehicle
type VehicleSelection struct {
	CarID int64 `json:"car_id" binding:"required,gt=0"`
}

// @Summary Open Draft
// @Description Start a new contract draft with an empty surcharge ledger
// @Tags Sessions
// @Produce json
// @Success 201 {object} session.View
// @Security BearerAuth
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	sess := h.sessionService.Create(c.Request.Context(), actorFrom(c))
	c.JSON(http.StatusCreated, gin.H{"session": sess.View()})
}

// @Summary Get Draft
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} session.View
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /sessions/{session_id} [get]
func (h *SessionHandler) Show(c *gin.Context) {
	sess, err := h.sessionService.Get(c.Request.Context(), c.Param("session_id"), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess.View()})
}

// @Summary Update Draft
// @Description Partially update dates, deposit, discount, payment and notes. Amounts accept formatted text.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param session body session.Patch true "Fields to change"
// @Success 200 {object} session.View
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /sessions/{session_id} [patch]
func (h *SessionHandler) Update(c *gin.Context) {
	var patch session.Patch
	if err := BindNestedOrFlat(c, "session", &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sess, err := h.sessionService.UpdateForm(c.Request.Context(), c.Param("session_id"), actorFrom(c), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess.View()})
}

// @Summary Abandon Draft
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /sessions/{session_id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.sessionService.Abandon(c.Request.Context(), c.Param("session_id"), actorFrom(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft abandoned"})
}

// @Summary Select Customer
// @Description Set the customer from a picked record, or look it up by phone with lookup_phone
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param customer body services.CustomerSelection true "Customer"
// @Success 200 {object} session.View
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Security BearerAuth
// @Router /sessions/{session_id}/customer [put]
func (h *SessionHandler) SelectCustomer(c *gin.Context) {
	var sel services.CustomerSelection
	if err := BindNestedOrFlat(c, "customer", &sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sess, err := h.sessionService.SelectCustomer(c.Request.Context(), c.Param("session_id"), actorFrom(c), sel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess.View()})
}

// @Summary Select Vehicle
// @Description Set the vehicle; its daily rate drives the rental subtotal
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param vehicle body VehicleSelection true "Vehicle"
// @Success 200 {object} session.View
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /sessions/{session_id}/vehicle [put]
func (h *SessionHandler) SelectVehicle(c *gin.Context) {
	var req VehicleSelection
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "car_id is required"})
		return
	}

	sess, err := h.sessionService.SelectVehicle(c.Request.Context(), c.Param("session_id"), actorFrom(c), req.CarID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess.View()})
}

// @Summary Clear Vehicle
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} session.View
// @Security BearerAuth
// @Router /sessions/{session_id}/vehicle [delete]
func (h *SessionHandler) ClearVehicle(c *gin.Context) {
	sess, err := h.sessionService.ClearVehicle(c.Request.Context(), c.Param("session_id"), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess.View()})
}

// @Summary Refresh Vehicle List
// @Description Reload the vehicle list for the draft. A newer refresh for the same draft cancels this one (409). q filters plate or status locally.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Param search query string false "Backend search"
// @Param q query string false "Local plate/status filter"
// @Param type_id query string false "Vehicle type"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /sessions/{session_id}/vehicles [get]
func (h *SessionHandler) Vehicles(c *gin.Context) {
	ctx := c.Request.Context()
	sess, err := h.sessionService.Get(ctx, c.Param("session_id"), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	typeID := c.Query("type_id")
	query := rentalapi.VehicleQuery{
		Search: c.Query("search"),
		TypeID: typeID,
		Skip:   queryInt(c, "skip"),
		Limit:  queryInt(c, "limit"),
	}
	vehicles, err := h.catalogService.RefreshVehicles(ctx, sess.ID(), query, c.Query("q"), typeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// @Summary Draft Summary
// @Description Current pricing summary of the draft
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} pricing.Summary
// @Security BearerAuth
// @Router /sessions/{session_id}/summary [get]
func (h *SessionHandler) Summary(c *gin.Context) {
	sess, err := h.sessionService.Get(c.Request.Context(), c.Param("session_id"), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": sess.Summary()})
}

// @Summary Preview Contract
// @Description Printable preview of the draft; missing fields are listed instead of failing
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} session.Preview
// @Security BearerAuth
// @Router /sessions/{session_id}/preview [get]
func (h *SessionHandler) Preview(c *gin.Context) {
	preview, err := h.sessionService.Preview(c.Request.Context(), c.Param("session_id"), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preview": preview})
}
