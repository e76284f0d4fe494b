package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/rental-desk/internal/services"
	"github.com/sjperalta/rental-desk/internal/session"
)

type SurchargeHandler struct {
	sessionService *services.SessionService
}

func NewSurchargeHandler(sessionSvc *services.SessionService) *SurchargeHandler {
	return &SurchargeHandler{sessionService: sessionSvc}
}

func ledgerResponse(sess *session.Session) gin.H {
	summary := sess.Summary()
	return gin.H{
		"surcharges": sess.Surcharges(),
		"total":      summary.SurchargeTotal,
		"summary":    summary,
	}
}

// @Summary List Surcharges
// @Description Surcharge lines in display order with their total
// @Tags Surcharges
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /sessions/{session_id}/surcharges [get]
func (h *SurchargeHandler) Index(c *gin.Context) {
	sess, err := h.sessionService.Get(c.Request.Context(), c.Param("session_id"), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ledgerResponse(sess))
}

// @Summary Add Surcharge
// @Description Append a surcharge line. Unit price and quantity accept formatted text ("1,200").
// @Tags Surcharges
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param surcharge body services.SurchargeRequest true "Surcharge"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Security BearerAuth
// @Router /sessions/{session_id}/surcharges [post]
func (h *SurchargeHandler) Create(c *gin.Context) {
	var req services.SurchargeRequest
	if err := BindNestedOrFlat(c, "surcharge", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, sess, err := h.sessionService.AddSurcharge(c.Request.Context(), c.Param("session_id"), actorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := ledgerResponse(sess)
	resp["surcharge"] = item
	c.JSON(http.StatusCreated, resp)
}

// @Summary Update Surcharge
// @Tags Surcharges
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param surcharge_id path string true "Surcharge ID"
// @Param surcharge body services.SurchargeRequest true "Surcharge"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Security BearerAuth
// @Router /sessions/{session_id}/surcharges/{surcharge_id} [put]
func (h *SurchargeHandler) Update(c *gin.Context) {
	itemID, ok := paramInt64(c, "surcharge_id")
	if !ok {
		return
	}
	var req services.SurchargeRequest
	if err := BindNestedOrFlat(c, "surcharge", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, sess, err := h.sessionService.UpdateSurcharge(c.Request.Context(), c.Param("session_id"), actorFrom(c), itemID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := ledgerResponse(sess)
	resp["surcharge"] = item
	c.JSON(http.StatusOK, resp)
}

// @Summary Remove Surcharge
// @Description Remove a surcharge line. Unknown ids are ignored.
// @Tags Surcharges
// @Produce json
// @Param session_id path string true "Session ID"
// @Param surcharge_id path string true "Surcharge ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /sessions/{session_id}/surcharges/{surcharge_id} [delete]
func (h *SurchargeHandler) Delete(c *gin.Context) {
	itemID, ok := paramInt64(c, "surcharge_id")
	if !ok {
		return
	}
	sess, err := h.sessionService.RemoveSurcharge(c.Request.Context(), c.Param("session_id"), actorFrom(c), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ledgerResponse(sess))
}

// @Summary Clear Surcharges
// @Tags Surcharges
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /sessions/{session_id}/surcharges [delete]
func (h *SurchargeHandler) Clear(c *gin.Context) {
	sess, err := h.sessionService.ClearSurcharges(c.Request.Context(), c.Param("session_id"), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ledgerResponse(sess))
}
