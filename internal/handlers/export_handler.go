package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sjperalta/rental-desk/internal/services"
	"github.com/sjperalta/rental-desk/internal/session"
	"github.com/sjperalta/rental-desk/pkg/logger"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler streams printable documents of a draft
type ExportHandler struct {
	sessionService *services.SessionService
	exportService  *services.ExportService
}

func NewExportHandler(sessionSvc *services.SessionService, exportSvc *services.ExportService) *ExportHandler {
	return &ExportHandler{sessionService: sessionSvc, exportService: exportSvc}
}

func (h *ExportHandler) draft(c *gin.Context) (session.Draft, bool) {
	sess, err := h.sessionService.Get(c.Request.Context(), c.Param("session_id"), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return session.Draft{}, false
	}
	return sess.Draft(), true
}

// @Summary Quote PDF
// @Description Download the current quote of the draft as PDF. Incomplete drafts are allowed.
// @Tags Exports
// @Produce application/pdf
// @Param session_id path string true "Session ID"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /sessions/{session_id}/quote.pdf [get]
func (h *ExportHandler) QuotePDF(c *gin.Context) {
	d, ok := h.draft(c)
	if !ok {
		return
	}
	data, filename, err := h.exportService.QuotePDF(d)
	if err != nil {
		logger.Error("Failed to render quote PDF", "session_id", d.SessionID, "error", err)
		respondError(c, err)
		return
	}
	attachment(c, contentTypePDF, filename, data)
}

// @Summary Quote Spreadsheet
// @Description Download the current quote of the draft as XLSX
// @Tags Exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param session_id path string true "Session ID"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /sessions/{session_id}/quote.xlsx [get]
func (h *ExportHandler) QuoteXLSX(c *gin.Context) {
	d, ok := h.draft(c)
	if !ok {
		return
	}
	data, filename, err := h.exportService.QuoteXLSX(d)
	if err != nil {
		logger.Error("Failed to render quote spreadsheet", "session_id", d.SessionID, "error", err)
		respondError(c, err)
		return
	}
	attachment(c, contentTypeXLSX, filename, data)
}

// @Summary Contract PDF
// @Description Printable rental contract. Requires customer, vehicle and dates.
// @Tags Exports
// @Produce application/pdf
// @Param session_id path string true "Session ID"
// @Success 200 {file} file
// @Failure 422 {object} map[string]interface{}
// @Security BearerAuth
// @Router /sessions/{session_id}/contract.pdf [get]
func (h *ExportHandler) ContractPDF(c *gin.Context) {
	d, ok := h.draft(c)
	if !ok {
		return
	}
	data, filename, err := h.exportService.ContractPDF(d)
	if err != nil {
		logger.Error("Failed to render contract PDF", "session_id", d.SessionID, "error", err)
		respondError(c, err)
		return
	}
	attachment(c, contentTypePDF, filename, data)
}
