package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sjperalta/rental-desk/internal/middleware"
)

// Register mounts the API under v1. Everything but the health check
// requires a staff token.
func (h *Handlers) Register(v1 *gin.RouterGroup, jwtSecret string) {
	v1.GET("/health", h.Health.Index)

	protected := v1.Group("")
	protected.Use(middleware.Auth(jwtSecret))
	{
		protected.GET("/jobs/status", h.Job.Status)

		// Backend lists for the pickers
		protected.GET("/customers", h.Catalog.Customers)
		protected.GET("/customers/by-phone", h.Catalog.CustomerByPhone)
		protected.GET("/vehicles", h.Catalog.Vehicles)
		protected.GET("/vehicle-types", h.Catalog.VehicleTypes)
		protected.GET("/branches", h.Catalog.Branches)
		protected.GET("/employees", h.Catalog.Employees)

		// Contract drafts
		protected.POST("/sessions", h.Session.Create)
		sessions := protected.Group("/sessions/:session_id")
		{
			sessions.GET("", h.Session.Show)
			sessions.PATCH("", h.Session.Update)
			sessions.DELETE("", h.Session.Delete)
			sessions.PUT("/customer", h.Session.SelectCustomer)
			sessions.PUT("/vehicle", h.Session.SelectVehicle)
			sessions.DELETE("/vehicle", h.Session.ClearVehicle)
			sessions.GET("/vehicles", h.Session.Vehicles)
			sessions.GET("/summary", h.Session.Summary)
			sessions.GET("/preview", h.Session.Preview)

			sessions.GET("/surcharges", h.Surcharge.Index)
			sessions.POST("/surcharges", h.Surcharge.Create)
			sessions.DELETE("/surcharges", h.Surcharge.Clear)
			sessions.PUT("/surcharges/:surcharge_id", h.Surcharge.Update)
			sessions.DELETE("/surcharges/:surcharge_id", h.Surcharge.Delete)

			sessions.POST("/submit", h.Contract.Submit)

			sessions.GET("/quote.pdf", h.Export.QuotePDF)
			sessions.GET("/quote.xlsx", h.Export.QuoteXLSX)
			sessions.GET("/contract.pdf", h.Export.ContractPDF)
		}

		admin := protected.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/submissions", h.Contract.Index)
			admin.GET("/audits", h.Audit.Index)
		}
	}
}
