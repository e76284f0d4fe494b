package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/rental-desk/internal/rentalapi"
	"github.com/sjperalta/rental-desk/internal/services"
)

// CatalogHandler proxies the rental backend lists used by the desk pickers
type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogSvc *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogSvc}
}

// @Summary List Customers
// @Tags Catalog
// @Produce json
// @Param search query string false "Name or phone"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]string
// @Security BearerAuth
// @Router /customers [get]
func (h *CatalogHandler) Customers(c *gin.Context) {
	customers, err := h.catalogService.Customers(c.Request.Context(), rentalapi.CustomerQuery{
		Search: c.Query("search"),
		Skip:   queryInt(c, "skip"),
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// @Summary Find Customer By Phone
// @Tags Catalog
// @Produce json
// @Param phone query string true "Phone number"
// @Success 200 {object} rentalapi.Customer
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /customers/by-phone [get]
func (h *CatalogHandler) CustomerByPhone(c *gin.Context) {
	phone := strings.TrimSpace(c.Query("phone"))
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone is required"})
		return
	}
	customer, err := h.catalogService.CustomerByPhone(c.Request.Context(), phone)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// @Summary List Vehicles
// @Description Vehicle list straight from the backend. Drafts should use /sessions/{session_id}/vehicles.
// @Tags Catalog
// @Produce json
// @Param search query string false "Search"
// @Param type_id query string false "Vehicle type"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /vehicles [get]
func (h *CatalogHandler) Vehicles(c *gin.Context) {
	vehicles, err := h.catalogService.Vehicles(c.Request.Context(), rentalapi.VehicleQuery{
		Search: c.Query("search"),
		TypeID: c.Query("type_id"),
		Skip:   queryInt(c, "skip"),
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// @Summary List Vehicle Types
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /vehicle-types [get]
func (h *CatalogHandler) VehicleTypes(c *gin.Context) {
	types, err := h.catalogService.VehicleTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle_types": types})
}

// @Summary List Branches
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /branches [get]
func (h *CatalogHandler) Branches(c *gin.Context) {
	branches, err := h.catalogService.Branches(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"branches": branches})
}

// @Summary List Employees
// @Tags Catalog
// @Produce json
// @Param search query string false "Name"
// @Param branch_id query string false "Branch"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /employees [get]
func (h *CatalogHandler) Employees(c *gin.Context) {
	employees, err := h.catalogService.Employees(c.Request.Context(), rentalapi.EmployeeQuery{
		Search:   c.Query("search"),
		BranchID: c.Query("branch_id"),
		Skip:     queryInt(c, "skip"),
		Limit:    queryInt(c, "limit"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}
