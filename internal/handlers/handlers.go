package handlers

import (
	"github.com/sjperalta/rental-desk/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health    *HealthHandler
	Session   *SessionHandler
	Surcharge *SurchargeHandler
	Catalog   *CatalogHandler
	Contract  *ContractHandler
	Export    *ExportHandler
	Audit     *AuditHandler
	Job       *JobHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(),
		Session:   NewSessionHandler(svcs.Session, svcs.Catalog),
		Surcharge: NewSurchargeHandler(svcs.Session),
		Catalog:   NewCatalogHandler(svcs.Catalog),
		Contract:  NewContractHandler(svcs.Contract),
		Export:    NewExportHandler(svcs.Session, svcs.Export),
		Audit:     NewAuditHandler(svcs.Audit),
		Job:       NewJobHandler(svcs.Job),
	}
}
