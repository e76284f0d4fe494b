package services

import (
	"github.com/sjperalta/rental-desk/internal/config"
	"github.com/sjperalta/rental-desk/internal/jobs"
	"github.com/sjperalta/rental-desk/internal/repository"
	"github.com/sjperalta/rental-desk/internal/session"
)

// Services holds all service instances
type Services struct {
	Session  *SessionService
	Catalog  *CatalogService
	Contract *ContractService
	Export   *ExportService
	Audit    *AuditService
	Job      *JobService
}

// NewServices creates all service instances
func NewServices(
	repos *repository.Repositories,
	api RentalAPI,
	store *session.Store,
	worker *jobs.Worker,
	storage DocumentStore,
	cfg *config.Config,
) (*Services, error) {
	exportSvc, err := NewExportService(cfg.Currency)
	if err != nil {
		return nil, err
	}
	auditSvc := NewAuditService(repos.Audit)
	catalogSvc := NewCatalogService(api)
	sessionSvc := NewSessionService(store, catalogSvc, auditSvc)

	return &Services{
		Session:  sessionSvc,
		Catalog:  catalogSvc,
		Contract: NewContractService(api, sessionSvc, repos.Submission, auditSvc, exportSvc, storage, worker),
		Export:   exportSvc,
		Audit:    auditSvc,
		Job:      NewJobService(worker, store),
	}, nil
}
