package repository

import (
	"context"

	"github.com/sjperalta/rental-desk/internal/models"
	"gorm.io/gorm"
)

// AuditRepository defines the interface for audit log access
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	List(ctx context.Context, query *ListQuery) ([]models.AuditLog, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) List(ctx context.Context, query *ListQuery) ([]models.AuditLog, int64, error) {
	var logs []models.AuditLog
	var total int64

	db := r.db.WithContext(ctx).Model(&models.AuditLog{})

	if query.Filters["action"] != "" {
		db = db.Where("action = ?", query.Filters["action"])
	}
	if query.Filters["entity"] != "" {
		db = db.Where("entity = ?", query.Filters["entity"])
	}
	if query.Filters["user_id"] != "" {
		db = db.Where("user_id = ?", query.Filters["user_id"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if query.PerPage > 0 {
		db = db.Offset(query.offset()).Limit(query.PerPage)
	}

	err := db.Order("created_at DESC").Order("id DESC").Find(&logs).Error
	return logs, total, err
}
