package repository

import (
	"context"

	"github.com/sjperalta/rental-desk/internal/models"
	"gorm.io/gorm"
)

// SubmissionRepository defines the interface for submission record access
type SubmissionRepository interface {
	Create(ctx context.Context, sub *models.Submission) error
	FindByID(ctx context.Context, id uint) (*models.Submission, error)
	List(ctx context.Context, query *ListQuery) ([]models.Submission, int64, error)
	UpdatePaymentStatus(ctx context.Context, id uint, status string) error
	UpdateQuotePath(ctx context.Context, id uint, path string) error
}

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, sub *models.Submission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *submissionRepository) FindByID(ctx context.Context, id uint) (*models.Submission, error) {
	var sub models.Submission
	if err := r.db.WithContext(ctx).First(&sub, id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *submissionRepository) List(ctx context.Context, query *ListQuery) ([]models.Submission, int64, error) {
	var subs []models.Submission
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Submission{})

	if query.Filters["status"] != "" {
		db = db.Where("status = ?", query.Filters["status"])
	}
	if query.Filters["user_id"] != "" {
		db = db.Where("user_id = ?", query.Filters["user_id"])
	}
	if query.Filters["customer_id"] != "" {
		db = db.Where("customer_id = ?", query.Filters["customer_id"])
	}
	if query.Filters["session_id"] != "" {
		db = db.Where("session_id = ?", query.Filters["session_id"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = db.Order(query.order())
	if query.PerPage > 0 {
		db = db.Offset(query.offset()).Limit(query.PerPage)
	}

	err := db.Find(&subs).Error
	return subs, total, err
}

func (r *submissionRepository) UpdatePaymentStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("id = ?", id).
		Update("payment_status", status).Error
}

func (r *submissionRepository) UpdateQuotePath(ctx context.Context, id uint, path string) error {
	return r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("id = ?", id).
		Update("quote_path", path).Error
}
