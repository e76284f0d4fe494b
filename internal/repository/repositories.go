package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Submission SubmissionRepository
	Audit      AuditRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Submission: NewSubmissionRepository(db),
		Audit:      NewAuditRepository(db),
	}
}
