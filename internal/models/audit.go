package models

import (
	"time"
)

// Audit action constants
const (
	AuditSubmit  = "SUBMIT"
	AuditFail    = "SUBMIT_FAILED"
	AuditAbandon = "ABANDON"
	AuditPayment = "PAYMENT"
	AuditArchive = "ARCHIVE"
	AuditSweep   = "EXPIRE"
)

// AuditLog represents a system audit entry
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`  // 0 for scheduled jobs
	Action    string    `gorm:"size:50;not null" json:"action"` // SUBMIT, SUBMIT_FAILED, ABANDON, PAYMENT, ARCHIVE, EXPIRE
	Entity    string    `gorm:"size:50;not null" json:"entity"` // Session, Contract
	EntityID  string    `gorm:"size:64" json:"entity_id"`
	Details   string    `gorm:"type:text" json:"details"`
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	UserAgent string    `gorm:"size:255" json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
