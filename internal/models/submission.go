package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Submission status constants
const (
	SubmissionCreated = "created"
	SubmissionFailed  = "failed"
)

// Payment status constants for the follow-up payment call
const (
	PaymentNone     = "none"
	PaymentPending  = "pending"
	PaymentRecorded = "recorded"
	PaymentFailed   = "failed"
)

// Submission records one attempt to create a contract on the rental backend
type Submission struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	SessionID       string          `gorm:"size:36;index;not null" json:"session_id"`
	UserID          uint            `gorm:"index;not null" json:"user_id"`
	Status          string          `gorm:"size:20;index;not null" json:"status"`
	ContractID      *int64          `gorm:"index" json:"contract_id"`
	CustomerID      int64           `gorm:"index" json:"customer_id"`
	CarID           int64           `json:"car_id"`
	StartDate       *time.Time      `json:"start_date"`
	EndDate         *time.Time      `json:"end_date"`
	RentalDays      int             `json:"rental_days"`
	SurchargeCount  int             `json:"surcharge_count"`
	SurchargeTotal  decimal.Decimal `gorm:"type:decimal(14,2)" json:"surcharge_total"`
	Discount        decimal.Decimal `gorm:"type:decimal(14,2)" json:"discount"`
	Deposit         decimal.Decimal `gorm:"type:decimal(14,2)" json:"deposit"`
	PaidNow         decimal.Decimal `gorm:"type:decimal(14,2)" json:"paid_now"`
	GrandTotal      decimal.Decimal `gorm:"type:decimal(14,2)" json:"grand_total"`
	Remaining       decimal.Decimal `gorm:"type:decimal(14,2)" json:"remaining"`
	PaymentMethod   string          `gorm:"size:30" json:"payment_method"`
	PaymentStatus   string          `gorm:"size:20;default:none" json:"payment_status"`
	PickupBranchID  *int64          `json:"pickup_branch_id"`
	DropoffBranchID *int64          `json:"dropoff_branch_id"`
	EmployeeID      *int64          `json:"employee_id"`
	ErrorMessage    string          `gorm:"type:text" json:"error_message,omitempty"`
	Payload         string          `gorm:"type:text" json:"-"`
	QuotePath       string          `gorm:"size:255" json:"quote_path,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TableName specifies the table name for Submission
func (Submission) TableName() string {
	return "contract_submissions"
}

// Succeeded returns true if the backend accepted the contract
func (s *Submission) Succeeded() bool {
	return s.Status == SubmissionCreated
}
