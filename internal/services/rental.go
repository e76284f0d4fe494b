package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/rental-desk/internal/jobs"
	"github.com/sjperalta/rental-desk/internal/rentalapi"
)

// RentalAPI is the subset of the rental backend used by the desk
type RentalAPI interface {
	ListCustomers(ctx context.Context, q rentalapi.CustomerQuery) ([]rentalapi.Customer, error)
	FindCustomerByPhone(ctx context.Context, phone string) (*rentalapi.Customer, error)
	ListVehicles(ctx context.Context, q rentalapi.VehicleQuery) ([]rentalapi.Vehicle, error)
	ListVehicleTypes(ctx context.Context) ([]rentalapi.VehicleType, error)
	ListBranches(ctx context.Context) ([]rentalapi.Branch, error)
	ListEmployees(ctx context.Context, q rentalapi.EmployeeQuery) ([]rentalapi.Employee, error)
	CreateContract(ctx context.Context, payload rentalapi.ContractCreate) (*rentalapi.ContractCreated, error)
	RecordPayment(ctx context.Context, contractID int64, amount decimal.Decimal, method string) error
}

// Enqueuer runs background jobs
type Enqueuer interface {
	Enqueue(job jobs.Job)
	EnqueueAsync(job jobs.Job)
}

// DocumentStore archives generated documents
type DocumentStore interface {
	UploadFromBytes(data []byte, filename string, subDir string) (string, error)
}

// Actor identifies the staff member behind a request
type Actor struct {
	UserID    uint
	Role      string
	IP        string
	UserAgent string
}

// IsAdmin reports whether the actor may see every draft
func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}
