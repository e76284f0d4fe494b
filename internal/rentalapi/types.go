package rentalapi

import (
	"github.com/shopspring/decimal"
)

// Customer as listed by the rental backend
type Customer struct {
	CustomerID int64  `json:"customer_id"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address,omitempty"`
}

// Label is the display text used by the desk pickers
func (c Customer) Label() string {
	if c.Phone == "" {
		return c.FullName
	}
	return c.FullName + " - " + c.Phone
}

// Vehicle as listed by the rental backend. Older deployments send
// price_per_day instead of daily_rate, and id instead of car_id.
type Vehicle struct {
	CarID        int64            `json:"car_id,omitempty"`
	ID           int64            `json:"id,omitempty"`
	LicensePlate string           `json:"license_plate"`
	DailyRate    *decimal.Decimal `json:"daily_rate,omitempty"`
	PricePerDay  *decimal.Decimal `json:"price_per_day,omitempty"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate,omitempty"`
	Status       string           `json:"status,omitempty"`
	TypeID       *int64           `json:"type_id,omitempty"`
}

// Key returns the vehicle identifier
func (v Vehicle) Key() int64 {
	if v.CarID != 0 {
		return v.CarID
	}
	return v.ID
}

// Rate returns the daily rate, falling back to price_per_day when the daily
// rate is missing or zero.
func (v Vehicle) Rate() decimal.Decimal {
	if v.DailyRate != nil && !v.DailyRate.IsZero() {
		return *v.DailyRate
	}
	if v.PricePerDay != nil {
		return *v.PricePerDay
	}
	return decimal.Zero
}

// VehicleType is a car category
type VehicleType struct {
	TypeID   int64  `json:"type_id"`
	TypeName string `json:"type_name"`
}

// Branch is a pickup/dropoff location
type Branch struct {
	BranchID   int64  `json:"branch_id"`
	BranchName string `json:"branch_name"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// Employee is a staff member who can handle a contract
type Employee struct {
	EmployeeID int64  `json:"employee_id"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	RoleID     *int64 `json:"role_id,omitempty"`
	BranchID   *int64 `json:"branch_id,omitempty"`
}

// CustomerQuery filters the customer list
type CustomerQuery struct {
	Search string
	Skip   int
	Limit  int
}

// VehicleQuery filters the vehicle list
type VehicleQuery struct {
	Search string
	TypeID string
	Skip   int
	Limit  int
}

// EmployeeQuery filters the employee list
type EmployeeQuery struct {
	Search   string
	BranchID string
	Skip     int
	Limit    int
}

// ContractCar is the vehicle line of a contract request
type ContractCar struct {
	CarID     int64           `json:"CarID"`
	DailyRate decimal.Decimal `json:"DailyRate"`
	Amount    decimal.Decimal `json:"Amount"`
}

// ContractSurcharge is a surcharge line of a contract request
type ContractSurcharge struct {
	SurchargeID int64           `json:"SurchargeID"`
	UnitPrice   decimal.Decimal `json:"UnitPrice"`
	Quantity    int             `json:"Quantity"`
}

// ContractCreate is the body of POST /contracts
type ContractCreate struct {
	CustomerID  int64               `json:"CustomerID"`
	StartDate   *string             `json:"StartDate"`
	EndDate     *string             `json:"EndDate"`
	TotalAmount *decimal.Decimal    `json:"TotalAmount,omitempty"`
	Notes       string              `json:"Notes,omitempty"`
	Cars        []ContractCar       `json:"Cars"`
	Surcharges  []ContractSurcharge `json:"Surcharges"`
}

// ContractCreated is the response of POST /contracts
type ContractCreated struct {
	ContractID *int64  `json:"ContractID,omitempty"`
	AltID      *int64  `json:"id,omitempty"`
	CustomerID int64   `json:"CustomerID,omitempty"`
	Status     *string `json:"Status,omitempty"`
}

// ID returns the created contract id; ok is false when the backend sent none
func (c *ContractCreated) ID() (int64, bool) {
	if c == nil {
		return 0, false
	}
	if c.ContractID != nil {
		return *c.ContractID, true
	}
	if c.AltID != nil {
		return *c.AltID, true
	}
	return 0, false
}
