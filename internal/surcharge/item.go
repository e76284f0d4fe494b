package surcharge

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Item is one surcharge line of a contract draft.
type Item struct {
	ID        int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Note      string
}

// Amount is always derived from unit price and quantity.
func (i Item) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type itemJSON struct {
	ID        int64           `json:"id,string"` // exceeds float64 precision as a number
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
}

// MarshalJSON emits the derived amount next to its inputs.
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON{
		ID:        i.ID,
		Name:      i.Name,
		UnitPrice: i.UnitPrice,
		Quantity:  i.Quantity,
		Amount:    i.Amount(),
		Note:      i.Note,
	})
}

// Input is the user-editable part of an item.
type Input struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Note      string

	// UnitPriceNaN marks a price that was given but is not a number
	UnitPriceNaN bool
}

// Validate checks the input and returns field violations, or nil.
func (in Input) Validate() error {
	v := Violations{}
	if strings.TrimSpace(in.Name) == "" {
		v["name"] = "is required"
	}
	switch {
	case in.UnitPriceNaN:
		v["unit_price"] = "must be a number"
	case in.UnitPrice.IsNegative():
		v["unit_price"] = "must not be negative"
	}
	if in.Quantity < 1 {
		v["quantity"] = "must be at least 1"
	}
	if v.Empty() {
		return nil
	}
	return &ValidationError{Violations: v}
}
