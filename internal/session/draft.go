package session

import (
	"errors"
	"sort"
	"strings"

	"github.com/sjperalta/rental-desk/internal/pricing"
	"github.com/sjperalta/rental-desk/internal/surcharge"
)

// Draft is an immutable snapshot of a session taken for submission or export
type Draft struct {
	SessionID  string
	Form       Form
	Surcharges []surcharge.Item
	Summary    pricing.Summary
}

// IncompleteError lists the required selections missing from a draft
type IncompleteError struct {
	Fields map[string]string
}

func (e *IncompleteError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, "; ")
}

// Validate checks that a customer, a vehicle and both rental dates are set
func (d Draft) Validate() error {
	fields := map[string]string{}
	if d.Form.Customer == nil || d.Form.Customer.CustomerID == 0 {
		fields["customer"] = "Please select a customer"
	}
	if d.Form.Vehicle == nil || d.Form.Vehicle.Key() == 0 {
		fields["vehicle"] = "Please select a vehicle"
	}
	if !d.Form.Period.Complete() {
		fields["period"] = "Please select start and end dates"
	}
	if len(fields) == 0 {
		return nil
	}
	return &IncompleteError{Fields: fields}
}

// PreviewLine is one row of the contract preview
type PreviewLine struct {
	Label     string `json:"label"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Amount    string `json:"amount"`
	Note      string `json:"note,omitempty"`
}

// Preview is the read-only rendering shown before submission
type Preview struct {
	SessionID     string          `json:"session_id"`
	Customer      string          `json:"customer"`
	Vehicle       string          `json:"vehicle"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
	Lines         []PreviewLine   `json:"lines"`
	Summary       pricing.Summary `json:"summary"`
	Ready         bool            `json:"ready"`
	Missing       []string        `json:"missing,omitempty"`
}

const previewDateLayout = "2006-01-02 15:04"

// Preview renders the draft for review. The vehicle line comes first,
// followed by the surcharges in display order.
func (d Draft) Preview() Preview {
	p := Preview{
		SessionID:     d.SessionID,
		PaymentMethod: d.Form.PaymentMethod,
		Notes:         d.Form.Notes,
		Summary:       d.Summary,
		Lines:         make([]PreviewLine, 0, len(d.Surcharges)+1),
	}
	if c := d.Form.Customer; c != nil {
		p.Customer = c.Label()
	}
	if v := d.Form.Vehicle; v != nil {
		p.Vehicle = v.LicensePlate
		p.Lines = append(p.Lines, PreviewLine{
			Label:     "Vehicle " + v.LicensePlate,
			UnitPrice: d.Summary.DailyRate.String(),
			Quantity:  d.Summary.Days,
			Amount:    d.Summary.VehicleSubtotal.String(),
		})
	}
	if t := d.Form.Period.Start; t != nil {
		p.StartDate = t.Format(previewDateLayout)
	}
	if t := d.Form.Period.End; t != nil {
		p.EndDate = t.Format(previewDateLayout)
	}
	for _, it := range d.Surcharges {
		p.Lines = append(p.Lines, PreviewLine{
			Label:     it.Name,
			UnitPrice: it.UnitPrice.String(),
			Quantity:  it.Quantity,
			Amount:    it.Amount().String(),
			Note:      it.Note,
		})
	}

	var inc *IncompleteError
	if err := d.Validate(); errors.As(err, &inc) {
		for _, msg := range inc.Fields {
			p.Missing = append(p.Missing, msg)
		}
		sort.Strings(p.Missing)
	} else {
		p.Ready = err == nil
	}
	return p
}
