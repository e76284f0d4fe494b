package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/rental-desk/internal/pricing"
	"github.com/sjperalta/rental-desk/internal/rentalapi"
	"github.com/sjperalta/rental-desk/internal/statemachine"
	"github.com/sjperalta/rental-desk/internal/surcharge"
)

// ErrNotEditable is returned when a draft is mid-submission or abandoned
var ErrNotEditable = fmt.Errorf("%w: draft is not editable", statemachine.ErrTransition)

// Form holds the contract fields the desk operator fills in
type Form struct {
	Customer        *rentalapi.Customer
	Vehicle         *rentalapi.Vehicle
	Period          pricing.Period
	Deposit         decimal.Decimal
	Discount        decimal.Decimal
	PaidNow         decimal.Decimal
	PaymentMethod   string
	Notes           string
	PickupBranchID  *int64
	DropoffBranchID *int64
	EmployeeID      *int64
}

// Session is one contract draft. The ledger is only mutated while mu is
// held, so the recompute observer runs under the caller's lock.
type Session struct {
	id            string
	owner         uint
	defaultMethod string

	mu        sync.RWMutex
	fsm       *statemachine.DraftFSM
	form      Form
	ledger    *surcharge.Ledger
	summary   pricing.Summary
	createdAt time.Time
	touchedAt time.Time
	now       func() time.Time
}

func newSession(id string, owner uint, node *snowflake.Node, defaultMethod string, now func() time.Time) *Session {
	s := &Session{
		id:            id,
		owner:         owner,
		defaultMethod: defaultMethod,
		fsm:           statemachine.NewDraftFSM(),
		ledger:        surcharge.NewLedger(node),
		now:           now,
	}
	s.form = s.blankForm()
	s.createdAt = now()
	s.touchedAt = s.createdAt
	s.ledger.Subscribe(s.recompute)
	s.recompute(decimal.Zero)
	return s
}

func (s *Session) blankForm() Form {
	return Form{
		Deposit:       decimal.Zero,
		Discount:      decimal.Zero,
		PaidNow:       decimal.Zero,
		PaymentMethod: s.defaultMethod,
	}
}

// recompute refreshes the summary from the form and the given surcharge total
func (s *Session) recompute(surchargeTotal decimal.Decimal) {
	rate := decimal.Zero
	if s.form.Vehicle != nil {
		rate = s.form.Vehicle.Rate()
	}
	s.summary = pricing.Recompute(pricing.Input{
		Period:         s.form.Period,
		DailyRate:      rate,
		SurchargeTotal: surchargeTotal,
		Deposit:        s.form.Deposit,
		Discount:       s.form.Discount,
		PaidNow:        s.form.PaidNow,
	})
}

// ID returns the session id
func (s *Session) ID() string { return s.id }

// Owner returns the staff user that opened the session
func (s *Session) Owner() uint { return s.owner }

// State returns the lifecycle state
func (s *Session) State() string { return s.fsm.Current() }

// TouchedAt returns the time of the last change
func (s *Session) TouchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.touchedAt
}

// edit runs fn under the write lock once the draft is editable. A draft that
// was already submitted is reopened for the next contract, but only when fn
// succeeds.
func (s *Session) edit(ctx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reopen := s.fsm.Current() == statemachine.DraftCreated
	if !reopen && !s.fsm.Editable() {
		return fmt.Errorf("%w: %s", ErrNotEditable, s.fsm.Current())
	}
	if err := fn(); err != nil {
		return err
	}
	if reopen {
		if err := s.fsm.Fire(ctx, statemachine.EventReopen); err != nil {
			return err
		}
	}
	s.touchedAt = s.now()
	return nil
}

// Update applies a partial form change and recomputes the summary
func (s *Session) Update(ctx context.Context, p Patch) error {
	return s.edit(ctx, func() error {
		p.apply(&s.form)
		s.recompute(s.ledger.Total())
		return nil
	})
}

// SetCustomer selects the customer, nil clears it
func (s *Session) SetCustomer(ctx context.Context, c *rentalapi.Customer) error {
	return s.edit(ctx, func() error {
		s.form.Customer = c
		return nil
	})
}

// SetVehicle selects the vehicle and takes its daily rate, nil clears it
func (s *Session) SetVehicle(ctx context.Context, v *rentalapi.Vehicle) error {
	return s.edit(ctx, func() error {
		s.form.Vehicle = v
		s.recompute(s.ledger.Total())
		return nil
	})
}

// AddSurcharge appends a line item
func (s *Session) AddSurcharge(ctx context.Context, in surcharge.Input) (surcharge.Item, error) {
	var item surcharge.Item
	err := s.edit(ctx, func() error {
		var err error
		item, err = s.ledger.Add(in)
		return err
	})
	return item, err
}

// UpdateSurcharge replaces a line item in place
func (s *Session) UpdateSurcharge(ctx context.Context, id int64, in surcharge.Input) (surcharge.Item, error) {
	var item surcharge.Item
	err := s.edit(ctx, func() error {
		var err error
		item, err = s.ledger.Update(id, in)
		return err
	})
	return item, err
}

// RemoveSurcharge deletes a line item; removed is false when id was unknown
func (s *Session) RemoveSurcharge(ctx context.Context, id int64) (bool, error) {
	var removed bool
	err := s.edit(ctx, func() error {
		removed = s.ledger.Remove(id)
		return nil
	})
	return removed, err
}

// ClearSurcharges empties the ledger
func (s *Session) ClearSurcharges(ctx context.Context) error {
	return s.edit(ctx, func() error {
		s.ledger.Clear()
		return nil
	})
}

// Surcharges returns a copy of the line items in display order
func (s *Session) Surcharges() []surcharge.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.All()
}

// Summary returns the latest pricing summary
func (s *Session) Summary() pricing.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

// Form returns a copy of the form values
func (s *Session) Form() Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.form
}

// BeginSubmit validates the draft and moves it to submitting. The returned
// Draft is a consistent snapshot for building the contract request.
func (s *Session) BeginSubmit(ctx context.Context) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reopen := s.fsm.Current() == statemachine.DraftCreated
	if !reopen && !s.fsm.Editable() {
		return Draft{}, fmt.Errorf("%w: %s", ErrNotEditable, s.fsm.Current())
	}

	d := s.draftLocked()
	if err := d.Validate(); err != nil {
		return Draft{}, err
	}
	if reopen {
		if err := s.fsm.Fire(ctx, statemachine.EventReopen); err != nil {
			return Draft{}, err
		}
	}
	if err := s.fsm.Fire(ctx, statemachine.EventSubmit); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// CompleteSubmit resets the draft and marks it created
func (s *Session) CompleteSubmit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fsm.Fire(ctx, statemachine.EventSucceed); err != nil {
		return err
	}
	s.form = s.blankForm()
	s.ledger.Clear()
	s.touchedAt = s.now()
	return nil
}

// FailSubmit returns the draft to editing, untouched
func (s *Session) FailSubmit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fsm.Fire(ctx, statemachine.EventFail)
}

// Abandon discards the draft
func (s *Session) Abandon(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fsm.Fire(ctx, statemachine.EventAbandon)
}

// Draft returns a snapshot of the current form, surcharges and summary
func (s *Session) Draft() Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draftLocked()
}

func (s *Session) draftLocked() Draft {
	return Draft{
		SessionID:  s.id,
		Form:       s.form,
		Surcharges: s.ledger.All(),
		Summary:    s.summary,
	}
}

// View is the JSON representation returned to the desk
type View struct {
	ID              string              `json:"id"`
	State           string              `json:"state"`
	Customer        *rentalapi.Customer `json:"customer"`
	Vehicle         *rentalapi.Vehicle  `json:"vehicle"`
	StartDate       *time.Time          `json:"start_date"`
	EndDate         *time.Time          `json:"end_date"`
	Deposit         decimal.Decimal     `json:"deposit"`
	Discount        decimal.Decimal     `json:"discount"`
	PaidNow         decimal.Decimal     `json:"paid_now"`
	PaymentMethod   string              `json:"payment_method"`
	Notes           string              `json:"notes"`
	PickupBranchID  *int64              `json:"pickup_branch_id"`
	DropoffBranchID *int64              `json:"dropoff_branch_id"`
	EmployeeID      *int64              `json:"employee_id"`
	Surcharges      []surcharge.Item    `json:"surcharges"`
	Summary         pricing.Summary     `json:"summary"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// View renders the session
func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f := s.form
	return View{
		ID:              s.id,
		State:           s.fsm.Current(),
		Customer:        f.Customer,
		Vehicle:         f.Vehicle,
		StartDate:       f.Period.Start,
		EndDate:         f.Period.End,
		Deposit:         f.Deposit,
		Discount:        f.Discount,
		PaidNow:         f.PaidNow,
		PaymentMethod:   f.PaymentMethod,
		Notes:           f.Notes,
		PickupBranchID:  f.PickupBranchID,
		DropoffBranchID: f.DropoffBranchID,
		EmployeeID:      f.EmployeeID,
		Surcharges:      s.ledger.All(),
		Summary:         s.summary,
		CreatedAt:       s.createdAt,
		UpdatedAt:       s.touchedAt,
	}
}

// Patch is a partial form update. Nil fields are left unchanged; an empty
// date string clears the date.
type Patch struct {
	StartDate       *string         `json:"start_date"`
	EndDate         *string         `json:"end_date"`
	Deposit         *pricing.Amount `json:"deposit"`
	Discount        *pricing.Amount `json:"discount"`
	PaidNow         *pricing.Amount `json:"paid_now"`
	PaymentMethod   *string         `json:"payment_method"`
	Notes           *string         `json:"notes"`
	PickupBranchID  *int64          `json:"pickup_branch_id"`
	DropoffBranchID *int64          `json:"dropoff_branch_id"`
	EmployeeID      *int64          `json:"employee_id"`
}

func (p Patch) apply(f *Form) {
	if p.StartDate != nil {
		f.Period.Start = pricing.ParseTime(*p.StartDate)
	}
	if p.EndDate != nil {
		f.Period.End = pricing.ParseTime(*p.EndDate)
	}
	if p.Deposit != nil {
		f.Deposit = p.Deposit.Decimal
	}
	if p.Discount != nil {
		f.Discount = p.Discount.Decimal
	}
	if p.PaidNow != nil {
		f.PaidNow = p.PaidNow.Decimal
	}
	if p.PaymentMethod != nil {
		if m := strings.TrimSpace(*p.PaymentMethod); m != "" {
			f.PaymentMethod = m
		}
	}
	if p.Notes != nil {
		f.Notes = *p.Notes
	}
	if p.PickupBranchID != nil {
		f.PickupBranchID = zeroAsNil(p.PickupBranchID)
	}
	if p.DropoffBranchID != nil {
		f.DropoffBranchID = zeroAsNil(p.DropoffBranchID)
	}
	if p.EmployeeID != nil {
		f.EmployeeID = zeroAsNil(p.EmployeeID)
	}
}

func zeroAsNil(id *int64) *int64 {
	if *id == 0 {
		return nil
	}
	v := *id
	return &v
}
