package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sjperalta/rental-desk/internal/models"
	"github.com/sjperalta/rental-desk/internal/pricing"
	"github.com/sjperalta/rental-desk/internal/rentalapi"
	"github.com/sjperalta/rental-desk/internal/session"
	"github.com/sjperalta/rental-desk/internal/surcharge"
	"github.com/sjperalta/rental-desk/pkg/logger"
)

// SurchargeRequest is the body of a surcharge add or update. An empty price
// counts as zero but any other price must be a number. The quantity is
// parsed leniently.
type SurchargeRequest struct {
	Name      string         `json:"name"`
	UnitPrice pricing.Number `json:"unit_price"`
	Quantity  pricing.Amount `json:"quantity"`
	Note      string         `json:"note"`
}

func (r SurchargeRequest) input() surcharge.Input {
	return surcharge.Input{
		Name:         strings.TrimSpace(r.Name),
		UnitPrice:    r.UnitPrice.Decimal,
		UnitPriceNaN: r.UnitPrice.Invalid,
		Quantity:     int(r.Quantity.IntPart()),
		Note:         strings.TrimSpace(r.Note),
	}
}

// CustomerSelection picks a customer either by full record or by phone
type CustomerSelection struct {
	rentalapi.Customer
	LookupPhone string `json:"lookup_phone"`
}

type SessionService struct {
	store   *session.Store
	catalog *CatalogService
	audit   *AuditService
}

func NewSessionService(store *session.Store, catalog *CatalogService, audit *AuditService) *SessionService {
	return &SessionService{store: store, catalog: catalog, audit: audit}
}

// Create opens a new contract draft for the actor
func (s *SessionService) Create(ctx context.Context, actor Actor) *session.Session {
	sess := s.store.Create(actor.UserID)
	logger.Info("Contract draft opened", "session_id", sess.ID(), "user_id", actor.UserID)
	return sess
}

// Get returns a session owned by the actor. Admins can open any draft.
func (s *SessionService) Get(ctx context.Context, id string, actor Actor) (*session.Session, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if sess.Owner() != actor.UserID && !actor.IsAdmin() {
		return nil, fmt.Errorf("session %s: %w", id, ErrForbidden)
	}
	return sess, nil
}

// UpdateForm applies a partial form change
func (s *SessionService) UpdateForm(ctx context.Context, id string, actor Actor, patch session.Patch) (*session.Session, error) {
	sess, err := s.Get(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if err := sess.Update(ctx, patch); err != nil {
		return nil, translate(err)
	}
	return sess, nil
}

// SelectCustomer sets the customer. A selection with only a lookup phone is
// resolved against the rental backend first.
func (s *SessionService) SelectCustomer(ctx context.Context, id string, actor Actor, sel CustomerSelection) (*session.Session, error) {
	sess, err := s.Get(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	customer := sel.Customer
	if customer.CustomerID == 0 {
		phone := strings.TrimSpace(sel.LookupPhone)
		if phone == "" {
			return nil, &ValidationError{
				Message: "Invalid customer",
				Details: map[string]string{"customer": "Please select a customer"},
			}
		}
		found, err := s.catalog.CustomerByPhone(ctx, phone)
		if err != nil {
			return nil, err
		}
		customer = *found
	}

	if err := sess.SetCustomer(ctx, &customer); err != nil {
		return nil, translate(err)
	}
	return sess, nil
}

// SelectVehicle sets the vehicle and its daily rate, looked up by id
func (s *SessionService) SelectVehicle(ctx context.Context, id string, actor Actor, carID int64) (*session.Session, error) {
	sess, err := s.Get(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.catalog.Vehicle(ctx, sess.ID(), carID)
	if err != nil {
		return nil, err
	}
	if err := sess.SetVehicle(ctx, vehicle); err != nil {
		return nil, translate(err)
	}
	return sess, nil
}

// ClearVehicle removes the vehicle selection
func (s *SessionService) ClearVehicle(ctx context.Context, id string, actor Actor) (*session.Session, error) {
	sess, err := s.Get(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if err := sess.SetVehicle(ctx, nil); err != nil {
		return nil, translate(err)
	}
	return sess, nil
}

// AddSurcharge appends a surcharge line
func (s *SessionService) AddSurcharge(ctx context.Context, id string, actor Actor, req SurchargeRequest) (surcharge.Item, *session.Session, error) {
	sess, err := s.Get(ctx, id, actor)
	if err != nil {
		return surcharge.Item{}, nil, err
	}
	item, err := sess.AddSurcharge(ctx, req.input())
	if err != nil {
		return surcharge.Item{}, nil, translate(err)
	}
	return item, sess, nil
}

// UpdateSurcharge edits a surcharge line in place
func (s *SessionService) UpdateSurcharge(ctx context.Context, id string, actor Actor, itemID int64, req SurchargeRequest) (surcharge.Item, *session.Session, error) {
	sess, err := s.Get(ctx, id, actor)
	if err != nil {
		return surcharge.Item{}, nil, err
	}
	item, err := sess.UpdateSurcharge(ctx, itemID, req.input())
	if err != nil {
		return surcharge.Item{}, nil, translate(err)
	}
	return item, sess, nil
}

// RemoveSurcharge deletes a surcharge line; unknown ids are a no-op
func (s *SessionService) RemoveSurcharge(ctx context.Context, id string, actor Actor, itemID int64) (*session.Session, error) {
	sess, err := s.Get(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if _, err := sess.RemoveSurcharge(ctx, itemID); err != nil {
		return nil, translate(err)
	}
	return sess, nil
}

// ClearSurcharges empties the surcharge ledger
func (s *SessionService) ClearSurcharges(ctx context.Context, id string, actor Actor) (*session.Session, error) {
	sess, err := s.Get(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if err := sess.ClearSurcharges(ctx); err != nil {
		return nil, translate(err)
	}
	return sess, nil
}

// Preview renders the draft for review
func (s *SessionService) Preview(ctx context.Context, id string, actor Actor) (session.Preview, error) {
	sess, err := s.Get(ctx, id, actor)
	if err != nil {
		return session.Preview{}, err
	}
	return sess.Draft().Preview(), nil
}

// Abandon discards a draft and removes it from the store
func (s *SessionService) Abandon(ctx context.Context, id string, actor Actor) error {
	sess, err := s.Get(ctx, id, actor)
	if err != nil {
		return err
	}
	if err := sess.Abandon(ctx); err != nil {
		return translate(err)
	}
	s.store.Delete(sess.ID())
	s.catalog.Forget(sess.ID())
	s.audit.Log(ctx, actor, models.AuditAbandon, "Session", sess.ID(), "Contract draft abandoned")
	return nil
}

// SweepExpired drops drafts idle for longer than ttl
func (s *SessionService) SweepExpired(ctx context.Context, ttl time.Duration) int {
	removed := s.store.Sweep(ttl)
	for _, id := range removed {
		s.catalog.Forget(id)
		s.audit.Log(ctx, Actor{}, models.AuditSweep, "Session", id, "Idle contract draft expired after "+ttl.String())
	}
	if len(removed) > 0 {
		logger.Info("Expired contract drafts removed", "count", len(removed))
	}
	return len(removed)
}
