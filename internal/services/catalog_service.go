package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/sjperalta/rental-desk/internal/rentalapi"
)

type vehicleRefresh struct {
	gen    uint64
	cancel context.CancelFunc
}

// CatalogService proxies lookups to the rental backend. Vehicle list
// refreshes are tracked per session: a new refresh cancels the one still in
// flight for the same session.
type CatalogService struct {
	api RentalAPI

	mu       sync.Mutex
	gen      uint64
	inflight map[string]vehicleRefresh
	lists    map[string][]rentalapi.Vehicle
}

func NewCatalogService(api RentalAPI) *CatalogService {
	return &CatalogService{
		api:      api,
		inflight: make(map[string]vehicleRefresh),
		lists:    make(map[string][]rentalapi.Vehicle),
	}
}

func (s *CatalogService) Customers(ctx context.Context, q rentalapi.CustomerQuery) ([]rentalapi.Customer, error) {
	return s.api.ListCustomers(ctx, q)
}

// CustomerByPhone maps a backend 404 onto ErrNotFound
func (s *CatalogService) CustomerByPhone(ctx context.Context, phone string) (*rentalapi.Customer, error) {
	c, err := s.api.FindCustomerByPhone(ctx, phone)
	if rentalapi.IsNotFound(err) {
		return nil, fmt.Errorf("customer with phone %s: %w", phone, ErrNotFound)
	}
	return c, err
}

func (s *CatalogService) Vehicles(ctx context.Context, q rentalapi.VehicleQuery) ([]rentalapi.Vehicle, error) {
	return s.api.ListVehicles(ctx, q)
}

func (s *CatalogService) VehicleTypes(ctx context.Context) ([]rentalapi.VehicleType, error) {
	return s.api.ListVehicleTypes(ctx)
}

func (s *CatalogService) Branches(ctx context.Context) ([]rentalapi.Branch, error) {
	return s.api.ListBranches(ctx)
}

func (s *CatalogService) Employees(ctx context.Context, q rentalapi.EmployeeQuery) ([]rentalapi.Employee, error) {
	return s.api.ListEmployees(ctx, q)
}

// RefreshVehicles reloads the vehicle list for a session and filters it
// locally by term and type. A refresh overtaken by a newer one for the same
// session returns context.Canceled and does not replace the cached list.
func (s *CatalogService) RefreshVehicles(ctx context.Context, sessionID string, q rentalapi.VehicleQuery, term, typeID string) ([]rentalapi.Vehicle, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if prev, ok := s.inflight[sessionID]; ok {
		prev.cancel()
	}
	s.gen++
	gen := s.gen
	s.inflight[sessionID] = vehicleRefresh{gen: gen, cancel: cancel}
	s.mu.Unlock()

	list, err := s.api.ListVehicles(ctx, q)

	s.mu.Lock()
	current, ok := s.inflight[sessionID]
	latest := ok && current.gen == gen
	if latest {
		delete(s.inflight, sessionID)
	}
	if err == nil && latest {
		s.lists[sessionID] = list
	}
	s.mu.Unlock()

	if !latest {
		return nil, fmt.Errorf("vehicle refresh: %w: %w", ErrSuperseded, context.Canceled)
	}
	if err != nil {
		return nil, err
	}
	return FilterVehicles(list, term, typeID), nil
}

// Vehicle finds a vehicle by id, first in the session's last refreshed list,
// then on the backend.
func (s *CatalogService) Vehicle(ctx context.Context, sessionID string, carID int64) (*rentalapi.Vehicle, error) {
	s.mu.Lock()
	cached := s.lists[sessionID]
	s.mu.Unlock()

	if v := findVehicle(cached, carID); v != nil {
		return v, nil
	}

	list, err := s.api.ListVehicles(ctx, rentalapi.VehicleQuery{})
	if err != nil {
		return nil, err
	}
	if v := findVehicle(list, carID); v != nil {
		return v, nil
	}
	return nil, fmt.Errorf("vehicle %d: %w", carID, ErrNotFound)
}

// Forget drops the cached list and cancels any refresh for a session
func (s *CatalogService) Forget(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.inflight[sessionID]; ok {
		r.cancel()
		delete(s.inflight, sessionID)
	}
	delete(s.lists, sessionID)
}

func findVehicle(list []rentalapi.Vehicle, carID int64) *rentalapi.Vehicle {
	for i := range list {
		if list[i].Key() == carID {
			v := list[i]
			return &v
		}
	}
	return nil
}

// FilterVehicles keeps vehicles whose plate or status contains term
// (case-insensitive) and whose type id equals typeID. Empty criteria match
// everything.
func FilterVehicles(list []rentalapi.Vehicle, term, typeID string) []rentalapi.Vehicle {
	term = strings.ToLower(strings.TrimSpace(term))
	typeID = strings.TrimSpace(typeID)

	out := make([]rentalapi.Vehicle, 0, len(list))
	for _, v := range list {
		if term != "" &&
			!strings.Contains(strings.ToLower(v.LicensePlate), term) &&
			!strings.Contains(strings.ToLower(v.Status), term) {
			continue
		}
		if typeID != "" && (v.TypeID == nil || strconv.FormatInt(*v.TypeID, 10) != typeID) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// IsSuperseded reports whether err comes from a refresh replaced by a newer one
func IsSuperseded(err error) bool {
	return errors.Is(err, ErrSuperseded)
}
