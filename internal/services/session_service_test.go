package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sjperalta/rental-desk/internal/models"
	"github.com/sjperalta/rental-desk/internal/rentalapi"
	"github.com/sjperalta/rental-desk/internal/repository"
	"github.com/sjperalta/rental-desk/internal/statemachine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_OwnerAndAdminAccess(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	sess := e.sessions.Create(ctx, staff)

	_, err := e.sessions.Get(ctx, sess.ID(), Actor{UserID: 8})
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := e.sessions.Get(ctx, sess.ID(), Actor{UserID: 1, Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, sess.ID(), got.ID())

	_, err = e.sessions.Get(ctx, "nope", staff)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionService_SelectCustomerByPhone(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.api.mockFindByPhone = func(ctx context.Context, phone string) (*rentalapi.Customer, error) {
		assert.Equal(t, "0901", phone)
		return &rentalapi.Customer{CustomerID: 11, FullName: "Binh Tran", Phone: phone}, nil
	}
	sess := e.sessions.Create(ctx, staff)

	_, err := e.sessions.SelectCustomer(ctx, sess.ID(), staff, CustomerSelection{LookupPhone: " 0901 "})
	require.NoError(t, err)
	require.NotNil(t, sess.Form().Customer)
	assert.Equal(t, int64(11), sess.Form().Customer.CustomerID)

	_, err = e.sessions.SelectCustomer(ctx, sess.ID(), staff, CustomerSelection{})
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Details, "customer")
	assert.Equal(t, int64(11), sess.Form().Customer.CustomerID)
}

func TestSessionService_SelectVehicleSetsRate(t *testing.T) {
	e := newTestEnv(t)
	sess := e.readySession(t)
	assertDecimal(t, "400", sess.Summary().GrandTotal)

	_, err := e.sessions.SelectVehicle(context.Background(), sess.ID(), staff, 8)
	require.NoError(t, err)
	assertDecimal(t, "90", sess.Summary().DailyRate)
	assertDecimal(t, "360", sess.Summary().GrandTotal)

	_, err = e.sessions.SelectVehicle(context.Background(), sess.ID(), staff, 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assertDecimal(t, "360", sess.Summary().GrandTotal)

	_, err = e.sessions.ClearVehicle(context.Background(), sess.ID(), staff)
	require.NoError(t, err)
	assertDecimal(t, "0", sess.Summary().GrandTotal)
}

func TestSessionService_SurchargesLenientInput(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	sess := e.sessions.Create(ctx, staff)

	var req SurchargeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name": " Late return ", "unit_price": "1500", "quantity": "2"}`), &req))

	item, _, err := e.sessions.AddSurcharge(ctx, sess.ID(), staff, req)
	require.NoError(t, err)
	assert.Equal(t, "Late return", item.Name)
	assertDecimal(t, "3000", item.Amount())
	assertDecimal(t, "3000", sess.Summary().SurchargeTotal)

	require.NoError(t, json.Unmarshal([]byte(`{"name": "Late return", "unit_price": "", "quantity": 3}`), &req))
	updated, _, err := e.sessions.UpdateSurcharge(ctx, sess.ID(), staff, item.ID, req)
	require.NoError(t, err)
	assertDecimal(t, "0", updated.Amount())
	assertDecimal(t, "0", sess.Summary().SurchargeTotal)
}

func TestSessionService_SurchargePriceMustBeNumber(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	sess := e.sessions.Create(ctx, staff)

	for _, price := range []string{`"abc"`, `true`, `"1,200"`} {
		var req SurchargeRequest
		require.NoError(t, json.Unmarshal([]byte(`{"name": "Toll", "unit_price": `+price+`, "quantity": 1}`), &req))

		_, _, err := e.sessions.AddSurcharge(ctx, sess.ID(), staff, req)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr), price)
		assert.Equal(t, "must be a number", vErr.Details["unit_price"], price)
	}
	assert.Empty(t, sess.Surcharges())

	var req SurchargeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Toll", "unit_price": 5, "quantity": 1}`), &req))
	item, _, err := e.sessions.AddSurcharge(ctx, sess.ID(), staff, req)
	require.NoError(t, err)

	require.NoError(t, json.Unmarshal([]byte(`{"name": "Toll", "unit_price": "n/a", "quantity": 1}`), &req))
	_, _, err = e.sessions.UpdateSurcharge(ctx, sess.ID(), staff, item.ID, req)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assertDecimal(t, "5", sess.Summary().SurchargeTotal)
}

func TestSessionService_SurchargeErrors(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	sess := e.sessions.Create(ctx, staff)

	var req SurchargeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name": "", "unit_price": -5, "quantity": 0}`), &req))
	_, _, err := e.sessions.AddSurcharge(ctx, sess.ID(), staff, req)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Details, 3)
	assert.Empty(t, sess.Surcharges())

	require.NoError(t, json.Unmarshal([]byte(`{"name": "GPS", "unit_price": 10, "quantity": 1}`), &req))
	_, _, err = e.sessions.UpdateSurcharge(ctx, sess.ID(), staff, 12345, req)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = e.sessions.RemoveSurcharge(ctx, sess.ID(), staff, 12345)
	assert.NoError(t, err)
}

func TestSessionService_EditWhileSubmittingIsInvalidState(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	sess := e.readySession(t)
	_, err := sess.BeginSubmit(ctx)
	require.NoError(t, err)

	_, err = e.sessions.ClearSurcharges(ctx, sess.ID(), staff)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSessionService_AbandonRemovesAndAudits(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	sess := e.sessions.Create(ctx, staff)

	require.NoError(t, e.sessions.Abandon(ctx, sess.ID(), staff))
	assert.Equal(t, statemachine.DraftAbandoned, sess.State())

	_, err := e.sessions.Get(ctx, sess.ID(), staff)
	assert.ErrorIs(t, err, ErrNotFound)

	logs := listAudits(t, e)
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditAbandon, logs[0].Action)
	assert.Equal(t, sess.ID(), logs[0].EntityID)
}

func TestSessionService_SweepExpired(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.sessions.Create(ctx, staff)

	assert.Equal(t, 0, e.sessions.SweepExpired(ctx, time.Hour))
	assert.Equal(t, 1, e.sessions.SweepExpired(ctx, -time.Second))
	assert.Equal(t, 0, e.store.Len())

	q := repository.NewListQuery()
	q.Filters["action"] = models.AuditSweep
	logs, total, err := e.repos.Audit.List(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, uint(0), logs[0].UserID)
}

func TestSessionService_Preview(t *testing.T) {
	e := newTestEnv(t)
	sess := e.readySession(t)

	p, err := e.sessions.Preview(context.Background(), sess.ID(), staff)
	require.NoError(t, err)
	assert.True(t, p.Ready)
	assert.Equal(t, "51A-123", p.Vehicle)
	assert.Equal(t, 4, p.Summary.Days)
}
