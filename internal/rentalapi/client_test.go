package rentalapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL+"/", opts...)
	require.NoError(t, err)
	return c
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New("not a url")
	assert.Error(t, err)
}

func TestListVehicles_QueryAndDecode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cars/", r.URL.Path)
		assert.Equal(t, "abc", r.URL.Query().Get("search"))
		assert.Equal(t, "2", r.URL.Query().Get("type_id"))
		assert.False(t, r.URL.Query().Has("skip"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"car_id": 7, "license_plate": "51A-123", "daily_rate": 100, "status": "available", "type_id": 2},
			{"id": 8, "license_plate": "51A-456", "price_per_day": "90", "status": "rented"}
		]`)
	}, WithToken("tkn"))

	cars, err := c.ListVehicles(context.Background(), VehicleQuery{Search: " abc ", TypeID: "2"})
	require.NoError(t, err)
	require.Len(t, cars, 2)

	assert.Equal(t, int64(7), cars[0].Key())
	assert.True(t, cars[0].Rate().Equal(decimal.NewFromInt(100)))
	assert.Equal(t, int64(8), cars[1].Key())
	assert.True(t, cars[1].Rate().Equal(decimal.NewFromInt(90)))
}

func TestCreateContract_PayloadShape(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/contracts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ContractID": 42, "CustomerID": 5}`)
	})

	start, end := "2024-01-01", "2024-01-05"
	created, err := c.CreateContract(context.Background(), ContractCreate{
		CustomerID: 5,
		StartDate:  &start,
		EndDate:    &end,
		Cars: []ContractCar{
			{CarID: 7, DailyRate: decimal.NewFromInt(100), Amount: decimal.NewFromInt(400)},
		},
		Surcharges: []ContractSurcharge{
			{SurchargeID: 1, UnitPrice: decimal.NewFromInt(20), Quantity: 2},
		},
	})
	require.NoError(t, err)

	id, ok := created.ID()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	assert.Equal(t, float64(5), got["CustomerID"])
	assert.Equal(t, "2024-01-01", got["StartDate"])
	cars := got["Cars"].([]any)
	require.Len(t, cars, 1)
	assert.Equal(t, "400", cars[0].(map[string]any)["Amount"])
	surcharges := got["Surcharges"].([]any)
	require.Len(t, surcharges, 1)
	assert.Equal(t, float64(2), surcharges[0].(map[string]any)["Quantity"])
}

func TestContractCreated_IDFallback(t *testing.T) {
	var created ContractCreated
	require.NoError(t, json.Unmarshal([]byte(`{"id": 9}`), &created))
	id, ok := created.ID()
	assert.True(t, ok)
	assert.Equal(t, int64(9), id)

	var empty ContractCreated
	_, ok = empty.ID()
	assert.False(t, ok)
}

func TestRecordPayment_Query(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/contracts/42/payments", r.URL.Path)
		assert.Equal(t, "150", r.URL.Query().Get("amount"))
		assert.Equal(t, "Cash", r.URL.Query().Get("method"))
		w.WriteHeader(http.StatusCreated)
	})

	err := c.RecordPayment(context.Background(), 42, decimal.NewFromInt(150), "Cash")
	assert.NoError(t, err)
}

func TestAPIError_JSONDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail": "Car is not available"}`)
	})

	_, err := c.CreateContract(context.Background(), ContractCreate{CustomerID: 1})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Car is not available", apiErr.Detail())
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))
}

func TestAPIError_ValidationList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"detail": [{"msg": "field required"}, {"msg": "invalid date"}]}`)
	})

	_, err := c.ListBranches(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "field required; invalid date", apiErr.Detail())
}

func TestAPIError_TextBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	})

	_, err := c.ListVehicleTypes(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "upstream exploded", apiErr.Detail())
	assert.False(t, IsNotFound(err))
}

func TestFindCustomerByPhone_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0901", r.URL.Query().Get("phone"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail": "Customer not found"}`)
	})

	_, err := c.FindCustomerByPhone(context.Background(), "0901")
	assert.True(t, IsNotFound(err))
}

func TestTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}, WithTimeout(20*time.Millisecond))

	_, err := c.ListBranches(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, 0, StatusOf(err))
}

func TestCookiesAreKept(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.SetCookie(w, &http.Cookie{Name: "sid", Value: "abc", Path: "/"})
		} else {
			cookie, err := r.Cookie("sid")
			if assert.NoError(t, err) {
				assert.Equal(t, "abc", cookie.Value)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[]`)
	})

	_, err := c.ListBranches(context.Background())
	require.NoError(t, err)
	_, err = c.ListBranches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCustomer_Label(t *testing.T) {
	assert.Equal(t, "An Nguyen - 0901", Customer{FullName: "An Nguyen", Phone: "0901"}.Label())
	assert.Equal(t, "An Nguyen", Customer{FullName: "An Nguyen"}.Label())
}
