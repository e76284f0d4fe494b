package handlers

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/rental-desk/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindNestedOrFlat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		body        string
		wantName    string
		wantPrice   string
		wantQty     int64
		wantInvalid bool
		expectError bool
	}{
		{
			name:      "wrapped",
			body:      `{"surcharge": {"name": "Delivery", "unit_price": 50, "quantity": 2}}`,
			wantName:  "Delivery",
			wantPrice: "50",
			wantQty:   2,
		},
		{
			name:      "flat",
			body:      `{"name": "Child seat", "unit_price": "1200", "quantity": "3"}`,
			wantName:  "Child seat",
			wantPrice: "1200",
			wantQty:   3,
		},
		{
			name:        "other keys fall back to flat",
			body:        `{"session": "x", "name": "Toll", "unit_price": "abc", "quantity": 1}`,
			wantName:    "Toll",
			wantPrice:   "0",
			wantQty:     1,
			wantInvalid: true,
		},
		{
			name:        "wrapped value of the wrong type",
			body:        `{"surcharge": "Delivery"}`,
			expectError: true,
		},
		{
			name:        "malformed",
			body:        `{"name": `,
			expectError: true,
		},
		{
			name:        "empty",
			body:        ``,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req services.SurchargeRequest
			err := BindNestedOrFlat(c, "surcharge", &req)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, req.Name)
			assert.Equal(t, tt.wantPrice, req.UnitPrice.String())
			assert.Equal(t, tt.wantQty, req.Quantity.IntPart())
			assert.Equal(t, tt.wantInvalid, req.UnitPrice.Invalid)
		})
	}
}

func TestBindNestedOrFlat_RestoresBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(`{"name": "Fuel"}`))

	var req services.SurchargeRequest
	require.NoError(t, BindNestedOrFlat(c, "surcharge", &req))

	var again services.SurchargeRequest
	require.NoError(t, c.ShouldBindJSON(&again))
	assert.Equal(t, "Fuel", again.Name)
}
