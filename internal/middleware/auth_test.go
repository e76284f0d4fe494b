package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append([]gin.HandlerFunc{Auth(testSecret)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "role": GetUserRole(c), "admin": IsAdmin(c)})
	})
	r.GET("/me", chain...)
	return r
}

func signed(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token, err := IssueToken(claims, secret)
	require.NoError(t, err)
	return token
}

func staffClaims(role string, ttl time.Duration) Claims {
	return Claims{
		UserID: 7,
		Email:  "desk@example.com",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
}

func TestAuth(t *testing.T) {
	valid := signed(t, staffClaims(RoleStaff, time.Hour), testSecret)

	tests := []struct {
		name   string
		header string
		query  string
		status int
		body   string
	}{
		{name: "bearer header", header: "Bearer " + valid, status: http.StatusOK, body: `"user_id":7`},
		{name: "query token", query: "?token=" + valid, status: http.StatusOK, body: `"role":"staff"`},
		{name: "missing", status: http.StatusUnauthorized, body: "Authorization header is required"},
		{name: "bad scheme", header: "Basic abc", status: http.StatusUnauthorized, body: "Invalid authorization header format"},
		{name: "wrong secret", header: "Bearer " + signed(t, staffClaims(RoleStaff, time.Hour), "other"), status: http.StatusUnauthorized, body: "invalid token"},
		{name: "expired", header: "Bearer " + signed(t, staffClaims(RoleStaff, -time.Minute), testSecret), status: http.StatusUnauthorized, body: "token has expired"},
	}

	r := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	r := newAuthRouter(RequireAdmin())

	for role, status := range map[string]int{RoleAdmin: http.StatusOK, RoleStaff: http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signed(t, staffClaims(role, time.Hour), testSecret))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, status, w.Code, role)
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://desk.test"}))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://desk.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://desk.test", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
