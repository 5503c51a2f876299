package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, svc jwt.Service, token string, h http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	jwtauth.Verifier(svc.JWTAuth())(AuthRequired(h)).ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_StoresIdentity(t *testing.T) {
	svc := jwt.NewJWTService("secret", "1h")
	token, _, err := svc.GenerateAccessToken("s1", staff.RoleCashier)
	require.NoError(t, err)

	var got Identity
	rec := serve(t, svc, token, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, err = IdentityFromContext(r.Context())
		require.NoError(t, err)
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, Identity{StaffID: "s1", Role: staff.RoleCashier}, got)
	assert.True(t, got.CanAccessStaff("s1"))
	assert.False(t, got.CanAccessStaff("s2"))
}

func TestAuthRequired_RejectsMissingToken(t *testing.T) {
	svc := jwt.NewJWTService("secret", "1h")

	rec := serve(t, svc, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	svc := jwt.NewJWTService("secret", "1h")
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	staffToken, _, err := svc.GenerateAccessToken("s1", staff.RoleGuard)
	require.NoError(t, err)
	adminToken, _, err := svc.GenerateAccessToken("a1", staff.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, serve(t, svc, staffToken, AdminOnly(ok)).Code)
	assert.Equal(t, http.StatusOK, serve(t, svc, adminToken, AdminOnly(ok)).Code)
}

func TestIdentityFromContext_Missing(t *testing.T) {
	_, err := IdentityFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.Error(t, err)
}
