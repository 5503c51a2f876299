package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/auth"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/handler/http/response"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type identityKey struct{}

// Identity is the caller as described by a verified access token.
type Identity struct {
	StaffID string
	Role    staff.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == staff.RoleAdmin
}

// CanAccessStaff reports whether the caller may read or write records of
// staffID. Admins may access anyone.
func (i Identity) CanAccessStaff(staffID string) bool {
	return i.IsAdmin() || i.StaffID == staffID
}

// IdentityFromContext returns the identity stored by AuthRequired.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	if !ok {
		return Identity{}, auth.ErrInvalidToken
	}
	return identity, nil
}

// AuthRequired rejects requests without a verified access token and stores
// the caller's Identity in the request context. It must run after
// jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}
		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, _ := claims[jwt.ClaimType].(string)
		staffID, _ := claims[jwt.ClaimStaffID].(string)
		role, _ := claims[jwt.ClaimRole].(string)
		if tokenType != jwt.TokenTypeAccess || staffID == "" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey{}, Identity{StaffID: staffID, Role: staff.Role(role)})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
