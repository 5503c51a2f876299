package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/auth"
	"github.com/cmlabs-hris/shift-payroll/internal/handler/http/response"
)

// AdminOnly must run after AuthRequired.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := IdentityFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if !identity.IsAdmin() {
			response.HandleError(w, auth.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
