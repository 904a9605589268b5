package middleware

import (
	"log/slog"
	"net/http"

	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/auth"
	"github.com/parkconserve/park-management/internal/transport"
)

// RequireRole guards a route subtree so only the listed roles may pass.
// The Authenticator must run first; a request without a role on its context
// is treated as unauthenticated.
func RequireRole(roles ...auth.Role) func(http.Handler) http.Handler {
	base := transport.NewBaseHandler(nil)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := internal.RoleFromContext(r.Context())
			if role == "" {
				base.WriteError(w, http.StatusUnauthorized, internal.ErrTokenMissing.Message)
				return
			}

			for _, allowed := range roles {
				if auth.Role(role) == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			slog.Warn("access denied: role not allowed",
				"user_id", internal.UserIDFromContext(r.Context()),
				"role", role,
				"path", r.URL.Path)
			base.WriteError(w, http.StatusForbidden, internal.ErrRoleForbidden.Message)
		})
	}
}
