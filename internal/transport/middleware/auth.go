package middleware

import (
	"net/http"

	internal "github.com/parkconserve/park-management/internal"
	"github.com/parkconserve/park-management/internal/auth"
	"github.com/parkconserve/park-management/internal/transport"
	"github.com/parkconserve/park-management/pkg/logger"
)

// Authenticator validates the Bearer token and stores the authenticated
// principal (id, email, role) on the request context. Missing, malformed and
// expired tokens each map to their own 401.
func Authenticator(svc auth.ServiceAPI) func(http.Handler) http.Handler {
	base := transport.NewBaseHandler(nil)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := base.ExtractTokenFromHeader(r)
			if token == "" {
				base.WriteError(w, http.StatusUnauthorized, internal.ErrTokenMissing.Message)
				return
			}

			claims, err := svc.ValidateAccessToken(token)
			if err != nil {
				if appErr, ok := internal.IsAppError(err); ok {
					base.WriteError(w, appErr.StatusCode, appErr.Message)
				} else {
					base.WriteError(w, http.StatusUnauthorized, internal.ErrInvalidToken.Message)
				}
				return
			}

			ctx := internal.ContextWithUserID(r.Context(), claims.UserID)
			ctx = internal.ContextWithEmail(ctx, claims.Email)
			ctx = internal.ContextWithRole(ctx, claims.Role)
			ctx = logger.With(ctx, "userID", claims.UserID, "role", claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
