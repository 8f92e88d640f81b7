package middleware

import (
	"net/http"
	"strings"

	"github.com/fieldtrack/fieldtrack-backend/internal/auth/jwt"
	"github.com/fieldtrack/fieldtrack-backend/pkg/errors"
	"github.com/fieldtrack/fieldtrack-backend/pkg/httputil"
)

// RoleManager is the role required for team-scoped endpoints
const RoleManager = "manager"

// Authenticate validates the Bearer token and places the caller's identity
// on the request context.
func Authenticate(manager *jwt.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httputil.Error(w, errors.Unauthorized("missing authorization header"))
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				httputil.Error(w, errors.Unauthorized("invalid authorization header"))
				return
			}

			claims, err := manager.ValidateAccessToken(parts[1])
			if err != nil {
				httputil.Error(w, err)
				return
			}

			ctx := httputil.WithUserContext(r.Context(), claims.UserID, claims.Email, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireManager rejects callers that are not managers. It must run after
// Authenticate.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httputil.GetUserRole(r.Context()) != RoleManager {
			httputil.Error(w, errors.Forbidden("manager role required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
