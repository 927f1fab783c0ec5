// ABOUTME: Feature flag middleware makes the flag manager available to handlers
// ABOUTME: Must run before any middleware or handler that consults a flag

package middleware

import (
	"net/http"

	"newsboard-api/pkg/featureflags"
)

// FeatureFlagsMiddleware stores manager in every request context
func FeatureFlagsMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := featureflags.WithManager(r.Context(), manager)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
