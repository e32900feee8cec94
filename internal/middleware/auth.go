package middleware

import (
	"net/http"

	"burger-api/internal/config"
)

// AdminAuth guards the catalog administration endpoints (membership and
// promotion mutations). The key is passed in the "api_key" header.
func AdminAuth(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get("api_key")

			if apiKey == "" {
				http.Error(w, "Unauthorized: API key required", http.StatusUnauthorized)
				return
			}

			valid := false
			for _, validKey := range cfg.AdminKeys {
				if apiKey == validKey {
					valid = true
					break
				}
			}

			if !valid {
				http.Error(w, "Forbidden: Invalid API key", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
