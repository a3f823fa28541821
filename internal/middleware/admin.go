package middleware

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/polygondevindia-tech/board-build-boutique/internal/auth"
)

// RequireAdmin gates a route subtree on the admin role. Requests without an
// identity get 401; authenticated non-admins get 403.
func RequireAdmin(roles auth.Roles, logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := GetUserID(r.Context())
			if uid == "" {
				writeAuthError(w, http.StatusUnauthorized, "missing required header: "+HeaderUserID)
				return
			}

			isAdmin, err := roles.IsAdmin(r.Context(), uid)
			if err != nil {
				logger.Printf("role lookup failed for %s: %v", uid, err)
				writeAuthError(w, http.StatusInternalServerError, "role lookup failed")
				return
			}
			if !isAdmin {
				writeAuthError(w, http.StatusForbidden, "admin role required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
