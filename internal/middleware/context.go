package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	HeaderCorrelationID = "X-Correlation-Id"
	HeaderUserID        = "X-User-Id"
)

type ctxKey string

const (
	ctxCorrelationID ctxKey = "correlation_id"
	ctxUserID        ctxKey = "user_id"
)

// CorrelationID assigns or propagates a correlation id and exposes it both to
// the client and downstream handlers.
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cid := r.Header.Get(HeaderCorrelationID)
		if cid == "" {
			cid = uuid.NewString()
		}
		w.Header().Set(HeaderCorrelationID, cid)

		ctx := context.WithValue(r.Context(), ctxCorrelationID, cid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetCorrelationID(ctx context.Context) string {
	if v := ctx.Value(ctxCorrelationID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// UserID stores the trusted X-User-Id header (set by the fronting gateway) in
// the request context. Routes that need an identity check it themselves.
func UserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if uid != "" {
			r = r.WithContext(context.WithValue(r.Context(), ctxUserID, uid))
		}
		next.ServeHTTP(w, r)
	})
}

func GetUserID(ctx context.Context) string {
	if v := ctx.Value(ctxUserID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
