package api

import (
	"context"
	"net/http"

	"github.com/ashureev/console-gate/internal/domain"
)

type contextKey int

const sessionKey contextKey = iota

// SessionFromContext extracts the authorized session from the request
// context.
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(domain.Session)
	return sess, ok
}

// requireAuth guards a route behind token authorization. A successful
// check slides the session's idle expiry; a failed one returns 401
// before the handler runs, so protected state is never touched.
func (h *ConsoleHandler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.auth.Authorize(r.Header.Get("Authorization"))
		if err != nil {
			Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next(w, r.WithContext(ctx))
	}
}
