package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/ramenku/ramenku/internal/account"
)

type contextKey int

const sessionContextKey contextKey = iota

// Auth resolves the stored current session. There are no tokens: the
// persisted session record is the sole authority for "current user", exactly
// as the original storefront treated its local storage entry.
type Auth struct {
	accounts account.Service
}

func NewAuth(accounts account.Service) *Auth {
	return &Auth{accounts: accounts}
}

func (a *Auth) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := a.accounts.CurrentSession(r.Context())
		if err != nil {
			if errors.Is(err, account.ErrNoSession) {
				respondWithError(w, http.StatusUnauthorized, "Not signed in")
				return
			}
			log.Error().Err(err).Msg("Failed to resolve current session")
			respondWithError(w, http.StatusInternalServerError, "Failed to resolve session")
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after RequireSession.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok || !sess.IsAdmin() {
			respondWithError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func SessionFromContext(ctx context.Context) (*account.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*account.Session)
	return sess, ok
}
