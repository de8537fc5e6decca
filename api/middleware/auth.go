package middleware

import (
	"net/http"

	"github.com/openmarket-kr/openmarket-backend/api/responses"
	"github.com/openmarket-kr/openmarket-backend/pkg/auth/session"
	"github.com/openmarket-kr/openmarket-backend/pkg/config"
	pkgerrors "github.com/openmarket-kr/openmarket-backend/pkg/errors"
	"github.com/openmarket-kr/openmarket-backend/pkg/logger"
)

// SessionAuth resolves the session cookie against the session store and seeds
// the request context with the user ID. Requests without a live session are
// rejected before reaching the handler.
func SessionAuth(cfg config.SessionConfig, sessions session.Reader, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cfg.CookieName)
			if err != nil || cookie.Value == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthenticated, "missing session"))
				return
			}

			userID, found, err := sessions.Lookup(r.Context(), cookie.Value)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session"))
				return
			}
			if !found {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthenticated, "session expired"))
				return
			}

			ctx := WithUserID(r.Context(), userID)
			ctx = WithSessionID(ctx, cookie.Value)
			if logg != nil {
				ctx = logg.WithUserID(ctx, userID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
