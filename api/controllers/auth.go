package controllers

import (
	"net/http"
	"time"

	"github.com/openmarket-kr/openmarket-backend/api/middleware"
	"github.com/openmarket-kr/openmarket-backend/api/responses"
	"github.com/openmarket-kr/openmarket-backend/api/validators"
	"github.com/openmarket-kr/openmarket-backend/internal/auth"
	"github.com/openmarket-kr/openmarket-backend/pkg/config"
	pkgerrors "github.com/openmarket-kr/openmarket-backend/pkg/errors"
	"github.com/openmarket-kr/openmarket-backend/pkg/logger"
)

// AuthSignUp wires the signup endpoint into the HTTP layer.
func AuthSignUp(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.SignUpRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.SignUp(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteCreated(w, map[string]any{"user": user})
	}
}

// AuthLogin authenticates credentials and sets the session cookie.
func AuthLogin(svc auth.Service, cfg config.SessionConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		http.SetCookie(w, sessionCookie(cfg, result.SessionID, cfg.TTL()))
		responses.WriteCreated(w, map[string]any{"user": result.User})
	}
}

// AuthLogout revokes the caller's session and expires the cookie. Runs behind
// the session guard, so a session is always present here.
func AuthLogout(svc auth.Service, cfg config.SessionConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if err := svc.Logout(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		http.SetCookie(w, sessionCookie(cfg, "", -time.Hour))
		responses.WriteNoContent(w)
	}
}

func sessionCookie(cfg config.SessionConfig, value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     cfg.CookieName,
		Value:    value,
		Path:     "/",
		Domain:   cfg.CookieDomain,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
	} else {
		cookie.MaxAge = -1
	}
	return cookie
}
