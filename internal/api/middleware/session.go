package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usedphones/phoneshop-api/internal/api/metrics"
	"github.com/usedphones/phoneshop-api/internal/core/domain"
	"github.com/usedphones/phoneshop-api/internal/core/ports"
)

// SessionCookie is the cookie carrying the session id.
const SessionCookie = "phoneshop_session"

// Context keys set by the gate for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// SessionGate authorizes every inbound request: it resolves the session from
// the request cookie, evaluates the route policy, and either forwards the
// request with (user_id, role) in context or short-circuits with 401/403.
// The gate never mutates session or user state.
func SessionGate(store ports.SessionStore, policy Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := resolveSession(c, store)
			if err != nil {
				return err
			}

			var role domain.Role
			if sess != nil {
				role = sess.Role
			}

			switch policy.Evaluate(c.Request().URL.Path, sess != nil, role) {
			case Unauthenticated:
				metrics.GateDecisionsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			case Forbidden:
				metrics.GateDecisionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}

			metrics.GateDecisionsTotal.WithLabelValues("allow").Inc()
			if sess != nil {
				c.Set(ContextUserID, sess.UserID)
				c.Set(ContextRole, string(sess.Role))
			}
			return next(c)
		}
	}
}

// resolveSession reads the cookie and looks the session up. A missing cookie
// or an unknown/expired session both yield a nil session; only store I/O
// failures surface as errors.
func resolveSession(c echo.Context, store ports.SessionStore) (*ports.Session, error) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	sess, err := store.Lookup(c.Request().Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sess, nil
}
