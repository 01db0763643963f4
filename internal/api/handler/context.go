package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usedphones/phoneshop-api/internal/api/middleware"
	"github.com/usedphones/phoneshop-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the session gate. Presence
// of a non-empty role proves the gate ran and admitted the request.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get(middleware.ContextUserID).(string)
	rawRole, _ := c.Get(middleware.ContextRole).(string)
	if userID == "" || rawRole == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return userID, domain.Role(rawRole), nil
}
