package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/api/middleware"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// identity extracts the auth claims injected by the Auth middleware. A
// missing user id means the middleware did not run; fail closed with 401
// before any service call.
func identity(c echo.Context) (ports.TokenClaims, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return ports.TokenClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get(middleware.CtxEmail).(string)
	role, _ := c.Get(middleware.CtxRole).(string)

	return ports.TokenClaims{UserID: userID, Email: email, Role: role}, nil
}
