package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// Require gates a route on a declared capability. The caller's role comes
// from the Auth middleware, so Require must run after it.
func Require(cap domain.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if !domain.RoleAllows(role, cap) {
				return echo.NewHTTPError(http.StatusForbidden, forbiddenMessage(cap))
			}
			return next(c)
		}
	}
}

func forbiddenMessage(cap domain.Capability) string {
	switch cap {
	case domain.CapPostJob:
		return "only clients can post jobs"
	case domain.CapApplyToJob:
		return "only freelancers can apply to jobs"
	case domain.CapReviewApplications:
		return "only clients can review applications"
	}
	return "access forbidden"
}
