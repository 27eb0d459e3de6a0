package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/service"
)

type AdminMiddleware struct {
	policy *service.Policy
}

func NewAdminMiddleware(policy *service.Policy) *AdminMiddleware {
	return &AdminMiddleware{policy: policy}
}

// AdminOnly allows admins and the super admin. Viewers are rejected:
// this guard sits on mutating routes.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}
		if user.Role != entity.RoleAdmin && !m.policy.IsSuperAdmin(user) {
			return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
		}
		return next(c)
	}
}

// AdminView additionally admits viewers, who get read-only access to
// admin data.
func (m *AdminMiddleware) AdminView(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}
		if !m.policy.CanViewAdminData(user) {
			return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
		}
		return next(c)
	}
}

// SuperAdminOnly guards account-role mutations.
func (m *AdminMiddleware) SuperAdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}
		if !m.policy.IsSuperAdmin(user) {
			return echo.NewHTTPError(http.StatusForbidden, "Super admin access required")
		}
		return next(c)
	}
}
