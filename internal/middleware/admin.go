package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authpkg "github.com/octobees/linecard/api/internal/auth"
)

// RequireAdmin enforces the write-access policy: the caller's email is on the
// allowlist, or the principal carries the admin role. Evaluated once per
// request.
func RequireAdmin(allowlist []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := PrincipalFromContext(c)
			if !authpkg.Authorized(principal, allowlist) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
