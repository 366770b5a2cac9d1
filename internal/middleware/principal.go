package middleware

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authpkg "github.com/octobees/linecard/api/internal/auth"
)

// Principal decodes the platform identity header and stores the resulting
// principal in the request context. Requests without the header, or with a
// malformed one, proceed anonymously; authorization happens downstream.
func Principal(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			encoded := c.Request().Header.Get(authpkg.PrincipalHeader)
			if encoded != "" {
				principal, err := authpkg.DecodePrincipal(encoded)
				if err != nil {
					logger.Warn("malformed principal header", zap.Error(err))
				} else {
					c.Set(ContextKeyPrincipal, principal)
				}
			}
			return next(c)
		}
	}
}

// PrincipalFromContext extracts the decoded principal if available.
func PrincipalFromContext(c echo.Context) *authpkg.Principal {
	if val, ok := c.Get(ContextKeyPrincipal).(*authpkg.Principal); ok {
		return val
	}
	return nil
}
