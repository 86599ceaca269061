package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// ctxPrincipal is the echo context key holding the resolved
// *domain.Principal.
const ctxPrincipal = "principal"

// Identity resolves the session subject set by Auth into a typed Principal
// and stores it in the request context. Requests whose subject cannot be
// resolved never reach the handler: no account record or missing profile is
// a 404, any resolver fault is a 500.
func Identity(resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, ok := SubjectFromContext(c)
			if !ok {
				return domain.ErrUnauthenticated
			}

			principal, err := resolver.Resolve(c.Request().Context(), subject)
			if err != nil {
				return err
			}

			c.Set(ctxPrincipal, principal)
			return next(c)
		}
	}
}

// PrincipalFromContext returns the principal stored by Identity, or false
// when the request did not pass through it.
func PrincipalFromContext(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(ctxPrincipal).(*domain.Principal)
	return p, ok
}
