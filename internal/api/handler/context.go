package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace-api/internal/api/middleware"
	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

// principalFrom fetches the resolved principal from the request context.
// Handlers behind the Identity middleware can rely on it being present; a
// missing principal means the route was wired without it and fails closed.
func principalFrom(c echo.Context) (*domain.Principal, error) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return p, nil
}
