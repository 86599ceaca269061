package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// IdentityHandler exposes the caller's own resolved identity.
type IdentityHandler struct{}

func NewIdentityHandler() *IdentityHandler {
	return &IdentityHandler{}
}

// Me godoc
// @Summary      Get the authenticated principal
// @Description  Returns the caller's resolved identity: role plus its role-specific profile reference.
// @Tags         identity
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Principal
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/me [get]
func (h *IdentityHandler) Me(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, principal)
}
