package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// BusinessHandler exposes business profile endpoints.
type BusinessHandler struct {
	businesses ports.BusinessService
}

func NewBusinessHandler(businesses ports.BusinessService) *BusinessHandler {
	return &BusinessHandler{businesses: businesses}
}

type updateBusinessRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=120"`
	Website     string `json:"website" validate:"omitempty,url"`
	Industry    string `json:"industry" validate:"omitempty,max=80"`
	About       string `json:"about" validate:"omitempty,max=2000"`
}

// GetMe godoc
// @Summary      Get own business profile
// @Tags         businesses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.BusinessProfile
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/businesses/me [get]
func (h *BusinessHandler) GetMe(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	profile, err := h.businesses.GetOwn(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateMe godoc
// @Summary      Update own business profile
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      updateBusinessRequest  true  "Profile fields"
// @Success      200      {object}  domain.BusinessProfile
// @Failure      400      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Router       /api/v1/businesses/me [put]
func (h *BusinessHandler) UpdateMe(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req updateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.businesses.UpdateOwn(c.Request().Context(), principal, ports.UpdateBusinessInput{
		CompanyName: req.CompanyName,
		Website:     req.Website,
		Industry:    req.Industry,
		About:       req.About,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Get godoc
// @Summary      Get a business's public profile
// @Tags         businesses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Business profile id"
// @Success      200  {object}  domain.BusinessProfile
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/businesses/{id} [get]
func (h *BusinessHandler) Get(c echo.Context) error {
	profile, err := h.businesses.GetPublic(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
