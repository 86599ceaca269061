package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// CreatorHandler exposes creator profile endpoints.
type CreatorHandler struct {
	creators ports.CreatorService
}

func NewCreatorHandler(creators ports.CreatorService) *CreatorHandler {
	return &CreatorHandler{creators: creators}
}

type updateCreatorRequest struct {
	DisplayName  string   `json:"display_name" validate:"required,max=80"`
	Bio          string   `json:"bio" validate:"omitempty,max=2000"`
	Niches       []string `json:"niches" validate:"omitempty,max=10,dive,max=40"`
	PortfolioURL string   `json:"portfolio_url" validate:"omitempty,url"`
	RatePerVideo float64  `json:"rate_per_video" validate:"omitempty,gte=0"`
}

// GetMe godoc
// @Summary      Get own creator profile
// @Tags         creators
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.CreatorProfile
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/creators/me [get]
func (h *CreatorHandler) GetMe(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	profile, err := h.creators.GetOwn(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateMe godoc
// @Summary      Update own creator profile
// @Tags         creators
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      updateCreatorRequest  true  "Profile fields"
// @Success      200      {object}  domain.CreatorProfile
// @Failure      400      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Router       /api/v1/creators/me [put]
func (h *CreatorHandler) UpdateMe(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req updateCreatorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.creators.UpdateOwn(c.Request().Context(), principal, ports.UpdateCreatorInput{
		DisplayName:  req.DisplayName,
		Bio:          req.Bio,
		Niches:       req.Niches,
		PortfolioURL: req.PortfolioURL,
		RatePerVideo: req.RatePerVideo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Get godoc
// @Summary      Get a creator's public profile
// @Tags         creators
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Creator profile id"
// @Success      200  {object}  domain.CreatorProfile
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/creators/{id} [get]
func (h *CreatorHandler) Get(c echo.Context) error {
	profile, err := h.creators.GetPublic(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// List godoc
// @Summary      Browse creators
// @Tags         creators
// @Produce      json
// @Security     BearerAuth
// @Param        niche   query     string  false  "Filter by niche"
// @Param        search  query     string  false  "Search display names"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  ports.ListCreatorsResult
// @Router       /api/v1/creators [get]
func (h *CreatorHandler) List(c echo.Context) error {
	filter := ports.CreatorFilter{
		Niche:  c.QueryParam("niche"),
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}

	result, err := h.creators.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed so services apply their own defaults.
func queryInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
