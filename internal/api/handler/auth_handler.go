// Package handler contains the HTTP handlers for the marketplace API.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace-api/internal/api/metrics"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// AuthHandler exposes account registration and login.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=creator business"`

	// Creator fields. Names are optional; registration falls back to the
	// email address when none is given.
	DisplayName string   `json:"display_name" validate:"omitempty,max=80"`
	Niches      []string `json:"niches" validate:"omitempty,max=10,dive,max=40"`

	// Business fields.
	CompanyName string `json:"company_name" validate:"omitempty,max=120"`
	Website     string `json:"website" validate:"omitempty,url"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  authUser `json:"user"`
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates a user plus its role-specific profile (creator or business).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      registerRequest  true  "Registration payload"
// @Success      201      {object}  authUser
// @Failure      400      {object}  errorResponse
// @Failure      409      {object}  errorResponse
// @Failure      429      {object}  errorResponse
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		DisplayName: req.DisplayName,
		Niches:      req.Niches,
		CompanyName: req.CompanyName,
		Website:     req.Website,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Role).Inc()

	return c.JSON(http.StatusCreated, authUser{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	})
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges email and password for a signed session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      loginRequest  true  "Credentials"
// @Success      200      {object}  loginResponse
// @Failure      401      {object}  errorResponse
// @Failure      429      {object}  errorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User: authUser{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}

// errorResponse mirrors the envelope produced by the central error handler.
// Declared here only so swagger can reference it from handler annotations.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}
