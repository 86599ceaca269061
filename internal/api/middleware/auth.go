// Package middleware contains the echo middleware chain: JWT session
// authentication, principal resolution, role-based access control and rate
// limiting.
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

const (
	// ctxSubject is the echo context key holding the authenticated
	// ports.Subject set by Auth and consumed by Identity.
	ctxSubject = "subject"

	bearerPrefix = "Bearer "
)

// Auth validates the Authorization bearer token and stores the session
// subject in the request context. Tokens must be HS256-signed with the
// configured secret; anything else is rejected with 401.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			tokenString := strings.TrimPrefix(header, bearerPrefix)

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			sub, _ := claims["sub"].(string)
			email, _ := claims["email"].(string)
			if sub == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			c.Set(ctxSubject, ports.Subject{UserID: sub, Email: email})
			return next(c)
		}
	}
}

// SubjectFromContext returns the subject stored by Auth, or false when the
// request did not pass through it.
func SubjectFromContext(c echo.Context) (ports.Subject, bool) {
	sub, ok := c.Get(ctxSubject).(ports.Subject)
	return sub, ok
}
