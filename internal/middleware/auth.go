// Package middleware holds the three route gates: authenticated,
// admin, and correct-user.
package middleware

import (
	"context"
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"job-board-service/internal/httperr"
	"job-board-service/internal/token"
)

const claimsContextKey = "user"

// SessionReader looks up the live token for a username. The redis
// session store implements it.
type SessionReader interface {
	GetToken(ctx context.Context, username string) (string, error)
}

// Authenticated verifies the Bearer token in the Authorization header
// and checks it against the user's live session, then attaches its
// claims to the request context. A well-signed token whose session was
// dropped or replaced is rejected like any other bad token.
func Authenticated(secret string, sessions SessionReader) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: claimsContextKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			claims, err := token.Parse(secret, auth)
			if err != nil {
				return nil, err
			}

			live, err := sessions.GetToken(c.Request().Context(), claims.Username)
			if err != nil {
				return nil, err
			}
			if live != auth {
				return nil, errors.New("session token mismatch")
			}

			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return httperr.Unauthorized("Unauthorized")
		},
	})
}

// ClaimsFrom returns the claims attached by Authenticated, or nil when
// the request carried none.
func ClaimsFrom(c echo.Context) *token.Claims {
	claims, ok := c.Get(claimsContextKey).(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}

// RequireAdmin rejects requests whose claims do not carry the admin
// flag. Must run after Authenticated.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil || !claims.IsAdmin {
				return httperr.Forbidden("You are not authorized")
			}
			return next(c)
		}
	}
}

// RequireSelf rejects requests whose claims' username does not match
// the named path parameter. Must run after Authenticated.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil || claims.Username != c.Param(param) {
				return httperr.Forbidden("You are not authorized")
			}
			return next(c)
		}
	}
}
