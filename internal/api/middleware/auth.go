// Package middleware provides the three authorization gates. Each gate
// verifies the credential token, stashes the decoded identity in the echo
// context, and short-circuits with 401 on any failure. At most one gate is
// applied per route.
package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/joblyhq/jobs-api/internal/api/metrics"
	"github.com/joblyhq/jobs-api/internal/core/token"
)

// Context keys under which the gates stash the verified identity.
const (
	ContextUsername = "username"
	ContextIsAdmin  = "is_admin"
)

var errMissingToken = errors.New("missing token")

// Authenticated admits any request bearing a valid credential token.
func Authenticated(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := verify(c, codec)
			if err != nil {
				metrics.AuthDeniedTotal.WithLabelValues("authenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "you must authenticate first")
			}
			stash(c, claims)
			return next(c)
		}
	}
}

// AdminOnly additionally requires the token's admin flag. A valid
// non-admin token is rejected with 401, same as a missing one.
func AdminOnly(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := verify(c, codec)
			if err != nil || !claims.IsAdmin {
				metrics.AuthDeniedTotal.WithLabelValues("admin").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "you must be an admin to access")
			}
			stash(c, claims)
			return next(c)
		}
	}
}

// SameUser additionally requires the token's username to match the
// :username path parameter. A mismatch is 401, not 403.
func SameUser(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := verify(c, codec)
			if err != nil || claims.Username != c.Param("username") {
				metrics.AuthDeniedTotal.WithLabelValues("same_user").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			stash(c, claims)
			return next(c)
		}
	}
}

func verify(c echo.Context, codec *token.Codec) (*token.Claims, error) {
	tokenString, err := tokenFromRequest(c)
	if err != nil {
		return nil, err
	}
	return codec.Verify(tokenString)
}

func stash(c echo.Context, claims *token.Claims) {
	c.Set(ContextUsername, claims.Username)
	c.Set(ContextIsAdmin, claims.IsAdmin)
}

// tokenFromRequest extracts the credential token from the _token query
// parameter or, failing that, the _token field of a JSON body. The body is
// restored after reading so handlers can still bind it.
func tokenFromRequest(c echo.Context) (string, error) {
	if t := c.QueryParam("_token"); t != "" {
		return t, nil
	}

	req := c.Request()
	if req.Body == nil {
		return "", errMissingToken
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return "", err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		Token string `json:"_token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Token == "" {
		return "", errMissingToken
	}
	return payload.Token, nil
}
