package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/service"
)

// Context keys populated by Auth for downstream handlers.
const (
	CtxAdminID  = "admin_id"
	CtxUsername = "username"
	CtxEmail    = "email"
)

// Auth validates the bearer token and injects the admin identity into the
// request context. A missing or malformed Authorization header is a 401;
// a token that fails signature or expiry checks is a 403, so callers can
// tell "log in" apart from "session no longer valid".
func Auth(tokens *service.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "access token required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "access token required")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set(CtxAdminID, claims.ID)
			c.Set(CtxUsername, claims.Username)
			c.Set(CtxEmail, claims.Email)

			return next(c)
		}
	}
}
