package middleware // package middleware contains reusable HTTP middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/smartprofile/backend/internal/utils"
)

// Context keys populated by Auth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
)

// Auth returns an Echo middleware that validates a Bearer session token and
// injects the caller's user id and email into the request context. The secret
// must match the one used when issuing tokens. Wrap protected routes with it
// so handlers can read `c.Get(middleware.CtxUserID)`.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			id, err := utils.ParseSessionToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
			}

			c.Set(CtxUserID, id.UserID)
			c.Set(CtxEmail, id.Email)
			return next(c)
		}
	}
}

// UserID reads the authenticated user's id from the context. It returns zero
// when the Auth middleware did not run for this request.
func UserID(c echo.Context) uint64 {
	if v, ok := c.Get(CtxUserID).(uint64); ok {
		return v
	}
	return 0
}
