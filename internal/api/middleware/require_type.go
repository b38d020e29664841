package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireType restricts a route to users of the given marketplace sides.
// It relies on the user_type claim injected by Auth, so it must run after it.
func RequireType(allowedTypes ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userType, _ := c.Get("user_type").(string)
			if _, ok := allowed[userType]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
