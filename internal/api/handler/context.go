package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// identity is the authenticated caller as injected by the Auth middleware.
type identity struct {
	UserID   string
	Name     string
	UserType string
}

// ctxIdentity extracts the auth claims set by the Auth middleware and
// performs a fast-fail check before any service call: user_id must be
// non-empty (presence proves the middleware ran and the token carried a
// usable subject).
func ctxIdentity(c echo.Context) (identity, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	name, _ := c.Get("name").(string)
	userType, _ := c.Get("user_type").(string)
	return identity{UserID: userID, Name: name, UserType: userType}, nil
}
