package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxActor extracts the authenticated subject from the claims injected by the
// Auth middleware. A non-empty role proves the middleware ran; without it the
// handler was wired onto an unprotected route by mistake, so fail closed.
func ctxActor(c echo.Context) (userID, role string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get("user_id").(string)
	return userID, role, nil
}
