package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sportsmeet/sportsmeet-api/internal/api/middleware"
)

// requireIdentity extracts the identity attached by the Auth middleware and
// fast-fails before any service call. A missing identity on a protected route
// means the middleware did not run, a wiring error surfaced as 401 rather
// than a panic deeper down.
func requireIdentity(c echo.Context) (middleware.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok || id.UserID == "" {
		return middleware.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
