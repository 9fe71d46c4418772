package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

// caller extracts the identity injected by the Auth middleware into an
// explicit ports.Caller. Routes without the middleware yield a zero Caller,
// which the service gateway rejects for privileged operations.
func caller(c echo.Context) ports.Caller {
	profileID, _ := c.Get("profile_id").(string)
	role, _ := c.Get("role").(string)
	clientID, _ := c.Get("client_id").(string)
	return ports.Caller{ProfileID: profileID, Role: role, ClientID: clientID}
}

// requireCaller performs a fast-fail check before any service call:
//   - profile_id must be non-empty (presence proves the middleware ran).
//   - client role requires a non-empty client_id; without it the JWT is
//     structurally valid but operationally unusable — reject with 401.
func requireCaller(c echo.Context) (ports.Caller, error) {
	cl := caller(c)
	if cl.ProfileID == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if cl.Role == domain.RoleClient && cl.ClientID == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing client identity")
	}
	return cl, nil
}
