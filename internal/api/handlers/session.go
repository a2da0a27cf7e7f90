package handlers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionHeader carries the anonymous browsing session identifier.
const SessionHeader = "X-Session-ID"

// ensureSession returns the request's session ID, minting a fresh uuid when
// the header is absent. The ID is echoed on the response header so a client
// arriving without one can adopt it for subsequent requests.
func ensureSession(c echo.Context) string {
	id := c.Request().Header.Get(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Response().Header().Set(SessionHeader, id)
	return id
}
