package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a liveness probe for load balancers. It does not touch the
// stores; /api/auth/test is the endpoint that checks the database.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
