package server

import (
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireLocal rejects requests whose client IP is not loopback or a
// private-range address. Admin endpoints are reachable on the staff
// network and invisible outside it.
func RequireLocal() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := net.ParseIP(c.RealIP())
			if ip == nil || !(ip.IsLoopback() || ip.IsPrivate()) {
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "admin endpoints are restricted to the local network",
				})
			}
			return next(c)
		}
	}
}
