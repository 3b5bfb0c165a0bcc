package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// VersionHandler reports the build identity configured via APP_VERSION and
// BUILD_TIME.
func VersionHandler(version, buildTime string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"version":   version,
			"buildTime": buildTime,
		})
	}
}
