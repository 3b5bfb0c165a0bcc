package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kogoapp/kogo-server/internal/cache"
	"github.com/kogoapp/kogo-server/internal/geo"
	"github.com/kogoapp/kogo-server/internal/models"
	"github.com/kogoapp/kogo-server/internal/naver"
)

type DirectionsHandler struct {
	client *naver.Client
	cache  cache.Cache
}

func NewDirectionsHandler(client *naver.Client, c cache.Cache) *DirectionsHandler {
	return &DirectionsHandler{
		client: client,
		cache:  c,
	}
}

// Directions handles GET /api/directions?startLat=&startLng=&endLat=&endLng=.
// Coordinates are validated here; the upstream is never called with NaN.
func (h *DirectionsHandler) Directions(c echo.Context) error {
	startLat := c.QueryParam("startLat")
	startLng := c.QueryParam("startLng")
	endLat := c.QueryParam("endLat")
	endLng := c.QueryParam("endLng")

	if startLat == "" || startLng == "" || endLat == "" || endLng == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Missing startLat, startLng, endLat, endLng",
			Code:    http.StatusBadRequest,
		})
	}

	start, err1 := parseCoord(startLat, startLng)
	end, err2 := parseCoord(endLat, endLng)
	if err1 != nil || err2 != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid coordinates",
			Code:    http.StatusBadRequest,
		})
	}

	ctx := c.Request().Context()

	if result, found := h.cache.Get(ctx, start, end); found {
		return c.JSON(http.StatusOK, result)
	}

	result, err := h.client.Directions(ctx, start, end)
	if err != nil {
		return directionsError(c, err)
	}

	_ = h.cache.Set(ctx, start, end, result)
	return c.JSON(http.StatusOK, result)
}

func directionsError(c echo.Context, err error) error {
	if errors.Is(err, naver.ErrMissingCredentials) {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "config_error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	// Upstream failures and transport errors alike surface as 502; the
	// UpstreamError message already carries the provider status and body.
	return c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:   "upstream_error",
		Message: err.Error(),
		Code:    http.StatusBadGateway,
	})
}

func parseCoord(latStr, lngStr string) (geo.Coord, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return geo.Coord{}, err
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return geo.Coord{}, err
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return geo.Coord{}, strconv.ErrSyntax
	}
	return geo.Coord{Lat: lat, Lng: lng}, nil
}
