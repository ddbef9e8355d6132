package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"findhere/internal/domain/discovery"
	"findhere/internal/usecase"
	"findhere/pkg/response"
)

type MapHandler struct {
	mapUseCase *usecase.MapUseCase
}

func NewMapHandler(mapUseCase *usecase.MapUseCase) *MapHandler {
	return &MapHandler{
		mapUseCase: mapUseCase,
	}
}

// referencePoint returns nil unless both lat and lon parse. An unusable
// position is not an error: the map falls back to the default location.
func referencePoint(c echo.Context) *discovery.Point {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return nil
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return nil
	}
	return &discovery.Point{Lat: lat, Lon: lon}
}

func (h *MapHandler) Nearby(c echo.Context) error {
	radius, _ := strconv.ParseFloat(c.QueryParam("radius_km"), 64)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.mapUseCase.Nearby(c.Request().Context(), usecase.NearbyInput{
		Reference: referencePoint(c),
		RadiusKm:  radius,
		Limit:     limit,
		Params:    discoveryParams(c),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *MapHandler) Clusters(c echo.Context) error {
	precision, _ := strconv.Atoi(c.QueryParam("precision"))

	result, err := h.mapUseCase.Clusters(c.Request().Context(), referencePoint(c), precision, discoveryParams(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
