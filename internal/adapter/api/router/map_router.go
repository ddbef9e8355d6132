package router

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/handler"
)

func SetupMapRouter(e *echo.Echo) {
	mapHandler := handler.GetMapHandler()

	m := e.Group("/v1/map")
	m.GET("/nearby", mapHandler.Nearby)
	m.GET("/clusters", mapHandler.Clusters)
}
