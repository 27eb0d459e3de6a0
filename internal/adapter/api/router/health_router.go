package router

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/handler"
)

func SetupHealthRouter(api *echo.Group) {
	healthHandler := handler.GetHealthHandler()

	api.GET("/health", healthHandler.CheckHealth)
	api.GET("/health/redis", healthHandler.CheckRedisHealth)
}
