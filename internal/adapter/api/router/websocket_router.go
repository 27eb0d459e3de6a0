package router

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/handler"
	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
)

func SetupWebSocketRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	wsHandler := handler.GetWebSocketHandler()

	ws := api.Group("/ws")
	ws.Use(authMiddleware.Authenticate)
	ws.GET("", wsHandler.Connect)
}
