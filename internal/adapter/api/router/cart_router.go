package router

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/handler"
	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
)

func SetupCartRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := api.Group("/cart")
	cart.Use(authMiddleware.Authenticate)
	cart.GET("", cartHandler.GetCart)
	cart.POST("/add", cartHandler.AddToCart)
	cart.DELETE("/:productId", cartHandler.RemoveFromCart)
	cart.DELETE("", cartHandler.ClearCart)
}
