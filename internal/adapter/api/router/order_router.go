package router

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/handler"
	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
)

func SetupOrderRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := api.Group("/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.POST("", orderHandler.Checkout)
	orders.GET("/my", orderHandler.ListMyOrders)
	orders.GET("/store", orderHandler.ListStoreOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus)

	admin := api.Group("/orders")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminView)
	admin.GET("", orderHandler.ListAllOrders)
}
