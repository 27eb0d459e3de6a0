package router

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/handler"
	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
)

func SetupStoreRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	storeHandler := handler.GetStoreHandler()

	stores := api.Group("/stores")
	stores.GET("", storeHandler.ListStores)
	stores.GET("/:id", storeHandler.GetStore)

	owned := api.Group("/stores")
	owned.Use(authMiddleware.Authenticate)
	owned.POST("", storeHandler.CreateStore)
	owned.GET("/my", storeHandler.GetMyStore)

	admin := api.Group("/stores")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.PATCH("/:id/approve", storeHandler.ReviewStore)
	admin.DELETE("/:id", storeHandler.DeleteStore)
}
